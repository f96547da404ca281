package pagination

import (
	"net/url"
	"testing"

	"auctionhousego/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromQuery(t *testing.T) {
	p, err := FromQuery(url.Values{}, 0)
	require.NoError(t, err)
	assert.Equal(t, Page{Number: 1, Size: DefaultSize}, p)
	assert.Equal(t, 0, p.Offset())

	p, err = FromQuery(url.Values{"page": {"3"}}, 5)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Offset())
	assert.Equal(t, 5, p.Limit())

	for _, bad := range []string{"0", "-1", "two"} {
		_, err = FromQuery(url.Values{"page": {bad}}, 5)
		require.ErrorIs(t, err, apperr.ErrNotFound, bad)
	}
}

func TestResolve(t *testing.T) {
	p, err := Page{Number: 1, Size: 5}.Resolve(0)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Number)

	_, err = Page{Number: 3, Size: 5}.Resolve(10)
	require.ErrorIs(t, err, ErrInvalidPage)

	p, err = Page{Number: -1, Size: 5}.Resolve(11)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Number)
}

func TestNewEnvelope(t *testing.T) {
	u, err := url.Parse("http://localhost:8085/auctions/?search=phone&page=2")
	require.NoError(t, err)

	env := NewEnvelope(u, Page{Number: 2, Size: 5}, 12, []int{6, 7, 8, 9, 10})
	assert.Equal(t, 12, env.Count)
	require.NotNil(t, env.Next)
	require.NotNil(t, env.Previous)
	assert.Equal(t, "http://localhost:8085/auctions/?page=3&search=phone", *env.Next)
	assert.Equal(t, "http://localhost:8085/auctions/?search=phone", *env.Previous)

	env = NewEnvelope[int](u, Page{Number: 1, Size: 5}, 0, nil)
	assert.Nil(t, env.Next)
	assert.Nil(t, env.Previous)
	assert.NotNil(t, env.Results)
}
