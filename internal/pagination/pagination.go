package pagination

import (
	"fmt"
	"net/url"
	"strconv"

	"auctionhousego/internal/apperr"
)

const DefaultSize = 5

var ErrInvalidPage = fmt.Errorf("invalid page: %w", apperr.ErrNotFound)

// Page is a 1-based page of fixed size.
type Page struct {
	Number int
	Size   int
}

// FromQuery reads ?page=N (or ?page=last). A missing value means the first page;
// anything else that is not a positive integer is an invalid page.
func FromQuery(q url.Values, size int) (Page, error) {
	if size <= 0 {
		size = DefaultSize
	}
	p := Page{Number: 1, Size: size}
	raw := q.Get("page")
	switch raw {
	case "":
		return p, nil
	case "last":
		p.Number = -1
		return p, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return Page{}, ErrInvalidPage
	}
	p.Number = n
	return p, nil
}

func (p Page) Limit() int  { return p.Size }
func (p Page) Offset() int { return (p.Number - 1) * p.Size }

func lastPage(count, size int) int {
	if count == 0 {
		return 1
	}
	return (count + size - 1) / size
}

// Resolve fixes "last" to a concrete page and rejects pages past the end.
// The first page always exists, even for an empty result set.
func (p Page) Resolve(count int) (Page, error) {
	last := lastPage(count, p.Size)
	if p.Number == -1 {
		p.Number = last
	}
	if p.Number > last {
		return Page{}, ErrInvalidPage
	}
	return p, nil
}

// Envelope is the paginated list body.
type Envelope[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewEnvelope builds next/previous links from the request URL, keeping every other
// query parameter. The link to page 1 omits the page parameter.
func NewEnvelope[T any](reqURL *url.URL, p Page, count int, results []T) Envelope[T] {
	if results == nil {
		results = []T{}
	}
	env := Envelope[T]{Count: count, Results: results}
	if p.Number < lastPage(count, p.Size) {
		env.Next = pageLink(reqURL, p.Number+1)
	}
	if p.Number > 1 {
		env.Previous = pageLink(reqURL, p.Number-1)
	}
	return env
}

func pageLink(reqURL *url.URL, n int) *string {
	u := *reqURL
	q := u.Query()
	if n == 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(n))
	}
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}

// List is one resolved page of a service listing.
type List[T any] struct {
	Page  Page
	Count int
	Items []T
}
