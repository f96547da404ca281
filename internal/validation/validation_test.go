package validation

import (
	"testing"
	"time"

	"auctionhousego/internal/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func TestCheckAuctionDuration(t *testing.T) {
	created := now.Add(-48 * time.Hour)

	tests := []struct {
		name    string
		closing time.Time
		start   time.Time
		wantMsg string
	}{
		{"new_auction_20_days", now.Add(20 * 24 * time.Hour), now, ""},
		{"new_auction_exactly_15_days", now.Add(MinAuctionDuration), now, ""},
		{"new_auction_14_days", now.Add(14 * 24 * time.Hour), now, MsgTooShort},
		{"closing_equal_now", now, now, MsgClosingInPast},
		{"closing_in_past", now.Add(-time.Minute), now, MsgClosingInPast},
		{"update_measures_from_creation", now.Add(13*24*time.Hour + time.Hour), created, ""},
		{"update_too_short_from_creation", now.Add(12 * 24 * time.Hour), created, MsgTooShort},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckAuctionDuration(tc.closing, tc.start, now)
			if tc.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			var fe *apperr.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, []string{tc.wantMsg}, fe.Fields["closing_date"])
		})
	}
}

func TestCheckBid(t *testing.T) {
	open := now.Add(24 * time.Hour)
	closed := now.Add(-time.Second)
	d := decimal.RequireFromString

	tests := []struct {
		name    string
		closing time.Time
		price   string
		max     string
		hasMax  bool
		wantMsg string
	}{
		{"first_bid", open, "100", "0", false, ""},
		{"higher_than_max", open, "150", "100", true, ""},
		{"equal_to_max", open, "100", "100", true, "bid must be higher than the current highest bid (100.00)"},
		{"lower_than_max", open, "50", "100", true, "bid must be higher than the current highest bid (100.00)"},
		{"zero_price", open, "0", "0", false, MsgNonPositiveBid},
		{"negative_price", open, "-5", "0", false, MsgNonPositiveBid},
		{"closed_auction", closed, "1000", "100", true, MsgAuctionClosed},
		{"closing_exactly_now", now, "1000", "0", false, MsgAuctionClosed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckBid(tc.closing, d(tc.price), d(tc.max), tc.hasMax, now)
			if tc.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			var re *apperr.RuleError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tc.wantMsg, re.Message)
		})
	}
}

func TestCheckBidMutable(t *testing.T) {
	require.NoError(t, CheckBidMutable(now.Add(time.Hour), now))
	require.True(t, apperr.IsRuleError(CheckBidMutable(now.Add(-time.Hour), now)))
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(0, false))
	assert.Equal(t, 3.5, AverageRating(3.5, true))
	assert.Equal(t, 3.67, AverageRating(11.0/3.0, true))
	assert.Equal(t, 4.0, AverageRating(4, true))
}

func TestCheckPrice(t *testing.T) {
	d := decimal.RequireFromString
	require.NoError(t, CheckPrice("price", d("799.99")))
	require.NoError(t, CheckPrice("price", d("99999999.99")))
	require.NoError(t, CheckPrice("price", d("10.500")))
	assert.True(t, apperr.IsFieldError(CheckPrice("price", d("10.555"))))
	assert.True(t, apperr.IsFieldError(CheckPrice("price", d("100000000"))))
}
