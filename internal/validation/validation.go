// Package validation holds the domain rules for auctions and bids.
// Every check takes the current time explicitly so callers decide what "now" is.
package validation

import (
	"fmt"
	"math"
	"time"

	"auctionhousego/internal/apperr"

	"github.com/shopspring/decimal"
)

const MinAuctionDuration = 15 * 24 * time.Hour

const (
	MsgClosingInPast  = "Closing date must be greater than now."
	MsgTooShort       = "The auction must last at least 15 days."
	MsgAuctionClosed  = "auction closed"
	MsgNonPositiveBid = "bid price must be greater than 0"
	msgBidNotHighest  = "bid must be higher than the current highest bid (%s)"
	closingDateField  = "closing_date"
)

// CheckAuctionDuration validates closing against now and the auction start.
// start is now for a new auction and the stored creation date on update.
func CheckAuctionDuration(closing, start, now time.Time) error {
	if !closing.After(now) {
		return apperr.NewFieldError(closingDateField, MsgClosingInPast)
	}
	if closing.Sub(start) < MinAuctionDuration {
		return apperr.NewFieldError(closingDateField, MsgTooShort)
	}
	return nil
}

// CheckBid validates a proposed price against the auction state. currentMax must be
// the persisted maximum excluding the bid under edit; hasMax is false when there is none.
func CheckBid(closing time.Time, price, currentMax decimal.Decimal, hasMax bool, now time.Time) error {
	if !IsOpen(closing, now) {
		return apperr.NewRuleError(MsgAuctionClosed)
	}
	if !price.IsPositive() {
		return apperr.NewRuleError(MsgNonPositiveBid)
	}
	if hasMax && price.LessThanOrEqual(currentMax) {
		return apperr.NewRuleError(fmt.Sprintf(msgBidNotHighest, currentMax.StringFixed(2)))
	}
	return nil
}

// CheckBidMutable rejects edits and deletes of bids once the auction has closed.
func CheckBidMutable(closing, now time.Time) error {
	if !IsOpen(closing, now) {
		return apperr.NewRuleError(MsgAuctionClosed)
	}
	return nil
}

func IsOpen(closing, now time.Time) bool {
	return closing.After(now)
}

// AverageRating rounds half away from zero to two places; no ratings reads as 0.
func AverageRating(avg float64, valid bool) float64 {
	if !valid {
		return 0
	}
	return math.Round(avg*100) / 100
}

var maxPrice = decimal.New(1, 8)

// CheckPrice enforces decimal(10,2): at most two decimal places and eight integer digits.
func CheckPrice(field string, d decimal.Decimal) error {
	if !d.Equal(d.Round(2)) {
		return apperr.NewFieldError(field, "Ensure that there are no more than 2 decimal places.")
	}
	if d.Abs().GreaterThanOrEqual(maxPrice) {
		return apperr.NewFieldError(field, "Ensure that there are no more than 10 digits in total.")
	}
	return nil
}
