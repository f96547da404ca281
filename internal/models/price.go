package models

import (
	"github.com/shopspring/decimal"
)

// Price is a decimal(10,2) amount. It is emitted as a string with exactly two places.
type Price struct {
	decimal.Decimal
}

func NewPrice(d decimal.Decimal) Price { return Price{Decimal: d} }

// MustPrice parses s and panics on malformed input; meant for constants and tests.
func MustPrice(s string) Price { return Price{Decimal: decimal.RequireFromString(s)} }

func (p Price) String() string { return p.StringFixed(2) }

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.StringFixed(2) + `"`), nil
}
