package filters

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"auctionhousego/internal/apperr"

	"github.com/shopspring/decimal"
)

const MinSearchLength = 3

// AuctionFilter is the parsed form of the auction list query string.
// Every populated criterion must hold for an auction to be listed.
type AuctionFilter struct {
	Search       string
	CategoryID   int64
	CategoryName string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
}

func (f AuctionFilter) HasCategoryName() bool { return f.CategoryName != "" }

// ParseAuctionQuery reads search, category, min_price and max_price. Empty values
// are ignored. All problems are reported together, keyed by parameter name.
func ParseAuctionQuery(q url.Values) (AuctionFilter, error) {
	var f AuctionFilter
	fe := &apperr.FieldError{}

	if s := q.Get("search"); s != "" {
		if len([]rune(s)) < MinSearchLength {
			fe.Add("search", fmt.Sprintf("Search must be at least %d characters long.", MinSearchLength))
		} else {
			f.Search = s
		}
	}

	if c := q.Get("category"); c != "" {
		if isDigits(c) {
			id, err := strconv.ParseInt(c, 10, 64)
			if err != nil {
				fe.Add("category", "Category id is out of range.")
			} else {
				f.CategoryID = id
			}
		} else {
			f.CategoryName = c
		}
	}

	f.MinPrice = parsePrice(q.Get("min_price"), "min_price", "Minimum price must be greater than 0.", fe)
	f.MaxPrice = parsePrice(q.Get("max_price"), "max_price", "Maximum price must be greater than 0.", fe)
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThanOrEqual(*f.MaxPrice) {
		fe.Add("max_price", "Maximum price must be greater than the minimum price.")
	}

	if err := fe.OrNil(); err != nil {
		return AuctionFilter{}, err
	}
	return f, nil
}

func parsePrice(raw, field, nonPositiveMsg string, fe *apperr.FieldError) *decimal.Decimal {
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		fe.Add(field, "Must be a valid number.")
		return nil
	}
	if !d.IsPositive() {
		fe.Add(field, nonPositiveMsg)
		return nil
	}
	return &d
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Where renders the filter as a predicate on the auctions table aliased "a".
// Placeholders start at $firstArg. An empty filter yields an empty string.
func (f AuctionFilter) Where(firstArg int) (string, []any) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", firstArg+len(args)-1)
	}

	if f.Search != "" {
		p := next("%" + escapeLike(f.Search) + "%")
		conds = append(conds, fmt.Sprintf("(a.title ILIKE %s OR a.description ILIKE %s)", p, p))
	}
	if f.CategoryID != 0 {
		conds = append(conds, "a.category_id = "+next(f.CategoryID))
	}
	if f.CategoryName != "" {
		conds = append(conds, "a.category_id IN (SELECT id FROM categories WHERE name = "+next(f.CategoryName)+")")
	}
	if f.MinPrice != nil {
		conds = append(conds, "a.price >= "+next(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		conds = append(conds, "a.price <= "+next(*f.MaxPrice))
	}
	return strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
