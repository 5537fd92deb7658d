package plan

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

var nonAmount = regexp.MustCompile(`[^0-9.\-]`)

// ParseAmount coerces a raw amount string to a decimal. Currency symbols and
// grouping separators are stripped first; empty or unparsable input yields
// zero rather than an error.
func ParseAmount(raw string) decimal.Decimal {
	cleaned := nonAmount.ReplaceAllString(raw, "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseDate parses an ISO YYYY-MM-DD date. Invalid or empty input yields the
// zero time, which the schedule generator treats as an absent date.
func ParseDate(raw string) time.Time {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
