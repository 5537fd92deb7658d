package plan

import "github.com/shopspring/decimal"

// Allocate splits total into count installment amounts whose decimal sum
// equals total exactly. Every amount is the per-installment value truncated to
// cents; the last one absorbs the truncation remainder, which can make it a
// few cents higher or lower than the rest. count must be >= 1 — callers
// special-case an empty schedule before getting here.
func Allocate(total decimal.Decimal, count int) []decimal.Decimal {
	n := decimal.NewFromInt(int64(count))
	base := total.Div(n).RoundDown(2)

	amounts := make([]decimal.Decimal, count)
	for i := range amounts {
		amounts[i] = base
	}

	sumBase := base.Mul(n).Round(2)
	diff := total.Sub(sumBase).Round(2)
	amounts[count-1] = base.Add(diff).Round(2)
	return amounts
}
