package pricing

import "github.com/shopspring/decimal"

// applyRate returns floor(cents * rate). The product is exact, so a 7% rate on
// 100 cents is 7 and never 7.000000000000001.
func applyRate(cents int64, rate decimal.Decimal) int64 {
	if cents == 0 || rate.IsZero() {
		return 0
	}
	return decimal.NewFromInt(cents).Mul(rate).Floor().IntPart()
}

func perMille(rate int64) decimal.Decimal {
	return decimal.New(rate, -3)
}

func percent(rate int64) decimal.Decimal {
	return decimal.New(rate, -2)
}

func nonNegative(cents int64) int64 {
	if cents < 0 {
		return 0
	}
	return cents
}
