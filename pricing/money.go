package pricing

import (
	"github.com/shopspring/decimal"
)

// Round rounds a monetary amount to 2 fractional digits, half up.
// float64 arithmetic alone drifts on values like 19.999999999998, so the
// rounding step goes through decimal.
func Round(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Clamp floors a computed amount at zero. Prices are never negative after
// any computation.
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// RoundClamped combines Clamp and Round in the order every price
// computation uses them.
func RoundClamped(v float64) float64 {
	return Round(Clamp(v))
}
