package money

import "github.com/shopspring/decimal"

// Quantize normalizes a monetary value to exactly two decimal places,
// rounding half up.
func Quantize(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FromFloat converts a float amount into a quantized decimal.
func FromFloat(v float64) decimal.Decimal {
	return Quantize(decimal.NewFromFloat(v))
}
