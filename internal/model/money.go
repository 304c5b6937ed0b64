package model

import "github.com/shopspring/decimal"

// NormalizePrice rescales a monetary value to exactly two fractional
// digits, rounding half up.  Every price persisted or returned by the
// service passes through this so 19.999 becomes 20.00 and 5 becomes 5.00.
func NormalizePrice(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PriceString renders a monetary value at the fixed two-decimal scale.
func PriceString(d decimal.Decimal) string {
	return d.StringFixed(2)
}
