// Package money centralizes the monetary conventions used across the
// ledger: exact decimals via shopspring/decimal, scale-2 quantization
// with round-half-up, and the dust threshold below which settlement
// transfers are suppressed.
package money

import "github.com/shopspring/decimal"

// Dust is the minimum meaningful transfer amount. Sub-dust remainders
// are artifacts of repeated division and are never worth a payment.
var Dust = decimal.New(5, -3) // 0.005

// Zero returns a scale-2 zero amount.
func Zero() decimal.Decimal {
	return decimal.New(0, -2)
}

// Round2 quantizes an amount to 2 decimal places, rounding halves up
// (away from zero), the convention for every stored and emitted amount.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RoundWhole quantizes an amount to whole currency units, rounding
// halves up. Used only by the bilateral balance view, which is coarser
// than the rest of the engine on purpose.
func RoundWhole(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// FromString parses a decimal amount, e.g. "12.50".
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses a decimal amount and panics on malformed input.
// Intended for constants and tests.
func MustFromString(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
