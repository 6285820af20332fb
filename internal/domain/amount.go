package domain

import "github.com/shopspring/decimal"

// Bounds of money values accepted from callers.
const (
	MaxAmountScale         = 8
	MaxAmountIntegerDigits = 20
)

// IsBoundedAmount reports whether d has at most MaxAmountScale decimal places
// and at most MaxAmountIntegerDigits integer digits.
//
// Unbounded exponents make every later addition rescale the balance to them.
func IsBoundedAmount(d decimal.Decimal) bool {
	exp := int(d.Exponent())
	if exp < -MaxAmountScale {
		return false
	}

	return d.NumDigits()+exp <= MaxAmountIntegerDigits
}
