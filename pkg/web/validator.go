package web

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// MaxDecimalLength is the longest decimal string accepted by ValidDecimal.
const MaxDecimalLength = 64

// ValidDecimal validates whether the field holds a decimal number within domain amount bounds.
var ValidDecimal validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok || len(s) > MaxDecimalLength {
		return false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}

	return domain.IsBoundedAmount(d)
}
