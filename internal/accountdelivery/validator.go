package accountdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// ValidVariant validates whether the account variant is supported.
var ValidVariant validator.Func = func(fl validator.FieldLevel) bool {
	if v, ok := fl.Field().Interface().(string); ok {
		return domain.Variant(v).IsSupported()
	}

	return false
}
