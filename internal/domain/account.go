// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidVariant indicates that the account variant is not supported.
	ErrInvalidVariant = errors.New("invalid account variant")
)

// Variant selects the fee schedule of an account.
type Variant string

// Supported account variants.
const (
	VariantBasic    Variant = "basic"
	VariantStandard Variant = "standard"
)

// SupportedVariants lists all account variants.
var SupportedVariants = []Variant{VariantBasic, VariantStandard}

// IsSupported reports whether v is a known account variant.
func (v Variant) IsSupported() bool {
	for _, s := range SupportedVariants {
		if v == s {
			return true
		}
	}

	return false
}

// Account holds the balance of a single account.
type Account struct {
	ID        int64           `json:"id"`
	Balance   decimal.Decimal `json:"balance"` // never negative
	Variant   Variant         `json:"variant"`
	CreatedAt time.Time       `json:"created_at"`
}
