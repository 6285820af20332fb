// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	CreateAccount(ctx context.Context, balance decimal.Decimal, variant domain.Variant) (domain.Account, error)
	GetAccount(ctx context.Context, id int64) (domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Open creates an account of the given variant with an opening balance.
func (s *Service) Open(ctx context.Context, variant domain.Variant, balance decimal.Decimal) (domain.Account, error) {
	if !variant.IsSupported() {
		return domain.Account{}, domain.ErrInvalidVariant
	}

	if balance.IsNegative() || !domain.IsBoundedAmount(balance) {
		return domain.Account{}, domain.ErrInvalidAmount
	}

	return s.repo.CreateAccount(ctx, balance, variant)
}

// Get returns account for the given account ID.
func (s *Service) Get(ctx context.Context, id int64) (domain.Account, error) {
	return s.repo.GetAccount(ctx, id)
}
