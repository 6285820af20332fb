package test

import (
	"time"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
)

// RandomAccount returns random account.
func RandomAccount() domain.Account {
	return domain.Account{
		ID:        randompkg.AccountID(),
		Balance:   randompkg.AmountBetween(1000, 10_000),
		Variant:   randompkg.Variant(),
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

// RandomTransaction returns random ledger entry of the given account.
func RandomTransaction(accountID int64) domain.Transaction {
	return domain.Transaction{
		ID:         randompkg.IntBetween(1, 1000),
		AccountID:  accountID,
		Kind:       randompkg.Kind(),
		Amount:     randompkg.AmountBetween(1, 500),
		UniqueCode: "TX-" + randompkg.String(26),
		CreatedAt:  time.Now().Truncate(time.Second).UTC(),
	}
}
