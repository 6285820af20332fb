// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/accountrepo"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/transactionrepo"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
)

// SeedAccount creates Account with the given balance and variant inside a test transaction.
func SeedAccount(t *testing.T, tx dbpkg.SQLInterface, balance decimal.Decimal, variant domain.Variant) domain.Account {
	t.Helper()

	accountRepo := accountrepo.NewRepoPGS(tx)

	account, err := accountRepo.Create(context.Background(), balance, variant)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %v, %v) returned error: %v", balance, variant, err)
	}

	return account
}

// SeedAccountWith1000Balance creates Account of a random variant with 1000 on balance.
func SeedAccountWith1000Balance(t *testing.T, tx dbpkg.SQLInterface) domain.Account {
	t.Helper()

	return SeedAccount(t, tx, decimal.NewFromInt(1000), randompkg.Variant())
}

// SeedTransaction appends a ledger entry of the given kind and amount inside a test transaction.
func SeedTransaction(t *testing.T, tx dbpkg.SQLInterface, accountID int64, kind domain.Kind, amount decimal.Decimal) domain.Transaction {
	t.Helper()

	arg := domain.CreateTransactionParams{
		AccountID:  accountID,
		Kind:       kind,
		Amount:     amount,
		UniqueCode: "TX-" + randompkg.String(26),
	}

	transactionRepo := transactionrepo.NewRepoPGS(tx)

	transaction, err := transactionRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("transactionRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return transaction
}

// SeedTransactions appends count ledger entries with random kinds and amounts.
func SeedTransactions(t *testing.T, tx dbpkg.SQLInterface, accountID int64, count int) []domain.Transaction {
	t.Helper()

	transactions := make([]domain.Transaction, count)

	for i := range transactions {
		transactions[i] = SeedTransaction(t, tx, accountID, randompkg.Kind(), randompkg.AmountBetween(1, 1000))
	}

	return transactions
}
