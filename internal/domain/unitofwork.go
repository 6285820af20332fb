package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// UnitOfWork groups the balance update and the ledger append of one operation.
//
// Nothing written through a UnitOfWork is observable before Commit returns nil.
// Rollback discards staged writes and is a no-op after a successful Commit.
//
//go:generate mockgen -source unitofwork.go -destination unitofwork_mock.go -package domain
type UnitOfWork interface {
	// LockAccount returns the account and holds it exclusively until the unit ends.
	LockAccount(ctx context.Context, id int64) (Account, error)
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) (Account, error)
	AppendTransaction(ctx context.Context, arg CreateTransactionParams) (Transaction, error)
	Commit() error
	Rollback() error
}
