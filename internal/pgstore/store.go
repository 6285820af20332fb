// Package pgstore composes the PostgreSQL account and transaction repositories
// into the store used by the transaction service.
package pgstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/accountrepo"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/transactionrepo"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// Store reads accounts and ledger entries and opens units of work.
type Store struct {
	conn         *sql.DB
	accounts     *accountrepo.RepoPGS
	transactions *transactionrepo.RepoPGS
}

// New returns Store over the given connection.
func New(conn *sql.DB) *Store {
	return &Store{
		conn:         conn,
		accounts:     accountrepo.NewRepoPGS(conn),
		transactions: transactionrepo.NewRepoPGS(conn),
	}
}

// CreateAccount creates the account with the given opening balance.
func (s *Store) CreateAccount(ctx context.Context, balance decimal.Decimal, variant domain.Variant) (domain.Account, error) {
	return s.accounts.Create(ctx, balance, variant)
}

// GetAccount returns the account with the given id.
func (s *Store) GetAccount(ctx context.Context, id int64) (domain.Account, error) {
	return s.accounts.Get(ctx, id)
}

// ListRecentTransactions returns up to limit newest ledger entries of the account.
func (s *Store) ListRecentTransactions(ctx context.Context, accountID int64, limit int32) ([]domain.Transaction, error) {
	return s.transactions.ListRecent(ctx, accountID, limit)
}

// Begin starts a database transaction and returns the unit of work bound to it.
func (s *Store) Begin(ctx context.Context) (domain.UnitOfWork, error) {
	l := zerolog.Ctx(ctx)

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return &unit{
		tx:           tx,
		accounts:     accountrepo.NewRepoPGS(tx),
		transactions: transactionrepo.NewRepoPGS(tx),
	}, nil
}

type unit struct {
	tx           *sql.Tx
	accounts     *accountrepo.RepoPGS
	transactions *transactionrepo.RepoPGS
}

func (u *unit) LockAccount(ctx context.Context, id int64) (domain.Account, error) {
	return u.accounts.GetForUpdate(ctx, id)
}

func (u *unit) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) (domain.Account, error) {
	return u.accounts.UpdateBalance(ctx, id, balance)
}

func (u *unit) AppendTransaction(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	return u.transactions.Create(ctx, arg)
}

func (u *unit) Commit() error {
	if err := u.tx.Commit(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return errorspkg.ErrTxDone
		}

		return err
	}

	return nil
}

func (u *unit) Rollback() error {
	if err := u.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}
