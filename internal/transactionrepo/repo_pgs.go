// Package transactionrepo manages repository layer of ledger transactions.
package transactionrepo

import (
	"context"
	"errors"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates transaction repository layer logic.
//
// The ledger is append-only: there are no update or delete queries.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns transaction RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    transactions (account_id, kind, amount, unique_code)
VALUES
    ($1, $2, $3, $4)
RETURNING id, account_id, kind, amount, unique_code, created_at
`

// Create appends the ledger entry and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.AccountID, arg.Kind, arg.Amount, arg.UniqueCode)

	var t domain.Transaction

	err := row.Scan(
		&t.ID,
		&t.AccountID,
		&t.Kind,
		&t.Amount,
		&t.UniqueCode,
		&t.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Constraint {
			case "transactions_account_id_fkey":
				return domain.Transaction{}, domain.ErrAccountNotFound
			case "transactions_amount_check":
				return domain.Transaction{}, domain.ErrInvalidAmount
			}
		}

		return domain.Transaction{}, errorspkg.ErrInternal
	}

	return t, nil
}

const listRecentQuery = `
SELECT id, account_id, kind, amount, unique_code, created_at FROM transactions
WHERE account_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`

// ListRecent returns up to limit newest entries of the given account.
//
// Entries sharing a timestamp are ordered by descending id, i.e. the later insert first.
func (r *RepoPGS) ListRecent(ctx context.Context, accountID int64, limit int32) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listRecentQuery, accountID, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(
			&t.ID,
			&t.AccountID,
			&t.Kind,
			&t.Amount,
			&t.UniqueCode,
			&t.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
