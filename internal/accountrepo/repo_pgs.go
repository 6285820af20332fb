// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

func scanAccount(row *sql.Row) (domain.Account, error) {
	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.Balance,
		&a.Variant,
		&a.CreatedAt,
	)

	return a, err
}

const createQuery = `
INSERT INTO
    accounts (balance, variant)
VALUES
    ($1, $2)
RETURNING id, balance, variant, created_at
`

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, balance decimal.Decimal, variant domain.Variant) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, createQuery, balance, variant))
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %v, %v)", balance, variant)

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Constraint {
			case "accounts_balance_check":
				return domain.Account{}, domain.ErrInvalidAmount
			case "accounts_variant_check":
				return domain.Account{}, domain.ErrInvalidVariant
			}
		}

		return domain.Account{}, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT
	id, balance, variant, created_at
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Account, error) {
	return r.get(ctx, getQuery, id)
}

const getForUpdateQuery = getQuery + `FOR NO KEY UPDATE
`

// GetForUpdate returns the account with the given id and locks its row
// until the surrounding transaction ends.
func (r *RepoPGS) GetForUpdate(ctx context.Context, id int64) (domain.Account, error) {
	return r.get(ctx, getForUpdateQuery, id)
}

func (r *RepoPGS) get(ctx context.Context, query string, id int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			l.Info().Err(err).Int64("account_id", id).Send()
			return domain.Account{}, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Int64("account_id", id).Send()

		return domain.Account{}, errorspkg.ErrInternal
	}

	return a, nil
}

const updateBalanceQuery = `
UPDATE accounts
SET balance = $1
WHERE id = $2
RETURNING id, balance, variant, created_at
`

// UpdateBalance sets the account's balance and returns the changed account.
func (r *RepoPGS) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, updateBalanceQuery, balance, id))
	if err != nil {
		l.Error().Err(err).Int64("account_id", id).Send()

		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrAccountNotFound
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Constraint == "accounts_balance_check" {
			return domain.Account{}, domain.ErrInsufficientFunds
		}

		return domain.Account{}, errorspkg.ErrInternal
	}

	return a, nil
}
