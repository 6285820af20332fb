package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecentTransactionsLimit is the number of ledger entries returned by history queries.
const RecentTransactionsLimit = 5

// Transaction is an immutable ledger entry of a committed operation.
type Transaction struct {
	ID         int64           `json:"id"`
	AccountID  int64           `json:"account_id"`
	Kind       Kind            `json:"kind"`
	Amount     decimal.Decimal `json:"amount"` // gross amount requested, fee excluded
	UniqueCode string          `json:"unique_code"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CreateTransactionParams is the input data to append a ledger entry.
type CreateTransactionParams struct {
	AccountID  int64
	Kind       Kind
	Amount     decimal.Decimal
	UniqueCode string
}
