// Package memstore provides an in-process store of accounts and ledger entries.
//
// Writers of the same account are serialized by a per-account lock held for the
// whole unit of work. Staged writes are published together on commit, so a reader
// sees either both the new balance and its ledger entry or neither.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// Store keeps accounts and ledger entries in memory.
type Store struct {
	mu        sync.RWMutex
	accounts  map[int64]domain.Account
	ledger    map[int64][]domain.Transaction
	lastAccID int64
	lastTxID  int64

	locksMu sync.Mutex
	locks   map[int64]chan struct{}

	now func() time.Time
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		accounts: make(map[int64]domain.Account),
		ledger:   make(map[int64][]domain.Transaction),
		locks:    make(map[int64]chan struct{}),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateAccount creates the account with the given opening balance.
func (s *Store) CreateAccount(ctx context.Context, balance decimal.Decimal, variant domain.Variant) (domain.Account, error) {
	if balance.IsNegative() || !domain.IsBoundedAmount(balance) {
		return domain.Account{}, domain.ErrInvalidAmount
	}

	if !variant.IsSupported() {
		return domain.Account{}, domain.ErrInvalidVariant
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastAccID++

	a := domain.Account{
		ID:        s.lastAccID,
		Balance:   balance,
		Variant:   variant,
		CreatedAt: s.now(),
	}
	s.accounts[a.ID] = a

	zerolog.Ctx(ctx).Debug().Int64("account_id", a.ID).Msg("account created")

	return a, nil
}

// GetAccount returns the account with the given id.
func (s *Store) GetAccount(ctx context.Context, id int64) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return a, nil
}

// ListRecentTransactions returns up to limit newest ledger entries of the account.
//
// Ids of one account grow in commit order under its lock, so they order
// the history regardless of wall clock steps.
func (s *Store) ListRecentTransactions(ctx context.Context, accountID int64, limit int32) ([]domain.Transaction, error) {
	s.mu.RLock()
	entries := make([]domain.Transaction, len(s.ledger[accountID]))
	copy(entries, s.ledger[accountID])
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID > entries[j].ID
	})

	if limit >= 0 && int(limit) < len(entries) {
		entries = entries[:limit]
	}

	return entries, nil
}

// Begin returns a new unit of work.
func (s *Store) Begin(ctx context.Context) (domain.UnitOfWork, error) {
	return &unit{
		store:    s,
		balances: make(map[int64]decimal.Decimal),
	}, nil
}

func (s *Store) accountLock(id int64) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, ok := s.locks[id]
	if !ok {
		lock = make(chan struct{}, 1)
		s.locks[id] = lock
	}

	return lock
}

type unit struct {
	store    *Store
	locked   []chan struct{}
	lockedID map[int64]domain.Account
	balances map[int64]decimal.Decimal
	entries  []domain.Transaction
	done     bool
}

func (u *unit) LockAccount(ctx context.Context, id int64) (domain.Account, error) {
	if u.done {
		return domain.Account{}, errorspkg.ErrTxDone
	}

	if a, ok := u.lockedID[id]; ok {
		return a, nil
	}

	// accounts are never removed, so a lock is only ever created for a known id
	if _, err := u.store.GetAccount(ctx, id); err != nil {
		return domain.Account{}, err
	}

	lock := u.store.accountLock(id)

	select {
	case lock <- struct{}{}:
	case <-ctx.Done():
		return domain.Account{}, ctx.Err()
	}

	a, err := u.store.GetAccount(ctx, id)
	if err != nil {
		<-lock
		return domain.Account{}, err
	}

	if u.lockedID == nil {
		u.lockedID = make(map[int64]domain.Account)
	}

	u.locked = append(u.locked, lock)
	u.lockedID[id] = a

	return a, nil
}

func (u *unit) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) (domain.Account, error) {
	if u.done {
		return domain.Account{}, errorspkg.ErrTxDone
	}

	a, ok := u.lockedID[id]
	if !ok {
		zerolog.Ctx(ctx).Error().Int64("account_id", id).Msg("balance update without account lock")
		return domain.Account{}, errorspkg.ErrInternal
	}

	if balance.IsNegative() {
		return domain.Account{}, domain.ErrInsufficientFunds
	}

	a.Balance = balance
	u.lockedID[id] = a
	u.balances[id] = balance

	return a, nil
}

func (u *unit) AppendTransaction(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	if u.done {
		return domain.Transaction{}, errorspkg.ErrTxDone
	}

	if _, ok := u.lockedID[arg.AccountID]; !ok {
		if _, err := u.store.GetAccount(ctx, arg.AccountID); err != nil {
			return domain.Transaction{}, err
		}
	}

	if !arg.Amount.IsPositive() {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}

	s := u.store

	s.mu.Lock()
	s.lastTxID++
	id := s.lastTxID
	s.mu.Unlock()

	t := domain.Transaction{
		ID:         id,
		AccountID:  arg.AccountID,
		Kind:       arg.Kind,
		Amount:     arg.Amount,
		UniqueCode: arg.UniqueCode,
		CreatedAt:  s.now(),
	}
	u.entries = append(u.entries, t)

	return t, nil
}

func (u *unit) Commit() error {
	if u.done {
		return errorspkg.ErrTxDone
	}

	s := u.store

	s.mu.Lock()
	for id, balance := range u.balances {
		a := s.accounts[id]
		a.Balance = balance
		s.accounts[id] = a
	}

	for _, t := range u.entries {
		s.ledger[t.AccountID] = append(s.ledger[t.AccountID], t)
	}
	s.mu.Unlock()

	u.finish()

	return nil
}

func (u *unit) Rollback() error {
	if u.done {
		return nil
	}

	u.finish()

	return nil
}

func (u *unit) finish() {
	for _, lock := range u.locked {
		<-lock
	}

	u.done = true
	u.locked = nil
	u.lockedID = nil
	u.balances = nil
	u.entries = nil
}
