// Package transactionservice manages business logic layer of balance operations.
package transactionservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	GetAccount(ctx context.Context, id int64) (domain.Account, error)
	ListRecentTransactions(ctx context.Context, accountID int64, limit int32) ([]domain.Transaction, error)
	Begin(ctx context.Context) (domain.UnitOfWork, error)
}

// Publisher announces committed ledger entries.
type Publisher interface {
	TransactionCommitted(ctx context.Context, t domain.Transaction, balance decimal.Decimal) error
}

// CodeGenerator produces unique codes for ledger entries.
type CodeGenerator interface {
	Generate() (string, error)
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo      Repo
	codes     CodeGenerator
	publisher Publisher
}

// New returns transaction service struct to manage balance operations.
func New(r Repo, codes CodeGenerator, p Publisher) *Service {
	return &Service{
		repo:      r,
		codes:     codes,
		publisher: p,
	}
}

// Balance returns the current balance of the account.
func (s *Service) Balance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	account, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	return account.Balance, nil
}

// RecentTransactions returns the newest ledger entries of the account, newest first.
func (s *Service) RecentTransactions(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	if _, err := s.repo.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}

	return s.repo.ListRecentTransactions(ctx, accountID, domain.RecentTransactionsLimit)
}

// Deposit credits the account through the given deposit channel.
//
// A deposit smaller than its fee on a low balance would leave the account
// negative, so deposits can fail with domain.ErrInsufficientFunds too.
func (s *Service) Deposit(ctx context.Context, accountID int64, channel string, amount decimal.Decimal) (decimal.Decimal, error) {
	kind, err := domain.DepositKind(channel)
	if err != nil {
		return decimal.Zero, err
	}

	return s.Apply(ctx, accountID, kind, amount)
}

// Purchase debits the account through the given purchase channel.
func (s *Service) Purchase(ctx context.Context, accountID int64, channel string, amount decimal.Decimal) (decimal.Decimal, error) {
	kind, err := domain.PurchaseKind(channel)
	if err != nil {
		return decimal.Zero, err
	}

	return s.Apply(ctx, accountID, kind, amount)
}

// Withdraw debits the account through the given withdrawal channel.
func (s *Service) Withdraw(ctx context.Context, accountID int64, channel string, amount decimal.Decimal) (decimal.Decimal, error) {
	kind, err := domain.WithdrawalKind(channel)
	if err != nil {
		return decimal.Zero, err
	}

	return s.Apply(ctx, accountID, kind, amount)
}

// DepositBranch credits the account at a branch, free of charge.
func (s *Service) DepositBranch(ctx context.Context, accountID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.Apply(ctx, accountID, domain.KindBranchDeposit, amount)
}

// DepositCashMachine credits the account at a cash machine.
// Like Deposit, it returns domain.ErrInsufficientFunds when the fee exceeds balance plus amount.
func (s *Service) DepositCashMachine(ctx context.Context, accountID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.Apply(ctx, accountID, domain.KindCashMachineDeposit, amount)
}

// DepositTransfer credits the account from another account.
// Like Deposit, it returns domain.ErrInsufficientFunds when the fee exceeds balance plus amount.
func (s *Service) DepositTransfer(ctx context.Context, accountID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.Apply(ctx, accountID, domain.KindTransferDeposit, amount)
}

// PurchaseInPerson debits the account for an in-person purchase.
func (s *Service) PurchaseInPerson(ctx context.Context, accountID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.Apply(ctx, accountID, domain.KindInPersonPurchase, amount)
}

// PurchaseOnline debits the account for an online purchase.
func (s *Service) PurchaseOnline(ctx context.Context, accountID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.Apply(ctx, accountID, domain.KindOnlinePurchase, amount)
}

// WithdrawCashMachine debits the account at a cash machine.
func (s *Service) WithdrawCashMachine(ctx context.Context, accountID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.Apply(ctx, accountID, domain.KindCashMachineWithdrawal, amount)
}

// Apply performs the operation of the given kind and returns the resulting balance.
//
// The account row stays locked from the read until commit, so concurrent
// operations on the same account are serialized. Either both the new balance
// and the ledger entry are committed or nothing is.
func (s *Service) Apply(ctx context.Context, accountID int64, kind domain.Kind, amount decimal.Decimal) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	if !kind.IsValid() {
		return decimal.Zero, domain.ErrUnrecognizedChannel
	}

	if !amount.IsPositive() || !domain.IsBoundedAmount(amount) {
		l.Info().Int32("exponent", amount.Exponent()).Msg("rejected amount")
		return decimal.Zero, domain.ErrInvalidAmount
	}

	uow, err := s.repo.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	defer func() {
		if err := uow.Rollback(); err != nil {
			l.Error().Err(err).Send()
		}
	}()

	account, err := uow.LockAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	newBalance, err := kind.Apply(account.Balance, amount, account.Variant)
	if err != nil {
		l.Info().Err(err).Int64("account_id", accountID).Str("kind", string(kind)).Send()
		return decimal.Zero, err
	}

	code, err := s.codes.Generate()
	if err != nil {
		l.Error().Err(err).Send()
		return decimal.Zero, errorspkg.ErrInternal
	}

	updated, err := uow.UpdateBalance(ctx, accountID, newBalance)
	if err != nil {
		return decimal.Zero, err
	}

	t, err := uow.AppendTransaction(ctx, domain.CreateTransactionParams{
		AccountID:  accountID,
		Kind:       kind,
		Amount:     amount,
		UniqueCode: code,
	})
	if err != nil {
		return decimal.Zero, err
	}

	if err := uow.Commit(); err != nil {
		l.Error().Err(err).Int64("account_id", accountID).Msg("commit failed")
		return decimal.Zero, errorspkg.ErrInternal
	}

	l.Info().
		Int64("account_id", accountID).
		Str("kind", string(kind)).
		Str("amount", amount.String()).
		Str("balance", updated.Balance.String()).
		Str("code", t.UniqueCode).
		Msg("transaction committed")

	if s.publisher != nil {
		if err := s.publisher.TransactionCommitted(ctx, t, updated.Balance); err != nil {
			l.Warn().Err(err).Str("code", t.UniqueCode).Msg("cannot publish transaction")
		}
	}

	return updated.Balance, nil
}
