package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates a missing, zero, negative or out of bounds amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds indicates that the operation would make the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnrecognizedChannel indicates an unknown operation channel.
	ErrUnrecognizedChannel = errors.New("unrecognized channel")
)

// Kind enumerates the operations that mutate an account balance.
type Kind string

// Operation kinds as recorded in the ledger.
const (
	KindBranchDeposit         Kind = "branch deposit"
	KindCashMachineDeposit    Kind = "cashmachine deposit"
	KindTransferDeposit       Kind = "transfer deposit"
	KindInPersonPurchase      Kind = "in-person purchase"
	KindOnlinePurchase        Kind = "online purchase"
	KindCashMachineWithdrawal Kind = "cashmachine withdrawal"
)

var (
	feeBasicCashMachineDeposit = decimal.NewFromInt(2)
	feeTransferDeposit         = decimal.RequireFromString("1.5")
	feeOnlinePurchase          = decimal.NewFromInt(5)
	feeCashMachineWithdrawal   = decimal.NewFromInt(1)
)

// IsValid reports whether k is one of the known kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindBranchDeposit,
		KindCashMachineDeposit,
		KindTransferDeposit,
		KindInPersonPurchase,
		KindOnlinePurchase,
		KindCashMachineWithdrawal:
		return true
	}

	return false
}

// IsDebit reports whether the operation takes money out of the account.
func (k Kind) IsDebit() bool {
	switch k {
	case KindInPersonPurchase, KindOnlinePurchase, KindCashMachineWithdrawal:
		return true
	}

	return false
}

// Fee returns the fee charged for the operation on an account of the given variant.
func (k Kind) Fee(v Variant) decimal.Decimal {
	switch k {
	case KindCashMachineDeposit:
		if v == VariantBasic {
			return feeBasicCashMachineDeposit
		}
	case KindTransferDeposit:
		return feeTransferDeposit
	case KindOnlinePurchase:
		return feeOnlinePurchase
	case KindCashMachineWithdrawal:
		return feeCashMachineWithdrawal
	}

	return decimal.Zero
}

// Apply computes the balance after the operation of the given gross amount.
//
// Credits add the amount and subtract the fee, debits subtract both.
// Any result below zero returns ErrInsufficientFunds, which for credits
// only happens when the fee exceeds the deposited amount.
func (k Kind) Apply(balance, amount decimal.Decimal, v Variant) (decimal.Decimal, error) {
	if !k.IsValid() {
		return balance, ErrUnrecognizedChannel
	}

	if !amount.IsPositive() || !IsBoundedAmount(amount) {
		return balance, ErrInvalidAmount
	}

	var newBalance decimal.Decimal
	if k.IsDebit() {
		newBalance = balance.Sub(amount).Sub(k.Fee(v))
	} else {
		newBalance = balance.Add(amount).Sub(k.Fee(v))
	}

	if newBalance.IsNegative() {
		return balance, ErrInsufficientFunds
	}

	return newBalance, nil
}
