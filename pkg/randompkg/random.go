// Package randompkg provides functionality for generating random applications common items.
package randompkg

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// IntBetween generates a random integer between min and max inclusive.
func IntBetween(min, max int) int64 {
	return int64(min) + Intn(max-min+1)
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// AmountBetween generates a random amount of money between min and max with two decimals.
func AmountBetween(min, max int) decimal.Decimal {
	cents := IntBetween(min*100, max*100)
	return decimal.New(cents, -2)
}

// AccountID generates a random positive account id.
func AccountID() int64 {
	return IntBetween(1, 1_000_000)
}

// Variant returns a random supported account variant.
func Variant() domain.Variant {
	return domain.SupportedVariants[Intn(len(domain.SupportedVariants))]
}

// Kind returns a random operation kind.
func Kind() domain.Kind {
	kinds := []domain.Kind{
		domain.KindBranchDeposit,
		domain.KindCashMachineDeposit,
		domain.KindTransferDeposit,
		domain.KindInPersonPurchase,
		domain.KindOnlinePurchase,
		domain.KindCashMachineWithdrawal,
	}

	return kinds[Intn(len(kinds))]
}
