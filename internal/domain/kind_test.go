package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestKindFee(t *testing.T) {
	testCases := []struct {
		kind    Kind
		variant Variant
		want    string
	}{
		{KindBranchDeposit, VariantBasic, "0"},
		{KindBranchDeposit, VariantStandard, "0"},
		{KindCashMachineDeposit, VariantBasic, "2"},
		{KindCashMachineDeposit, VariantStandard, "0"},
		{KindTransferDeposit, VariantBasic, "1.5"},
		{KindTransferDeposit, VariantStandard, "1.5"},
		{KindInPersonPurchase, VariantBasic, "0"},
		{KindOnlinePurchase, VariantStandard, "5"},
		{KindCashMachineWithdrawal, VariantBasic, "1"},
		{KindCashMachineWithdrawal, VariantStandard, "1"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(string(tc.kind)+"/"+string(tc.variant), func(t *testing.T) {
			got := tc.kind.Fee(tc.variant)
			require.Truef(t, dec(tc.want).Equal(got), "Fee() = %v, want %v", got, tc.want)
		})
	}
}

func TestKindApply(t *testing.T) {
	testCases := []struct {
		name    string
		kind    Kind
		variant Variant
		balance string
		amount  string
		want    string
		wantErr error
	}{
		{
			name:    "BranchDeposit",
			kind:    KindBranchDeposit,
			variant: VariantBasic,
			balance: "100.00",
			amount:  "25.50",
			want:    "125.50",
		},
		{
			name:    "CashMachineDepositBasic",
			kind:    KindCashMachineDeposit,
			variant: VariantBasic,
			balance: "100",
			amount:  "10",
			want:    "108",
		},
		{
			name:    "CashMachineDepositStandard",
			kind:    KindCashMachineDeposit,
			variant: VariantStandard,
			balance: "100",
			amount:  "10",
			want:    "110",
		},
		{
			name:    "TransferDeposit",
			kind:    KindTransferDeposit,
			variant: VariantStandard,
			balance: "0",
			amount:  "10",
			want:    "8.5",
		},
		{
			name:    "TransferDepositBelowFeeOnEmptyAccount",
			kind:    KindTransferDeposit,
			variant: VariantStandard,
			balance: "0",
			amount:  "1",
			wantErr: ErrInsufficientFunds,
		},
		{
			name:    "InPersonPurchaseWholeBalance",
			kind:    KindInPersonPurchase,
			variant: VariantStandard,
			balance: "80",
			amount:  "80",
			want:    "0",
		},
		{
			name:    "InPersonPurchaseInsufficient",
			kind:    KindInPersonPurchase,
			variant: VariantStandard,
			balance: "80",
			amount:  "80.01",
			wantErr: ErrInsufficientFunds,
		},
		{
			name:    "OnlinePurchase",
			kind:    KindOnlinePurchase,
			variant: VariantBasic,
			balance: "100",
			amount:  "95",
			want:    "0",
		},
		{
			name:    "OnlinePurchaseFeeMakesInsufficient",
			kind:    KindOnlinePurchase,
			variant: VariantBasic,
			balance: "100",
			amount:  "96",
			wantErr: ErrInsufficientFunds,
		},
		{
			name:    "CashMachineWithdrawal",
			kind:    KindCashMachineWithdrawal,
			variant: VariantStandard,
			balance: "100.00",
			amount:  "50.00",
			want:    "49.00",
		},
		{
			name:    "ZeroAmount",
			kind:    KindBranchDeposit,
			variant: VariantStandard,
			balance: "100",
			amount:  "0",
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "NegativeAmount",
			kind:    KindInPersonPurchase,
			variant: VariantStandard,
			balance: "100",
			amount:  "-1",
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "TooManyDecimalPlaces",
			kind:    KindBranchDeposit,
			variant: VariantStandard,
			balance: "100",
			amount:  "1e-20000000",
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "UnknownKind",
			kind:    Kind("refund"),
			variant: VariantStandard,
			balance: "100",
			amount:  "1",
			wantErr: ErrUnrecognizedChannel,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			balance := dec(tc.balance)

			got, err := tc.kind.Apply(balance, dec(tc.amount), tc.variant)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.True(t, balance.Equal(got), "balance must stay unchanged on error")

				return
			}

			require.NoError(t, err)
			require.Truef(t, dec(tc.want).Equal(got), "Apply() = %v, want %v", got, tc.want)
		})
	}
}

func TestKindIsDebit(t *testing.T) {
	require.False(t, KindBranchDeposit.IsDebit())
	require.False(t, KindCashMachineDeposit.IsDebit())
	require.False(t, KindTransferDeposit.IsDebit())
	require.True(t, KindInPersonPurchase.IsDebit())
	require.True(t, KindOnlinePurchase.IsDebit())
	require.True(t, KindCashMachineWithdrawal.IsDebit())
}

func TestChannelKinds(t *testing.T) {
	testCases := []struct {
		name    string
		lookup  func(string) (Kind, error)
		channel string
		want    Kind
		wantErr error
	}{
		{"DepositBranch", DepositKind, ChannelBranch, KindBranchDeposit, nil},
		{"DepositMachine", DepositKind, ChannelMachine, KindCashMachineDeposit, nil},
		{"DepositTransfer", DepositKind, ChannelTransfer, KindTransferDeposit, nil},
		{"DepositOnline", DepositKind, ChannelOnline, "", ErrUnrecognizedChannel},
		{"PurchaseInPerson", PurchaseKind, ChannelInPerson, KindInPersonPurchase, nil},
		{"PurchaseOnline", PurchaseKind, ChannelOnline, KindOnlinePurchase, nil},
		{"PurchaseMachine", PurchaseKind, ChannelMachine, "", ErrUnrecognizedChannel},
		{"WithdrawalMachine", WithdrawalKind, ChannelMachine, KindCashMachineWithdrawal, nil},
		{"WithdrawalBranch", WithdrawalKind, ChannelBranch, "", ErrUnrecognizedChannel},
		{"Empty", DepositKind, "", "", ErrUnrecognizedChannel},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.lookup(tc.channel)
			require.ErrorIs(t, err, tc.wantErr)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestVariantIsSupported(t *testing.T) {
	require.True(t, VariantBasic.IsSupported())
	require.True(t, VariantStandard.IsSupported())
	require.False(t, Variant("premium").IsSupported())
	require.False(t, Variant("").IsSupported())
}
