package domain

// Channel tags accepted by the request surface.
const (
	ChannelBranch   = "branch"
	ChannelMachine  = "machine"
	ChannelTransfer = "transfer"
	ChannelInPerson = "in-person"
	ChannelOnline   = "online"
)

var (
	depositChannels = map[string]Kind{
		ChannelBranch:   KindBranchDeposit,
		ChannelMachine:  KindCashMachineDeposit,
		ChannelTransfer: KindTransferDeposit,
	}
	purchaseChannels = map[string]Kind{
		ChannelInPerson: KindInPersonPurchase,
		ChannelOnline:   KindOnlinePurchase,
	}
	withdrawalChannels = map[string]Kind{
		ChannelMachine: KindCashMachineWithdrawal,
	}
)

// DepositKind returns the deposit kind for the given channel tag.
func DepositKind(channel string) (Kind, error) {
	return lookupKind(depositChannels, channel)
}

// PurchaseKind returns the purchase kind for the given channel tag.
func PurchaseKind(channel string) (Kind, error) {
	return lookupKind(purchaseChannels, channel)
}

// WithdrawalKind returns the withdrawal kind for the given channel tag.
func WithdrawalKind(channel string) (Kind, error) {
	return lookupKind(withdrawalChannels, channel)
}

func lookupKind(channels map[string]Kind, channel string) (Kind, error) {
	k, ok := channels[channel]
	if !ok {
		return "", ErrUnrecognizedChannel
	}

	return k, nil
}
