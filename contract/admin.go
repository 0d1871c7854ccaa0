package main

import "nft-wager-escrow/sdk"

// Default gas budget reserved for the downstream nft_transfer call (25 Tgas).
const gasNFTTransfer sdk.Gas = 25_000_000_000_000

// Owner-adjustable bounds for the budget.
const (
	minTransferGas uint64 = 1_000_000_000_000   // 1 Tgas
	maxTransferGas uint64 = 300_000_000_000_000 // 300 Tgas
)

type SetGasArgs struct {
	Gas uint64 `json:"gas"`
}

// adminSetGasImpl overrides the outbound transfer gas budget. Only the
// account that initialized the contract may call this.
func adminSetGasImpl(payload *string, chain SDKInterface) *string {
	args := FromJSON[SetGasArgs](*payload, errBadGasArgs, chain)

	caller := chain.GetEnv().Sender.Address
	owner := chain.StateGetObject(ownerKey)
	require(owner != nil && caller.String() == *owner, errOnlyOwner, chain)

	require(args.Gas >= minTransferGas && args.Gas <= maxTransferGas, errGasOutOfRange, chain)
	chain.StateSetObject(gasKey, UInt64ToString(args.Gas))

	chain.Log("nft_transfer gas budget set to " + UInt64ToString(args.Gas))
	return nil
}

// nftTransferGas returns the configured budget, falling back to the default.
func nftTransferGas(chain SDKInterface) sdk.Gas {
	if ptr := chain.StateGetObject(gasKey); ptr != nil && *ptr != "" {
		return sdk.Gas(StringToUInt64(*ptr, errGasOutOfRange, chain))
	}
	return gasNFTTransfer
}
