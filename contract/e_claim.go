package main

import "nft-wager-escrow/sdk"

// attached deposit for the NFT standard's transfer call: exactly one
// indivisible unit of the native token.
const oneUnit sdk.Balance = 1

// claimImpl lets the winner pull the loser's deposit out of escrow.
//
// The finished flag is persisted before the outbound transfer is scheduled.
// If the downstream transfer fails later the match stays finished, so a
// second claim can never double-spend the deposit; the trade-off is that a
// failed transfer strands the token in escrow until a future version
// observes the result.
func claimImpl(payload *string, chain SDKInterface) *string {
	args := FromJSON[ClaimArgs](*payload, errBadClaimArgs, chain)

	caller := chain.GetEnv().Sender.Address
	require(caller == args.Winner, errOnlyWinner, chain)

	st, found := loadMatch(args.MatchID, chain)
	require(found, errMatchNotFound, chain)
	require(!st.Finished, errAlreadyFinished, chain)

	require(st.DepositA != nil, errDepositAMissing, chain)
	require(st.DepositB != nil, errDepositBMissing, chain)
	require(args.Winner == st.PlayerA || args.Winner == st.PlayerB, errNotAPlayer, chain)

	loserDep := st.DepositB
	if args.Winner == st.PlayerB {
		loserDep = st.DepositA
	}
	require(
		loserDep.NftContractID == args.LoserNftContractID && loserDep.TokenID == args.LoserTokenID,
		errTokenMismatch, chain,
	)

	// Commit before emitting the transfer.
	st.Finished = true
	saveMatch(args.MatchID, st, chain)

	transfer := NftTransferArgs{
		ReceiverID: args.Winner,
		TokenID:    args.LoserTokenID,
	}
	p := chain.ContractCall(
		args.LoserNftContractID,
		"nft_transfer",
		ToJSON(transfer, "nft transfer args", chain),
		oneUnit,
		nftTransferGas(chain),
	)

	EmitMatchClaimed(args.MatchID, args.Winner, args.LoserNftContractID, args.LoserTokenID, chain)

	ret := UInt64ToString(uint64(p))
	return &ret
}
