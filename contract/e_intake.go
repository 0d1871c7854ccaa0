package main

// onNftReceivedImpl handles the NFT receiver callback: one inbound token
// becomes the deposit for one side of a match.
//
// The return value goes back to the NFT contract: "false" keeps the token
// with the escrow, "true" would hand it back. Any abort along the way makes
// the host refund the token to its previous owner, so nothing below commits
// partially.
func onNftReceivedImpl(payload *string, chain SDKInterface) *string {
	args := FromJSON[NftOnTransferArgs](*payload, errBadTransferArgs, chain)

	// Authenticated caller of this callback is the NFT contract itself.
	// Never trust a contract id carried inside the message body.
	nftContract := chain.GetEnv().Sender.Address

	msg := FromJSON[TransferCallMsg](args.Msg, errBadMessage, chain)
	require(msg.MatchID != "", errBadMessage, chain)
	require(msg.PlayerA != "" && msg.PlayerB != "", errBadMessage, chain)
	require(msg.Side == SideA || msg.Side == SideB, errInvalidSide, chain)
	require(msg.PlayerA != msg.PlayerB, errPlayersEqual, chain)

	st, found := loadMatch(msg.MatchID, chain)
	if !found {
		// First intake creates the match implicitly.
		st = MatchState{PlayerA: msg.PlayerA, PlayerB: msg.PlayerB}
	}
	require(st.PlayerA == msg.PlayerA && st.PlayerB == msg.PlayerB, errPlayersMismatch, chain)
	require(!st.Finished, errAlreadyFinished, chain)

	dep := &Deposit{
		NftContractID:   nftContract,
		TokenID:         args.TokenID,
		OriginalOwnerID: args.PreviousOwnerID,
		DepositedBy:     args.SenderID,
	}

	if msg.Side == SideA {
		require(st.DepositA == nil, errDepositASet, chain)
		st.DepositA = dep
	} else {
		require(st.DepositB == nil, errDepositBSet, chain)
		st.DepositB = dep
	}

	saveMatch(msg.MatchID, st, chain)

	if !found {
		EmitMatchCreated(msg.MatchID, st.PlayerA, st.PlayerB, chain)
	}
	EmitDepositReceived(msg.MatchID, msg.Side, nftContract, args.TokenID, args.SenderID, chain)

	// false => keep token in escrow
	ret := "false"
	return &ret
}
