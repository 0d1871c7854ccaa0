package main

// getMatchImpl returns the denormalized match view, or JSON null when the
// match id has never been seen. Deposit bodies stay internal.
func getMatchImpl(payload *string, chain SDKInterface) *string {
	args := FromJSON[GetMatchArgs](*payload, errBadGetArgs, chain)

	st, found := loadMatch(args.MatchID, chain)
	if !found {
		s := "null"
		return &s
	}

	view := MatchView{
		MatchID:     args.MatchID,
		PlayerA:     st.PlayerA,
		PlayerB:     st.PlayerB,
		HasDepositA: st.DepositA != nil,
		HasDepositB: st.DepositB != nil,
		Finished:    st.Finished,
	}
	s := ToJSON(view, "match view", chain)
	return &s
}
