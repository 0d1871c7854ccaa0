package main

// Storage layout. Matches live under a single-byte namespace so other keys
// never collide with a client-chosen match id.

func matchKey(matchID string) string { return "m:" + matchID }

const (
	initFlagKey = "init"
	ownerKey    = "owner"
	gasKey      = "gas:nft_transfer"
)

// saveMatch unconditionally replaces the stored state for a match.
func saveMatch(matchID string, st MatchState, chain SDKInterface) {
	chain.StateSetObject(matchKey(matchID), ToJSON(st, "match state", chain))
}

// loadMatch reads a match back from storage. The found flag is false when
// no intake has ever touched this id.
func loadMatch(matchID string, chain SDKInterface) (MatchState, bool) {
	ptr := chain.StateGetObject(matchKey(matchID))
	if ptr == nil || *ptr == "" {
		return MatchState{}, false
	}
	return FromJSON[MatchState](*ptr, "corrupt match state", chain), true
}
