package main

import "nft-wager-escrow/sdk"

// Event represents the common structure for all emitted events.
// Each event has a type and a set of key/value attributes.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

// emitEvent constructs an Event object with the given type and attributes,
// and logs it as JSON.
func emitEvent(eventType string, attributes map[string]string, chain SDKInterface) {
	event := Event{
		Type:       eventType,
		Attributes: attributes,
	}
	chain.Log(ToJSON(event, eventType+" event data", chain))
}

// EmitMatchCreated emits an event when a first intake implicitly creates a match.
func EmitMatchCreated(matchID string, playerA, playerB sdk.Address, chain SDKInterface) {
	emitEvent("matchCreated", map[string]string{
		"id":       matchID,
		"player_a": playerA.String(),
		"player_b": playerB.String(),
	}, chain)
}

// EmitDepositReceived emits an event when an NFT is taken into custody.
func EmitDepositReceived(matchID string, side Side, nftContract sdk.Address, tokenID string, depositedBy sdk.Address, chain SDKInterface) {
	emitEvent("depositReceived", map[string]string{
		"id":           matchID,
		"side":         string(side),
		"nft_contract": nftContract.String(),
		"token_id":     tokenID,
		"deposited_by": depositedBy.String(),
	}, chain)
}

// EmitMatchClaimed emits an event when a winner claims the loser's deposit.
func EmitMatchClaimed(matchID string, winner sdk.Address, nftContract sdk.Address, tokenID string, chain SDKInterface) {
	emitEvent("matchClaimed", map[string]string{
		"id":           matchID,
		"winner":       winner.String(),
		"nft_contract": nftContract.String(),
		"token_id":     tokenID,
	}, chain)
}
