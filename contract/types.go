package main

import "nft-wager-escrow/sdk"

// Side labels which player a deposit belongs to.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// Deposit is the record of one NFT held in custody for one side of a match.
//
// NftContractID is always the authenticated caller of the intake callback,
// never anything taken from the message body.
type Deposit struct {
	NftContractID   sdk.Address `json:"nft_contract_id"`
	TokenID         string      `json:"token_id"`
	OriginalOwnerID sdk.Address `json:"original_owner_id"`
	DepositedBy     sdk.Address `json:"deposited_by"`
}

// MatchState is the escrow's view of one match.
//
// PlayerA and PlayerB are fixed at creation and must differ. Each side holds
// at most one deposit. Finished latches true on a successful claim and never
// reverts; a finished match accepts no further deposits.
type MatchState struct {
	PlayerA  sdk.Address `json:"player_a"`
	PlayerB  sdk.Address `json:"player_b"`
	DepositA *Deposit    `json:"deposit_a,omitempty"`
	DepositB *Deposit    `json:"deposit_b,omitempty"`
	Finished bool        `json:"finished"`
}

// TransferCallMsg is the JSON payload carried in the msg field of the NFT
// receiver callback. All fields are required.
type TransferCallMsg struct {
	MatchID string      `json:"match_id"`
	Side    Side        `json:"side"`
	PlayerA sdk.Address `json:"player_a"`
	PlayerB sdk.Address `json:"player_b"`
}

// function arguments

type NftOnTransferArgs struct {
	SenderID        sdk.Address `json:"sender_id"`
	PreviousOwnerID sdk.Address `json:"previous_owner_id"`
	TokenID         string      `json:"token_id"`
	Msg             string      `json:"msg"`
}

type ClaimArgs struct {
	MatchID            string      `json:"match_id"`
	Winner             sdk.Address `json:"winner"`
	LoserNftContractID sdk.Address `json:"loser_nft_contract_id"`
	LoserTokenID       string      `json:"loser_token_id"`
}

type GetMatchArgs struct {
	MatchID string `json:"match_id"`
}

// MatchView is the denormalized read model returned by get_match. Deposit
// bodies are intentionally not exposed.
type MatchView struct {
	MatchID     string      `json:"match_id"`
	PlayerA     sdk.Address `json:"player_a"`
	PlayerB     sdk.Address `json:"player_b"`
	HasDepositA bool        `json:"has_deposit_a"`
	HasDepositB bool        `json:"has_deposit_b"`
	Finished    bool        `json:"finished"`
}

// NftTransferArgs is the outbound payload for the NFT standard's transfer
// entrypoint on the loser's NFT contract.
type NftTransferArgs struct {
	ReceiverID sdk.Address `json:"receiver_id"`
	TokenID    string      `json:"token_id"`
	ApprovalID *uint64     `json:"approval_id"`
	Memo       *string     `json:"memo"`
}
