package main

// Abort reasons. Every failure path ends in one of these; the host rolls the
// call back atomically, so an aborted intake refunds the NFT to its prior
// owner and an aborted claim leaves the match untouched.
const (
	errBadTransferArgs = "invalid transfer args"
	errBadClaimArgs    = "invalid claim args"
	errBadGetArgs      = "invalid get args"
	errBadGasArgs      = "invalid gas args"

	errBadMessage      = "invalid transfer msg"
	errInvalidSide     = "side must be A or B"
	errPlayersEqual    = "players must differ"
	errPlayersMismatch = "match players mismatch"
	errAlreadyFinished = "match already finished"
	errDepositASet     = "deposit A already set"
	errDepositBSet     = "deposit B already set"

	errMatchNotFound   = "match not found"
	errDepositAMissing = "deposit A missing"
	errDepositBMissing = "deposit B missing"
	errNotAPlayer      = "winner must be a player"
	errOnlyWinner      = "only winner can claim"
	errTokenMismatch   = "token does not belong to loser deposit"

	errAlreadyInitialized = "already initialized"
	errOnlyOwner          = "only owner can configure"
	errGasOutOfRange      = "gas budget out of range"
)
