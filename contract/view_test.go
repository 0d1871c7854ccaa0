package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	tr "github.com/stretchr/testify/require"
)

func getView(chain *FakeSDK, matchID string) string {
	payload := `{"match_id":"` + matchID + `"}`
	ret := getMatchImpl(&payload, chain)
	if ret == nil {
		return ""
	}
	return *ret
}

func TestGetMatch_Absent(t *testing.T) {
	chain := NewFakeSDK("alice", "tx30")
	assert.Equal(t, "null", getView(chain, "never-seen"))
}

func TestGetMatch_Progression(t *testing.T) {
	chain := NewFakeSDK("alice", "tx31")

	doIntake(chain, "nft1", "alice", "alice", "tok1", msgA)
	assert.JSONEq(t,
		`{"match_id":"m1","player_a":"alice","player_b":"bob","has_deposit_a":true,"has_deposit_b":false,"finished":false}`,
		getView(chain, "m1"))

	doIntake(chain, "nft2", "bob", "bob", "tok2", msgB)
	assert.JSONEq(t,
		`{"match_id":"m1","player_a":"alice","player_b":"bob","has_deposit_a":true,"has_deposit_b":true,"finished":false}`,
		getView(chain, "m1"))

	doClaim(chain, "alice", claimByAlice)
	assert.JSONEq(t,
		`{"match_id":"m1","player_a":"alice","player_b":"bob","has_deposit_a":true,"has_deposit_b":true,"finished":true}`,
		getView(chain, "m1"))
}

func TestGetMatch_Pure(t *testing.T) {
	chain := NewFakeSDK("alice", "tx32")
	doIntake(chain, "nft1", "alice", "alice", "tok1", msgA)

	before := chain.snapshotState()
	first := getView(chain, "m1")
	second := getView(chain, "m1")
	assert.Equal(t, first, second)
	assert.Equal(t, before, chain.state, "get_match must not write")
}

func TestGetMatch_BadArgs(t *testing.T) {
	chain := NewFakeSDK("alice", "tx33")
	payload := `[]`
	defer expectAbort(t, chain, errBadGetArgs)
	getMatchImpl(&payload, chain)
}

func TestInit_Once(t *testing.T) {
	chain := NewFakeSDK("deployer", "tx34")
	tr.Nil(t, initImpl(chain))

	owner := chain.StateGetObject(ownerKey)
	tr.NotNil(t, owner)
	assert.Equal(t, "deployer", *owner)
}

func TestInit_Twice(t *testing.T) {
	chain := NewFakeSDK("deployer", "tx35")
	initImpl(chain)
	defer expectAbort(t, chain, errAlreadyInitialized)
	initImpl(chain)
}

func TestAdminSetGas_OwnerOnly(t *testing.T) {
	chain := NewFakeSDK("deployer", "tx36")
	initImpl(chain)

	chain.env.Sender.Address = "mallory"
	payload := `{"gas":50000000000000}`
	defer expectAbort(t, chain, errOnlyOwner)
	adminSetGasImpl(&payload, chain)
}

func TestAdminSetGas_Bounds(t *testing.T) {
	chain := NewFakeSDK("deployer", "tx37")
	initImpl(chain)

	payload := `{"gas":999}`
	defer expectAbort(t, chain, errGasOutOfRange)
	adminSetGasImpl(&payload, chain)
}

func TestAdminSetGas_DefaultWithoutOverride(t *testing.T) {
	chain := NewFakeSDK("deployer", "tx38")
	assert.Equal(t, gasNFTTransfer, nftTransferGas(chain))
}
