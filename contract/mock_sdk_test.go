package main

import (
	"fmt"
	"maps"
	"testing"

	"nft-wager-escrow/sdk"
)

// fake sdk for testing

type FakeContractCall struct {
	Contract sdk.Address
	Method   string
	Payload  string
	Deposit  sdk.Balance
	Gas      sdk.Gas
}

type FakeSDK struct {
	state    map[string]string
	env      SDKInterfaceEnv
	logs     []string
	calls    []FakeContractCall
	aborted  bool
	abortMsg string
}

func NewFakeSDK(sender string, txid string) *FakeSDK {
	f := &FakeSDK{
		state: make(map[string]string),
	}
	f.env.TxId = txid
	f.env.Sender.Address = sdk.Address(sender)
	return f
}

func (f *FakeSDK) StateSetObject(key, value string) {
	f.state[key] = value
}

func (f *FakeSDK) StateGetObject(key string) *string {
	val, ok := f.state[key]
	if !ok {
		return nil
	}
	return &val
}

func (f *FakeSDK) Abort(msg string) {
	f.aborted = true
	f.abortMsg = msg
	panic(fmt.Sprintf("Abort called: %s", msg))
}

func (f *FakeSDK) Log(msg string) {
	f.logs = append(f.logs, msg)
}

func (f *FakeSDK) GetEnv() SDKInterfaceEnv {
	return f.env
}

func (f *FakeSDK) ContractCall(contract sdk.Address, method string, payload string, deposit sdk.Balance, gas sdk.Gas) sdk.Promise {
	f.calls = append(f.calls, FakeContractCall{
		Contract: contract,
		Method:   method,
		Payload:  payload,
		Deposit:  deposit,
		Gas:      gas,
	})
	return sdk.Promise(len(f.calls))
}

// snapshotState copies the current state map so a test can assert that a
// failed call left storage untouched.
func (f *FakeSDK) snapshotState() map[string]string {
	return maps.Clone(f.state)
}

// helper for check for aborts in testing mode
func expectAbort(t *testing.T, chain *FakeSDK, expectedMsg string) {
	t.Helper()
	if r := recover(); r == nil {
		t.Errorf("expected Abort panic, but function did not panic")
	} else {
		if !chain.aborted {
			t.Errorf("expected chain.Abort to be called, but it wasn't")
		}
		if chain.abortMsg != expectedMsg {
			t.Errorf("expected abort message %q, got %q", expectedMsg, chain.abortMsg)
		}
	}
}
