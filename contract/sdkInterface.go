package main

import (
	"nft-wager-escrow/sdk"
)

// --- SDK interface abstraction ---

type SDKInterfaceEnv struct {
	Sender struct {
		Address sdk.Address
	}
	TxId string
}

type SDKInterface interface {
	StateSetObject(key, value string)
	StateGetObject(key string) *string
	Abort(msg string)
	Log(msg string)
	GetEnv() SDKInterfaceEnv
	ContractCall(contract sdk.Address, method string, payload string, deposit sdk.Balance, gas sdk.Gas) sdk.Promise
}

// RealSDK is the production implementation that forwards to the host sdk.
type RealSDK struct{}

func (RealSDK) StateSetObject(key, value string)  { sdk.StateSetObject(key, value) }
func (RealSDK) StateGetObject(key string) *string { return sdk.StateGetObject(key) }
func (RealSDK) Abort(msg string)                  { sdk.Abort(msg) }
func (RealSDK) Log(msg string)                    { sdk.Log(msg) }
func (RealSDK) GetEnv() SDKInterfaceEnv {
	e := sdk.GetEnv()
	return SDKInterfaceEnv{
		Sender: struct{ Address sdk.Address }{Address: e.Sender.Address},
		TxId:   e.TxId,
	}
}
func (RealSDK) ContractCall(contract sdk.Address, method string, payload string, deposit sdk.Balance, gas sdk.Gas) sdk.Promise {
	return sdk.ContractCall(contract, method, payload, deposit, gas)
}
