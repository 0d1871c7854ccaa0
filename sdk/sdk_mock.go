//go:build !wasip1

package sdk

// Stubs so the contract links outside the wasm runtime. Tests never hit
// these; they go through the contract's SDKInterface fake instead.

func StateSetObject(key, value string)  {}
func StateGetObject(key string) *string { return nil }
func Abort(msg string)                  { panic(msg) }
func Log(msg string)                    {}
func GetEnv() Env                       { return Env{} }
func ContractCall(contract Address, method string, payload string, deposit Balance, gas Gas) Promise {
	return 0
}
