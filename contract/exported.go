package main

// Exported Functions

//go:wasmexport new
func New(payload *string) *string {
	return initImpl(RealSDK{})
}

//go:wasmexport nft_on_transfer
func NftOnTransfer(payload *string) *string {
	return onNftReceivedImpl(payload, RealSDK{})
}

//go:wasmexport claim
func Claim(payload *string) *string {
	return claimImpl(payload, RealSDK{})
}

//go:wasmexport get_match
func GetMatch(payload *string) *string {
	return getMatchImpl(payload, RealSDK{})
}

//go:wasmexport admin_set_gas
func AdminSetGas(payload *string) *string {
	return adminSetGasImpl(payload, RealSDK{})
}

func main() {}
