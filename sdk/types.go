package sdk

// Address is an account identity attested by the host.
type Address string

func (a Address) String() string { return string(a) }

// Balance counts indivisible units of the native token.
type Balance uint64

// Gas is a gas budget in the host's units.
type Gas uint64

// Promise is an opaque handle to a scheduled cross-contract call.
type Promise uint64

// Env carries the call context the host attests for the current invocation.
type Env struct {
	Sender struct {
		Address Address
	}
	TxId string
}
