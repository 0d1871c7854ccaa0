//go:build wasip1

package sdk

import "unsafe"

// Host bindings for the real chain runtime. Every function that hands data
// back does so through the host's result register: the import returns the
// result length, read_result copies it into linear memory.

//go:wasmimport host state_set_object
func hostStateSet(keyPtr unsafe.Pointer, keyLen uint32, valPtr unsafe.Pointer, valLen uint32)

//go:wasmimport host state_get_object
func hostStateGet(keyPtr unsafe.Pointer, keyLen uint32) uint64

//go:wasmimport host read_result
func hostReadResult(dstPtr unsafe.Pointer)

//go:wasmimport host abort
func hostAbort(msgPtr unsafe.Pointer, msgLen uint32)

//go:wasmimport host log
func hostLog(msgPtr unsafe.Pointer, msgLen uint32)

//go:wasmimport host env_value
func hostEnvValue(keyPtr unsafe.Pointer, keyLen uint32) uint64

//go:wasmimport host contract_call
func hostContractCall(
	contractPtr unsafe.Pointer, contractLen uint32,
	methodPtr unsafe.Pointer, methodLen uint32,
	payloadPtr unsafe.Pointer, payloadLen uint32,
	deposit uint64, gas uint64,
) uint64

const resultMissing = ^uint64(0)

func strPtr(s string) (unsafe.Pointer, uint32) {
	if len(s) == 0 {
		return nil, 0
	}
	return unsafe.Pointer(unsafe.StringData(s)), uint32(len(s))
}

func readResult(n uint64) string {
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	hostReadResult(unsafe.Pointer(&buf[0]))
	return string(buf)
}

func StateSetObject(key, value string) {
	kp, kl := strPtr(key)
	vp, vl := strPtr(value)
	hostStateSet(kp, kl, vp, vl)
}

func StateGetObject(key string) *string {
	kp, kl := strPtr(key)
	n := hostStateGet(kp, kl)
	if n == resultMissing {
		return nil
	}
	v := readResult(n)
	return &v
}

func Abort(msg string) {
	mp, ml := strPtr(msg)
	hostAbort(mp, ml)
	panic(msg) // not reached; the host traps first
}

func Log(msg string) {
	mp, ml := strPtr(msg)
	hostLog(mp, ml)
}

func envValue(key string) string {
	kp, kl := strPtr(key)
	n := hostEnvValue(kp, kl)
	if n == resultMissing {
		return ""
	}
	return readResult(n)
}

func GetEnv() Env {
	var e Env
	e.Sender.Address = Address(envValue("msg.sender"))
	e.TxId = envValue("tx.id")
	return e
}

// ContractCall schedules an asynchronous call on another contract with the
// given attached deposit and gas budget. The returned promise resolves after
// this invocation has committed.
func ContractCall(contract Address, method string, payload string, deposit Balance, gas Gas) Promise {
	cp, cl := strPtr(string(contract))
	mp, ml := strPtr(method)
	pp, pl := strPtr(payload)
	return Promise(hostContractCall(cp, cl, mp, ml, pp, pl, uint64(deposit), uint64(gas)))
}
