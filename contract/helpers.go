package main

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ---------- JSON Conversions ----------

func ToJSON[T any](v T, objectType string, chain SDKInterface) string {
	b, err := json.Marshal(v)
	if err != nil {
		chain.Abort("failed to marshal " + objectType)
	}
	return string(b)
}

// FromJSON decodes one JSON value. Unknown fields and trailing garbage
// abort, so a malformed intake message refunds the NFT instead of being
// half-accepted.
func FromJSON[T any](data string, abortMsg string, chain SDKInterface) T {
	var v T
	dec := json.NewDecoder(strings.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		chain.Abort(abortMsg)
	}
	if dec.More() {
		chain.Abort(abortMsg)
	}
	return v
}

// ---------- UInt/String Helpers ----------

func StringToUInt64(s string, abortMsg string, chain SDKInterface) uint64 {
	val, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		chain.Abort(abortMsg)
	}
	return val
}

func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// ---------- Require ----------

func require(cond bool, msg string, chain SDKInterface) {
	if !cond {
		chain.Abort(msg)
	}
}
