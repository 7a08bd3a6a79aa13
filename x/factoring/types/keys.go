package types

import (
	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "factoring"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// TreasuryPoolName is the fixed identifier the treasury address is derived from
	TreasuryPoolName = ModuleName + "_treasury"

	// RewardDenom is the native denomination rewards are paid in
	RewardDenom = "ufactor"
)

// Store key prefixes
var (
	ParamsKey        = []byte{0x01} // key for module parameters
	ProblemKeyPrefix = []byte{0x02} // prefix for problem records
)

// NumberBytes is the fixed width of an encoded problem number.
// Problems are keyed by the raw big-endian 128-bit number, no hashing.
const NumberBytes = 16

// NumberToBytes encodes a 128-bit number as a fixed-width big-endian key segment.
// The caller must have validated the number with FitsUint128.
func NumberToBytes(number math.Int) []byte {
	buf := make([]byte, NumberBytes)
	number.BigInt().FillBytes(buf)
	return buf
}

// ProblemKey returns the store key for a problem record
func ProblemKey(number math.Int) []byte {
	key := make([]byte, 0, len(ProblemKeyPrefix)+NumberBytes)
	key = append(key, ProblemKeyPrefix...)
	return append(key, NumberToBytes(number)...)
}
