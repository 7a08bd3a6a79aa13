package types_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/factor-chain/factor/x/factoring/types"
)

func TestNumberToBytes(t *testing.T) {
	bz := types.NumberToBytes(math.NewInt(0))
	require.Len(t, bz, types.NumberBytes)
	require.Equal(t, make([]byte, 16), bz)

	bz = types.NumberToBytes(math.NewInt(1))
	require.Len(t, bz, types.NumberBytes)
	require.Equal(t, byte(1), bz[15])

	maxUint128, ok := math.NewIntFromString("340282366920938463463374607431768211455")
	require.True(t, ok)
	bz = types.NumberToBytes(maxUint128)
	require.Equal(t, bytes.Repeat([]byte{0xff}, 16), bz)
}

func TestProblemKeyOrdering(t *testing.T) {
	// big-endian keys preserve numeric order under lexicographic iteration
	keySmall := types.ProblemKey(math.NewInt(255))
	keyLarge := types.ProblemKey(math.NewInt(256))
	require.Equal(t, -1, bytes.Compare(keySmall, keyLarge))

	require.Len(t, keySmall, 1+types.NumberBytes)
	require.Equal(t, types.ProblemKeyPrefix[0], keySmall[0])
}

func TestProblemKeyInjective(t *testing.T) {
	keys := map[string]struct{}{}
	for _, n := range []int64{0, 1, 2, 15, 255, 256, 65535, 65536} {
		keys[string(types.ProblemKey(math.NewInt(n)))] = struct{}{}
	}
	require.Len(t, keys, 8)
}
