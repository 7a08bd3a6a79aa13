package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// Primality here is consensus-critical: every validator replaying a resolution
// must compute the identical answer, so the test is a fixed deterministic
// procedure rather than a randomized one. Trial division by the small-prime
// table below, then Miller-Rabin with a fixed witness set. The witness set
// {2..37} is exact for all inputs below 3.317e24; above that it is the agreed
// published procedure for the full 128-bit domain.

// smallPrimes are the primes below 100, used for trial division.
var smallPrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
	59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// millerRabinWitnesses is the fixed witness set for the strong-pseudoprime test.
var millerRabinWitnesses = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime reports whether n is prime. Pure and deterministic for every
// unsigned 128-bit input; returns false for anything below 2.
func IsPrime(n math.Int) bool {
	if n.IsNil() || n.LT(math.NewInt(2)) {
		return false
	}

	v := n.BigInt()
	for _, p := range smallPrimes {
		bp := big.NewInt(p)
		switch v.Cmp(bp) {
		case 0:
			return true
		case -1:
			return false
		}
		if new(big.Int).Mod(v, bp).Sign() == 0 {
			return false
		}
	}

	return millerRabin(v)
}

// millerRabin runs the strong-pseudoprime test against the fixed witness set.
// v must be odd, greater than every witness, and coprime to the small primes.
func millerRabin(v *big.Int) bool {
	one := big.NewInt(1)
	vMinus1 := new(big.Int).Sub(v, one)

	// v-1 = d * 2^s with d odd
	d := new(big.Int).Set(vMinus1)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	for _, w := range millerRabinWitnesses {
		x := new(big.Int).Exp(big.NewInt(w), d, v)
		if x.Cmp(one) == 0 || x.Cmp(vMinus1) == 0 {
			continue
		}

		witnessed := false
		for i := 0; i < s-1; i++ {
			x.Mul(x, x).Mod(x, v)
			if x.Cmp(vMinus1) == 0 {
				witnessed = true
				break
			}
		}
		if !witnessed {
			return false
		}
	}

	return true
}
