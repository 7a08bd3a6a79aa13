package types

import (
	"math/big"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Problem is a composite number posted with a reward, awaiting a prime-factor
// solution. It is the module's sole persistent entity, stored under its number.
type Problem struct {
	// Number is the composite to factor; also the unique, permanent key.
	Number math.Int `json:"number"`
	// Reward is escrowed from the submitter until the problem is resolved.
	Reward math.Int `json:"reward"`
	// SolutionA and SolutionB are set exactly once, on resolution.
	SolutionA *math.Int `json:"solution_a,omitempty"`
	SolutionB *math.Int `json:"solution_b,omitempty"`
	// Submitter posted the problem and funds its reward.
	Submitter string `json:"submitter"`
	// Resolver is empty while the problem is open.
	Resolver string `json:"resolver,omitempty"`
}

// NewProblem returns an open, unresolved problem record.
func NewProblem(number, reward math.Int, submitter string) Problem {
	return Problem{
		Number:    number,
		Reward:    reward,
		Submitter: submitter,
	}
}

// IsResolved reports whether the problem has been claimed.
func (p Problem) IsResolved() bool {
	return p.Resolver != ""
}

// FitsUint128 reports whether n is a valid unsigned 128-bit integer.
func FitsUint128(n math.Int) bool {
	return !n.IsNil() && !n.IsNegative() && n.BigInt().BitLen() <= 128
}

// CheckedMulUint128 multiplies two 128-bit numbers, failing with ok=false when
// the product leaves the 128-bit domain.
func CheckedMulUint128(a, b math.Int) (math.Int, bool) {
	product := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if product.BitLen() > 128 {
		return math.Int{}, false
	}
	return math.NewIntFromBigInt(product), true
}

// Validate checks structural well-formedness of a problem record. Resolved
// records must carry a full solution whose product matches the number; open
// records must carry none of it.
func (p Problem) Validate() error {
	if !FitsUint128(p.Number) {
		return sdkerrors.Wrapf(ErrInvalidNumber, "number %s is not an unsigned 128-bit integer", p.Number)
	}

	if p.Reward.IsNil() || p.Reward.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidReward, "reward must be non-negative")
	}

	if _, err := sdk.AccAddressFromBech32(p.Submitter); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid submitter address: %s", err)
	}

	if !p.IsResolved() {
		if p.SolutionA != nil || p.SolutionB != nil {
			return sdkerrors.Wrapf(ErrInvalidSolution, "open problem %s carries a solution", p.Number)
		}
		return nil
	}

	if _, err := sdk.AccAddressFromBech32(p.Resolver); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid resolver address: %s", err)
	}

	if p.SolutionA == nil || p.SolutionB == nil {
		return sdkerrors.Wrapf(ErrInvalidSolution, "resolved problem %s is missing its solution", p.Number)
	}

	if !FitsUint128(*p.SolutionA) || !FitsUint128(*p.SolutionB) {
		return sdkerrors.Wrapf(ErrInvalidSolution, "solution factors of %s are not unsigned 128-bit integers", p.Number)
	}

	product, ok := CheckedMulUint128(*p.SolutionA, *p.SolutionB)
	if !ok || !product.Equal(p.Number) {
		return sdkerrors.Wrapf(ErrInvalidSolution, "stored solution does not factor %s", p.Number)
	}

	if !IsPrime(*p.SolutionA) || !IsPrime(*p.SolutionB) {
		return sdkerrors.Wrapf(ErrInvalidSolution, "stored solution of %s has a composite factor", p.Number)
	}

	return nil
}
