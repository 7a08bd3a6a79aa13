package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/factor-chain/factor/x/factoring/types"
)

// RegisterInvariants registers all factoring invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "escrow-backing", EscrowBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "resolved-solutions", ResolvedSolutionsInvariant(k))
}

// AllInvariants runs all invariants of the factoring module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := EscrowBackingInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return ResolvedSolutionsInvariant(k)(ctx)
	}
}

// EscrowBackingInvariant checks that the module escrow account holds at least
// the sum of all open problem rewards.
func EscrowBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		totalOpen := math.ZeroInt()
		k.IterateProblems(ctx, func(problem types.Problem) bool {
			if !problem.IsResolved() {
				totalOpen = totalOpen.Add(problem.Reward)
			}
			return false
		})

		balance := k.bankKeeper.GetBalance(ctx, k.GetModuleAddress(), types.RewardDenom)
		broken := balance.Amount.LT(totalOpen)
		return sdk.FormatInvariant(
			types.ModuleName, "escrow-backing",
			fmt.Sprintf("escrow balance %s%s, open rewards %s%s\n",
				balance.Amount, types.RewardDenom, totalOpen, types.RewardDenom),
		), broken
	}
}

// ResolvedSolutionsInvariant checks that every resolved problem carries a
// valid factorization: both solutions present, prime, and multiplying to the
// problem's number.
func ResolvedSolutionsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		k.IterateProblems(ctx, func(problem types.Problem) bool {
			if !problem.IsResolved() {
				return false
			}
			if err := problem.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("problem %s: %s\n", problem.Number, err)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "resolved-solutions",
			fmt.Sprintf("found %d resolved problems with invalid solutions\n%s", count, msg),
		), broken
	}
}
