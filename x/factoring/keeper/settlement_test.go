package keeper_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/factor-chain/factor/testutil/keeper"
	"github.com/factor-chain/factor/x/factoring/types"
)

var (
	submitterAddr = sdk.AccAddress([]byte("submitter___________"))
	resolverAddr  = sdk.AccAddress([]byte("resolver____________"))
)

func TestSubmitProblemHappyPath(t *testing.T) {
	k, bk, ctx := testkeeper.FactoringKeeper(t)
	testkeeper.FundFactoringAccount(t, bk, ctx, submitterAddr, math.NewInt(1000))

	err := k.SubmitProblem(ctx, submitterAddr, math.NewInt(15), math.NewInt(100))
	require.NoError(t, err)

	require.Equal(t, math.NewInt(900), bk.GetBalance(ctx, submitterAddr, types.RewardDenom).Amount)
	require.Equal(t, math.NewInt(100), bk.GetBalance(ctx, k.GetModuleAddress(), types.RewardDenom).Amount)

	problem, found := k.GetProblem(ctx, math.NewInt(15))
	require.True(t, found)
	require.False(t, problem.IsResolved())
	require.Equal(t, submitterAddr.String(), problem.Submitter)
	require.Equal(t, math.NewInt(100), problem.Reward)
	require.Nil(t, problem.SolutionA)
	require.Nil(t, problem.SolutionB)

	events := ctx.EventManager().Events()
	var seen bool
	for _, ev := range events {
		if ev.Type == types.EventTypeProblemSubmitted {
			seen = true
		}
	}
	require.True(t, seen)
}

func TestSubmitProblemDuplicate(t *testing.T) {
	k, bk, ctx := testkeeper.FactoringKeeper(t)
	testkeeper.FundFactoringAccount(t, bk, ctx, submitterAddr, math.NewInt(1000))

	require.NoError(t, k.SubmitProblem(ctx, submitterAddr, math.NewInt(15), math.NewInt(100)))

	err := k.SubmitProblem(ctx, submitterAddr, math.NewInt(15), math.NewInt(50))
	require.ErrorIs(t, err, types.ErrAlreadySubmitted)

	// escrow untouched by the rejected attempt
	require.Equal(t, math.NewInt(900), bk.GetBalance(ctx, submitterAddr, types.RewardDenom).Amount)
}

func TestSubmitProblemInsufficientBalance(t *testing.T) {
	k, bk, ctx := testkeeper.FactoringKeeper(t)
	testkeeper.FundFactoringAccount(t, bk, ctx, submitterAddr, math.NewInt(50))

	err := k.SubmitProblem(ctx, submitterAddr, math.NewInt(15), math.NewInt(100))
	require.Error(t, err)

	// no record without a funded escrow
	require.False(t, k.HasProblem(ctx, math.NewInt(15)))
	require.Equal(t, math.NewInt(50), bk.GetBalance(ctx, submitterAddr, types.RewardDenom).Amount)
}

func TestSubmitProblemZeroReward(t *testing.T) {
	k, _, ctx := testkeeper.FactoringKeeper(t)

	// a zero bounty needs no funds at all
	require.NoError(t, k.SubmitProblem(ctx, submitterAddr, math.NewInt(15), math.NewInt(0)))
	require.True(t, k.HasProblem(ctx, math.NewInt(15)))
}

func TestResolveProblemHappyPath(t *testing.T) {
	k, bk, ctx := testkeeper.FactoringKeeper(t)
	testkeeper.FundFactoringAccount(t, bk, ctx, submitterAddr, math.NewInt(1000))

	require.NoError(t, k.SubmitProblem(ctx, submitterAddr, math.NewInt(15), math.NewInt(100)))

	resolverPayout, treasuryPayout, err := k.ResolveProblem(ctx, resolverAddr, math.NewInt(15), math.NewInt(3), math.NewInt(5))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(80), resolverPayout)
	require.Equal(t, math.NewInt(20), treasuryPayout)

	require.Equal(t, math.NewInt(900), bk.GetBalance(ctx, submitterAddr, types.RewardDenom).Amount)
	require.Equal(t, math.NewInt(80), bk.GetBalance(ctx, resolverAddr, types.RewardDenom).Amount)
	require.Equal(t, math.NewInt(20), bk.GetBalance(ctx, k.GetTreasuryAddress(), types.RewardDenom).Amount)
	require.True(t, bk.GetBalance(ctx, k.GetModuleAddress(), types.RewardDenom).Amount.IsZero())

	problem, found := k.GetProblem(ctx, math.NewInt(15))
	require.True(t, found)
	require.True(t, problem.IsResolved())
	require.Equal(t, resolverAddr.String(), problem.Resolver)
	require.Equal(t, math.NewInt(3), *problem.SolutionA)
	require.Equal(t, math.NewInt(5), *problem.SolutionB)

	events := ctx.EventManager().Events()
	var seen bool
	for _, ev := range events {
		if ev.Type == types.EventTypeProblemResolved {
			seen = true
		}
	}
	require.True(t, seen)
}

func TestResolveProblemSwappedFactors(t *testing.T) {
	k, bk, ctx := testkeeper.FactoringKeeper(t)
	testkeeper.FundFactoringAccount(t, bk, ctx, submitterAddr, math.NewInt(1000))

	require.NoError(t, k.SubmitProblem(ctx, submitterAddr, math.NewInt(15), math.NewInt(100)))

	// order of factors does not matter
	_, _, err := k.ResolveProblem(ctx, resolverAddr, math.NewInt(15), math.NewInt(5), math.NewInt(3))
	require.NoError(t, err)
}

func TestResolveProblemNumberOutOfDomain(t *testing.T) {
	k, _, ctx := testkeeper.FactoringKeeper(t)

	// numbers outside the unsigned 128-bit domain are rejected before any
	// store access, never encoded into a key
	overflow := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 128))
	_, _, err := k.ResolveProblem(ctx, resolverAddr, overflow, math.NewInt(3), math.NewInt(5))
	require.ErrorIs(t, err, types.ErrInvalidNumber)

	_, _, err = k.ResolveProblem(ctx, resolverAddr, math.NewInt(-15), math.NewInt(3), math.NewInt(5))
	require.ErrorIs(t, err, types.ErrInvalidNumber)
}

func TestResolveProblemInexistent(t *testing.T) {
	k, _, ctx := testkeeper.FactoringKeeper(t)

	_, _, err := k.ResolveProblem(ctx, resolverAddr, math.NewInt(9999), math.NewInt(3), math.NewInt(5))
	require.ErrorIs(t, err, types.ErrInexistentNumber)
}

func TestResolveProblemWrongProduct(t *testing.T) {
	k, bk, ctx := testkeeper.FactoringKeeper(t)
	testkeeper.FundFactoringAccount(t, bk, ctx, submitterAddr, math.NewInt(1000))

	require.NoError(t, k.SubmitProblem(ctx, submitterAddr, math.NewInt(15), math.NewInt(100)))

	_, _, err := k.ResolveProblem(ctx, resolverAddr, math.NewInt(15), math.NewInt(3), math.NewInt(7))
	require.ErrorIs(t, err, types.ErrWrongAnswer)

	problem, _ := k.GetProblem(ctx, math.NewInt(15))
	require.False(t, problem.IsResolved())
}

func TestResolveProblemCompositeFactor(t *testing.T) {
	k, bk, ctx := testkeeper.FactoringKeeper(t)
	testkeeper.FundFactoringAccount(t, bk, ctx, submitterAddr, math.NewInt(1000))

	require.NoError(t, k.SubmitProblem(ctx, submitterAddr, math.NewInt(16), math.NewInt(100)))

	// 4 * 4 = 16 but 4 is not prime
	_, _, err := k.ResolveProblem(ctx, resolverAddr, math.NewInt(16), math.NewInt(4), math.NewInt(4))
	require.ErrorIs(t, err, types.ErrWrongAnswer)

	// escrow stays locked
	require.Equal(t, math.NewInt(100), bk.GetBalance(ctx, k.GetModuleAddress(), types.RewardDenom).Amount)
}

func TestResolveProblemFactorOverflow(t *testing.T) {
	k, bk, ctx := testkeeper.FactoringKeeper(t)
	testkeeper.FundFactoringAccount(t, bk, ctx, submitterAddr, math.NewInt(1000))

	require.NoError(t, k.SubmitProblem(ctx, submitterAddr, math.NewInt(15), math.NewInt(100)))

	huge := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 70))
	_, _, err := k.ResolveProblem(ctx, resolverAddr, math.NewInt(15), huge, huge)
	require.ErrorIs(t, err, types.ErrWrongAnswer)
}

func TestResolveProblemDoubleResolve(t *testing.T) {
	k, bk, ctx := testkeeper.FactoringKeeper(t)
	testkeeper.FundFactoringAccount(t, bk, ctx, submitterAddr, math.NewInt(1000))

	require.NoError(t, k.SubmitProblem(ctx, submitterAddr, math.NewInt(15), math.NewInt(100)))
	_, _, err := k.ResolveProblem(ctx, resolverAddr, math.NewInt(15), math.NewInt(3), math.NewInt(5))
	require.NoError(t, err)

	other := sdk.AccAddress([]byte("other_resolver______"))
	_, _, err = k.ResolveProblem(ctx, other, math.NewInt(15), math.NewInt(3), math.NewInt(5))
	require.ErrorIs(t, err, types.ErrAlreadyResolved)

	// first resolution stands
	problem, _ := k.GetProblem(ctx, math.NewInt(15))
	require.Equal(t, resolverAddr.String(), problem.Resolver)
	require.True(t, bk.GetBalance(ctx, other, types.RewardDenom).Amount.IsZero())
}

func TestResolveProblemSubmitAfterResolutionStillRejected(t *testing.T) {
	k, bk, ctx := testkeeper.FactoringKeeper(t)
	testkeeper.FundFactoringAccount(t, bk, ctx, submitterAddr, math.NewInt(1000))

	require.NoError(t, k.SubmitProblem(ctx, submitterAddr, math.NewInt(15), math.NewInt(100)))
	_, _, err := k.ResolveProblem(ctx, resolverAddr, math.NewInt(15), math.NewInt(3), math.NewInt(5))
	require.NoError(t, err)

	// the record is permanent, resolved numbers can never be reposted
	err = k.SubmitProblem(ctx, submitterAddr, math.NewInt(15), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrAlreadySubmitted)
}

func TestResolveProblemConservation(t *testing.T) {
	semiprimes := []struct {
		n, a, b int64
	}{
		{15, 3, 5}, {21, 3, 7}, {33, 3, 11}, {35, 5, 7},
		{55, 5, 11}, {77, 7, 11}, {91, 7, 13},
	}
	rewards := []int64{0, 1, 3, 7, 99, 100, 101}

	k, bk, ctx := testkeeper.FactoringKeeper(t)
	testkeeper.FundFactoringAccount(t, bk, ctx, submitterAddr, math.NewInt(10000))

	for i, reward := range rewards {
		sp := semiprimes[i]
		require.NoError(t, k.SubmitProblem(ctx, submitterAddr, math.NewInt(sp.n), math.NewInt(reward)))

		resolverPayout, treasuryPayout, err := k.ResolveProblem(ctx, resolverAddr, math.NewInt(sp.n), math.NewInt(sp.a), math.NewInt(sp.b))
		require.NoError(t, err, "reward=%d", reward)

		// value conserved exactly, resolver gets the floor of the share
		require.Equal(t, math.NewInt(reward), resolverPayout.Add(treasuryPayout), "reward=%d", reward)
		require.Equal(t, math.NewInt(reward*80/100), resolverPayout, "reward=%d", reward)
	}

	// nothing stranded in escrow
	require.True(t, bk.GetBalance(ctx, k.GetModuleAddress(), types.RewardDenom).Amount.IsZero())
}

func TestResolveProblemRetentionFloorRollsBack(t *testing.T) {
	k, bk, ctx := testkeeper.FactoringKeeper(t)

	params := types.DefaultParams()
	params.ExistentialMinimum = math.NewInt(50)
	require.NoError(t, k.SetParams(ctx, params))

	testkeeper.FundFactoringAccount(t, bk, ctx, submitterAddr, math.NewInt(100))
	require.NoError(t, k.SubmitProblem(ctx, submitterAddr, math.NewInt(15), math.NewInt(100)))
	require.True(t, bk.GetBalance(ctx, submitterAddr, types.RewardDenom).Amount.IsZero())

	// paying out 80 would leave the submitter at 20, below the 50 floor
	_, _, err := k.ResolveProblem(ctx, resolverAddr, math.NewInt(15), math.NewInt(3), math.NewInt(5))
	require.ErrorIs(t, err, types.ErrBelowExistentialMinimum)

	// full rollback: problem open, escrow intact, nobody paid
	problem, found := k.GetProblem(ctx, math.NewInt(15))
	require.True(t, found)
	require.False(t, problem.IsResolved())
	require.True(t, bk.GetBalance(ctx, submitterAddr, types.RewardDenom).Amount.IsZero())
	require.Equal(t, math.NewInt(100), bk.GetBalance(ctx, k.GetModuleAddress(), types.RewardDenom).Amount)
	require.True(t, bk.GetBalance(ctx, resolverAddr, types.RewardDenom).Amount.IsZero())
	require.True(t, bk.GetBalance(ctx, k.GetTreasuryAddress(), types.RewardDenom).Amount.IsZero())
}
