package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/factor-chain/factor/x/factoring/types"
)

// SubmitProblem escrows the reward and records a new open factorization
// problem for number. It fails when a problem for the same number already
// exists, resolved or not.
func (k Keeper) SubmitProblem(ctx context.Context, submitter sdk.AccAddress, number, reward math.Int) error {
	if !types.FitsUint128(number) {
		return types.ErrInvalidNumber.Wrapf("number %s does not fit in 128 bits", number)
	}
	if reward.IsNegative() {
		return types.ErrInvalidReward.Wrapf("reward %s is negative", reward)
	}
	if k.HasProblem(ctx, number) {
		return types.ErrAlreadySubmitted.Wrapf("a problem for number %s already exists", number)
	}

	if err := k.reserveReward(ctx, submitter, reward); err != nil {
		return err
	}

	problem := types.NewProblem(number, reward, submitter.String())
	if err := k.SetProblem(ctx, problem); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProblemSubmitted,
			sdk.NewAttribute(types.AttributeKeyNumber, number.String()),
			sdk.NewAttribute(types.AttributeKeyReward, reward.String()),
			sdk.NewAttribute(types.AttributeKeySubmitter, submitter.String()),
		),
	)

	k.Logger(sdkCtx).Info("problem submitted",
		"number", number.String(),
		"reward", reward.String(),
		"submitter", submitter.String(),
	)
	metrics := GetFactoringMetrics()
	metrics.ProblemsSubmitted.Inc()
	metrics.OpenProblems.Inc()
	metrics.RewardsEscrowed.WithLabelValues(types.RewardDenom).Add(floatAmount(reward))

	return nil
}

// ResolveProblem verifies a claimed factorization and, when it checks out,
// settles the bounty: the escrowed reward is released to the submitter, who
// then pays the resolver share and the treasury share. All state changes are
// applied atomically; a failure at any step leaves the problem open and every
// balance untouched.
func (k Keeper) ResolveProblem(ctx context.Context, resolver sdk.AccAddress, number, factorA, factorB math.Int) (resolverPayout, treasuryPayout math.Int, err error) {
	zero := math.ZeroInt()

	if !types.FitsUint128(number) {
		return zero, zero, types.ErrInvalidNumber.Wrapf("number %s does not fit in 128 bits", number)
	}

	problem, found := k.GetProblem(ctx, number)
	if !found {
		return zero, zero, types.ErrInexistentNumber.Wrapf("no problem exists for number %s", number)
	}
	if problem.IsResolved() {
		return zero, zero, types.ErrAlreadyResolved.Wrapf("problem for number %s is already resolved", number)
	}

	product, ok := types.CheckedMulUint128(factorA, factorB)
	if !ok {
		GetFactoringMetrics().RejectedAnswers.WithLabelValues("overflow").Inc()
		return zero, zero, types.ErrWrongAnswer.Wrap("factor product overflows 128 bits")
	}
	if !product.Equal(problem.Number) {
		GetFactoringMetrics().RejectedAnswers.WithLabelValues("wrong_product").Inc()
		return zero, zero, types.ErrWrongAnswer.Wrapf("%s * %s != %s", factorA, factorB, problem.Number)
	}
	if !types.IsPrime(factorA) || !types.IsPrime(factorB) {
		GetFactoringMetrics().RejectedAnswers.WithLabelValues("composite_factor").Inc()
		return zero, zero, types.ErrWrongAnswer.Wrap("both factors must be prime")
	}

	submitter, err := sdk.AccAddressFromBech32(problem.Submitter)
	if err != nil {
		return zero, zero, types.ErrInvalidAddress.Wrapf("stored submitter %q: %s", problem.Submitter, err)
	}

	params := k.GetParams(ctx)
	resolverPayout = problem.Reward.MulRaw(int64(params.ResolverSharePercent)).QuoRaw(100)
	treasuryPayout = problem.Reward.Sub(resolverPayout)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeFn := sdkCtx.CacheContext()

	if err := k.unreserveReward(cacheCtx, submitter, problem.Reward); err != nil {
		return zero, zero, err
	}
	if err := k.transferRetaining(cacheCtx, submitter, resolver, resolverPayout); err != nil {
		return zero, zero, err
	}
	if err := k.transferRetaining(cacheCtx, submitter, k.GetTreasuryAddress(), treasuryPayout); err != nil {
		return zero, zero, err
	}

	problem.SolutionA = &factorA
	problem.SolutionB = &factorB
	problem.Resolver = resolver.String()
	if err := k.SetProblem(cacheCtx, problem); err != nil {
		return zero, zero, err
	}

	writeFn()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProblemResolved,
			sdk.NewAttribute(types.AttributeKeyNumber, number.String()),
			sdk.NewAttribute(types.AttributeKeyResolver, resolver.String()),
			sdk.NewAttribute(types.AttributeKeyFactorA, factorA.String()),
			sdk.NewAttribute(types.AttributeKeyFactorB, factorB.String()),
			sdk.NewAttribute(types.AttributeKeyResolverPayout, resolverPayout.String()),
			sdk.NewAttribute(types.AttributeKeyTreasuryPayout, treasuryPayout.String()),
		),
	)

	k.Logger(sdkCtx).Info("problem resolved",
		"number", number.String(),
		"resolver", resolver.String(),
		"resolver_payout", resolverPayout.String(),
		"treasury_payout", treasuryPayout.String(),
	)
	metrics := GetFactoringMetrics()
	metrics.ProblemsResolved.Inc()
	metrics.OpenProblems.Dec()
	metrics.RewardsSettled.WithLabelValues(types.RewardDenom, "resolver").Add(floatAmount(resolverPayout))
	metrics.RewardsSettled.WithLabelValues(types.RewardDenom, "treasury").Add(floatAmount(treasuryPayout))

	return resolverPayout, treasuryPayout, nil
}
