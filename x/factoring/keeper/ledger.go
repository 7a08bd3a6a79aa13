package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/factor-chain/factor/x/factoring/types"
)

// reserveReward moves the bounty from the submitter into the module escrow
// account, where it stays locked until the problem is resolved.
func (k Keeper) reserveReward(ctx context.Context, submitter sdk.AccAddress, reward math.Int) error {
	if !reward.IsPositive() {
		return nil
	}
	coins := sdk.NewCoins(sdk.NewCoin(types.RewardDenom, reward))
	return k.bankKeeper.SendCoinsFromAccountToModule(ctx, submitter, types.ModuleName, coins)
}

// unreserveReward releases an escrowed bounty back to the submitter.
func (k Keeper) unreserveReward(ctx context.Context, submitter sdk.AccAddress, reward math.Int) error {
	if !reward.IsPositive() {
		return nil
	}
	coins := sdk.NewCoins(sdk.NewCoin(types.RewardDenom, reward))
	return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, submitter, coins)
}

// transferRetaining sends amount from sender to recipient while requiring
// the sender keeps at least the configured existential minimum afterwards.
// This mirrors a keep-alive transfer: the payout must not empty the payer
// below the retention floor.
func (k Keeper) transferRetaining(ctx context.Context, sender, recipient sdk.AccAddress, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}

	minimum := k.GetParams(ctx).ExistentialMinimum
	balance := k.bankKeeper.GetBalance(ctx, sender, types.RewardDenom)
	if balance.Amount.Sub(amount).LT(minimum) {
		return types.ErrBelowExistentialMinimum.Wrapf(
			"transfer of %s%s would leave %s below the retained minimum %s",
			amount, types.RewardDenom, sender, minimum,
		)
	}

	coins := sdk.NewCoins(sdk.NewCoin(types.RewardDenom, amount))
	return k.bankKeeper.SendCoins(ctx, sender, recipient, coins)
}
