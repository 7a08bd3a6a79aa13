package keeper

import (
	"context"
	"encoding/json"

	"github.com/factor-chain/factor/x/factoring/types"
)

// GetParams returns the current module parameters, falling back to defaults
// when none are stored.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.DefaultParams()
	}
	return params
}

// SetParams validates and stores the module parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	bz, err := json.Marshal(params)
	if err != nil {
		return err
	}
	store := k.getStore(ctx)
	store.Set(types.ParamsKey, bz)
	return nil
}
