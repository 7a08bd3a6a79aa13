package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/factor-chain/factor/x/factoring/types"
)

// InitGenesis initializes module state from a genesis state. Escrow backing
// for open problems is expected to be present in the bank module's genesis
// balances for the module account.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	open := 0
	for _, problem := range genState.Problems {
		if err := k.SetProblem(ctx, problem); err != nil {
			panic(err)
		}
		if !problem.IsResolved() {
			open++
		}
	}

	GetFactoringMetrics().OpenProblems.Set(float64(open))
}

// ExportGenesis returns the module's current state as a genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return &types.GenesisState{
		Params:   k.GetParams(ctx),
		Problems: k.GetAllProblems(ctx),
	}
}
