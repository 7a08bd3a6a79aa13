package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/factor-chain/factor/x/factoring/types"
)

func TestDefaultGenesis(t *testing.T) {
	genState := types.DefaultGenesis()
	require.NoError(t, genState.Validate())
	require.Equal(t, uint64(80), genState.Params.ResolverSharePercent)
	require.Empty(t, genState.Problems)
}

func TestGenesisValidate(t *testing.T) {
	openProblem := types.NewProblem(math.NewInt(15), math.NewInt(100), testSubmitter)

	resolvedProblem := types.NewProblem(math.NewInt(21), math.NewInt(200), testSubmitter)
	resolvedProblem.SolutionA = intPtr(3)
	resolvedProblem.SolutionB = intPtr(7)
	resolvedProblem.Resolver = testResolver

	tests := []struct {
		name     string
		genState types.GenesisState
		wantErr  bool
	}{
		{
			"valid mixed state",
			types.GenesisState{
				Params:   types.DefaultParams(),
				Problems: []types.Problem{openProblem, resolvedProblem},
			},
			false,
		},
		{
			"bad params",
			types.GenesisState{
				Params: types.Params{ResolverSharePercent: 101, ExistentialMinimum: math.NewInt(1)},
			},
			true,
		},
		{
			"duplicate number",
			types.GenesisState{
				Params:   types.DefaultParams(),
				Problems: []types.Problem{openProblem, openProblem},
			},
			true,
		},
		{
			"invalid problem",
			types.GenesisState{
				Params:   types.DefaultParams(),
				Problems: []types.Problem{{Number: math.NewInt(15), Reward: math.NewInt(-1), Submitter: testSubmitter}},
			},
			true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	p := types.Params{ResolverSharePercent: 100, ExistentialMinimum: math.NewInt(0)}
	require.NoError(t, p.Validate())

	p = types.Params{ResolverSharePercent: 101, ExistentialMinimum: math.NewInt(0)}
	require.Error(t, p.Validate())

	p = types.Params{ResolverSharePercent: 80, ExistentialMinimum: math.NewInt(-1)}
	require.Error(t, p.Validate())

	p = types.Params{ResolverSharePercent: 80}
	require.Error(t, p.Validate())
}
