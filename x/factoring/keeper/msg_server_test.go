package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/factor-chain/factor/testutil/keeper"
	"github.com/factor-chain/factor/x/factoring/keeper"
	"github.com/factor-chain/factor/x/factoring/types"
)

func TestMsgServerSubmitProblem(t *testing.T) {
	k, bk, ctx := testkeeper.FactoringKeeper(t)
	testkeeper.FundFactoringAccount(t, bk, ctx, submitterAddr, math.NewInt(1000))
	srv := keeper.NewMsgServerImpl(k)

	resp, err := srv.SubmitProblem(ctx, types.NewMsgSubmitProblem(
		submitterAddr.String(), math.NewInt(15), math.NewInt(100),
	))
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.True(t, k.HasProblem(ctx, math.NewInt(15)))
}

func TestMsgServerSubmitProblemRejectsInvalid(t *testing.T) {
	k, _, ctx := testkeeper.FactoringKeeper(t)
	srv := keeper.NewMsgServerImpl(k)

	_, err := srv.SubmitProblem(ctx, types.NewMsgSubmitProblem(
		"notanaddress", math.NewInt(15), math.NewInt(100),
	))
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = srv.SubmitProblem(ctx, types.NewMsgSubmitProblem(
		submitterAddr.String(), math.NewInt(-1), math.NewInt(100),
	))
	require.ErrorIs(t, err, types.ErrInvalidNumber)
}

func TestMsgServerResolveProblem(t *testing.T) {
	k, bk, ctx := testkeeper.FactoringKeeper(t)
	testkeeper.FundFactoringAccount(t, bk, ctx, submitterAddr, math.NewInt(1000))
	srv := keeper.NewMsgServerImpl(k)

	_, err := srv.SubmitProblem(ctx, types.NewMsgSubmitProblem(
		submitterAddr.String(), math.NewInt(15), math.NewInt(100),
	))
	require.NoError(t, err)

	resp, err := srv.ResolveProblem(ctx, types.NewMsgResolveProblem(
		resolverAddr.String(), math.NewInt(15), math.NewInt(3), math.NewInt(5),
	))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(80), resp.ResolverPayout)
	require.Equal(t, math.NewInt(20), resp.TreasuryPayout)
}

func TestMsgServerResolveProblemRejectsWrongAnswer(t *testing.T) {
	k, bk, ctx := testkeeper.FactoringKeeper(t)
	testkeeper.FundFactoringAccount(t, bk, ctx, submitterAddr, math.NewInt(1000))
	srv := keeper.NewMsgServerImpl(k)

	_, err := srv.SubmitProblem(ctx, types.NewMsgSubmitProblem(
		submitterAddr.String(), math.NewInt(15), math.NewInt(100),
	))
	require.NoError(t, err)

	_, err = srv.ResolveProblem(ctx, types.NewMsgResolveProblem(
		resolverAddr.String(), math.NewInt(15), math.NewInt(3), math.NewInt(7),
	))
	require.ErrorIs(t, err, types.ErrWrongAnswer)
}
