package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/factor-chain/factor/x/factoring/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (k msgServer) SubmitProblem(goCtx context.Context, msg *types.MsgSubmitProblem) (*types.MsgSubmitProblemResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	submitter, err := sdk.AccAddressFromBech32(msg.Submitter)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	if err := k.Keeper.SubmitProblem(goCtx, submitter, msg.Number, msg.Reward); err != nil {
		return nil, err
	}

	return &types.MsgSubmitProblemResponse{}, nil
}

func (k msgServer) ResolveProblem(goCtx context.Context, msg *types.MsgResolveProblem) (*types.MsgResolveProblemResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	resolver, err := sdk.AccAddressFromBech32(msg.Resolver)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	resolverPayout, treasuryPayout, err := k.Keeper.ResolveProblem(goCtx, resolver, msg.Number, msg.FactorA, msg.FactorB)
	if err != nil {
		return nil, err
	}

	return &types.MsgResolveProblemResponse{
		ResolverPayout: resolverPayout,
		TreasuryPayout: treasuryPayout,
	}, nil
}
