package keeper

import (
	"context"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/factor-chain/factor/x/factoring/types"
)

const (
	defaultQueryLimit = 100
	maxQueryLimit     = 1000
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
// for the provided Keeper.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

func (q queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	return &types.QueryParamsResponse{Params: q.GetParams(goCtx)}, nil
}

func (q queryServer) Problem(goCtx context.Context, req *types.QueryProblemRequest) (*types.QueryProblemResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	number, ok := math.NewIntFromString(req.Number)
	if !ok || !types.FitsUint128(number) {
		return nil, status.Errorf(codes.InvalidArgument, "invalid number %q", req.Number)
	}

	problem, found := q.GetProblem(goCtx, number)
	if !found {
		return nil, status.Errorf(codes.NotFound, "no problem exists for number %s", number)
	}

	return &types.QueryProblemResponse{Problem: problem}, nil
}

func (q queryServer) Problems(goCtx context.Context, req *types.QueryProblemsRequest) (*types.QueryProblemsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	pageReq := req.Pagination
	if pageReq == nil {
		pageReq = &query.PageRequest{Limit: defaultQueryLimit}
	}
	if pageReq.Limit == 0 {
		pageReq.Limit = defaultQueryLimit
	}
	if pageReq.Limit > maxQueryLimit {
		pageReq.Limit = maxQueryLimit
	}

	problems, pageRes, err := q.GetProblemsPaginated(goCtx, pageReq)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryProblemsResponse{Problems: problems, Pagination: pageRes}, nil
}
