package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for Query service.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Problem(ctx context.Context, in *QueryProblemRequest, opts ...grpc.CallOption) (*QueryProblemResponse, error)
	Problems(ctx context.Context, in *QueryProblemsRequest, opts ...grpc.CallOption) (*QueryProblemsResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	err := c.cc.Invoke(ctx, "/factor.factoring.v1.Query/Params", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Problem(ctx context.Context, in *QueryProblemRequest, opts ...grpc.CallOption) (*QueryProblemResponse, error) {
	out := new(QueryProblemResponse)
	err := c.cc.Invoke(ctx, "/factor.factoring.v1.Query/Problem", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Problems(ctx context.Context, in *QueryProblemsRequest, opts ...grpc.CallOption) (*QueryProblemsResponse, error) {
	out := new(QueryProblemsResponse)
	err := c.cc.Invoke(ctx, "/factor.factoring.v1.Query/Problems", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
