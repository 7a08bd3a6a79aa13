package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Problem(context.Context, *QueryProblemRequest) (*QueryProblemResponse, error)
	Problems(context.Context, *QueryProblemsRequest) (*QueryProblemsResponse, error)
}

// QueryParamsRequest is the request type for the Query/Params RPC method
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params RPC method
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryProblemRequest is the request type for the Query/Problem RPC method.
// Number is the decimal string form of the problem's 128-bit number.
type QueryProblemRequest struct {
	Number string `json:"number"`
}

// QueryProblemResponse is the response type for the Query/Problem RPC method
type QueryProblemResponse struct {
	Problem Problem `json:"problem"`
}

// QueryProblemsRequest is the request type for the Query/Problems RPC method
type QueryProblemsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QueryProblemsResponse is the response type for the Query/Problems RPC method
type QueryProblemsResponse struct {
	Problems   []Problem           `json:"problems"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}
