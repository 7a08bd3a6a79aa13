package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	SubmitProblem(context.Context, *MsgSubmitProblem) (*MsgSubmitProblemResponse, error)
	ResolveProblem(context.Context, *MsgResolveProblem) (*MsgResolveProblemResponse, error)
}

// MsgSubmitProblemResponse defines the response for SubmitProblem
type MsgSubmitProblemResponse struct{}

// MsgResolveProblemResponse defines the response for ResolveProblem
type MsgResolveProblemResponse struct {
	ResolverPayout math.Int `json:"resolver_payout"`
	TreasuryPayout math.Int `json:"treasury_payout"`
}

// Placeholder for protobuf service descriptor
var _Msg_serviceDesc = struct{}{}
