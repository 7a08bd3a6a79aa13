package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgSubmitProblem  = "submit_problem"
	TypeMsgResolveProblem = "resolve_problem"
)

// Ensure all message types implement the sdk.Msg interface
var (
	_ sdk.Msg = &MsgSubmitProblem{}
	_ sdk.Msg = &MsgResolveProblem{}
)

// MsgSubmitProblem posts a composite number with a reward to be escrowed
// from the submitter until someone factors it.
type MsgSubmitProblem struct {
	Submitter string   `json:"submitter"`
	Number    math.Int `json:"number"`
	Reward    math.Int `json:"reward"`
}

// NewMsgSubmitProblem creates a new MsgSubmitProblem instance
func NewMsgSubmitProblem(submitter string, number, reward math.Int) *MsgSubmitProblem {
	return &MsgSubmitProblem{
		Submitter: submitter,
		Number:    number,
		Reward:    reward,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgSubmitProblem) Reset() { *msg = MsgSubmitProblem{} }

// String implements the proto.Message interface
func (msg *MsgSubmitProblem) String() string {
	return fmt.Sprintf("MsgSubmitProblem{Submitter: %s, Number: %s, Reward: %s}",
		msg.Submitter, msg.Number, msg.Reward)
}

// ProtoMessage implements the proto.Message interface
func (msg *MsgSubmitProblem) ProtoMessage() {}

// XXX_MessageName returns the message name used for type URL registration
func (*MsgSubmitProblem) XXX_MessageName() string {
	return "factor.factoring.v1.MsgSubmitProblem"
}

// Route implements the sdk.Msg interface
func (msg MsgSubmitProblem) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSubmitProblem) Type() string { return TypeMsgSubmitProblem }

// GetSigners implements the sdk.Msg interface
func (msg MsgSubmitProblem) GetSigners() []sdk.AccAddress {
	submitter, err := sdk.AccAddressFromBech32(msg.Submitter)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{submitter}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSubmitProblem) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSubmitProblem) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Submitter); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid submitter address: %s", err)
	}

	if !FitsUint128(msg.Number) {
		return sdkerrors.Wrap(ErrInvalidNumber, "number must be an unsigned 128-bit integer")
	}

	if msg.Reward.IsNil() || msg.Reward.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidReward, "reward must be non-negative")
	}

	return nil
}

// MsgResolveProblem claims an open problem's reward by supplying its two
// prime factors.
type MsgResolveProblem struct {
	Resolver string   `json:"resolver"`
	Number   math.Int `json:"number"`
	FactorA  math.Int `json:"factor_a"`
	FactorB  math.Int `json:"factor_b"`
}

// NewMsgResolveProblem creates a new MsgResolveProblem instance
func NewMsgResolveProblem(resolver string, number, factorA, factorB math.Int) *MsgResolveProblem {
	return &MsgResolveProblem{
		Resolver: resolver,
		Number:   number,
		FactorA:  factorA,
		FactorB:  factorB,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgResolveProblem) Reset() { *msg = MsgResolveProblem{} }

// String implements the proto.Message interface
func (msg *MsgResolveProblem) String() string {
	return fmt.Sprintf("MsgResolveProblem{Resolver: %s, Number: %s, FactorA: %s, FactorB: %s}",
		msg.Resolver, msg.Number, msg.FactorA, msg.FactorB)
}

// ProtoMessage implements the proto.Message interface
func (msg *MsgResolveProblem) ProtoMessage() {}

// XXX_MessageName returns the message name used for type URL registration
func (*MsgResolveProblem) XXX_MessageName() string {
	return "factor.factoring.v1.MsgResolveProblem"
}

// Route implements the sdk.Msg interface
func (msg MsgResolveProblem) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgResolveProblem) Type() string { return TypeMsgResolveProblem }

// GetSigners implements the sdk.Msg interface
func (msg MsgResolveProblem) GetSigners() []sdk.AccAddress {
	resolver, err := sdk.AccAddressFromBech32(msg.Resolver)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{resolver}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgResolveProblem) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgResolveProblem) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Resolver); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid resolver address: %s", err)
	}

	if !FitsUint128(msg.Number) {
		return sdkerrors.Wrap(ErrInvalidNumber, "number must be an unsigned 128-bit integer")
	}

	if !FitsUint128(msg.FactorA) || !FitsUint128(msg.FactorB) {
		return sdkerrors.Wrap(ErrInvalidNumber, "factors must be unsigned 128-bit integers")
	}

	return nil
}
