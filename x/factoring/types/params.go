package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Params defines the settlement parameters of the factoring module.
type Params struct {
	// ResolverSharePercent is the resolver's cut of the reward, floor division;
	// the treasury absorbs the remainder so the split always conserves value.
	ResolverSharePercent uint64 `json:"resolver_share_percent"`
	// ExistentialMinimum is the balance every outgoing settlement transfer
	// must leave behind on the submitter's account.
	ExistentialMinimum math.Int `json:"existential_minimum"`
}

// DefaultParams returns a default set of parameters: the classic 80/20 split
// and a 1-token floor.
func DefaultParams() Params {
	return Params{
		ResolverSharePercent: 80,
		ExistentialMinimum:   math.NewInt(1),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.ResolverSharePercent > 100 {
		return fmt.Errorf("resolver share percent must be at most 100, got %d", p.ResolverSharePercent)
	}
	if p.ExistentialMinimum.IsNil() || p.ExistentialMinimum.IsNegative() {
		return fmt.Errorf("existential minimum must be non-negative")
	}
	return nil
}
