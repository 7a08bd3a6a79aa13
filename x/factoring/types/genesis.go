package types

import (
	"fmt"
)

// GenesisState defines the factoring module's genesis state.
type GenesisState struct {
	Params   Params    `json:"params"`
	Problems []Problem `json:"problems"`
}

// DefaultGenesis returns the default genesis state for the factoring module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:   DefaultParams(),
		Problems: []Problem{},
	}
}

// Validate ensures the genesis state is well-formed: valid params, valid
// problem records, and no duplicate numbers.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seen := make(map[string]struct{}, len(gs.Problems))
	for _, problem := range gs.Problems {
		if err := problem.Validate(); err != nil {
			return fmt.Errorf("invalid problem: %w", err)
		}

		key := problem.Number.String()
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate problem number %s", key)
		}
		seen[key] = struct{}{}
	}

	return nil
}
