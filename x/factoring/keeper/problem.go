package keeper

import (
	"context"
	"encoding/json"

	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/factor-chain/factor/x/factoring/types"
)

// HasProblem reports whether a problem for number exists in state.
func (k Keeper) HasProblem(ctx context.Context, number math.Int) bool {
	store := k.getStore(ctx)
	return store.Has(types.ProblemKey(number))
}

// GetProblem retrieves the problem stored under number.
func (k Keeper) GetProblem(ctx context.Context, number math.Int) (types.Problem, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.ProblemKey(number))
	if bz == nil {
		return types.Problem{}, false
	}
	var problem types.Problem
	if err := json.Unmarshal(bz, &problem); err != nil {
		return types.Problem{}, false
	}
	return problem, true
}

// SetProblem writes a problem to state, keyed by its number.
func (k Keeper) SetProblem(ctx context.Context, problem types.Problem) error {
	bz, err := json.Marshal(problem)
	if err != nil {
		return err
	}
	store := k.getStore(ctx)
	store.Set(types.ProblemKey(problem.Number), bz)
	return nil
}

// IterateProblems walks every stored problem in ascending number order and
// calls cb for each. Iteration stops early when cb returns true.
func (k Keeper) IterateProblems(ctx context.Context, cb func(problem types.Problem) (stop bool)) {
	store := prefix.NewStore(k.getStore(ctx), types.ProblemKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var problem types.Problem
		if err := json.Unmarshal(iterator.Value(), &problem); err != nil {
			continue
		}
		if cb(problem) {
			break
		}
	}
}

// GetAllProblems returns every stored problem, used by genesis export and
// the problems query.
func (k Keeper) GetAllProblems(ctx context.Context) []types.Problem {
	var problems []types.Problem
	k.IterateProblems(ctx, func(problem types.Problem) bool {
		problems = append(problems, problem)
		return false
	})
	return problems
}

// GetProblemsPaginated returns a page of problems using the standard query
// pagination over the raw problem keyspace.
func (k Keeper) GetProblemsPaginated(ctx context.Context, pageReq *query.PageRequest) ([]types.Problem, *query.PageResponse, error) {
	store := k.getStore(ctx)
	problemStore := prefix.NewStore(store, types.ProblemKeyPrefix)

	var problems []types.Problem
	pageRes, err := query.Paginate(problemStore, pageReq, func(key, value []byte) error {
		var problem types.Problem
		if err := json.Unmarshal(value, &problem); err != nil {
			return err
		}
		problems = append(problems, problem)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return problems, pageRes, nil
}
