package types

import (
	"cosmossdk.io/errors"
)

// Factoring module sentinel errors
var (
	ErrInvalidNumber           = errors.Register(ModuleName, 2, "number is not an unsigned 128-bit integer")
	ErrInvalidReward           = errors.Register(ModuleName, 3, "invalid reward amount")
	ErrInvalidAddress          = errors.Register(ModuleName, 4, "invalid address")
	ErrAlreadySubmitted        = errors.Register(ModuleName, 5, "problem was already submitted")
	ErrInexistentNumber        = errors.Register(ModuleName, 6, "problem does not exist")
	ErrAlreadyResolved         = errors.Register(ModuleName, 7, "problem was already resolved")
	ErrWrongAnswer             = errors.Register(ModuleName, 8, "wrong answer to the problem")
	ErrBelowExistentialMinimum = errors.Register(ModuleName, 9, "transfer would leave balance below the existential minimum")
	ErrInvalidSolution         = errors.Register(ModuleName, 10, "invalid stored solution")
)
