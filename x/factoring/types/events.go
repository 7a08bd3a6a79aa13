package types

// Event types for the factoring module
const (
	EventTypeProblemSubmitted = "problem_submitted"
	EventTypeProblemResolved  = "problem_resolved"
)

// Event attribute keys
const (
	AttributeKeyNumber         = "number"
	AttributeKeyReward         = "reward"
	AttributeKeySubmitter      = "submitter"
	AttributeKeyResolver       = "resolver"
	AttributeKeyFactorA        = "factor_a"
	AttributeKeyFactorB        = "factor_b"
	AttributeKeyResolverPayout = "resolver_payout"
	AttributeKeyTreasuryPayout = "treasury_payout"
)
