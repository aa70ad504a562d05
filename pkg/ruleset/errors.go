package ruleset

import "errors"

var (
	// ErrInvalidDocument is returned when a rule set document cannot be decoded.
	ErrInvalidDocument = errors.New("ruleset: invalid document")

	// ErrUnknownType is returned for a rule whose type is not supported.
	ErrUnknownType = errors.New("ruleset: unknown rule type")

	// ErrInvalidRule is returned when a rule's options are rejected by its validator.
	ErrInvalidRule = errors.New("ruleset: invalid rule options")

	// ErrRuleNotFound is returned when looking up a rule that is not in the set.
	ErrRuleNotFound = errors.New("ruleset: rule not found")
)
