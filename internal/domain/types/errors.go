package types

import "errors"

// Sentinel kinds for the engine-wide error taxonomy. Callers classify with
// errors.Is; packages wrap these with call-site detail.
var (
	// ErrNotFound covers unknown game, agent and candidate ids.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput covers malformed requests: bad skill budgets, unknown
	// focus competencies, out-of-range counts. Never silently coerced.
	ErrInvalidInput = errors.New("invalid input")

	// ErrResourceExhausted covers insufficient energy or cash and the
	// energy cap; distinct so callers can offer a remediation.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrInternalInvariant marks defects (a skill vector that fails repair,
	// a report referencing a removed agent). Fails loudly in testing.
	ErrInternalInvariant = errors.New("internal invariant violated")
)
