// Package tanhsinh: sentinel error set.
// All caller-triggered failures return one of these sentinels (possibly
// wrapped with context via fmt.Errorf("...: %w", ErrX)); tests match
// them with errors.Is. Panics are reserved for internal invariant
// violations in the level table — a malformed committed row is a
// programmer error, never a user-facing condition.

package tanhsinh

import "errors"

var (
	// ErrNilTraits is returned by New when the numeric traits value is nil.
	ErrNilTraits = errors.New("tanhsinh: numeric traits must not be nil")

	// ErrNilIntegrand is returned by Integrate when f is nil.
	ErrNilIntegrand = errors.New("tanhsinh: integrand must not be nil")

	// ErrBadTolerance is returned by New when the tolerance is not a
	// positive finite value.
	ErrBadTolerance = errors.New("tanhsinh: tolerance must be positive and finite")

	// ErrBadOptions is returned by New when MaxRefinements or
	// InitialCommit is negative.
	ErrBadOptions = errors.New("tanhsinh: refinement options must be non-negative")

	// ErrBadMinComplement is returned by Integrate when a
	// minimum-complement threshold is negative or not finite.
	// Zero means "use the machine epsilon".
	ErrBadMinComplement = errors.New("tanhsinh: minimum complement must be non-negative and finite")

	// ErrNonFiniteEstimate reports an evaluation failure: the running
	// integral estimate became NaN or ±Inf during refinement, which
	// usually means the integrand diverges or is undefined near a
	// sampled point. Narrow the effective bounds with larger
	// minimum-complement thresholds, or check the integrand.
	// The wrapped error carries the diagnostic label, the offending
	// value and the refinement level.
	ErrNonFiniteEstimate = errors.New("tanhsinh: integral estimate is not finite")
)
