package tanhsinh

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/quadra/numeric"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMaxRefinements bounds the number of step-halving levels an
	// Integrate call may perform past level 0. 15 levels double the
	// sample density up to 2^15×, far beyond what double precision can
	// resolve, while keeping the worst case bounded.
	DefaultMaxRefinements = 15

	// DefaultInitialCommit is the number of refinement levels eagerly
	// precomputed at construction. Trades construction latency for
	// first-call latency; levels beyond it are memoized on demand.
	DefaultInitialCommit = 4

	// minConvergenceLevels is the floor on refinement levels performed
	// before the convergence check may terminate a call. Without it a
	// coarse grid that happens to straddle a narrow feature (a spike
	// between samples) would look converged at level 0.
	minConvergenceLevels = 4
)

// Func is a one-dimensional real integrand over (-1, 1).
//
// x is the sample location. xc is the signed complement: |xc| = 1−|x|
// is the distance from x to the nearer endpoint, positive when x is a
// right-side sample and negative when it is a mirrored left-side one.
// Integrands with endpoint structure should compute from xc rather than
// from 1−x, which cancels catastrophically near the endpoint.
type Func[T numeric.Float] func(x, xc T) T

// Options configures an Integrator at construction.
//
// Fields:
//   - MaxRefinements — upper bound on step-halving levels per call.
//     Zero-valued Options are not valid; start from DefaultOptions().
//   - InitialCommit  — levels precomputed eagerly by New.
//   - Logger         — optional zap logger; when set, Integrate emits a
//     Debug entry per completed refinement level and one at
//     termination. Nil (the default) disables all logging work.
type Options struct {
	MaxRefinements int
	InitialCommit  int
	Logger         *zap.Logger
}

// DefaultOptions returns the documented defaults: 15 maximum
// refinements, 4 eagerly committed levels, no logger.
func DefaultOptions() Options {
	return Options{
		MaxRefinements: DefaultMaxRefinements,
		InitialCommit:  DefaultInitialCommit,
	}
}

// IntegrateOptions configures one Integrate call. The zero value (or a
// nil pointer) is valid and means: empty label, both minimum
// complements at the machine epsilon of T.
//
// Fields:
//   - Label — diagnostic name included in evaluation-failure errors.
//   - LeftMinComplement / RightMinComplement — how close to the
//     corresponding endpoint the integrand may be evaluated, expressed
//     as a minimum |xc|. Samples closer than the threshold are skipped
//     on that side (contributing zero). Zero means the machine epsilon
//     of T. Use larger values to keep the engine away from a known
//     singular or undefined endpoint.
type IntegrateOptions[T numeric.Float] struct {
	Label              string
	LeftMinComplement  T
	RightMinComplement T
}

// Result is the outcome of one Integrate call.
type Result[T numeric.Float] struct {
	// Value is the integral estimate over (-1, 1).
	Value T

	// ErrorEstimate is |previous − current| at the final refinement
	// level: an absolute error bound, honest but possibly large when
	// MaxRefinements was reached before convergence.
	ErrorEstimate T

	// L1 is the estimate of ∫|f| over (-1, 1), the magnitude against
	// which the relative-error stopping rule scales ErrorEstimate.
	L1 T

	// Levels is the number of refinement levels performed past level 0.
	// At least 4 unless MaxRefinements is smaller.
	Levels int
}
