// Package tanhsinh computes definite integrals over the open interval
// (-1, 1) using double-exponential ("tanh-sinh") quadrature.
//
// 🚀 What is tanh-sinh quadrature?
//
//	The variable change x = tanh(π/2·sinh(t)) maps (-1, 1) onto the
//	whole real line and makes sample weights decay doubly
//	exponentially away from the center. The result is a trapezoid
//	rule that converges extremely fast for smooth integrands and
//	remains accurate for integrable endpoint singularities. It's
//	widely used in:
//	  • Special-function and statistics kernels
//	  • Finance (transforms with endpoint-singular densities)
//	  • Physics, where integrands blow up at the boundary
//
// ✨ Key features:
//   - adaptive refinement: sample density doubles level by level until
//     the error estimate meets the relative tolerance
//   - memoized abscissa/weight table: levels are computed once per
//     Integrator and reused across calls
//   - complement encoding: points extremely close to ±1 are stored as
//     x−1, so the integrand can see its true distance to the endpoint
//     without catastrophic cancellation
//   - endpoint guards: per-call minimum-complement thresholds keep the
//     engine away from singular or undefined endpoints
//   - precomputed fast path for narrow floats (float32)
//   - optional zap trace of every refinement level
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/quadra/numeric"
//	  "github.com/katalvlaran/quadra/tanhsinh"
//	)
//
//	q, err := tanhsinh.New[float64](numeric.Float64{}, 1e-9, nil)
//	if err != nil { ... }
//
//	// ∫ x² dx over (-1,1) = 2/3
//	res, err := q.Integrate(func(x, xc float64) float64 { return x * x }, nil)
//
//	// res.Value        — the estimate
//	// res.ErrorEstimate — |previous − current| at termination
//	// res.L1           — running ∫|f| magnitude (error scaling)
//	// res.Levels       — refinement levels performed (≥ 4)
//
// The integrand receives two arguments: the sample location x and a
// signed complement xc with |xc| = 1 − |x|, the distance from x to the
// nearer endpoint (positive for right-side samples, negative for
// left-side ones). High-precision integrands use xc instead of
// recomputing 1−x, which would lose every significant digit near the
// endpoint.
//
// Integration over other intervals (finite, half-infinite, infinite)
// is the caller's job: substitute onto (-1, 1) first. Multi-dimensional
// integration is out of scope.
//
// Performance:
//
//   - Construction: O(2^InitialCommit) formula evaluations (memoized)
//   - Integrate:    O(2^levels) integrand calls, levels ≤ MaxRefinements
//
// See example_test.go for runnable walkthroughs.
package tanhsinh
