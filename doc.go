// Package quadra is a numerical integration toolkit built around
// double-exponential (tanh-sinh) quadrature over the canonical open
// interval (-1, 1).
//
// 🚀 What is quadra?
//
//	A small, deterministic library for computing definite integrals of
//	one-dimensional real functions, including integrands with
//	integrable endpoint singularities:
//	  • Core engine: adaptive tanh-sinh refinement with a memoized
//	    abscissa/weight table
//	  • Generic scalars: float64 and float32 through a tiny trait
//	    contract (numeric.Traits)
//	  • Precision-aware endpoint handling via complement encoding
//	  • Honest error reporting: an estimate always comes with an
//	    absolute error bound and an L1 magnitude
//
// ✨ Why choose quadra?
//
//   - Beginner-friendly – one constructor, one Integrate call
//   - Rock-solid guarantees – append-only level cache, safe for
//     concurrent Integrate calls on a shared instance
//   - Pure Go – no cgo, no hidden machinery
//   - Observable – plug in a zap logger to trace refinement levels
//
// Everything is organized under two subpackages:
//
//	numeric/  — scalar trait contract (Float64, Float32) consumed by the engine
//	tanhsinh/ — the tanh-sinh integrator: table cache, refinement driver
//
// Quick example:
//
//	q, err := tanhsinh.New[float64](numeric.Float64{}, 1e-9, nil)
//	if err != nil { ... }
//	res, err := q.Integrate(func(x, xc float64) float64 { return x * x }, nil)
//	// res.Value ≈ 2.0/3.0 over (-1, 1)
//
// Callers integrating over other intervals map them onto (-1, 1)
// themselves; interval transformation is intentionally out of scope.
//
// See tanhsinh/example_test.go for runnable walkthroughs.
package quadra
