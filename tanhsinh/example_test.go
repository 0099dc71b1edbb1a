package tanhsinh_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quadra/numeric"
	"github.com/katalvlaran/quadra/tanhsinh"
)

// ExampleIntegrator_Integrate demonstrates the simplest possible call:
// integrating a polynomial over (-1, 1) with default options.
//
// Scenario:
//
//	∫ x² dx over (-1, 1) = 2/3.
//
// The integrand ignores xc — it has no endpoint structure.
func ExampleIntegrator_Integrate() {
	q, err := tanhsinh.New[float64](numeric.Float64{}, 1e-9, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := q.Integrate(func(x, xc float64) float64 { return x * x }, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%.4f levels=%d\n", res.Value, res.Levels)
	// Output:
	// value=0.6667 levels=4
}

// ExampleIntegrator_Integrate_endpointSingularity integrates
// 1/√(1−x²), which blows up at both endpoints, by writing it in terms
// of the complement argument: |xc| = 1−|x| is exact even when x is
// within machine epsilon of ±1, so the integrand stays finite at every
// sample. The exact value is π.
func ExampleIntegrator_Integrate_endpointSingularity() {
	q, err := tanhsinh.New[float64](numeric.Float64{}, 1e-9, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	f := func(x, xc float64) float64 {
		c := math.Abs(xc)

		return 1 / math.Sqrt(c*(2-c))
	}
	res, err := q.Integrate(f, &tanhsinh.IntegrateOptions[float64]{Label: "reciprocal-half-circle"})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%.6f\n", res.Value)
	// Output:
	// value=3.141593
}

// ExampleIntegrator_Integrate_endpointGuard keeps the engine away from
// an integrand that is undefined within 10⁻³ of the left endpoint by
// raising that side's minimum complement. Guarded samples contribute
// zero, so the estimate comes out short by roughly the guarded mass.
func ExampleIntegrator_Integrate_endpointGuard() {
	q, err := tanhsinh.New[float64](numeric.Float64{}, 1e-9, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	f := func(x, xc float64) float64 {
		if xc < 0 && -xc < 1e-3 {
			return math.NaN() // would poison the estimate if ever sampled
		}

		return 1
	}
	res, err := q.Integrate(f, &tanhsinh.IntegrateOptions[float64]{
		Label:             "guarded-left-endpoint",
		LeftMinComplement: 1e-3,
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%.3f\n", res.Value)
	// Output:
	// value=1.999
}
