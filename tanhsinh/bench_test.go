package tanhsinh_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quadra/numeric"
	"github.com/katalvlaran/quadra/tanhsinh"
)

// benchmarkIntegrate constructs one integrator outside the timed loop
// (the level table is the reusable asset) and integrates f repeatedly.
func benchmarkIntegrate(b *testing.B, tolerance float64, f tanhsinh.Func[float64]) {
	q, err := tanhsinh.New[float64](numeric.Float64{}, tolerance, nil)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer() // ignore table construction
	for i := 0; i < b.N; i++ {
		if _, err = q.Integrate(f, nil); err != nil {
			b.Fatalf("Integrate failed: %v", err)
		}
	}
}

// BenchmarkIntegrate_Constant measures the floor cost: a trivial
// integrand converging at the minimum 4 levels.
func BenchmarkIntegrate_Constant(b *testing.B) {
	benchmarkIntegrate(b, 1e-9, func(x, xc float64) float64 { return 1 })
}

// BenchmarkIntegrate_Runge measures a smooth but sharply peaked
// integrand, 1/(1+25x²), the classic interpolation stress case.
func BenchmarkIntegrate_Runge(b *testing.B) {
	benchmarkIntegrate(b, 1e-9, func(x, xc float64) float64 { return 1 / (1 + 25*x*x) })
}

// BenchmarkIntegrate_EndpointSingular measures the endpoint-singular
// 1/√(1−x²) via its complement form.
func BenchmarkIntegrate_EndpointSingular(b *testing.B) {
	benchmarkIntegrate(b, 1e-9, func(x, xc float64) float64 {
		c := math.Abs(xc)

		return 1 / math.Sqrt(c*(2-c))
	})
}

// BenchmarkIntegrate_Float32FastPath measures the precomputed-table
// strategy on the narrow float type.
func BenchmarkIntegrate_Float32FastPath(b *testing.B) {
	q, err := tanhsinh.New[float32](numeric.Float32{}, 1e-6, nil)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = q.Integrate(func(x, xc float32) float32 { return x * x }, nil); err != nil {
			b.Fatalf("Integrate failed: %v", err)
		}
	}
}

// BenchmarkNew_Generic measures construction cost with the default
// eager commitment on the formula path.
func BenchmarkNew_Generic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := tanhsinh.New[float64](numeric.Float64{}, 1e-9, nil); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}
