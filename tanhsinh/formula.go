// Package tanhsinh: row formulas.
// Pure, stateless functions of the transform parameter t. The variable
// change is x = tanh(π/2·sinh(t)); everything else follows from it.

package tanhsinh

import (
	"math"

	"github.com/katalvlaran/quadra/numeric"
)

// abscissaAtT returns the sample location x(t) = tanh(π/2·sinh(t)).
func abscissaAtT[T numeric.Float](tr numeric.Traits[T], t T) T {
	return tr.Tanh(T(math.Pi/2) * tr.Sinh(t))
}

// weightAtT returns the quadrature weight
// w(t) = (π/2·cosh(t)) / cosh²(π/2·sinh(t)).
func weightAtT[T numeric.Float](tr numeric.Traits[T], t T) T {
	cs := tr.Cosh(T(math.Pi/2) * tr.Sinh(t))

	return T(math.Pi/2) * tr.Cosh(t) / (cs * cs)
}

// complementAtT returns 1 − x(t) in the cancellation-free form
// 1 / (exp(u)·cosh(u)) with u = π/2·sinh(t). For large t the direct
// subtraction 1 − tanh(u) loses every significant digit; this form
// does not.
func complementAtT[T numeric.Float](tr numeric.Traits[T], t T) T {
	u := T(math.Pi/2) * tr.Sinh(t)

	return 1 / (tr.Exp(u) * tr.Cosh(u))
}

// tFromComplement inverts complementAtT: it returns the t at which
// 1 − x(t) equals xc. Used once per construction to find the crossover
// parameter where abscissa storage switches to complement encoding
// (target complement 0.5).
func tFromComplement[T numeric.Float](tr numeric.Traits[T], xc T) T {
	pi := T(math.Pi)
	l := tr.Log(tr.Sqrt((2 - xc) / xc))

	return tr.Log((tr.Sqrt(4*l*l+pi*pi) + 2*l) / pi)
}
