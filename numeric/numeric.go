package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float enumerates the scalar types the quadra engines accept:
// any type whose underlying type is float32 or float64.
type Float interface {
	constraints.Float
}

// Traits describes the numeric profile and elementary operations of a
// scalar type T. A Traits value is consulted once at integrator
// construction (profile) and on every table extension (operations);
// implementations must be stateless and safe for concurrent use.
//
// The profile mirrors the classic floating-point limits triple:
//   - BinaryRadix reports whether T uses radix-2 representation.
//   - SignificantDigits is the mantissa width in radix digits
//     (24 for float32, 53 for float64).
//   - MaxExponent is the largest power of the radix representable
//     (128 for float32, 1024 for float64).
//   - Epsilon is the difference between 1 and the next representable
//     value above 1.
type Traits[T Float] interface {
	BinaryRadix() bool
	SignificantDigits() int
	MaxExponent() int
	Epsilon() T

	Tanh(x T) T
	Sinh(x T) T
	Cosh(x T) T
	Exp(x T) T
	Log(x T) T
	Sqrt(x T) T

	// Ldexp returns x · 2^exp without intermediate rounding.
	Ldexp(x T, exp int) T

	// IsFinite reports whether x is neither NaN nor ±Inf.
	IsFinite(x T) bool
}

// Float64 implements Traits for float64 via the standard math package.
type Float64 struct{}

// BinaryRadix reports radix-2 representation; always true for float64.
func (Float64) BinaryRadix() bool { return true }

// SignificantDigits returns the float64 mantissa width (53 bits).
func (Float64) SignificantDigits() int { return 53 }

// MaxExponent returns the largest binary exponent of float64 (1024).
func (Float64) MaxExponent() int { return 1024 }

// Epsilon returns 2^-52, the float64 machine epsilon.
func (Float64) Epsilon() float64 { return 0x1p-52 }

func (Float64) Tanh(x float64) float64 { return math.Tanh(x) }
func (Float64) Sinh(x float64) float64 { return math.Sinh(x) }
func (Float64) Cosh(x float64) float64 { return math.Cosh(x) }
func (Float64) Exp(x float64) float64  { return math.Exp(x) }
func (Float64) Log(x float64) float64  { return math.Log(x) }
func (Float64) Sqrt(x float64) float64 { return math.Sqrt(x) }

func (Float64) Ldexp(x float64, exp int) float64 { return math.Ldexp(x, exp) }

func (Float64) IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Float32 implements Traits for float32. Transcendental operations are
// evaluated in float64 and rounded once on the way out, which is exact
// to float32 precision.
type Float32 struct{}

// BinaryRadix reports radix-2 representation; always true for float32.
func (Float32) BinaryRadix() bool { return true }

// SignificantDigits returns the float32 mantissa width (24 bits).
func (Float32) SignificantDigits() int { return 24 }

// MaxExponent returns the largest binary exponent of float32 (128).
func (Float32) MaxExponent() int { return 128 }

// Epsilon returns 2^-23, the float32 machine epsilon.
func (Float32) Epsilon() float32 { return 0x1p-23 }

func (Float32) Tanh(x float32) float32 { return float32(math.Tanh(float64(x))) }
func (Float32) Sinh(x float32) float32 { return float32(math.Sinh(float64(x))) }
func (Float32) Cosh(x float32) float32 { return float32(math.Cosh(float64(x))) }
func (Float32) Exp(x float32) float32  { return float32(math.Exp(float64(x))) }
func (Float32) Log(x float32) float32  { return float32(math.Log(float64(x))) }
func (Float32) Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func (Float32) Ldexp(x float32, exp int) float32 {
	return float32(math.Ldexp(float64(x), exp))
}

func (Float32) IsFinite(x float32) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
