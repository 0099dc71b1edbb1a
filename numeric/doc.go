// Package numeric defines the scalar contract consumed by the quadra
// integration engines.
//
// The engine never touches math.* directly: it is generic over a Float
// scalar type and performs all transcendental work through a Traits
// value describing that type. Traits carries two things:
//
//  1. A trait profile — binary radix flag, significant (mantissa) bit
//     count, maximum binary exponent and the machine epsilon — used
//     once, at integrator construction, to select an initialization
//     strategy for the abscissa/weight table.
//  2. The elementary operations the tanh-sinh row formulas need:
//     Tanh, Sinh, Cosh, Exp, Log, Sqrt, Ldexp and a finiteness probe.
//
// Ordinary arithmetic (+ - * /), comparison and conversion come for
// free from the Float constraint, so Traits stays small.
//
// Two implementations ship with the package: Float64 (the default for
// double precision) and Float32 (narrow precision; selects the
// integrator's precomputed fast path). Both are zero-sized stateless
// values and safe to share.
package numeric
