// Package tanhsinh: level-0 table initialization.
// Two strategies, fixed per instance at construction: the generic one
// evaluates the row formulas directly; the fast one loads a literal
// float32 block (table_fast.go) and is selected when the trait profile
// describes a narrow binary float.

package tanhsinh

import "github.com/katalvlaran/quadra/numeric"

const (
	// genericInitialRowLength is the number of equally spaced transform
	// parameters t = 0, 1, …, 6 sampled for level 0 on the generic
	// path; it doubles as tMax.
	genericInitialRowLength = 7

	// fastInitialRowLength is the level-0 row length on the
	// precomputed-table path (tMax = 4).
	fastInitialRowLength = 4
)

// useFastInit reports whether the trait profile selects the
// precomputed-table strategy: a binary-radix type with fewer than 30
// significant bits and a float32-sized exponent range.
func useFastInit[T numeric.Float](tr numeric.Traits[T]) bool {
	return tr.BinaryRadix() && tr.SignificantDigits() < 30 && tr.MaxExponent() <= 128
}

// initGeneric builds level 0 from the row formulas: one entry per
// integer transform parameter below tMax, plus a dedicated boundary
// entry holding the complement at tMax itself. The boundary entry is
// complement-encoded (negative) like every other tail entry, so the
// driver reconstructs it correctly even under extreme
// minimum-complement thresholds.
func (q *Integrator[T]) initGeneric() {
	q.initialRowLen = genericInitialRowLength
	q.tMax = T(q.initialRowLen)
	q.tCrossover = tFromComplement(q.traits, T(0.5))

	h := q.tMax / T(q.initialRowLen)
	firstComplement := 0
	abscissas := make([]T, 0, q.initialRowLen+1)
	for i := 0; i < q.initialRowLen; i++ {
		t := h * T(i)
		if t < q.tCrossover {
			firstComplement++
			abscissas = append(abscissas, abscissaAtT(q.traits, t))
		} else {
			abscissas = append(abscissas, -complementAtT(q.traits, t))
		}
	}
	abscissas = append(abscissas, -complementAtT(q.traits, q.tMax))

	weights := make([]T, 0, q.initialRowLen+1)
	for i := 0; i < q.initialRowLen; i++ {
		weights = append(weights, weightAtT(q.traits, h*T(i)))
	}
	weights = append(weights, weightAtT(q.traits, q.tMax))

	q.abscissas = [][]T{abscissas}
	q.weights = [][]T{weights}
	q.firstComplement = []int{firstComplement}
	q.committed = 0
}

// initFast loads the precomputed literal block: eight committed levels
// at once, no transcendental work. Levels past the block, if ever
// requested, come from the same lazy extension as the generic path.
func (q *Integrator[T]) initFast() {
	q.initialRowLen = fastInitialRowLength
	q.tMax = T(q.initialRowLen)
	q.tCrossover = tFromComplement(q.traits, T(0.5))

	q.abscissas = make([][]T, len(fastAbscissas))
	for n, row := range fastAbscissas {
		q.abscissas[n] = convertRow[T](row)
	}
	q.weights = make([][]T, len(fastWeights))
	for n, row := range fastWeights {
		q.weights[n] = convertRow[T](row)
	}
	q.firstComplement = append([]int(nil), fastFirstComplements...)
	q.committed = len(fastAbscissas) - 1
}

// convertRow widens one literal float32 row to the instantiated scalar.
func convertRow[T numeric.Float](row []float32) []T {
	out := make([]T, len(row))
	for i, v := range row {
		out[i] = T(v)
	}

	return out
}
