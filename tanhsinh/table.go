// Package tanhsinh: the refinement level table.
// An append-only cache mapping level n → (abscissa row, weight row,
// first-complement index). Levels are computed one at a time, on
// demand, and memoized for the lifetime of the Integrator. Committed
// rows are immutable, so they can be handed out and read outside the
// lock.

package tanhsinh

// level returns the three components of refinement level n, lazily
// extending the table if n has not been committed yet. Safe for
// concurrent use: extension is serialized by the instance mutex, and
// the returned slices are never written again once committed.
func (q *Integrator[T]) level(n int) (abscissas, weights []T, firstComplement int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.committed < n {
		q.extendLocked()
	}
	if q.committed < n || len(q.abscissas) <= n {
		panic("tanhsinh: internal: level table failed to extend")
	}

	return q.abscissas[n], q.weights[n], q.firstComplement[n]
}

// abscissaRow returns the abscissa row for level n.
// Entries below the first-complement index are true abscissa values in
// [0, 1); entries at or past it store the negated complement x−1.
func (q *Integrator[T]) abscissaRow(n int) []T {
	row, _, _ := q.level(n)

	return row
}

// weightRow returns the weight row for level n, parallel to the
// abscissa row.
func (q *Integrator[T]) weightRow(n int) []T {
	_, row, _ := q.level(n)

	return row
}

// firstComplementIndex returns the count of leading true-abscissa
// entries in level n's rows; entries at or past it are
// complement-encoded. Non-decreasing in n: the crossover parameter is
// fixed while the step size halves.
func (q *Integrator[T]) firstComplementIndex(n int) int {
	_, _, idx := q.level(n)

	return idx
}

// extendLocked commits exactly one new refinement level. Callers hold
// q.mu. Level n walks the transform parameters t = h, 3h, 5h, … below
// tMax with h = 2^-n: precisely the positions level n−1 does not
// already cover, so rows interleave rather than overlap across levels.
func (q *Integrator[T]) extendLocked() {
	row := q.committed + 1
	h := q.traits.Ldexp(1, -row)

	firstComplement := 0
	var abscissas []T
	for pos := h; pos < q.tMax; pos += 2 * h {
		if pos < q.tCrossover {
			firstComplement++
			abscissas = append(abscissas, abscissaAtT(q.traits, pos))
		} else {
			abscissas = append(abscissas, -complementAtT(q.traits, pos))
		}
	}

	weights := make([]T, 0, len(abscissas))
	for pos := h; pos < q.tMax; pos += 2 * h {
		weights = append(weights, weightAtT(q.traits, pos))
	}

	if len(abscissas) != len(weights) || firstComplement > len(abscissas) {
		panic("tanhsinh: internal: malformed refinement row")
	}

	q.abscissas = append(q.abscissas, abscissas)
	q.weights = append(q.weights, weights)
	q.firstComplement = append(q.firstComplement, firstComplement)
	q.committed = row

	if q.committed != len(q.abscissas)-1 {
		panic("tanhsinh: internal: committed level out of sync with table")
	}
}
