package tanhsinh

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/quadra/numeric"
)

// Integrator — adaptive tanh-sinh quadrature over (-1, 1)
//
// Description:
//
//	An Integrator owns a memoized table of refinement levels (abscissa
//	row, weight row and first-complement index per level), a relative
//	tolerance and a maximum refinement depth. Construction fixes the
//	geometry constants tMax and tCrossover and eagerly commits
//	InitialCommit levels; Integrate then refines level by level until
//	the error estimate clears tolerance·L1 or the depth bound is hit.
//
// Algorithm Outline:
//  1. From level 0, find the largest sample position on each side
//     whose distance to the endpoint still clears the caller's
//     minimum-complement threshold; samples beyond it are skipped on
//     that side for the whole run.
//  2. Seed the estimate from level 0: w·(f(x, 1−x) + f(−x, −(1−x)))
//     over every in-bounds pair, reconstructing both x and its
//     complement from whichever form the row stores. Track the signed
//     sum and the sum of absolute values (L1).
//  3. For each level k = 1, 2, …: halve the running estimates and the
//     step, pull level k from the table cache (computing it at most
//     once per instance), advance the side bounds by pure index
//     doubling plus a single floating comparison per side, and
//     accumulate the new samples exactly as in step 2.
//  4. err = |previous − current|. A non-finite estimate aborts with an
//     evaluation-failure error. Otherwise stop once at least 4 levels
//     are done and err ≤ tolerance·L1, or at MaxRefinements, whichever
//     comes first.
//
// Complexity:
//
//	Time   = O(2^levels) integrand calls, levels ≤ MaxRefinements
//	Memory = O(2^levels) cached scalars, shared by all calls
//
// Concurrency:
//
//	Safe for concurrent Integrate calls on one instance: table
//	extension is serialized by an internal mutex and committed rows are
//	immutable.
type Integrator[T numeric.Float] struct {
	traits numeric.Traits[T]
	tol    T
	log    *zap.Logger

	// geometry, fixed at construction
	maxRefinements int
	initialRowLen  int
	tMax           T
	tCrossover     T

	// level table (table.go); mu guards extension and committed
	mu              sync.Mutex
	abscissas       [][]T
	weights         [][]T
	firstComplement []int
	committed       int
}

// New constructs an Integrator for the scalar type T described by tr.
//
// tol is the relative-error stopping threshold (err ≤ tol·L1). opts may
// be nil for DefaultOptions(). The trait profile picks the
// initialization strategy once, here: narrow binary floats load a
// precomputed 8-level block, everything else evaluates the row
// formulas. Either way InitialCommit levels are committed eagerly, and
// the precomputed block may raise the effective maximum to its own
// depth.
//
// Returns ErrNilTraits, ErrBadTolerance or ErrBadOptions on invalid
// input.
func New[T numeric.Float](tr numeric.Traits[T], tol T, opts *Options) (*Integrator[T], error) {
	if tr == nil {
		return nil, ErrNilTraits
	}
	if !(tol > 0) || !tr.IsFinite(tol) {
		return nil, ErrBadTolerance
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxRefinements < 0 || o.InitialCommit < 0 {
		return nil, ErrBadOptions
	}

	q := &Integrator[T]{
		traits:         tr,
		tol:            tol,
		log:            o.Logger,
		maxRefinements: o.MaxRefinements,
	}
	if useFastInit(tr) {
		q.initFast()
	} else {
		q.initGeneric()
	}

	commit := o.InitialCommit
	if commit > q.maxRefinements {
		commit = q.maxRefinements
	}
	q.mu.Lock()
	for q.committed < commit {
		q.extendLocked()
	}
	q.mu.Unlock()

	// The fast block may already be deeper than the requested maximum;
	// committed levels stay usable either way.
	if q.committed > q.maxRefinements {
		q.maxRefinements = q.committed
	}

	return q, nil
}

// MaxRefinements returns the effective refinement bound: the configured
// maximum, or the precomputed block's depth when that is larger.
func (q *Integrator[T]) MaxRefinements() int { return q.maxRefinements }

// Tolerance returns the relative-error stopping threshold.
func (q *Integrator[T]) Tolerance() T { return q.tol }

// Integrate computes ∫f over (-1, 1). opts may be nil; see
// IntegrateOptions for the endpoint guards and the diagnostic label.
//
// The integrand is called as f(x, xc) with |xc| = 1−|x| the distance to
// the nearer endpoint, xc > 0 for right-side samples and xc < 0 for
// left-side ones. Returns ErrNilIntegrand or ErrBadMinComplement on
// invalid input and a wrapped ErrNonFiniteEstimate when the running
// estimate stops being finite; running out of refinement levels is not
// an error — the Result then simply carries a large ErrorEstimate.
func (q *Integrator[T]) Integrate(f Func[T], opts *IntegrateOptions[T]) (Result[T], error) {
	var res Result[T]
	if f == nil {
		return res, ErrNilIntegrand
	}

	var o IntegrateOptions[T]
	if opts != nil {
		o = *opts
	}
	label := o.Label
	if label == "" {
		label = "tanhsinh.Integrate"
	}
	leftMin, rightMin := o.LeftMinComplement, o.RightMinComplement
	if leftMin < 0 || rightMin < 0 || !q.traits.IsFinite(leftMin) || !q.traits.IsFinite(rightMin) {
		return res, fmt.Errorf("tanhsinh: %s: %w", label, ErrBadMinComplement)
	}
	if leftMin == 0 {
		leftMin = q.traits.Epsilon()
	}
	if rightMin == 0 {
		rightMin = q.traits.Epsilon()
	}

	row0, weights0, firstComplement0 := q.level(0)

	// Largest logical position on each side whose stored complement
	// magnitude still clears that side's threshold. These bounds only
	// ever tighten evaluation; they are advanced per level by pure
	// integer doubling below.
	maxLeftPos := len(row0) - 1
	maxRightPos := maxLeftPos
	for maxLeftPos > 0 && numeric.Abs(row0[maxLeftPos]) < leftMin {
		maxLeftPos--
	}
	for maxRightPos > 0 && numeric.Abs(row0[maxRightPos]) < rightMin {
		maxRightPos--
	}
	// Thresholds must keep the bounds inside complement-encoded
	// territory; walking back into true-abscissa entries means the
	// caller excluded essentially the whole interval.
	if maxLeftPos < firstComplement0 || maxRightPos < firstComplement0 {
		return res, fmt.Errorf("tanhsinh: %s: minimum complement excludes every sample: %w", label, ErrBadMinComplement)
	}

	// Level 0. h = tMax/initialRowLen = 1 on both strategies, so the
	// seeded sums are already correctly scaled.
	h := q.tMax / T(q.initialRowLen)
	estimate := weights0[0] * f(0, 1)
	l1 := numeric.Abs(estimate)
	for i := 1; i < len(row0); i++ {
		if i > maxRightPos && i > maxLeftPos {
			break
		}
		x, xc, w := row0[i], row0[i], weights0[i]
		if i >= firstComplement0 {
			// stored x − 1
			x = 1 + xc
		} else {
			xc = x - 1
		}
		var yRight, yLeft T
		if i <= maxRightPos {
			yRight = f(x, -xc)
		}
		if i <= maxLeftPos {
			yLeft = f(-x, xc)
		}
		estimate += (yRight + yLeft) * w
		l1 += (numeric.Abs(yRight) + numeric.Abs(yLeft)) * w
	}

	// The coarse grid can already go non-finite (an integrand returning
	// NaN, or one overflowing near the endpoints); with MaxRefinements=0
	// the level loop never runs, so this is the only gate.
	if !q.traits.IsFinite(estimate) {
		res = Result[T]{Value: estimate, L1: l1}

		return res, fmt.Errorf(
			"tanhsinh: %s: estimate became non-finite (%v) at level 0; narrow the bounds with larger minimum complements or check the integrand for singularities: %w",
			label, float64(estimate), ErrNonFiniteEstimate)
	}

	var errEst T
	levels := 0
	for k := 1; k <= q.maxRefinements; k++ {
		previous := estimate

		estimate *= 0.5
		l1 *= 0.5
		h *= 0.5

		rowK, weightsK, firstComplementK := q.level(k)

		// Each level inserts samples only at odd logical positions, so
		// the new bound position is twice the old one, and the new row
		// index sits one left of it. One floating comparison per side
		// then decides whether the single fresh in-between sample is
		// still within threshold; everything else is integer logic.
		maxLeftIndex := maxLeftPos - 1
		maxLeftPos *= 2
		maxRightIndex := maxRightPos - 1
		maxRightPos *= 2
		if len(rowK) > maxLeftIndex+1 && numeric.Abs(rowK[maxLeftIndex+1]) > leftMin {
			maxLeftPos++
			maxLeftIndex++
		}
		if len(rowK) > maxRightIndex+1 && numeric.Abs(rowK[maxRightIndex+1]) > rightMin {
			maxRightPos++
			maxRightIndex++
		}

		var sum, absSum T
		for j := 0; j < len(weightsK); j++ {
			if j > maxLeftIndex && j > maxRightIndex {
				break
			}
			x, xc, w := rowK[j], rowK[j], weightsK[j]
			if j >= firstComplementK {
				// stored x − 1
				x = 1 + xc
			} else {
				xc = x - 1
			}
			var yRight, yLeft T
			if j <= maxRightIndex {
				yRight = f(x, -xc)
			}
			if j <= maxLeftIndex {
				yLeft = f(-x, xc)
			}
			sum += (yRight + yLeft) * w
			absSum += (numeric.Abs(yRight) + numeric.Abs(yLeft)) * w
		}
		estimate += sum * h
		l1 += absSum * h
		levels = k
		errEst = numeric.Abs(previous - estimate)

		if q.log != nil {
			q.log.Debug("tanhsinh: refinement level complete",
				zap.String("label", label),
				zap.Int("level", k),
				zap.Float64("estimate", float64(estimate)),
				zap.Float64("error", float64(errEst)),
				zap.Float64("l1", float64(l1)),
			)
		}

		if !q.traits.IsFinite(estimate) {
			res = Result[T]{Value: estimate, ErrorEstimate: errEst, L1: l1, Levels: levels}

			return res, fmt.Errorf(
				"tanhsinh: %s: estimate became non-finite (%v) at level %d; narrow the bounds with larger minimum complements or check the integrand for singularities: %w",
				label, float64(estimate), k, ErrNonFiniteEstimate)
		}

		// Convergence gate: never before minConvergenceLevels — a flat
		// coarse grid can hide a narrow spike between samples.
		if k >= minConvergenceLevels && errEst <= q.tol*l1 {
			break
		}
	}

	if q.log != nil {
		q.log.Debug("tanhsinh: integration finished",
			zap.String("label", label),
			zap.Int("levels", levels),
			zap.Float64("estimate", float64(estimate)),
			zap.Float64("error", float64(errEst)),
		)
	}

	return Result[T]{Value: estimate, ErrorEstimate: errEst, L1: l1, Levels: levels}, nil
}
