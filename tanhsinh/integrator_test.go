package tanhsinh_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/quadra/numeric"
	"github.com/katalvlaran/quadra/tanhsinh"
)

const tol = 1e-9

// newIntegrator builds a default float64 integrator for tests.
func newIntegrator(t *testing.T) *tanhsinh.Integrator[float64] {
	t.Helper()

	q, err := tanhsinh.New[float64](numeric.Float64{}, tol, nil)
	require.NoError(t, err, "default construction must succeed")

	return q
}

// TestNew_NilTraits verifies that a nil traits value errors ErrNilTraits.
func TestNew_NilTraits(t *testing.T) {
	_, err := tanhsinh.New[float64](nil, tol, nil)
	assert.ErrorIs(t, err, tanhsinh.ErrNilTraits)
}

// TestNew_BadTolerance ensures non-positive or non-finite tolerances
// error ErrBadTolerance.
func TestNew_BadTolerance(t *testing.T) {
	for _, bad := range []float64{0, -1e-9, math.NaN(), math.Inf(1)} {
		_, err := tanhsinh.New[float64](numeric.Float64{}, bad, nil)
		assert.ErrorIs(t, err, tanhsinh.ErrBadTolerance, "tolerance %v must be rejected", bad)
	}
}

// TestNew_BadOptions ensures negative refinement options error ErrBadOptions.
func TestNew_BadOptions(t *testing.T) {
	opts := tanhsinh.DefaultOptions()
	opts.MaxRefinements = -1
	_, err := tanhsinh.New[float64](numeric.Float64{}, tol, &opts)
	assert.ErrorIs(t, err, tanhsinh.ErrBadOptions)

	opts = tanhsinh.DefaultOptions()
	opts.InitialCommit = -1
	_, err = tanhsinh.New[float64](numeric.Float64{}, tol, &opts)
	assert.ErrorIs(t, err, tanhsinh.ErrBadOptions)
}

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	opts := tanhsinh.DefaultOptions()
	assert.Equal(t, tanhsinh.DefaultMaxRefinements, opts.MaxRefinements)
	assert.Equal(t, tanhsinh.DefaultInitialCommit, opts.InitialCommit)
	assert.Nil(t, opts.Logger, "default options must not log")
}

// TestIntegrate_NilIntegrand verifies ErrNilIntegrand.
func TestIntegrate_NilIntegrand(t *testing.T) {
	q := newIntegrator(t)

	_, err := q.Integrate(nil, nil)
	assert.ErrorIs(t, err, tanhsinh.ErrNilIntegrand)
}

// TestIntegrate_Constant checks ∫1 dx over (-1,1) = 2 and that the
// reported error bound satisfies the relative stopping rule.
func TestIntegrate_Constant(t *testing.T) {
	q := newIntegrator(t)

	res, err := q.Integrate(func(x, xc float64) float64 { return 1 }, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.Value, 1e-9, "interval length expected")
	assert.LessOrEqual(t, res.ErrorEstimate, tol*res.L1, "error bound must satisfy the stopping rule")
	assert.InDelta(t, 2.0, res.L1, 1e-9, "L1 of a positive constant equals the integral")
}

// TestIntegrate_OddFunction checks that odd integrands come out within
// tolerance of zero: mirrored sample pairs cancel exactly.
func TestIntegrate_OddFunction(t *testing.T) {
	q := newIntegrator(t)

	res, err := q.Integrate(func(x, xc float64) float64 { return x * x * x }, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.Value, 1e-12, "odd integrand must cancel")
}

// TestIntegrate_Parabola checks ∫x² dx over (-1,1) = 2/3.
func TestIntegrate_Parabola(t *testing.T) {
	q := newIntegrator(t)

	res, err := q.Integrate(func(x, xc float64) float64 { return x * x }, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, res.Value, 1e-9)
}

// TestIntegrate_EndpointSingularity integrates 1/√(1−x²), singular at
// both endpoints, via its complement form 1/√(|xc|·(2−|xc|)). The exact
// value is π. The default minimum complements clip a sliver of endpoint
// mass — ∫1/√(1−x²) over a clipped band of width ε is ≈√(2ε) per side,
// about 2.1e-8 each — so the achievable accuracy is ~5e-8, not machine
// precision.
func TestIntegrate_EndpointSingularity(t *testing.T) {
	q := newIntegrator(t)

	f := func(x, xc float64) float64 {
		c := math.Abs(xc)

		return 1 / math.Sqrt(c*(2-c))
	}
	res, err := q.Integrate(f, nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, res.Value, 1e-7, "∫1/√(1−x²) over (-1,1) must be π up to the clipped endpoint mass")
}

// TestIntegrate_MinimumLevels verifies the floor: even the identically
// zero integrand runs 4 refinement levels before the convergence check
// may fire.
func TestIntegrate_MinimumLevels(t *testing.T) {
	q := newIntegrator(t)

	res, err := q.Integrate(func(x, xc float64) float64 { return 0 }, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Levels, "zero integrand must still refine 4 levels")
	assert.Equal(t, 0.0, res.Value)
}

// TestIntegrate_MaxRefinementsBoundsWork verifies that running out of
// levels is not an error: the call returns its best estimate with an
// honest (large) error bound.
func TestIntegrate_MaxRefinementsBoundsWork(t *testing.T) {
	opts := tanhsinh.DefaultOptions()
	opts.MaxRefinements = 4
	q, err := tanhsinh.New[float64](numeric.Float64{}, 1e-30, &opts)
	require.NoError(t, err)

	res, err := q.Integrate(func(x, xc float64) float64 { return math.Cos(50 * x) }, nil)
	require.NoError(t, err, "hitting the refinement bound must not error")
	assert.Equal(t, 4, res.Levels, "must stop exactly at the configured bound")
	assert.Greater(t, res.ErrorEstimate, 0.0, "unconverged call must report a nonzero bound")
}

// TestIntegrate_ResultsReproducible verifies a shared instance returns
// bitwise-identical results across calls: committed rows are reused,
// never recomputed.
func TestIntegrate_ResultsReproducible(t *testing.T) {
	q := newIntegrator(t)
	f := func(x, xc float64) float64 { return math.Exp(x) }

	first, err := q.Integrate(f, nil)
	require.NoError(t, err)
	second, err := q.Integrate(f, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second, "repeat calls must reproduce exactly")
}

// TestIntegrate_LeftBoundExclusion raises the left minimum complement
// and verifies, via a recording integrand, that no left-side sample is
// evaluated closer to -1 than the threshold while the right side still
// gets closer samples.
func TestIntegrate_LeftBoundExclusion(t *testing.T) {
	q := newIntegrator(t)

	const leftMin = 1e-2
	minLeft := math.Inf(1)  // smallest |xc| seen on left-side calls
	minRight := math.Inf(1) // smallest |xc| seen on right-side calls
	f := func(x, xc float64) float64 {
		if xc < 0 {
			minLeft = math.Min(minLeft, -xc)
		} else if x != 0 {
			minRight = math.Min(minRight, xc)
		}

		return 1
	}

	_, err := q.Integrate(f, &tanhsinh.IntegrateOptions[float64]{
		Label:             "left-guard",
		LeftMinComplement: leftMin,
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, minLeft, leftMin, "left side must never be sampled inside the guard")
	assert.Less(t, minRight, leftMin, "right side keeps its default (much closer) samples")
}

// TestIntegrate_BadMinComplement covers both rejection paths: negative
// thresholds, and thresholds so large they exclude every sample.
func TestIntegrate_BadMinComplement(t *testing.T) {
	q := newIntegrator(t)
	f := func(x, xc float64) float64 { return 1 }

	_, err := q.Integrate(f, &tanhsinh.IntegrateOptions[float64]{LeftMinComplement: -1e-3})
	assert.ErrorIs(t, err, tanhsinh.ErrBadMinComplement, "negative threshold must be rejected")

	_, err = q.Integrate(f, &tanhsinh.IntegrateOptions[float64]{RightMinComplement: 0.6})
	assert.ErrorIs(t, err, tanhsinh.ErrBadMinComplement, "threshold excluding every sample must be rejected")
}

// TestIntegrate_NonFiniteEvaluation verifies the evaluation-failure
// path: a NaN-producing integrand yields a wrapped ErrNonFiniteEstimate
// instead of a silent NaN result.
func TestIntegrate_NonFiniteEvaluation(t *testing.T) {
	q := newIntegrator(t)

	_, err := q.Integrate(func(x, xc float64) float64 { return math.NaN() }, &tanhsinh.IntegrateOptions[float64]{
		Label: "nan-integrand",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, tanhsinh.ErrNonFiniteEstimate)
	assert.Contains(t, err.Error(), "nan-integrand", "error must carry the diagnostic label")
}

// TestIntegrate_NonFiniteAtLevelZero pins the same failure path when no
// refinement levels run at all: with MaxRefinements=0 the coarse-grid
// estimate is the final one, and a NaN there must still surface as
// ErrNonFiniteEstimate rather than a nil-error NaN result.
func TestIntegrate_NonFiniteAtLevelZero(t *testing.T) {
	opts := tanhsinh.DefaultOptions()
	opts.MaxRefinements = 0
	q, err := tanhsinh.New[float64](numeric.Float64{}, tol, &opts)
	require.NoError(t, err)

	res, err := q.Integrate(func(x, xc float64) float64 { return math.NaN() }, nil)
	assert.ErrorIs(t, err, tanhsinh.ErrNonFiniteEstimate)
	assert.True(t, math.IsNaN(res.Value), "result must still report the non-finite estimate")
	assert.Equal(t, 0, res.Levels)
}

// TestIntegrate_ZapTrace wires an observed zap logger and checks one
// Debug entry per completed refinement level plus a termination entry.
func TestIntegrate_ZapTrace(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	opts := tanhsinh.DefaultOptions()
	opts.Logger = zap.New(core)
	q, err := tanhsinh.New[float64](numeric.Float64{}, tol, &opts)
	require.NoError(t, err)

	res, err := q.Integrate(func(x, xc float64) float64 { return x * x }, nil)
	require.NoError(t, err)

	levelEntries := logs.FilterMessage("tanhsinh: refinement level complete")
	assert.Equal(t, res.Levels, levelEntries.Len(), "one trace entry per refinement level")
	assert.Equal(t, 1, logs.FilterMessage("tanhsinh: integration finished").Len())
}

// TestIntegrate_Float32FastPath exercises the precomputed-table
// strategy end to end and cross-checks it against the generic float64
// path at float32 scale (the two paths agree to tolerance, not bitwise).
func TestIntegrate_Float32FastPath(t *testing.T) {
	q32, err := tanhsinh.New[float32](numeric.Float32{}, 1e-6, nil)
	require.NoError(t, err)

	res32, err := q32.Integrate(func(x, xc float32) float32 { return x * x }, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, float64(res32.Value), 1e-4, "float32 fast path drifted")

	q64 := newIntegrator(t)
	res64, err := q64.Integrate(func(x, xc float64) float64 { return x * x }, nil)
	require.NoError(t, err)
	assert.InDelta(t, res64.Value, float64(res32.Value), 1e-4, "fast and generic paths must agree to float32 scale")
}

// TestNew_FastBlockRaisesMaximum verifies the effective maximum is
// lifted to the precomputed block's depth when the request is smaller,
// and reported via MaxRefinements.
func TestNew_FastBlockRaisesMaximum(t *testing.T) {
	opts := tanhsinh.DefaultOptions()
	opts.MaxRefinements = 2
	opts.InitialCommit = 0
	q, err := tanhsinh.New[float32](numeric.Float32{}, 1e-6, &opts)
	require.NoError(t, err)
	assert.Equal(t, 7, q.MaxRefinements(), "block depth must override a smaller request")

	q64, err := tanhsinh.New[float64](numeric.Float64{}, tol, &opts)
	require.NoError(t, err)
	assert.Equal(t, 2, q64.MaxRefinements(), "generic path keeps the requested maximum")
}

// TestIntegrate_ConcurrentSharedInstance hammers one integrator from
// many goroutines with lazy extension still pending; the internal lock
// must keep the table consistent and every result correct.
func TestIntegrate_ConcurrentSharedInstance(t *testing.T) {
	opts := tanhsinh.DefaultOptions()
	opts.InitialCommit = 0 // force concurrent lazy extension
	q, err := tanhsinh.New[float64](numeric.Float64{}, tol, &opts)
	require.NoError(t, err)

	const workers = 8
	var wg sync.WaitGroup
	results := make([]float64, workers)
	errs := make([]error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			res, err := q.Integrate(func(x, xc float64) float64 { return x * x }, nil)
			results[w], errs[w] = res.Value, err
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w], "worker %d failed", w)
		assert.InDelta(t, 2.0/3.0, results[w], 1e-9, "worker %d result drifted", w)
	}
}
