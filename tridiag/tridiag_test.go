package tridiag

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func system3() *System {
	return NewSystem(3).
		SetRow(0, 0, 2, 1, 4).
		SetRow(1, 1, 2, 1, 8).
		SetRow(2, 1, 2, 0, 8)
}

func TestSolveSmall(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	x, err := system3().Solve()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, x, 1e-12)
}

func TestSolveSingleRow(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	x, err := NewSystem(1).SetRow(0, 0, 4, 0, 2).Solve()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, x[0], 1e-15)
}

func TestSolveRandomDominant(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rnd := rand.New(rand.NewSource(4711))
	n := 40
	sys := NewSystem(n)
	for j := 0; j < n; j++ {
		a, c := rnd.Float64(), rnd.Float64()
		sys.SetRow(j, a, 2*(a+c)+0.1, c, rnd.NormFloat64()*10)
	}
	pristine := sys.Clone()
	x, err := sys.Solve()
	require.NoError(t, err)
	assert.Less(t, pristine.Residual(x), 1e-9)
}

func TestSolveTinyCoefficients(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sys := system3()
	for j := 0; j < sys.N(); j++ {
		sys.A[j], sys.B[j], sys.C[j] = sys.A[j]*1e-9, sys.B[j]*1e-9, sys.C[j]*1e-9
	}
	x, err := sys.Solve()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1e9, 2e9, 3e9}, x, 1e-3)
}

func TestSolveIsDestructive(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sys := system3()
	other := sys.WithRHS([]float64{2, 4, 4})
	_, err := sys.Solve()
	require.NoError(t, err)
	assert.NotEqual(t, []float64{1, 1, 0}, sys.C, "C must be overwritten by elimination")
	x, err := other.Solve()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 1, 1.5}, x, 1e-12)
}

func TestSolveZeroPivot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := NewSystem(2).SetRow(0, 0, 0, 1, 1).SetRow(1, 1, 1, 0, 1).Solve()
	assert.ErrorIs(t, err, ErrSingular)
	_, err = NewSystem(2).SetRow(0, 0, 1, 1, 1).SetRow(1, 1, 1, 0, 1).Solve()
	assert.ErrorIs(t, err, ErrSingular)
}

func TestSolveDimensions(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := NewSystem(0).Solve()
	assert.ErrorIs(t, err, ErrDimension)
	sys := system3()
	sys.D = sys.D[:2]
	_, err = sys.Solve()
	assert.ErrorIs(t, err, ErrDimension)
}

func TestString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := system3().String()
	assert.Contains(t, s, "[1] 1 | 2 | 1 = 8")
}
