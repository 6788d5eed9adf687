// Package tridiag solves tridiagonal systems of linear equations.
/*
A tridiagonal system of size n is written row by row as

	a[j]·x[j-1] + b[j]·x[j] + c[j]·x[j+1] = d[j]     j = 0 … n-1

with a[0] and c[n-1] unused. Systems are solved with the Thomas algorithm
(forward elimination followed by back-substitution) in O(n). No pivoting is
done; systems must be diagonally dominant or otherwise well conditioned,
which holds for the spline systems this package is used for.

BSD 3-Clause License

Copyright (c) Norbert Pillmayer.

All rights reserved.

Please refer to the license file for more information.
*/
package tridiag

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinefit"
)

// T traces to the equations tracer.
func T() tracing.Trace {
	return tracing.Select("equations")
}

// PivotTolerance is the relative size below which a pivot counts as zero,
// measured against the magnitude of the terms it is computed from.
const PivotTolerance = 1e-12

var (
	// ErrSingular indicates a vanishing pivot during elimination.
	ErrSingular = errors.New("tridiagonal system is singular")
	// ErrDimension indicates coefficient vectors of unequal or zero length.
	ErrDimension = errors.New("tridiagonal system has inconsistent dimensions")
)

// System holds the coefficient vectors of a tridiagonal system.
// A is the sub-diagonal, B the diagonal, C the super-diagonal and D the
// right-hand side. All vectors have length n.
type System struct {
	A, B, C, D []float64
}

// NewSystem allocates a zero system of size n.
func NewSystem(n int) *System {
	return &System{
		A: make([]float64, n),
		B: make([]float64, n),
		C: make([]float64, n),
		D: make([]float64, n),
	}
}

// N returns the number of rows.
func (sys *System) N() int {
	return len(sys.B)
}

// SetRow sets the coefficients of row j.
func (sys *System) SetRow(j int, a, b, c, d float64) *System {
	sys.A[j], sys.B[j], sys.C[j], sys.D[j] = a, b, c, d
	return sys
}

// WithRHS returns a copy of sys with right-hand side d. The coefficient
// vectors are copied, so both systems may be solved independently.
func (sys *System) WithRHS(d []float64) *System {
	cp := sys.Clone()
	copy(cp.D, d)
	return cp
}

// Clone returns a deep copy of sys.
func (sys *System) Clone() *System {
	return &System{
		A: append([]float64(nil), sys.A...),
		B: append([]float64(nil), sys.B...),
		C: append([]float64(nil), sys.C...),
		D: append([]float64(nil), sys.D...),
	}
}

func (sys *System) check() error {
	n := sys.N()
	if n == 0 || len(sys.A) != n || len(sys.C) != n || len(sys.D) != n {
		return fmt.Errorf("%w: |a|=%d, |b|=%d, |c|=%d, |d|=%d", ErrDimension,
			len(sys.A), len(sys.B), len(sys.C), len(sys.D))
	}
	return nil
}

// Solve solves the system with the Thomas algorithm and returns x.
//
// Solve is destructive: C and D are overwritten by the elimination. Callers
// needing the original coefficients must Clone the system first.
func (sys *System) Solve() ([]float64, error) {
	if err := sys.check(); err != nil {
		return nil, err
	}
	n := sys.N()
	a, b, c, d := sys.A, sys.B, sys.C, sys.D
	if b[0] == 0 {
		return nil, fmt.Errorf("%w: zero pivot in row 0", ErrSingular)
	}
	c[0] = c[0] / b[0]
	d[0] = d[0] / b[0]
	for j := 1; j < n; j++ {
		pivot := b[j] - c[j-1]*a[j]
		if math.Abs(pivot) <= PivotTolerance*(math.Abs(b[j])+math.Abs(c[j-1]*a[j])) {
			return nil, fmt.Errorf("%w: zero pivot in row %d", ErrSingular, j)
		}
		c[j] = c[j] / pivot
		d[j] = (d[j] - d[j-1]*a[j]) / pivot
	}
	x := make([]float64, n)
	x[n-1] = d[n-1]
	for j := n - 2; j >= 0; j-- {
		x[j] = d[j] - c[j]*x[j+1]
	}
	for j, v := range x {
		if !splinefit.IsFinite(v) {
			return nil, fmt.Errorf("%w: x.%d = %g", ErrSingular, j, v)
		}
	}
	T().Debugf("solved %d×%d tridiagonal system", n, n)
	return x, nil
}

// Residual returns max |A·x − d| over all rows. It has to be called on an
// unsolved system (see Clone).
func (sys *System) Residual(x []float64) float64 {
	n := sys.N()
	r := 0.0
	for j := 0; j < n; j++ {
		s := sys.B[j]*x[j] - sys.D[j]
		if j > 0 {
			s += sys.A[j] * x[j-1]
		}
		if j < n-1 {
			s += sys.C[j] * x[j+1]
		}
		r = math.Max(r, math.Abs(s))
	}
	return r
}

// String is a debugging helper listing all rows.
func (sys *System) String() string {
	var buf bytes.Buffer
	for j := 0; j < sys.N(); j++ {
		fmt.Fprintf(&buf, "[%d] %.4g | %.4g | %.4g = %.4g\n", j, sys.A[j], sys.B[j], sys.C[j], sys.D[j])
	}
	return buf.String()
}
