package cspline

import (
	"fmt"

	"github.com/npillmayer/splinefit"
	"github.com/npillmayer/splinefit/tridiag"
)

// Validate checks if a sequence of control points may be fitted: it needs at
// least MinPoints points with finite coordinates, and no two consecutive
// points may coincide.
func Validate(points []ControlPoint) error {
	n := len(points)
	if n < MinPoints {
		return fmt.Errorf("%w: need at least %d, got %d", ErrInsufficientPoints, MinPoints, n)
	}
	for i, cp := range points {
		if !cp.Z().IsFinite() {
			return fmt.Errorf("%w at point %d", ErrInvalidPoint, i)
		}
	}
	for i := 1; i < n; i++ {
		if points[i-1].Z() == points[i].Z() {
			return fmt.Errorf("%w: points %d and %d coincide", ErrDegenerateSystem, i-1, i)
		}
	}
	return nil
}

// SolveMoments computes the spline moments, i.e. the second derivatives at
// every control point, separately for x and y. Parameters must have been
// assigned and must be strictly increasing.
//
// Rows 0 and n-1 fix the end moments to finite-difference estimates of the
// second derivative. Interior row j reads
//
//	h.j·M.j-1 + 2(h.j-1 + h.j)·M.j + h.j-1·M.j+1 = 6(s.j - s.j-1)
//
// with h.j = t.j+1 - t.j and s.j the slope of chord j. Note that the
// interval widths enter with sub- and super-diagonal exchanged with respect
// to the textbook system. Both agree for uniform spacing.
func SolveMoments(points []ControlPoint) (mx, my []float64, err error) {
	n := len(points)
	if n < 3 {
		return nil, nil, fmt.Errorf("%w: solver needs at least 3, got %d", ErrInsufficientPoints, n)
	}
	if err = checkParameters(points); err != nil {
		return nil, nil, err
	}
	sys := tridiag.NewSystem(n)
	dx, dy := make([]float64, n), make([]float64, n)
	ddp0, ddpn := boundaryCurvature(points)
	sys.SetRow(0, 0, 1, 0, 0)
	dx[0], dy[0] = ddp0.X(), ddp0.Y()
	for j := 1; j < n-1; j++ {
		c := points[j].T - points[j-1].T
		a := points[j+1].T - points[j].T
		sys.SetRow(j, a, 2*(a+c), c, 0)
		s0, s1 := slope(points, j-1), slope(points, j)
		dx[j] = 6 * (s1.X() - s0.X())
		dy[j] = 6 * (s1.Y() - s0.Y())
	}
	sys.SetRow(n-1, 0, 1, 0, 0)
	dx[n-1], dy[n-1] = ddpn.X(), ddpn.Y()
	tracer().Debugf("moment system:\n%s", sys)
	if mx, err = sys.WithRHS(dx).Solve(); err != nil {
		return nil, nil, fmt.Errorf("%w: x-axis: %w", ErrDegenerateSystem, err)
	}
	if my, err = sys.WithRHS(dy).Solve(); err != nil {
		return nil, nil, fmt.Errorf("%w: y-axis: %w", ErrDegenerateSystem, err)
	}
	return mx, my, nil
}

// checkParameters verifies t.0 < t.1 < … < t.n-1.
func checkParameters(points []ControlPoint) error {
	for i := 1; i < len(points); i++ {
		h := points[i].T - points[i-1].T
		if !(h > 0) || !splinefit.IsFinite(h) {
			return fmt.Errorf("%w: parameters t.%d = %g, t.%d = %g not increasing",
				ErrDegenerateSystem, i-1, points[i-1].T, i, points[i].T)
		}
	}
	return nil
}

// slope returns the first derivative estimate (p.i+1 - p.i) / (t.i+1 - t.i)
// of chord i.
func slope(points []ControlPoint, i int) splinefit.Pair {
	h := points[i+1].T - points[i].T
	return splinefit.P(
		(points[i+1].X-points[i].X)/h,
		(points[i+1].Y-points[i].Y)/h,
	)
}

// boundaryCurvature estimates the second derivative at the first and at the
// last control point from the first and the last three points.
func boundaryCurvature(points []ControlPoint) (ddp0, ddpn splinefit.Pair) {
	n := len(points)
	dp0, dp1 := slope(points, 0), slope(points, 1)
	h0 := points[1].T - points[0].T
	ddp0 = splinefit.P((dp1.X()-dp0.X())/h0, (dp1.Y()-dp0.Y())/h0)
	dpn1, dpn := slope(points, n-3), slope(points, n-2)
	hn := points[n-1].T - points[n-2].T
	ddpn = splinefit.P((dpn.X()-dpn1.X())/hn, (dpn.Y()-dpn1.Y())/hn)
	tracer().Debugf("boundary curvature %v, %v", ddp0, ddpn)
	return ddp0, ddpn
}
