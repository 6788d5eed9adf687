package cspline

import (
	"fmt"

	"github.com/npillmayer/splinefit"
)

// Evaluate samples the spline given by control points and moments at N
// parameter values, evenly spaced from t.0 to t.n-1 (both included).
func Evaluate(points []ControlPoint, mx, my []float64, N int) ([]Sample, error) {
	if N < 2 {
		return nil, fmt.Errorf("%w: need at least 2, got %d", ErrInvalidSampleCount, N)
	}
	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("%w: cannot evaluate %d points", ErrInsufficientPoints, n)
	}
	if len(mx) != n || len(my) != n {
		return nil, fmt.Errorf("%w: %d points, %d/%d moments", ErrMomentMismatch, n, len(mx), len(my))
	}
	if err := checkParameters(points); err != nil {
		return nil, err
	}
	t0, tn := points[0].T, points[n-1].T
	dt := (tn - t0) / float64(N-1)
	samples := make([]Sample, N)
	scan := segmentScanner{points: points}
	for j := 0; j < N; j++ {
		tau := t0 + float64(j)*dt
		if j == N-1 {
			tau = tn
		}
		i := scan.segment(tau)
		samples[j] = splinefit.P(
			cubicOnMoments(points[i].T, points[i+1].T, points[i].X, points[i+1].X, mx[i], mx[i+1], tau),
			cubicOnMoments(points[i].T, points[i+1].T, points[i].Y, points[i+1].Y, my[i], my[i+1], tau),
		)
	}
	return samples, nil
}

// segmentScanner tracks the active segment for non-decreasing parameter
// values. It never moves backwards.
type segmentScanner struct {
	points []ControlPoint
	i      int
}

// segment returns i with t.i ≤ tau ≤ t.i+1, given tau within the parameter
// range. tau = t.n-1 belongs to the last segment.
func (sc *segmentScanner) segment(tau float64) int {
	last := len(sc.points) - 2
	for tau > sc.points[sc.i+1].T && sc.i < last {
		sc.i++
	}
	return sc.i
}

// cubicOnMoments evaluates the cubic on [t0,t1] through p0 and p1 with
// second derivatives m0 and m1 at the interval ends.
func cubicOnMoments(t0, t1, p0, p1, m0, m1, tau float64) float64 {
	h := t1 - t0
	u, v := t1-tau, tau-t0
	return m0*u*u*u/(6*h) + m1*v*v*v/(6*h) +
		(p0-m0*h*h/6)*u/h + (p1-m1*h*h/6)*v/h
}
