package cspline

import (
	"fmt"
	"math"
)

// AssignParameters assigns a parameter value T to every control point,
// according to mode. Nothing but T is modified.
//
// Uniform sets t.i = i/n. Chordal and centripetal start at t.0 = 0 and
// advance by the (square root of the) distance to the previous point,
// normalized by the total over the whole sequence, thus ending at 1.
//
// For NoMode, no parameter is touched and ErrNoModeSelected is returned.
func AssignParameters(points []ControlPoint, mode Mode) error {
	n := len(points)
	switch mode {
	case Uniform:
		for i := range points {
			points[i].T = float64(i) / float64(n)
		}
	case Chordal:
		return accumulate(points, func(d float64) float64 { return d })
	case Centripetal:
		return accumulate(points, math.Sqrt)
	default:
		return fmt.Errorf("%w: mode %d", ErrNoModeSelected, mode)
	}
	return nil
}

// accumulate assigns t.i = t.i-1 + w(d.i)/W, where d.i is the distance
// between points i-1 and i and W is the sum of all w(d.i).
func accumulate(points []ControlPoint, w func(float64) float64) error {
	if len(points) == 0 {
		return nil
	}
	weights := make([]float64, len(points))
	total := 0.0
	for i := 1; i < len(points); i++ {
		weights[i] = w(points[i-1].Z().Dist(points[i].Z()))
		total += weights[i]
	}
	if len(points) > 1 && !(total > 0) {
		return fmt.Errorf("%w: control polygon has zero length", ErrDegenerateSystem)
	}
	points[0].T = 0
	for i := 1; i < len(points); i++ {
		points[i].T = points[i-1].T + weights[i]/total
	}
	return nil
}
