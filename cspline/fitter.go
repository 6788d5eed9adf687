package cspline

import (
	"fmt"
)

// Fitter composes the three stages of spline fitting. Every stage may be
// replaced, e.g. to observe or instrument it; NewFitter wires the default
// implementations of this package.
type Fitter struct {
	Assign   func(points []ControlPoint, mode Mode) error
	Solve    func(points []ControlPoint) (mx, my []float64, err error)
	Evaluate func(points []ControlPoint, mx, my []float64, N int) ([]Sample, error)
}

// NewFitter returns a fitter using AssignParameters, SolveMoments and Evaluate.
func NewFitter() *Fitter {
	return &Fitter{
		Assign:   AssignParameters,
		Solve:    SolveMoments,
		Evaluate: Evaluate,
	}
}

// Fit computes N samples of the spline through points, parametrized by mode.
//
// Preconditions are checked before any stage runs: at least MinPoints valid
// control points, N ≥ 2 and a valid mode. If any check or stage fails, no
// samples are returned. The only field of points written is T.
func (f *Fitter) Fit(points []ControlPoint, mode Mode, N int) ([]Sample, error) {
	if err := Validate(points); err != nil {
		tracer().Infof("fit rejected: %v", err)
		return nil, err
	}
	if N < 2 {
		tracer().Infof("fit rejected: %d samples", N)
		return nil, fmt.Errorf("%w: need at least 2, got %d", ErrInvalidSampleCount, N)
	}
	if !mode.Valid() {
		tracer().Infof("fit rejected: no parametrization")
		return nil, ErrNoModeSelected
	}
	tracer().Debugf("fit %d control points, %s parametrization, %d samples", len(points), mode, N)
	if err := f.Assign(points, mode); err != nil {
		return nil, err
	}
	tracer().Debugf("t = %v", Parameters(points))
	mx, my, err := f.Solve(points)
	if err != nil {
		return nil, err
	}
	return f.Evaluate(points, mx, my, N)
}

// Fit computes N samples of the spline through points with the default
// fitter. See Fitter.Fit.
func Fit(points []ControlPoint, mode Mode, N int) ([]Sample, error) {
	return NewFitter().Fit(points, mode, N)
}

// MustFit is a convenience helper which panics on errors.
func MustFit(points []ControlPoint, mode Mode, N int) []Sample {
	samples, err := Fit(points, mode, N)
	if err != nil {
		panic(err)
	}
	return samples
}
