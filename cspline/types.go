package cspline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinefit"
)

// tracer writes to trace with key 'splinefit'
func tracer() tracing.Trace {
	return tracing.Select("splinefit")
}

// MinPoints is the smallest number of control points a spline is fitted to.
// The boundary estimates reference three points at either end.
const MinPoints = 4

var (
	// ErrInsufficientPoints indicates fewer than MinPoints control points.
	ErrInsufficientPoints = errors.New("too few control points")
	// ErrInvalidSampleCount indicates a sample count below 2.
	ErrInvalidSampleCount = errors.New("invalid sample count")
	// ErrDegenerateSystem indicates non-increasing parameters or a singular system.
	ErrDegenerateSystem = errors.New("degenerate spline system")
	// ErrNoModeSelected indicates that no parametrization is active.
	ErrNoModeSelected = errors.New("no parametrization selected")
	// ErrUnknownMode indicates a mode name which denotes no parametrization.
	ErrUnknownMode = errors.New("unknown parametrization")
	// ErrAmbiguousMode indicates that more than one parametrization is active.
	ErrAmbiguousMode = errors.New("more than one parametrization selected")
	// ErrInvalidPoint indicates a control point coordinate containing NaN/Inf.
	ErrInvalidPoint = errors.New("control point has invalid coordinate")
	// ErrMomentMismatch indicates moment vectors not matching the control points.
	ErrMomentMismatch = errors.New("moment count does not match control points")
)

// ControlPoint is a user-placed anchor the spline passes through.
// X and Y are owned by the caller; T is written by AssignParameters.
type ControlPoint struct {
	X, Y     float64
	T        float64 // assigned parameter
	Selected bool
}

// Z returns the position of a control point as a pair.
func (cp ControlPoint) Z() splinefit.Pair {
	return splinefit.P(cp.X, cp.Y)
}

// Sample is a point on an evaluated curve.
type Sample = splinefit.Pair

// Mode is a parametrization scheme.
type Mode int

// Parametrization schemes. The zero value NoMode selects none.
const (
	NoMode Mode = iota
	Uniform
	Chordal
	Centripetal
)

func (m Mode) String() string {
	switch m {
	case Uniform:
		return "uniform"
	case Chordal:
		return "chordal"
	case Centripetal:
		return "centripetal"
	}
	return "none"
}

// Valid is a predicate: does m denote one of the three parametrizations?
func (m Mode) Valid() bool {
	return m == Uniform || m == Chordal || m == Centripetal
}

// ParseMode returns the mode for a name as returned by Mode.String.
// Case is ignored.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform":
		return Uniform, nil
	case "chordal":
		return Chordal, nil
	case "centripetal":
		return Centripetal, nil
	}
	return NoMode, fmt.Errorf("%w %q", ErrUnknownMode, s)
}

// ModeFromFlags maps three checkbox-style flags onto a mode. Exactly one
// flag must be set.
func ModeFromFlags(uniform, chordal, centripetal bool) (Mode, error) {
	var mode Mode
	cnt := 0
	for _, f := range []struct {
		on   bool
		mode Mode
	}{{uniform, Uniform}, {chordal, Chordal}, {centripetal, Centripetal}} {
		if f.on {
			mode = f.mode
			cnt++
		}
	}
	switch cnt {
	case 0:
		return NoMode, ErrNoModeSelected
	case 1:
		return mode, nil
	}
	return NoMode, fmt.Errorf("%w: %d flags set", ErrAmbiguousMode, cnt)
}

// Knots creates a sequence of control points from pairs. Parameters are
// left at 0 and are assigned when fitting.
func Knots(pairs ...splinefit.Pair) []ControlPoint {
	points := make([]ControlPoint, len(pairs))
	for i, p := range pairs {
		points[i] = ControlPoint{X: p.X(), Y: p.Y()}
	}
	return points
}

// Pairs returns the positions of a sequence of control points.
func Pairs(points []ControlPoint) []splinefit.Pair {
	pairs := make([]splinefit.Pair, len(points))
	for i, cp := range points {
		pairs[i] = cp.Z()
	}
	return pairs
}

// Parameters returns the assigned parameters of a sequence of control points.
func Parameters(points []ControlPoint) []float64 {
	t := make([]float64, len(points))
	for i, cp := range points {
		t[i] = cp.T
	}
	return t
}
