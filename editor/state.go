package editor

import (
	"fmt"

	"github.com/npillmayer/splinefit/cspline"
)

// DefaultSamples is the number of curve samples unless configured otherwise.
const DefaultSamples = 100

// State collects the user's choices: parametrization, sample count and
// what to display.
type State struct {
	Mode           cspline.Mode
	Samples        int
	ShowSpline     bool // fit and display the spline at all
	ControlPolygon bool // connect control points by straight lines
	ShowPoints     bool // display control points
	SplineAsPoints bool // display curve samples as dots
	SplineAsLine   bool // connect curve samples by a line strip
}

// DefaultState returns the initial display state: chordal parametrization,
// spline hidden, control points shown, samples drawn as dots.
func DefaultState() State {
	return State{
		Mode:           cspline.Chordal,
		Samples:        DefaultSamples,
		ShowPoints:     true,
		SplineAsPoints: true,
	}
}

// SetFlags selects the parametrization from three checkbox-style flags.
// On error the state is unchanged.
func (st *State) SetFlags(uniform, chordal, centripetal bool) error {
	mode, err := cspline.ModeFromFlags(uniform, chordal, centripetal)
	if err != nil {
		return err
	}
	st.Mode = mode
	return nil
}

func (st State) String() string {
	return fmt.Sprintf("mode=%s samples=%d spline=%t polygon=%t points=%t dots=%t line=%t",
		st.Mode, st.Samples, st.ShowSpline, st.ControlPolygon, st.ShowPoints,
		st.SplineAsPoints, st.SplineAsLine)
}
