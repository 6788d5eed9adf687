/*
Package editor holds the interactive side of spline fitting: a store of
control points, the user's display choices, and an input router which
turns pointer events into edits and refits the curve after each of them.

All coordinates are canvas coordinates with the y-axis pointing upwards.
Front ends convert pointer positions, e.g. with splinefit.ScreenToCanvas.

Pointer events follow the usual press-move-release cycle:

	Hover(p)    // pointer moves, no button down: select points under p
	Press(p)    // button goes down: start dragging a selected point, if any
	Drag(p)     // pointer moves with button down: move the dragged point
	Release(p)  // button goes up: add a point at p if nothing was dragged

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package editor

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinefit"
	"github.com/npillmayer/splinefit/cspline"
	"github.com/npillmayer/splinefit/render"
)

// tracer traces with key 'graphics'.
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Editor routes pointer events and settings changes to a point store and
// keeps the fitted curve up to date.
type Editor struct {
	State    State
	store    *Store
	fitter   *cspline.Fitter
	curve    []cspline.Sample
	err      error
	dragging int  // index of dragged point, -1 if none
	down     bool // button is down
}

// Option configures an editor.
type Option func(*Editor)

// WithMode sets the initial parametrization.
func WithMode(mode cspline.Mode) Option {
	return func(e *Editor) {
		e.State.Mode = mode
	}
}

// WithSampleCount sets the initial number of curve samples.
func WithSampleCount(n int) Option {
	return func(e *Editor) {
		e.State.Samples = n
	}
}

// WithPickRadius sets the half-width of pick boxes around control points.
func WithPickRadius(r float64) Option {
	return func(e *Editor) {
		e.store = NewStore(r)
	}
}

// WithFitter replaces the default fitting pipeline.
func WithFitter(f *cspline.Fitter) Option {
	return func(e *Editor) {
		e.fitter = f
	}
}

// WithState sets the initial display state.
func WithState(st State) Option {
	return func(e *Editor) {
		e.State = st
	}
}

// New creates an editor without control points.
func New(opts ...Option) *Editor {
	e := &Editor{
		State:    DefaultState(),
		store:    NewStore(DefaultPickRadius),
		fitter:   cspline.NewFitter(),
		dragging: -1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Store returns the editor's control point store.
func (e *Editor) Store() *Store {
	return e.store
}

// Curve returns the most recent successfully fitted curve samples.
func (e *Editor) Curve() []cspline.Sample {
	return e.curve
}

// Err returns the error of the most recent fit or settings change, if any.
func (e *Editor) Err() error {
	return e.err
}

// Dragging returns the index of the point being dragged, or -1.
func (e *Editor) Dragging() int {
	return e.dragging
}

// --- Pointer events --------------------------------------------------------

// Hover updates the selection of control points under p. While the button
// is down selection is frozen.
func (e *Editor) Hover(p splinefit.Pair) {
	if e.down {
		return
	}
	e.store.Hover(p)
}

// Press starts a drag if a control point is selected.
func (e *Editor) Press(p splinefit.Pair) {
	e.down = true
	e.dragging = e.store.Selected()
	if e.dragging >= 0 {
		tracer().Debugf("start dragging control point #%d", e.dragging)
	}
}

// Drag moves the dragged control point, if any, to p and refits.
func (e *Editor) Drag(p splinefit.Pair) {
	if !e.down || e.dragging < 0 {
		return
	}
	e.store.Move(e.dragging, p)
	e.update()
}

// Release ends a drag. If no point was dragged, it adds a control point at p.
func (e *Editor) Release(p splinefit.Pair) {
	if !e.down {
		return
	}
	e.down = false
	if e.dragging >= 0 {
		tracer().Debugf("dropped control point #%d at %v", e.dragging, p)
		e.dragging = -1
		return
	}
	e.store.Add(p)
	e.update()
}

// Add appends a control point at p and refits.
func (e *Editor) Add(p splinefit.Pair) {
	e.store.Add(p)
	e.update()
}

// Clear removes all control points and the curve.
func (e *Editor) Clear() {
	e.store.Clear()
	e.curve = nil
	e.err = nil
	e.dragging, e.down = -1, false
}

// --- Settings --------------------------------------------------------------

// SetMode switches the parametrization and refits. An invalid mode is
// rejected and leaves state and curve unchanged.
func (e *Editor) SetMode(mode cspline.Mode) error {
	if !mode.Valid() {
		e.err = cspline.ErrNoModeSelected
		tracer().Infof("mode %s rejected", mode)
		return e.err
	}
	e.State.Mode = mode
	e.update()
	return nil
}

// SetFlags switches the parametrization from checkbox-style flags. Zero or
// several active flags are rejected and leave state and curve unchanged.
func (e *Editor) SetFlags(uniform, chordal, centripetal bool) error {
	if err := e.State.SetFlags(uniform, chordal, centripetal); err != nil {
		e.err = err
		tracer().Infof("mode flags rejected: %v", err)
		return err
	}
	e.update()
	return nil
}

// SetSampleCount changes the number of curve samples and refits. Counts
// below 2 are rejected.
func (e *Editor) SetSampleCount(n int) error {
	if n < 2 {
		e.err = cspline.ErrInvalidSampleCount
		tracer().Infof("sample count %d rejected", n)
		return e.err
	}
	e.State.Samples = n
	e.update()
	return nil
}

// ToggleSpline switches fitting and display of the spline on or off. When
// switched on, the curve is refitted.
func (e *Editor) ToggleSpline() {
	e.State.ShowSpline = !e.State.ShowSpline
	e.update()
}

// Refit runs the fitting pipeline on the current control points. On error
// the previous curve is kept.
func (e *Editor) Refit() error {
	samples, err := e.fitter.Fit(e.store.points, e.State.Mode, e.State.Samples)
	e.err = err
	if err != nil {
		tracer().Infof("refit failed, keeping previous curve: %v", err)
		return err
	}
	e.curve = samples
	tracer().Debugf("refit %d points to %d samples", e.store.Len(), len(samples))
	return nil
}

func (e *Editor) update() {
	if e.State.ShowSpline && e.store.Len() > 0 {
		_ = e.Refit()
	}
}

// Scene returns what is currently to be displayed.
func (e *Editor) Scene() render.Scene {
	sc := render.Scene{
		ControlPolygon: e.State.ControlPolygon,
		ShowPoints:     e.State.ShowPoints,
		SplineAsPoints: e.State.SplineAsPoints,
		SplineAsLine:   e.State.SplineAsLine,
		Points:         e.store.Points(),
	}
	if e.State.ShowSpline {
		sc.Curve = e.curve
	}
	return sc
}
