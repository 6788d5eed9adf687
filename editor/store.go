package editor

import (
	"github.com/npillmayer/splinefit"
	"github.com/npillmayer/splinefit/cspline"
	"github.com/npillmayer/splinefit/polygon"
)

// DefaultPickRadius is the half-width of the box around a control point
// within which the pointer selects it.
const DefaultPickRadius = 5.0

// Store holds the control points in insertion order, together with their
// selection state.
type Store struct {
	points []cspline.ControlPoint
	pick   float64
}

// NewStore creates an empty store. Points are picked within a square of
// half-width pickRadius.
func NewStore(pickRadius float64) *Store {
	if pickRadius <= 0 {
		pickRadius = DefaultPickRadius
	}
	return &Store{pick: pickRadius}
}

// Add appends a control point and returns its index.
func (s *Store) Add(p splinefit.Pair) int {
	s.points = append(s.points, cspline.ControlPoint{X: p.X(), Y: p.Y()})
	tracer().Debugf("added control point #%d at %v", len(s.points)-1, p)
	return len(s.points) - 1
}

// Len returns the number of control points.
func (s *Store) Len() int {
	return len(s.points)
}

// Points returns a copy of the control points.
func (s *Store) Points() []cspline.ControlPoint {
	return append([]cspline.ControlPoint(nil), s.points...)
}

// Hover selects every control point whose pick box contains p and
// deselects all others. It reports whether any selection changed.
func (s *Store) Hover(p splinefit.Pair) bool {
	changed := false
	for i := range s.points {
		sel := s.PickBox(i).Encloses(p)
		if sel != s.points[i].Selected {
			s.points[i].Selected = sel
			changed = true
		}
	}
	return changed
}

// Selected returns the index of the selected control point, or -1. If more
// than one point is selected, the most recently added one wins.
func (s *Store) Selected() int {
	for i := len(s.points) - 1; i >= 0; i-- {
		if s.points[i].Selected {
			return i
		}
	}
	return -1
}

// Move sets the position of control point i.
func (s *Store) Move(i int, p splinefit.Pair) {
	s.points[i].X, s.points[i].Y = p.X(), p.Y()
}

// Clear removes all control points.
func (s *Store) Clear() {
	s.points = s.points[:0]
}

// PickBox returns the box around control point i within which it is picked.
func (s *Store) PickBox(i int) *polygon.Polygon {
	return polygon.PickBox(s.points[i].Z(), s.pick)
}

// ControlPolygon returns the open polygon through all control points.
func (s *Store) ControlPolygon() *polygon.Polygon {
	return polygon.FromPairs(cspline.Pairs(s.points))
}
