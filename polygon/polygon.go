// Package polygon deals with polygons made of straight line segments:
// control polygons of splines, pick boxes around control points, and
// bounding boxes for viewport computations.
//
// Polygons are stored as polyclip contours, see
// https://github.com/akavel/polyclip-go.
package polygon

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinefit"
)

// L traces with key 'graphics'.
func L() tracing.Trace {
	return tracing.Select("graphics")
}

// Polygon is a sequence of knots connected by straight lines, optionally
// closed. Build one with NullPolygon() or Box().
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
	rect    bool // axis-aligned box, edges enclose
}

// NullPolygon creates an empty polygon, to be extended by Knot().
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPairs creates an open polygon through a sequence of points.
func FromPairs(pts []splinefit.Pair) *Polygon {
	pg := NullPolygon()
	for _, p := range pts {
		pg.Knot(p)
	}
	return pg.End()
}

// Box creates a closed axis-aligned rectangle spanned by two corners.
func Box(p1, p2 splinefit.Pair) *Polygon {
	x0, x1 := minmax(p1.X(), p2.X())
	y0, y1 := minmax(p1.Y(), p2.Y())
	pg := NullPolygon().Knot(splinefit.P(x0, y0)).Knot(splinefit.P(x1, y0)).
		Knot(splinefit.P(x1, y1)).Knot(splinefit.P(x0, y1)).Cycle()
	pg.rect = true
	return pg
}

// PickBox creates a square box of half-width r around center.
func PickBox(center splinefit.Pair, r float64) *Polygon {
	d := splinefit.P(r, r)
	return Box(center-d, center+d)
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p splinefit.Pair) *Polygon {
	pg.contour.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// End finishes an open polygon. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Pt returns knot i.
func (pg *Polygon) Pt(i int) splinefit.Pair {
	pt := pg.contour[i]
	return splinefit.P(pt.X, pt.Y)
}

// BoundingBox returns the lower left and the upper right corner of the
// smallest axis-aligned rectangle containing all knots.
func (pg *Polygon) BoundingBox() (splinefit.Pair, splinefit.Pair) {
	if pg.N() == 0 {
		return splinefit.Origin, splinefit.Origin
	}
	r := pg.contour.BoundingBox()
	return splinefit.P(r.Min.X, r.Min.Y), splinefit.P(r.Max.X, r.Max.Y)
}

// Encloses is a predicate: does p lie within the polygon? For boxes, points
// on the border are enclosed. Open polygons are treated as if closed.
func (pg *Polygon) Encloses(p splinefit.Pair) bool {
	if pg.N() == 0 {
		return false
	}
	min, max := pg.BoundingBox()
	inside := min.X() <= p.X() && p.X() <= max.X() && min.Y() <= p.Y() && p.Y() <= max.Y()
	if !inside || pg.rect {
		return inside
	}
	return pg.contour.Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// Bounds returns the bounding box of a set of polygons. Empty polygons are
// ignored. If all polygons are empty, both corners are the origin.
func Bounds(pgs ...*Polygon) (splinefit.Pair, splinefit.Pair) {
	var poly polyclip.Polygon
	for _, pg := range pgs {
		if pg != nil && pg.N() > 0 {
			poly.Add(pg.contour)
		}
	}
	if len(poly) == 0 {
		return splinefit.Origin, splinefit.Origin
	}
	r := poly.BoundingBox()
	L().Debugf("bounds of %d polygons: (%g,%g)–(%g,%g)", len(poly), r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	return splinefit.P(r.Min.X, r.Min.Y), splinefit.P(r.Max.X, r.Max.Y)
}

// AsString returns a polygon as a (debugging) string in MetaPost notation:
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		pt := pg.contour[i]
		fmt.Fprintf(&sb, "(%g,%g)", pt.X, pt.Y)
	}
	if pg.cycle {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}

func minmax(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
