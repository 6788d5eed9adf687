/*
Package render draws control points and fitted curves off-screen, either
into an image or as a pyplot figure.

Scenes are given in canvas coordinates (origin bottom-left, y pointing up),
the way the editor holds them. Images have their origin top-left.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinefit"
	"github.com/npillmayer/splinefit/cspline"
	"github.com/npillmayer/splinefit/polygon"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// tracer traces with key 'graphics'.
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// ErrSize is returned for images without area.
var ErrSize = errors.New("image size must be positive")

// Scene is everything to be drawn.
type Scene struct {
	Points         []cspline.ControlPoint
	Curve          []cspline.Sample
	ControlPolygon bool
	ShowPoints     bool
	SplineAsPoints bool
	SplineAsLine   bool
}

// Colors and sizes, in pixels.
var (
	Background    color.Color = color.RGBA{255, 255, 255, 255}
	PointColor    color.Color = color.RGBA{0, 0, 0, 255}
	SelectedColor color.Color = color.RGBA{128, 128, 0, 255}
	PolygonColor  color.Color = color.RGBA{0, 0, 0, 255}
	SplineColor   color.Color = color.RGBA{255, 0, 0, 255}
)

const (
	PointSize  = 10.0
	SampleSize = 7.0
	LineWidth  = 1.0
)

// Options configure rasterization.
type Options struct {
	Width, Height int
	Fit           bool    // scale the scene to fill the image
	Margin        float64 // margin around a fitted scene
	Supersample   int     // render at this factor, then scale down
	Title         string  // caption at the top left
}

// DefaultOptions returns a 640×480 image without fitting or supersampling.
func DefaultOptions() Options {
	return Options{
		Width:       640,
		Height:      480,
		Margin:      20,
		Supersample: 1,
	}
}

// Rasterize draws a scene into a new image.
func Rasterize(sc Scene, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrSize, opts.Width, opts.Height)
	}
	k := opts.Supersample
	if k < 1 {
		k = 1
	}
	at := viewport(sc, opts).Combine(splinefit.Scaling(float64(k), float64(k)))
	pt := newPainter(opts.Width*k, opts.Height*k, at, float64(k))
	pt.paint(sc)
	img := pt.img
	if k > 1 {
		img = image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
		xdraw.CatmullRom.Scale(img, img.Bounds(), pt.img, pt.img.Bounds(), xdraw.Src, nil)
	}
	if opts.Title != "" {
		if err := caption(img, opts.Title, PointColor); err != nil {
			return img, err
		}
	}
	tracer().Debugf("rasterized %d points and %d samples into %d×%d image",
		len(sc.Points), len(sc.Curve), opts.Width, opts.Height)
	return img, nil
}

// viewport returns the transform from canvas coordinates to image pixels.
func viewport(sc Scene, opts Options) splinefit.AT {
	h := float64(opts.Height)
	if !opts.Fit {
		return splinefit.ScreenToCanvas(h)
	}
	min, max := polygon.Bounds(
		polygon.FromPairs(cspline.Pairs(sc.Points)),
		polygon.FromPairs(sc.Curve),
	)
	w := float64(opts.Width)
	s := math.Inf(1)
	if dx := max.X() - min.X(); dx > 0 {
		s = math.Min(s, (w-2*opts.Margin)/dx)
	}
	if dy := max.Y() - min.Y(); dy > 0 {
		s = math.Min(s, (h-2*opts.Margin)/dy)
	}
	if math.IsInf(s, 1) || s <= 0 {
		s = 1
	}
	center := (min + max).Scaled(0.5)
	return splinefit.Translation(-center).
		Combine(splinefit.Scaling(s, s)).
		Combine(splinefit.Translation(splinefit.P(w/2, h/2))).
		Combine(splinefit.ScreenToCanvas(h))
}

// --- Painter ---------------------------------------------------------------

// painter fills shapes in pixel space, one color at a time.
type painter struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	at    splinefit.AT
	scale float64
}

func newPainter(w, h int, at splinefit.AT, scale float64) *painter {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, xdraw.Src)
	return &painter{
		img:   img,
		z:     vector.NewRasterizer(w, h),
		at:    at,
		scale: scale,
	}
}

func (pt *painter) paint(sc Scene) {
	if sc.ControlPolygon && len(sc.Points) > 1 {
		pt.strip(cspline.Pairs(sc.Points), LineWidth)
		pt.fill(PolygonColor)
	}
	if len(sc.Curve) > 0 {
		if sc.SplineAsLine {
			pt.strip(sc.Curve, LineWidth)
		}
		if sc.SplineAsPoints {
			for _, s := range sc.Curve {
				pt.square(s, SampleSize)
			}
		}
		pt.fill(SplineColor)
	}
	if sc.ShowPoints {
		for _, p := range sc.Points {
			if !p.Selected {
				pt.square(p.Z(), PointSize)
			}
		}
		pt.fill(PointColor)
		for _, p := range sc.Points {
			if p.Selected {
				pt.square(p.Z(), PointSize)
			}
		}
		pt.fill(SelectedColor)
	}
}

// fill draws all accumulated shapes in color c.
func (pt *painter) fill(c color.Color) {
	b := pt.img.Bounds()
	pt.z.Draw(pt.img, b, image.NewUniform(c), image.Point{})
	pt.z.Reset(b.Dx(), b.Dy())
}

// square adds an axis-aligned square of the given size, centered at p.
func (pt *painter) square(p splinefit.Pair, size float64) {
	q := pt.at.Transform(p)
	r := size * pt.scale / 2
	x0, y0 := float32(q.X()-r), float32(q.Y()-r)
	x1, y1 := float32(q.X()+r), float32(q.Y()+r)
	pt.z.MoveTo(x0, y0)
	pt.z.LineTo(x1, y0)
	pt.z.LineTo(x1, y1)
	pt.z.LineTo(x0, y1)
	pt.z.ClosePath()
}

// strip adds line segments connecting consecutive points.
func (pt *painter) strip(pts []splinefit.Pair, width float64) {
	for i := 1; i < len(pts); i++ {
		pt.segment(pts[i-1], pts[i], width)
	}
}

// segment adds a line as a thin quad.
func (pt *painter) segment(p0, p1 splinefit.Pair, width float64) {
	q0, q1 := pt.at.Transform(p0), pt.at.Transform(p1)
	l := q0.Dist(q1)
	if splinefit.Is0(l) {
		return
	}
	w := width * pt.scale / 2
	d := q1 - q0
	n := splinefit.P(-d.Y()*w/l, d.X()*w/l)
	corners := []splinefit.Pair{q0 + n, q1 + n, q1 - n, q0 - n}
	pt.z.MoveTo(float32(corners[0].X()), float32(corners[0].Y()))
	for _, c := range corners[1:] {
		pt.z.LineTo(float32(c.X()), float32(c.Y()))
	}
	pt.z.ClosePath()
}
