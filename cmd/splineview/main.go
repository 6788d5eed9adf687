/*
Command splineview is an interactive spline editor.

Click into the window to add control points, drag control points to move
them. Keys:

	U, C, P   uniform, chordal or centripetal parametrization
	L         show or hide the spline
	K         show or hide the control polygon
	S         show or hide control points
	V         draw spline samples as dots
	W         draw spline samples as a line strip
	+, -      more or fewer samples
	X         remove all control points
	Esc       quit

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/splinefit"
	"github.com/npillmayer/splinefit/cspline"
	"github.com/npillmayer/splinefit/editor"
	"github.com/npillmayer/splinefit/render"
	"golang.org/x/time/rate"
)

const sampleStep = 10

var statusBar = color.RGBA{64, 64, 64, 255}

// viewer is an ebiten game driving an editor.
type viewer struct {
	ed       *editor.Editor
	w, h     int
	toCanvas splinefit.AT
	cursor   splinefit.Pair
	repeat   *rate.Limiter // sample count changes while +/- is held
}

func newViewer(ed *editor.Editor, w, h int) *viewer {
	return &viewer{
		ed:       ed,
		w:        w,
		h:        h,
		toCanvas: splinefit.ScreenToCanvas(float64(h)),
		cursor:   splinefit.P(-1, -1),
		repeat:   rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
	}
}

func (v *viewer) Update() error {
	x, y := ebiten.CursorPosition()
	p := v.toCanvas.Transform(splinefit.P(float64(x), float64(y)))
	moved := !p.Equal(v.cursor)
	v.cursor = p
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		v.ed.Press(p)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		v.ed.Release(p)
	case moved && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		v.ed.Drag(p)
	case moved:
		v.ed.Hover(p)
	}
	return v.keys()
}

func (v *viewer) keys() error {
	st := &v.ed.State
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		_ = v.ed.SetMode(cspline.Uniform)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		_ = v.ed.SetMode(cspline.Chordal)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		_ = v.ed.SetMode(cspline.Centripetal)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		v.ed.ToggleSpline()
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		st.ControlPolygon = !st.ControlPolygon
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		st.ShowPoints = !st.ShowPoints
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		st.SplineAsPoints = !st.SplineAsPoints
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		st.SplineAsLine = !st.SplineAsLine
	case held(ebiten.KeyEqual, ebiten.KeyNumpadAdd) && v.repeat.Allow():
		_ = v.ed.SetSampleCount(st.Samples + sampleStep)
	case held(ebiten.KeyMinus, ebiten.KeyNumpadSubtract) && v.repeat.Allow():
		if st.Samples > sampleStep {
			_ = v.ed.SetSampleCount(st.Samples - sampleStep)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		v.ed.Clear()
	}
	return nil
}

func held(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	sc := v.ed.Scene()
	if sc.ControlPolygon {
		v.strip(screen, cspline.Pairs(sc.Points), render.PolygonColor)
	}
	if len(sc.Curve) > 0 {
		if sc.SplineAsLine {
			v.strip(screen, sc.Curve, render.SplineColor)
		}
		if sc.SplineAsPoints {
			for _, s := range sc.Curve {
				v.square(screen, s, render.SampleSize, render.SplineColor)
			}
		}
	}
	if sc.ShowPoints {
		for _, p := range sc.Points {
			c := render.PointColor
			if p.Selected {
				c = render.SelectedColor
			}
			v.square(screen, p.Z(), render.PointSize, c)
		}
	}
	v.status(screen)
}

func (v *viewer) strip(screen *ebiten.Image, pts []splinefit.Pair, c color.Color) {
	for i := 1; i < len(pts); i++ {
		p0, p1 := v.toCanvas.Transform(pts[i-1]), v.toCanvas.Transform(pts[i])
		vector.StrokeLine(screen, float32(p0.X()), float32(p0.Y()), float32(p1.X()), float32(p1.Y()),
			render.LineWidth, c, true)
	}
}

func (v *viewer) square(screen *ebiten.Image, p splinefit.Pair, size float64, c color.Color) {
	q := v.toCanvas.Transform(p)
	vector.DrawFilledRect(screen, float32(q.X()-size/2), float32(q.Y()-size/2),
		float32(size), float32(size), c, false)
}

func (v *viewer) status(screen *ebiten.Image) {
	st := v.ed.State
	msg := render.Title(st.Mode, v.ed.Store().Len(), st.Samples)
	if err := v.ed.Err(); err != nil && st.ShowSpline {
		msg += "  [" + err.Error() + "]"
	}
	vector.DrawFilledRect(screen, 0, 0, float32(v.w), 18, statusBar, false)
	ebitenutil.DebugPrintAt(screen, msg, 4, 1)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.w, v.h
}

func main() {
	width := flag.Int("w", 640, "window width")
	height := flag.Int("h", 480, "window height")
	mode := flag.String("mode", "chordal", "parametrization: uniform, chordal or centripetal")
	samples := flag.Int("n", editor.DefaultSamples, "number of curve samples")
	verbose := flag.Bool("v", false, "trace editing steps")
	flag.Parse()

	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	if *verbose {
		splinefit.SetTraceLevel(tracing.LevelDebug)
	}
	m, err := cspline.ParseMode(*mode)
	if err != nil {
		fail(err)
	}
	if *samples < 2 {
		fail(fmt.Errorf("%w: %d", cspline.ErrInvalidSampleCount, *samples))
	}
	ed := editor.New(editor.WithMode(m), editor.WithSampleCount(*samples))

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("splineview")
	if err = ebiten.RunGame(newViewer(ed, *width, *height)); err != nil && !errors.Is(err, ebiten.Termination) {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "splineview: %v\n", err)
	os.Exit(1)
}
