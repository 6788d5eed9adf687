package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splinefit"
	"github.com/npillmayer/splinefit/cspline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var white = color.RGBA{255, 255, 255, 255}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestEmptyScene(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	img, err := Rasterize(Scene{ShowPoints: true}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 640, 480), img.Bounds())
	for _, pt := range []image.Point{{0, 0}, {320, 240}, {639, 479}} {
		assert.Equal(t, white, img.RGBAAt(pt.X, pt.Y))
	}
}

func TestControlPointsAreFlipped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelDebug)
	//
	points := cspline.Knots(splinefit.P(100, 100), splinefit.P(300, 200))
	points[1].Selected = true
	img, err := Rasterize(Scene{Points: points, ShowPoints: true}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, rgba(PointColor), img.RGBAAt(100, 380))
	assert.Equal(t, rgba(SelectedColor), img.RGBAAt(300, 280))
	assert.Equal(t, white, img.RGBAAt(100, 100), "y-axis points upwards")
	assert.Equal(t, white, img.RGBAAt(106, 380), "outside of point square")
}

func TestHiddenPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	points := cspline.Knots(splinefit.P(100, 100))
	img, err := Rasterize(Scene{Points: points}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, white, img.RGBAAt(100, 380))
}

func TestCurveSamples(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	sc := Scene{
		Curve:          []cspline.Sample{splinefit.P(200, 200), splinefit.P(400, 200)},
		SplineAsPoints: true,
	}
	img, err := Rasterize(sc, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, rgba(SplineColor), img.RGBAAt(200, 280))
	assert.Equal(t, white, img.RGBAAt(300, 280), "no line between samples")
	sc.SplineAsLine = true
	img, err = Rasterize(sc, DefaultOptions())
	require.NoError(t, err)
	c := img.RGBAAt(300, 279)
	assert.Equal(t, uint8(255), c.R)
	assert.Less(t, c.G, uint8(200), "line between samples")
}

func TestControlPolygon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	sc := Scene{
		Points:         cspline.Knots(splinefit.P(10, 100), splinefit.P(300, 100)),
		ControlPolygon: true,
	}
	img, err := Rasterize(sc, DefaultOptions())
	require.NoError(t, err)
	assert.Less(t, img.RGBAAt(150, 379).R, uint8(200))
	assert.Equal(t, white, img.RGBAAt(150, 300))
	sc.ControlPolygon = false
	img, _ = Rasterize(sc, DefaultOptions())
	assert.Equal(t, white, img.RGBAAt(150, 379))
}

func TestFitViewport(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	opts := DefaultOptions()
	opts.Fit = true
	sc := Scene{Points: cspline.Knots(splinefit.P(-5000, 7000)), ShowPoints: true}
	img, err := Rasterize(sc, opts)
	require.NoError(t, err)
	assert.Equal(t, rgba(PointColor), img.RGBAAt(320, 240), "single point is centered")
	//
	sc.Points = cspline.Knots(splinefit.P(0, 0), splinefit.P(1, 1))
	img, err = Rasterize(sc, opts)
	require.NoError(t, err)
	// scale is limited by height: (480-40)/1, x centered at 320
	assert.Equal(t, rgba(PointColor), img.RGBAAt(100, 459))
	assert.Equal(t, rgba(PointColor), img.RGBAAt(540, 20))
}

func TestSupersampling(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	opts := DefaultOptions()
	opts.Supersample = 2
	sc := Scene{Points: cspline.Knots(splinefit.P(100, 100)), ShowPoints: true}
	img, err := Rasterize(sc, opts)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 640, 480), img.Bounds())
	assert.Less(t, img.RGBAAt(100, 380).R, uint8(32))
	assert.Equal(t, white, img.RGBAAt(200, 200))
}

func TestCaption(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	opts := DefaultOptions()
	opts.Title = "Chordal"
	img, err := Rasterize(Scene{}, opts)
	require.NoError(t, err)
	dark := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y).R < 128 {
				dark++
			}
		}
	}
	assert.Greater(t, dark, 10)
}

func TestSizeAndPNG(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	_, err := Rasterize(Scene{}, Options{Width: 0, Height: 10})
	assert.ErrorIs(t, err, ErrSize)
	img, err := Rasterize(Scene{}, Options{Width: 32, Height: 16})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))
	dec, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 16), dec.Bounds())
}

func TestTitle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	assert.Equal(t, "Centripetal spline, 5 points, 10 samples", Title(cspline.Centripetal, 5, 10))
	assert.Equal(t, "None spline, 0 points, 0 samples", Title(cspline.NoMode, 0, 0))
}
