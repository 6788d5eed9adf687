package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splinefit"
	"github.com/npillmayer/splinefit/cspline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleFile(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	cfg, err := ReadString(ExampleFile)
	require.NoError(t, err)
	mode, err := cfg.Curve.ParametrizationMode()
	require.NoError(t, err)
	assert.Equal(t, cspline.Chordal, mode)
	assert.Equal(t, 100, cfg.Curve.Samples)
	assert.Equal(t, 640, cfg.Output.Width)
	assert.True(t, cfg.Output.SplineAsLine)
	points, err := cfg.Curve.ControlPoints()
	require.NoError(t, err)
	require.Len(t, points, 4)
	assert.True(t, points[1].Z().Equal(splinefit.P(1, 2)))
	assert.True(t, points[3].Z().Equal(splinefit.P(4, 1)))
}

func TestOverrides(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	cfg, err := ReadString(`[Curve]
Mode = centripetal
Samples = 7
Point = 0, 0
Point = 1, 1

[Output]
PNG = out.png
Width = 100
Height = 50
SplineAsPoints = true
`)
	require.NoError(t, err)
	mode, _ := cfg.Curve.ParametrizationMode()
	assert.Equal(t, cspline.Centripetal, mode)
	assert.Equal(t, 7, cfg.Curve.Samples)
	assert.Equal(t, "out.png", cfg.Output.PNG)
	assert.Equal(t, 100, cfg.Output.Width)
	assert.Equal(t, 50, cfg.Output.Height)
	assert.True(t, cfg.Output.SplineAsPoints)
	assert.Len(t, cfg.Curve.Point, 2)
}

func TestCheckInit(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for _, test := range []struct {
		name string
		cfg  string
	}{
		{"unknown mode", "[Curve]\nMode = spiral\n"},
		{"no mode", "[Curve]\nMode = none\n"},
		{"too few samples", "[Curve]\nSamples = 1\n"},
		{"points twice", "[Curve]\nPoint = 1 1\nPointsFile = pts.txt\n"},
		{"empty image", "[Output]\nWidth = 0\n"},
	} {
		_, err := ReadString(test.cfg)
		assert.Truef(t, errors.Is(err, ErrConfig), "%s: expected ErrConfig, got %v", test.name, err)
	}
}

func TestSyntaxError(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	_, err := ReadString("[Curve]\nSamples = many\n")
	assert.Error(t, err)
	_, err = ReadString("[Unknown]\nFoo = 1\n")
	assert.Error(t, err)
}

func TestParsePoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for s, want := range map[string]splinefit.Pair{
		"1 2":          splinefit.P(1, 2),
		"  -1.5,  3e2": splinefit.P(-1.5, 300),
		"0,0":          splinefit.Origin,
	} {
		p, err := ParsePoint(s)
		require.NoError(t, err, s)
		assert.True(t, p.Equal(want), "%q: got %v", s, p)
	}
	for _, s := range []string{"", "1", "1 2 3", "x 1", "1 y"} {
		_, err := ParsePoint(s)
		assert.ErrorIs(t, err, ErrConfig, s)
	}
	cfg := Default()
	cfg.Curve.Point = []string{"1 1", "oops"}
	_, err := cfg.Curve.ControlPoints()
	assert.ErrorIs(t, err, ErrConfig)
}

func TestReadPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	fname := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(fname, []byte("0 0\n1 2\n3 3\n4 1\n"), 0o644))
	cfg := Default()
	cfg.Curve.PointsFile = fname
	points, err := cfg.Curve.ControlPoints()
	require.NoError(t, err)
	require.Len(t, points, 4)
	assert.Equal(t, 3.0, points[2].X)
	assert.Equal(t, 1.0, points[3].Y)
	//
	_, err = ReadPoints(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
