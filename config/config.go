/*
Package config reads batch fitting jobs from gcfg (INI-style) files.

A job names a parametrization, a sample count and control points, either
inline or as a whitespace-separated table file, plus the outputs to
produce. See ExampleFile for all settings.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinefit"
	"github.com/npillmayer/splinefit/cspline"
	"github.com/phil-mansfield/table"
	"gopkg.in/gcfg.v1"
)

// tracer traces with key 'splinefit'.
func tracer() tracing.Trace {
	return tracing.Select("splinefit")
}

// ErrConfig is returned for settings which are present but unusable.
var ErrConfig = errors.New("invalid configuration")

// ExampleFile documents every setting understood by ReadFile.
const ExampleFile = `[Curve]

#######################
# Required Parameters #
#######################

# Parametrization of the spline. One of
# [ Uniform | Chordal | Centripetal ]
Mode = Chordal

# Control points, in order. Either list them one per line as "x y" ...
Point = 0 0
Point = 1 2
Point = 3 3
Point = 4 1

# ... or read them from the first two columns of a table file. Lines
# starting with '#' are ignored.
# PointsFile = path/to/points.txt

#######################
# Optional Parameters #
#######################

# Number of samples along the curve. Default is 100.
# Samples = 100

[Output]

# Write a PNG image of the scene.
# PNG = path/to/curve.png
# Width = 640
# Height = 480

# Write a pyplot figure of the scene. Requires Python with matplotlib.
# Plot = path/to/curve.pdf

# What to draw. Default is control points and the curve as a line.
# ControlPolygon = false
# SplineAsLine = true
# SplineAsPoints = false`

// CurveConfig holds the [Curve] section.
type CurveConfig struct {
	Mode       string
	Samples    int
	Point      []string
	PointsFile string
}

// OutputConfig holds the [Output] section.
type OutputConfig struct {
	PNG            string
	Width, Height  int
	Plot           string
	ControlPolygon bool
	SplineAsLine   bool
	SplineAsPoints bool
}

// Config is a complete fitting job.
type Config struct {
	Curve  CurveConfig
	Output OutputConfig
}

// Default returns a job without points, with default settings.
func Default() *Config {
	return &Config{
		Curve: CurveConfig{
			Mode:    cspline.Chordal.String(),
			Samples: 100,
		},
		Output: OutputConfig{
			Width:        640,
			Height:       480,
			SplineAsLine: true,
		},
	}
}

// ReadFile reads a job from a gcfg file. Settings missing from the file
// keep their defaults.
func ReadFile(fname string) (*Config, error) {
	cfg := Default()
	if err := gcfg.ReadFileInto(cfg, fname); err != nil {
		return nil, err
	}
	if err := cfg.CheckInit(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// ReadString reads a job from a string in gcfg format.
func ReadString(str string) (*Config, error) {
	cfg := Default()
	if err := gcfg.ReadStringInto(cfg, str); err != nil {
		return nil, err
	}
	if err := cfg.CheckInit(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CheckInit checks settings after reading.
func (cfg *Config) CheckInit() error {
	switch {
	case !cfg.Curve.ValidMode():
		return fmt.Errorf("%w: unknown Mode %q", ErrConfig, cfg.Curve.Mode)
	case !cfg.Curve.ValidSamples():
		return fmt.Errorf("%w: Samples = %d, must be at least 2", ErrConfig, cfg.Curve.Samples)
	case len(cfg.Curve.Point) > 0 && cfg.Curve.PointsFile != "":
		return fmt.Errorf("%w: Point and PointsFile are mutually exclusive", ErrConfig)
	case !cfg.Output.ValidSize():
		return fmt.Errorf("%w: image size %d×%d", ErrConfig, cfg.Output.Width, cfg.Output.Height)
	}
	return nil
}

func (con *CurveConfig) ValidMode() bool {
	_, err := cspline.ParseMode(con.Mode)
	return err == nil
}

func (con *CurveConfig) ValidSamples() bool { return con.Samples >= 2 }

func (con *OutputConfig) ValidSize() bool { return con.Width > 0 && con.Height > 0 }

// ParametrizationMode returns the configured parametrization.
func (con *CurveConfig) ParametrizationMode() (cspline.Mode, error) {
	return cspline.ParseMode(con.Mode)
}

// ControlPoints returns the configured control points, read from
// PointsFile if set.
func (con *CurveConfig) ControlPoints() ([]cspline.ControlPoint, error) {
	if con.PointsFile != "" {
		return ReadPoints(con.PointsFile)
	}
	pts := make([]splinefit.Pair, len(con.Point))
	for i, s := range con.Point {
		p, err := ParsePoint(s)
		if err != nil {
			return nil, fmt.Errorf("point #%d: %w", i+1, err)
		}
		pts[i] = p
	}
	return cspline.Knots(pts...), nil
}

// ParsePoint parses "x y" or "x, y".
func ParsePoint(s string) (splinefit.Pair, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 2 {
		return splinefit.Origin, fmt.Errorf("%w: point %q needs two coordinates", ErrConfig, s)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return splinefit.Origin, fmt.Errorf("%w: point %q: %v", ErrConfig, s, err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return splinefit.Origin, fmt.Errorf("%w: point %q: %v", ErrConfig, s, err)
	}
	return splinefit.P(x, y), nil
}

// ReadPoints reads control points from the first two columns of a
// whitespace-separated table file.
func ReadPoints(fname string) ([]cspline.ControlPoint, error) {
	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	if err != nil {
		return nil, err
	}
	xs, ys := cols[0], cols[1]
	points := make([]cspline.ControlPoint, len(xs))
	for i := range xs {
		points[i] = cspline.ControlPoint{X: xs[i], Y: ys[i]}
	}
	tracer().Debugf("read %d control points from %s", len(points), fname)
	return points, nil
}
