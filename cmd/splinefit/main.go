/*
Command splinefit fits a cubic spline through control points and prints
the curve samples, one "x y" pair per line.

Usage:

	splinefit [flags] [job.ini]

The job file is in gcfg format; run with -example to print a commented
example. Flags override settings from the job file:

	-mode  uniform | chordal | centripetal
	-n     number of samples
	-points  table file with control points in its first two columns
	-png   write a PNG image
	-plot  write a pyplot figure
	-v     trace fitting steps to stderr

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/splinefit"
	"github.com/npillmayer/splinefit/config"
	"github.com/npillmayer/splinefit/cspline"
	"github.com/npillmayer/splinefit/render"
)

func main() {
	mode := flag.String("mode", "", "parametrization: uniform, chordal or centripetal")
	samples := flag.Int("n", 0, "number of curve samples")
	points := flag.String("points", "", "table file with control points")
	pngName := flag.String("png", "", "write a PNG image of the curve to this file")
	plotName := flag.String("plot", "", "write a pyplot figure of the curve to this file")
	verbose := flag.Bool("v", false, "trace fitting steps")
	example := flag.Bool("example", false, "print an example job file and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [job.ini]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *example {
		fmt.Println(config.ExampleFile)
		return
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	if *verbose {
		splinefit.SetTraceLevel(tracing.LevelDebug)
	} else {
		splinefit.SetTraceLevel(tracing.LevelError)
	}

	cfg, err := readJob(flag.Args())
	if err != nil {
		fail(err)
	}
	if *mode != "" {
		cfg.Curve.Mode = *mode
	}
	if *samples != 0 {
		cfg.Curve.Samples = *samples
	}
	if *points != "" {
		cfg.Curve.Point, cfg.Curve.PointsFile = nil, *points
	}
	if *pngName != "" {
		cfg.Output.PNG = *pngName
	}
	if *plotName != "" {
		cfg.Output.Plot = *plotName
	}
	if err = cfg.CheckInit(); err != nil {
		fail(err)
	}
	if err = run(cfg, os.Stdout); err != nil {
		fail(err)
	}
}

func readJob(args []string) (*config.Config, error) {
	switch len(args) {
	case 0:
		return config.Default(), nil
	case 1:
		return config.ReadFile(args[0])
	}
	return nil, fmt.Errorf("%w: expected at most one job file, got %d", config.ErrConfig, len(args))
}

// run fits the curve of a job, prints its samples to w and writes the
// requested outputs.
func run(cfg *config.Config, w io.Writer) error {
	mode, err := cfg.Curve.ParametrizationMode()
	if err != nil {
		return err
	}
	points, err := cfg.Curve.ControlPoints()
	if err != nil {
		return err
	}
	curve, err := cspline.Fit(points, mode, cfg.Curve.Samples)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(w)
	for _, s := range curve {
		fmt.Fprintf(out, "%g %g\n", s.X(), s.Y())
	}
	if err = out.Flush(); err != nil {
		return err
	}
	sc := render.Scene{
		Points:         points,
		Curve:          curve,
		ControlPolygon: cfg.Output.ControlPolygon,
		ShowPoints:     true,
		SplineAsPoints: cfg.Output.SplineAsPoints,
		SplineAsLine:   cfg.Output.SplineAsLine,
	}
	title := render.Title(mode, len(points), len(curve))
	if cfg.Output.PNG != "" {
		opts := render.DefaultOptions()
		opts.Width, opts.Height = cfg.Output.Width, cfg.Output.Height
		opts.Fit = true
		opts.Supersample = 2
		opts.Title = title
		if err = render.SavePNG(cfg.Output.PNG, sc, opts); err != nil {
			return err
		}
	}
	if cfg.Output.Plot != "" {
		render.Plot(cfg.Output.Plot, sc, title)
		render.ExecutePlots()
	}
	return nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "splinefit: %v\n", err)
	os.Exit(1)
}
