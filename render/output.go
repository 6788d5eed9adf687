package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/splinefit"
	"github.com/npillmayer/splinefit/cspline"
	plt "github.com/phil-mansfield/pyplot"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.AmericanEnglish)

// Title describes a fitted curve, e.g. "Chordal spline, 4 points, 100 samples".
func Title(mode cspline.Mode, points, samples int) string {
	return fmt.Sprintf("%s spline, %d points, %d samples",
		titleCaser.String(mode.String()), points, samples)
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG rasterizes a scene into a PNG file.
func SavePNG(fname string, sc Scene, opts Options) error {
	img, err := Rasterize(sc, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err = WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if info, err := f.Stat(); err == nil {
		tracer().Infof("wrote %s (%s)", fname, humanize.Bytes(uint64(info.Size())))
	}
	return f.Close()
}

// Plot adds a pyplot figure of a scene, saved to fname. Figures are
// collected until ExecutePlots is called.
func Plot(fname string, sc Scene, title string) {
	plt.Figure()
	if sc.ControlPolygon && len(sc.Points) > 1 {
		xs, ys := coords(cspline.Pairs(sc.Points))
		plt.Plot(xs, ys, "k", plt.LW(LineWidth))
	}
	if len(sc.Curve) > 0 {
		xs, ys := coords(sc.Curve)
		if sc.SplineAsLine {
			plt.Plot(xs, ys, "r", plt.LW(2))
		}
		if sc.SplineAsPoints {
			plt.Plot(xs, ys, "r.")
		}
	}
	if sc.ShowPoints && len(sc.Points) > 0 {
		xs, ys := coords(cspline.Pairs(sc.Points))
		plt.Plot(xs, ys, "ks")
	}
	plt.Title(title)
	plt.XLabel("x")
	plt.YLabel("y")
	plt.SaveFig(fname)
	tracer().Debugf("queued plot %s", fname)
}

// ExecutePlots hands all collected figures to Python.
func ExecutePlots() {
	plt.Execute()
}

func coords(pts []splinefit.Pair) (xs, ys []float64) {
	xs, ys = make([]float64, len(pts)), make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X(), p.Y()
	}
	return
}
