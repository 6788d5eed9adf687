package cspline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/splinefit"
)

// AsString returns a sequence of control points as a (debugging) string,
// in MetaFont-like notation:
//
//	(0,0) .. (1,0) .. (1,1) .. (0,1)
//
// Selected points are marked with a trailing '*'.
func AsString(points []ControlPoint) string {
	var sb strings.Builder
	for i, cp := range points {
		if i > 0 {
			sb.WriteString(" .. ")
		}
		sb.WriteString(ptstring(cp.Z()))
		if cp.Selected {
			sb.WriteByte('*')
		}
	}
	return sb.String()
}

// SamplesString returns a sampled curve as a (debugging) string, one
// sample per line.
func SamplesString(samples []Sample) string {
	var sb strings.Builder
	for i, s := range samples {
		fmt.Fprintf(&sb, "%3d %s\n", i, ptstring(s))
	}
	return sb.String()
}

func ptstring(p splinefit.Pair) string {
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
