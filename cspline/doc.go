// Package cspline fits interpolating cubic splines through a sequence of 2D
// control points.
/*

Given an ordered sequence of control points, the fitting pipeline

 1. assigns a parameter value t to every control point (uniform, chordal
    or centripetal parametrization),
 2. solves two tridiagonal systems, one per axis, for the spline moments,
    i.e. the second derivatives of the curve at the control points, and
 3. evaluates the piecewise cubic at N parameter values evenly spaced over
    [t.0, t.n-1].

The end moments are not set to zero, as they would be for a natural spline.
Instead they are fixed to second-derivative estimates taken from finite
differences over the first three and the last three control points.

Parametrizations

Uniform parametrization sets t.i = i/n for n control points. Please note
that this never reaches 1 at the last point, whereas chordal and centripetal
parametrization always end at t = 1. The asymmetry is kept for compatibility
with existing drawings.

Chordal parametrization spaces parameters proportional to the distance
between consecutive points, centripetal parametrization proportional to the
square root of that distance.

Usage

Clients build a sequence of control points and hand it to Fit, together
with a parametrization and the number of samples wanted (package qualifier
for P omitted):

	points := cspline.Knots(P(0,0), P(1,2), P(3,3), P(4,1), P(6,0))
	samples, err := cspline.Fit(points, cspline.Centripetal, 50)

Fit returns exactly N samples, the first one at control point 0 and the last
one at the final control point. Fitting is a pure recompute: nothing is
cached between calls, and the only field of the input written is T.

Fitting fails with ErrInsufficientPoints for fewer than 4 control points,
with ErrInvalidSampleCount for N < 2, with ErrNoModeSelected if no
parametrization is chosen, and with ErrDegenerateSystem if consecutive
control points coincide or the linear system cannot be solved.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package cspline
