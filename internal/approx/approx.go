// Package approx measures and refits the rational e^-x approximation used by
// the dampers.
//
// The approximation is 1 / (1 + x + A x^2 + B x^3). The Taylor series of e^x
// would give A = 1/2 and B = 1/6; the shipped values trade accuracy near 0
// for a smaller error over the range dampers actually see.
package approx

import (
	"errors"
	"fmt"
	gomath "math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

// Coeffs are the quadratic and cubic terms of the denominator.
type Coeffs struct {
	A float64
	B float64
}

// Shipped are the coefficients damper.FastNegExp uses.
var Shipped = Coeffs{A: 0.48, B: 0.235}

// Taylor are the truncated-series coefficients.
var Taylor = Coeffs{A: 0.5, B: 1.0 / 6}

// Eval approximates e^-x.
func (c Coeffs) Eval(x float64) float64 {
	return 1 / (1 + x + c.A*x*x + c.B*x*x*x)
}

// Report summarises the error of an approximation over a sample grid.
type Report struct {
	Lo, Hi  float64
	Samples int

	MaxAbs   float64
	MaxAbsAt float64
	MaxRel   float64
	MaxRelAt float64
	MeanAbs  float64
}

func (r Report) String() string {
	return fmt.Sprintf("[%g, %g] n=%d: max abs %.5f at x=%.3f, max rel %.3f%% at x=%.3f, mean abs %.5f",
		r.Lo, r.Hi, r.Samples, r.MaxAbs, r.MaxAbsAt, 100*r.MaxRel, r.MaxRelAt, r.MeanAbs)
}

// ErrGrid reports an unusable sample range.
var ErrGrid = errors.New("invalid sample grid")

func grid(lo, hi float64, n int) ([]float64, error) {
	if n < 2 || !(hi > lo) || lo < 0 || gomath.IsInf(hi, 0) {
		return nil, fmt.Errorf("%w: need 0 <= lo < hi and n >= 2, got [%g, %g] n=%d", ErrGrid, lo, hi, n)
	}
	return floats.Span(make([]float64, n), lo, hi), nil
}

// Measure samples c at n evenly spaced points on [lo, hi] against math.Exp.
func Measure(c Coeffs, lo, hi float64, n int) (Report, error) {
	xs, err := grid(lo, hi, n)
	if err != nil {
		return Report{}, err
	}
	return measure(c, xs), nil
}

func measure(c Coeffs, xs []float64) Report {
	abs := make([]float64, len(xs))
	rel := make([]float64, len(xs))
	for i, x := range xs {
		want := gomath.Exp(-x)
		abs[i] = gomath.Abs(c.Eval(x) - want)
		rel[i] = abs[i] / want
	}

	iAbs := floats.MaxIdx(abs)
	iRel := floats.MaxIdx(rel)
	return Report{
		Lo:       xs[0],
		Hi:       xs[len(xs)-1],
		Samples:  len(xs),
		MaxAbs:   abs[iAbs],
		MaxAbsAt: xs[iAbs],
		MaxRel:   rel[iRel],
		MaxRelAt: xs[iRel],
		MeanAbs:  stat.Mean(abs, nil),
	}
}

// Fit searches for coefficients that minimise the maximum absolute error on
// [lo, hi], starting from Shipped. Coefficients that could make the
// denominator vanish for x >= 0 are rejected. The result is never worse than
// Shipped on the same grid.
func Fit(lo, hi float64, n int) (Coeffs, Report, error) {
	xs, err := grid(lo, hi, n)
	if err != nil {
		return Coeffs{}, Report{}, err
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			c := Coeffs{A: p[0], B: p[1]}
			if c.A < 0 || c.B < 0 {
				return gomath.Inf(1)
			}
			return measure(c, xs).MaxAbs
		},
	}
	settings := &optimize.Settings{
		FuncEvaluations: 4000,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-12,
			Iterations: 200,
		},
	}

	result, err := optimize.Minimize(problem, []float64{Shipped.A, Shipped.B}, settings, &optimize.NelderMead{})
	if result == nil {
		return Coeffs{}, Report{}, fmt.Errorf("fitting coefficients: %w", err)
	}

	best := Coeffs{A: result.X[0], B: result.X[1]}
	report := measure(best, xs)
	if shipped := measure(Shipped, xs); !(report.MaxAbs <= shipped.MaxAbs) {
		best, report = Shipped, shipped
	}
	return best, report, nil
}
