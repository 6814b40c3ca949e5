package regression

import (
	"gonum.org/v1/gonum/stat"

	"github.com/goregress/goregress/pkg/errors"
)

// Line is a fitted single-feature line y = Slope·x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// FitLine fits a line of best fit through the (x, y) pairs with the
// closed-form least-squares formulas. It is the single-feature shortcut for
// OLS with an intercept; use OLS for multiple features or an intercept-free
// fit.
func FitLine(xs, ys []float64) (Line, error) {
	if len(xs) == 0 {
		return Line{}, errors.NewValueError("FitLine", "empty input")
	}
	if len(xs) != len(ys) {
		return Line{}, errors.NewDimensionError("FitLine", len(xs), len(ys), 0)
	}
	if len(xs) < 2 {
		return Line{}, errors.NewValueError("FitLine", "need at least 2 samples to fit a line")
	}
	if allEqual(xs) {
		return Line{}, errors.NewModelError("FitLine", "all x values are identical", errors.ErrSingularMatrix)
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	if err := errors.CheckValues("FitLine", []float64{alpha, beta}); err != nil {
		return Line{}, errors.NewModelError("FitLine", "non-finite fit", errors.ErrSingularMatrix)
	}

	return Line{Slope: beta, Intercept: alpha}, nil
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Predict evaluates the line at every x, returning one prediction per input.
func (l Line) Predict(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = l.At(x)
	}
	return ys
}

func allEqual(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}
