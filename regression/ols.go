// Package regression implements ordinary-least-squares fitting and
// prediction for linear models, plus the constant-mean baseline that the
// coefficient of determination compares against.
package regression

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/goregress/goregress/core/model"
	"github.com/goregress/goregress/core/parallel"
	"github.com/goregress/goregress/metrics"
	"github.com/goregress/goregress/pkg/errors"
)

// defaultCondTol is the condition-number threshold for reporting an
// ill-conditioned design matrix. Fits at or above it still return
// coefficients but raise an IllConditionedWarning.
const defaultCondTol = 1e12

// parallelThreshold is the row count below which matrix assembly and
// prediction run sequentially.
const parallelThreshold = 1000

// OLS is an ordinary-least-squares linear regression estimator.
//
// Fit solves min Σ(y_i - ŷ_i)² over coefficients (and, unless disabled via
// WithFitIntercept(false), an intercept) using a QR decomposition of the
// design matrix. The fitted parameters are immutable: Predict and Score
// never modify them.
type OLS struct {
	state *model.StateManager

	fitIntercept bool
	condTol      float64

	coef      []float64
	intercept float64
	nFeatures int
}

var _ model.Regressor = (*OLS)(nil)

// NewOLS creates an OLS estimator. The intercept is fitted by default.
func NewOLS(opts ...Option) *OLS {
	o := &OLS{
		state:        model.NewStateManager(),
		fitIntercept: true,
		condTol:      defaultCondTol,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Fit learns coefficients and intercept from the training set. X is
// (n_samples, n_features), y is a (n_samples, 1) column vector.
//
// The system is solved with a QR decomposition rather than the normal
// equations for numerical stability. An exactly singular design matrix
// (for example all x values identical while fitting an intercept) is an
// error; a near-singular one succeeds but emits an IllConditionedWarning.
func (o *OLS) Fit(X, y mat.Matrix) error {
	rows, cols := X.Dims()
	yRows, yCols := y.Dims()

	if rows == 0 || cols == 0 {
		return errors.NewModelError("OLS.Fit", "empty data", errors.ErrEmptyData)
	}
	if yRows != rows {
		return errors.NewDimensionError("OLS.Fit", rows, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("OLS.Fit", "y must be a column vector")
	}

	nParams := cols
	if o.fitIntercept {
		nParams++
	}
	if rows < nParams {
		return errors.NewValueError("OLS.Fit", "fewer samples than parameters to fit")
	}

	// Build the design matrix, prepending a ones column when the intercept
	// is fitted.
	var XFit *mat.Dense
	if o.fitIntercept {
		XFit = mat.NewDense(rows, cols+1, nil)
		parallel.ParallelizeWithThreshold(rows, parallelThreshold, func(start, end int) {
			for i := start; i < end; i++ {
				XFit.Set(i, 0, 1.0)
				for j := 0; j < cols; j++ {
					XFit.Set(i, j+1, X.At(i, j))
				}
			}
		})
	} else {
		XFit = mat.DenseCopyOf(X)
	}

	cond := mat.Cond(XFit, 2)
	if math.IsInf(cond, 1) {
		return errors.NewModelError("OLS.Fit", "degenerate design matrix", errors.ErrSingularMatrix)
	}
	if cond >= o.condTol {
		errors.Warn(errors.NewIllConditionedWarning("OLS.Fit", cond, o.condTol))
	}

	var qr mat.QR
	qr.Factorize(XFit)

	coefMat := mat.NewDense(nParams, 1, nil)
	if err := qr.SolveTo(coefMat, false, y); err != nil {
		return errors.NewModelError("OLS.Fit", "least-squares solve failed", errors.ErrSingularMatrix)
	}

	var intercept float64
	coef := make([]float64, cols)
	if o.fitIntercept {
		intercept = coefMat.At(0, 0)
		for j := 0; j < cols; j++ {
			coef[j] = coefMat.At(j+1, 0)
		}
	} else {
		for j := 0; j < cols; j++ {
			coef[j] = coefMat.At(j, 0)
		}
	}

	// Degenerate solves must surface as errors, never as NaN/Inf parameters.
	if err := errors.CheckValues("OLS.Fit", append(append([]float64{}, coef...), intercept)); err != nil {
		return errors.NewModelError("OLS.Fit", "non-finite coefficients", errors.ErrSingularMatrix)
	}

	o.coef = coef
	o.intercept = intercept
	o.nFeatures = cols

	o.state.SetFitted()
	o.state.SetDimensions(cols, rows)
	return nil
}

// Predict returns one predicted value per input row:
// ŷ_i = Σ_j coef_j·x_ij + intercept. The result is an (n, 1) matrix.
func (o *OLS) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !o.state.IsFitted() {
		return nil, errors.NewNotFittedError("OLS", "Predict")
	}

	rows, cols := X.Dims()
	if cols != o.nFeatures {
		return nil, errors.NewDimensionError("OLS.Predict", o.nFeatures, cols, 1)
	}

	predictions := mat.NewDense(rows, 1, nil)
	parallel.ParallelizeWithThreshold(rows, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			pred := o.intercept
			for j := 0; j < cols; j++ {
				pred += X.At(i, j) * o.coef[j]
			}
			predictions.Set(i, 0, pred)
		}
	})

	return predictions, nil
}

// Score computes R² of the model's predictions on (X, y).
//
// On the model's own training set with a fitted intercept the result is in
// [0, 1]. On other data, or for an intercept-free fit, it may be negative:
// the model then does worse than predicting the mean of y everywhere.
func (o *OLS) Score(X, y mat.Matrix) (float64, error) {
	if !o.state.IsFitted() {
		return 0, errors.NewNotFittedError("OLS", "Score")
	}

	yPred, err := o.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2ScoreMatrix(y, yPred)
}

// Coef returns a copy of the fitted coefficients, one per feature.
func (o *OLS) Coef() []float64 {
	if o.coef == nil {
		return nil
	}
	coef := make([]float64, len(o.coef))
	copy(coef, o.coef)
	return coef
}

// Intercept returns the fitted intercept, 0 for an intercept-free fit.
func (o *OLS) Intercept() float64 {
	return o.intercept
}

// IsFitted returns whether Fit has completed successfully.
func (o *OLS) IsFitted() bool {
	return o.state.IsFitted()
}
