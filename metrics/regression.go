// Package metrics implements regression evaluation metrics: residual and
// total sums of squares, the coefficient of determination R², Pearson
// correlation and the usual error metrics.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/goregress/goregress/pkg/errors"
)

// validatePair checks that yTrue and yPred are non-empty and of equal length.
func validatePair(op string, yTrue, yPred *mat.VecDense) (int, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError(op, "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError(op, n, yPred.Len(), 0)
	}
	return n, nil
}

// RSS computes the residual sum of squares Σ(yTrue - yPred)².
func RSS(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := validatePair("RSS", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum, nil
}

// TSS computes the total sum of squares Σ(y - mean(y))², the squared error
// of the constant-mean baseline.
func TSS(y *mat.VecDense) (float64, error) {
	n := y.Len()
	if n == 0 {
		return 0, errors.NewValueError("TSS", "empty vector")
	}

	var mean float64
	for i := 0; i < n; i++ {
		mean += y.AtVec(i)
	}
	mean /= float64(n)

	var sum float64
	for i := 0; i < n; i++ {
		d := y.AtVec(i) - mean
		sum += d * d
	}
	return sum, nil
}

// R2Score computes the coefficient of determination R² = 1 - RSS/TSS.
//
// R² is the fraction of variance in yTrue explained by the predictions
// relative to the constant-mean baseline. It is 1 for a perfect prediction,
// exactly 0 when yPred is the mean of yTrue for every row, and negative when
// the predictions do worse than the mean baseline. A negative value is a
// valid result, not an error.
//
// When all values in yTrue are identical TSS is zero and R² is undefined:
// an UndefinedMetricWarning is emitted and an error wrapping ErrZeroVariance
// is returned. A numeric result is never fabricated in that case.
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := validatePair("R2Score", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yTrue.AtVec(i)
	}
	yMean /= float64(n)

	var tss, rss float64
	for i := 0; i < n; i++ {
		yTrueVal := yTrue.AtVec(i)
		yPredVal := yPred.AtVec(i)

		tss += (yTrueVal - yMean) * (yTrueVal - yMean)
		rss += (yTrueVal - yPredVal) * (yTrueVal - yPredVal)
	}

	if tss == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("r2_score", "zero variance in y_true (TSS = 0)"))
		return 0, errors.Wrap(errors.ErrZeroVariance, "R2Score: total sum of squares is zero")
	}

	return 1 - rss/tss, nil
}

// R2ScoreMatrix computes R² for (n, 1) column-vector matrices.
func R2ScoreMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	tVec, err := toColumnVec("R2Score", yTrue)
	if err != nil {
		return 0, err
	}
	pVec, err := toColumnVec("R2Score", yPred)
	if err != nil {
		return 0, err
	}
	return R2Score(tVec, pVec)
}

// PearsonR computes the Pearson correlation coefficient between x and y,
// in [-1, 1].
//
// For a single-feature OLS fit with an intercept, R² equals PearsonR(x, y)².
// The equivalence does not hold for multi-feature or intercept-free models,
// so callers must not treat correlation² as a general substitute for R2Score.
func PearsonR(x, y *mat.VecDense) (float64, error) {
	n, err := validatePair("PearsonR", x, y)
	if err != nil {
		return 0, err
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = x.AtVec(i)
		ys[i] = y.AtVec(i)
	}

	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		errors.Warn(errors.NewUndefinedMetricWarning("pearson_r", "zero variance in x or y"))
		return 0, errors.Wrap(errors.ErrZeroVariance, "PearsonR: correlation is undefined")
	}
	return r, nil
}

// MSE computes the mean squared error (1/n)·Σ(yTrue - yPred)².
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := validatePair("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	rss, err := RSS(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return rss / float64(n), nil
}

// RMSE computes the root mean squared error.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE computes the mean absolute error (1/n)·Σ|yTrue - yPred|.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := validatePair("MAE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}
	return sum / float64(n), nil
}

// toColumnVec converts an (n, 1) matrix to a VecDense.
func toColumnVec(op string, m mat.Matrix) (*mat.VecDense, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError(op, "empty matrix")
	}
	if c != 1 {
		return nil, errors.NewValueError(op, "must be a column vector (n×1 matrix)")
	}

	v := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		v.SetVec(i, m.At(i, 0))
	}
	return v, nil
}
