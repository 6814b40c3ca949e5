package regression

import (
	"gonum.org/v1/gonum/mat"

	"github.com/goregress/goregress/core/model"
	"github.com/goregress/goregress/metrics"
	"github.com/goregress/goregress/pkg/errors"
)

// DummyRegressor predicts the mean of the training targets for every row.
// It is the baseline that R² measures against: scoring it on its own
// training targets gives exactly 0, since its RSS equals the TSS.
type DummyRegressor struct {
	state *model.StateManager

	mean      float64
	nFeatures int
}

var _ model.Regressor = (*DummyRegressor)(nil)

// NewDummyRegressor creates an unfitted mean-strategy baseline.
func NewDummyRegressor() *DummyRegressor {
	return &DummyRegressor{state: model.NewStateManager()}
}

// Fit records the mean of y. X contributes only its shape.
func (d *DummyRegressor) Fit(X, y mat.Matrix) error {
	rows, cols := X.Dims()
	yRows, yCols := y.Dims()

	if rows == 0 || cols == 0 {
		return errors.NewModelError("DummyRegressor.Fit", "empty data", errors.ErrEmptyData)
	}
	if yRows != rows {
		return errors.NewDimensionError("DummyRegressor.Fit", rows, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("DummyRegressor.Fit", "y must be a column vector")
	}

	var sum float64
	for i := 0; i < rows; i++ {
		sum += y.At(i, 0)
	}
	d.mean = sum / float64(rows)
	d.nFeatures = cols

	d.state.SetFitted()
	d.state.SetDimensions(cols, rows)
	return nil
}

// Predict returns the training mean for every input row.
func (d *DummyRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !d.state.IsFitted() {
		return nil, errors.NewNotFittedError("DummyRegressor", "Predict")
	}

	rows, cols := X.Dims()
	if cols != d.nFeatures {
		return nil, errors.NewDimensionError("DummyRegressor.Predict", d.nFeatures, cols, 1)
	}

	predictions := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		predictions.Set(i, 0, d.mean)
	}
	return predictions, nil
}

// Score computes R² of the mean baseline on (X, y).
func (d *DummyRegressor) Score(X, y mat.Matrix) (float64, error) {
	if !d.state.IsFitted() {
		return 0, errors.NewNotFittedError("DummyRegressor", "Score")
	}

	yPred, err := d.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2ScoreMatrix(y, yPred)
}

// Mean returns the recorded training-target mean.
func (d *DummyRegressor) Mean() float64 {
	return d.mean
}

// IsFitted returns whether Fit has completed successfully.
func (d *DummyRegressor) IsFitted() bool {
	return d.state.IsFitted()
}
