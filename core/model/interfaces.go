package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter learns parameters from a training set. X is (n_samples, n_features)
// and y is a (n_samples, 1) column vector.
type Fitter interface {
	Fit(X, y mat.Matrix) error
}

// Predictor produces one prediction per input row. Implementations are pure:
// the same X always yields the same output and the model is never mutated.
type Predictor interface {
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer evaluates predictions on (X, y) with the coefficient of
// determination R².
type Scorer interface {
	Score(X, y mat.Matrix) (float64, error)
}

// Regressor is the full fit/predict/score surface of a regression estimator.
type Regressor interface {
	Fitter
	Predictor
	Scorer
	IsFitted() bool
}
