package regression

import (
	"math"
	"os"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/goregress/goregress/dataset"
	"github.com/goregress/goregress/metrics"
	"github.com/goregress/goregress/pkg/errors"
)

func TestMain(m *testing.M) {
	errors.SetWarningHandler(func(error) {})
	os.Exit(m.Run())
}

func TestOLSFitToyScenario(t *testing.T) {
	toy := dataset.Toy()

	model := NewOLS()
	if err := model.Fit(toy.X(), toy.Y()); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	const tol = 1e-9
	if got := model.Coef()[0]; math.Abs(got-1.0) > tol {
		t.Errorf("slope = %v, want 1.0", got)
	}
	if got := model.Intercept(); math.Abs(got) > tol {
		t.Errorf("intercept = %v, want 0.0", got)
	}

	// With slope 1 and intercept 0 the predictions are the x values.
	yPred, err := model.Predict(toy.X())
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	xs, _ := toy.XCol(0)
	for i, x := range xs {
		if got := yPred.At(i, 0); math.Abs(got-x) > tol {
			t.Errorf("prediction[%d] = %v, want %v", i, got, x)
		}
	}

	r2, err := model.Score(toy.X(), toy.Y())
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	want := 1.0 - 8.0/18.0
	if math.Abs(r2-want) > tol {
		t.Errorf("Score() = %v, want %v", r2, want)
	}
	if r2 < 0 || r2 > 1 {
		t.Errorf("training-set R² with intercept must be in [0,1], got %v", r2)
	}
}

func TestOLSFitValidation(t *testing.T) {
	tests := []struct {
		name string
		X    mat.Matrix
		y    mat.Matrix
	}{
		{
			name: "empty data",
			X:    &mat.Dense{},
			y:    &mat.Dense{},
		},
		{
			name: "row count mismatch",
			X:    mat.NewDense(3, 1, []float64{1, 2, 3}),
			y:    mat.NewDense(2, 1, []float64{1, 2}),
		},
		{
			name: "y not a column vector",
			X:    mat.NewDense(2, 1, []float64{1, 2}),
			y:    mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
		},
		{
			name: "fewer samples than parameters",
			X:    mat.NewDense(1, 2, []float64{1, 2}),
			y:    mat.NewDense(1, 1, []float64{3}),
		},
		{
			name: "all x identical with intercept",
			X:    mat.NewDense(4, 1, []float64{2, 2, 2, 2}),
			y:    mat.NewDense(4, 1, []float64{1, 2, 3, 4}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := NewOLS()
			if err := model.Fit(tt.X, tt.y); err == nil {
				t.Error("Fit() expected error, got nil")
			}
			if model.IsFitted() {
				t.Error("model must not be fitted after a failed Fit()")
			}
		})
	}
}

func TestOLSPredictValidation(t *testing.T) {
	model := NewOLS()

	// Predict before Fit.
	if _, err := model.Predict(mat.NewDense(1, 1, []float64{1})); err == nil {
		t.Error("Predict() before Fit() expected NotFittedError")
	} else {
		var nfe *errors.NotFittedError
		if !errors.As(err, &nfe) {
			t.Errorf("Predict() error = %v, want NotFittedError", err)
		}
	}

	toy := dataset.Toy()
	if err := model.Fit(toy.X(), toy.Y()); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	// Feature width mismatch.
	if _, err := model.Predict(mat.NewDense(2, 2, []float64{1, 2, 3, 4})); err == nil {
		t.Error("Predict() with wrong feature width expected DimensionError")
	} else {
		var de *errors.DimensionError
		if !errors.As(err, &de) {
			t.Errorf("Predict() error = %v, want DimensionError", err)
		}
	}
}

func TestOLSNoInterceptWorseFit(t *testing.T) {
	desc := dataset.ToyDescending()

	withIntercept := NewOLS()
	if err := withIntercept.Fit(desc.X(), desc.Y()); err != nil {
		t.Fatalf("Fit() with intercept error = %v", err)
	}
	r2With, err := withIntercept.Score(desc.X(), desc.Y())
	if err != nil {
		t.Fatalf("Score() with intercept error = %v", err)
	}

	origin := NewOLS(WithFitIntercept(false))
	if err := origin.Fit(desc.X(), desc.Y()); err != nil {
		t.Fatalf("Fit() through origin error = %v", err)
	}
	if got := origin.Intercept(); got != 0 {
		t.Errorf("intercept = %v, want exactly 0 for origin fit", got)
	}
	r2Origin, err := origin.Score(desc.X(), desc.Y())
	if err != nil {
		t.Fatalf("Score() through origin error = %v", err)
	}

	if r2Origin >= r2With {
		t.Errorf("origin fit R² = %v should be worse than intercept fit R² = %v", r2Origin, r2With)
	}
	// The data trend away from the origin, so the forced fit underperforms
	// even the constant-mean baseline.
	if r2Origin >= 0 {
		t.Errorf("origin fit R² = %v, want negative", r2Origin)
	}
}

func TestOLSCrossModelNegativeR2(t *testing.T) {
	// Fit on one relationship, score on data following the opposite one.
	// The mismatched model must score below the mean baseline without error.
	XTrain := mat.NewDense(4, 2, []float64{
		1, 2,
		2, 1,
		3, 4,
		4, 3,
	})
	yTrain := mat.NewDense(4, 1, []float64{5, 4, 10, 9})

	model := NewOLS()
	if err := model.Fit(XTrain, yTrain); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	yOpposite := mat.NewDense(4, 1, []float64{9, 10, 4, 5})
	r2, err := model.Score(XTrain, yOpposite)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if r2 >= 0 {
		t.Errorf("Score() = %v, want negative for decorrelated targets", r2)
	}
}

func TestOLSMatchesPearsonSquared(t *testing.T) {
	// Single feature + intercept: R² must equal the squared Pearson
	// correlation between x and y.
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{
			name: "walkthrough data",
			xs:   []float64{1, 2, 3, 4, 1, 2, 3, 4},
			ys:   []float64{2, 1, 4, 3, 0, 3, 2, 5},
		},
		{
			name: "descending trend",
			xs:   []float64{1, 2, 3, 4},
			ys:   []float64{7, 6, 4, 3},
		},
		{
			name: "noisy incline",
			xs:   []float64{0, 1, 2, 3, 4, 5, 6, 7},
			ys:   []float64{1.1, 2.9, 5.2, 6.8, 9.1, 11.2, 12.8, 15.1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := dataset.FromSlices(tt.xs, tt.ys)
			if err != nil {
				t.Fatalf("dataset.FromSlices() error = %v", err)
			}

			model := NewOLS()
			if err := model.Fit(ds.X(), ds.Y()); err != nil {
				t.Fatalf("Fit() error = %v", err)
			}
			r2, err := model.Score(ds.X(), ds.Y())
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}

			xVec := mat.NewVecDense(len(tt.xs), append([]float64(nil), tt.xs...))
			r, err := metrics.PearsonR(xVec, ds.YVec())
			if err != nil {
				t.Fatalf("PearsonR() error = %v", err)
			}

			if math.Abs(r2-r*r) > 1e-10 {
				t.Errorf("R² = %v, PearsonR² = %v; must match for single-feature intercept fits", r2, r*r)
			}
		})
	}
}

func TestOLSIdempotent(t *testing.T) {
	toy := dataset.Toy()

	fit := func() (*OLS, float64) {
		m := NewOLS()
		if err := m.Fit(toy.X(), toy.Y()); err != nil {
			t.Fatalf("Fit() error = %v", err)
		}
		r2, err := m.Score(toy.X(), toy.Y())
		if err != nil {
			t.Fatalf("Score() error = %v", err)
		}
		return m, r2
	}

	first, firstR2 := fit()
	for i := 0; i < 5; i++ {
		again, againR2 := fit()
		if again.Intercept() != first.Intercept() {
			t.Fatalf("intercept not reproducible: %v != %v", again.Intercept(), first.Intercept())
		}
		for j, c := range again.Coef() {
			if c != first.Coef()[j] {
				t.Fatalf("coef[%d] not reproducible: %v != %v", j, c, first.Coef()[j])
			}
		}
		if againR2 != firstR2 {
			t.Fatalf("score not reproducible: %v != %v", againR2, firstR2)
		}
	}
}

func TestOLSMultiFeature(t *testing.T) {
	// y = 2·x1 - x2 + 3, recovered exactly.
	X := mat.NewDense(5, 2, []float64{
		1, 1,
		2, 0,
		3, 2,
		4, 1,
		5, 3,
	})
	y := mat.NewDense(5, 1, []float64{4, 7, 7, 10, 10})

	model := NewOLS()
	if err := model.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	const tol = 1e-9
	coef := model.Coef()
	if math.Abs(coef[0]-2.0) > tol || math.Abs(coef[1]+1.0) > tol {
		t.Errorf("coef = %v, want [2, -1]", coef)
	}
	if got := model.Intercept(); math.Abs(got-3.0) > tol {
		t.Errorf("intercept = %v, want 3.0", got)
	}

	r2, err := model.Score(X, y)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if math.Abs(r2-1.0) > tol {
		t.Errorf("Score() = %v, want 1.0 for exact relationship", r2)
	}
}

func TestOLSCoefIsCopy(t *testing.T) {
	toy := dataset.Toy()
	model := NewOLS()
	if err := model.Fit(toy.X(), toy.Y()); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	coef := model.Coef()
	coef[0] = 999
	if model.Coef()[0] == 999 {
		t.Error("Coef() must return a copy; fitted parameters are immutable")
	}
}
