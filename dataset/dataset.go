// Package dataset provides the immutable SampleSet value object and the
// small illustrative datasets used by the fit → predict → score walkthrough.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/goregress/goregress/pkg/errors"
)

// SampleSet is an immutable, ordered collection of paired samples (x_i, y_i).
// Every accessor returns a copy, so a fitted model can never be invalidated
// by later mutation of the data it was trained on.
type SampleSet struct {
	x [][]float64
	y []float64
}

// New builds a SampleSet from feature rows and targets. It requires at least
// one row, one target per row and a uniform feature width across rows.
func New(x [][]float64, y []float64) (*SampleSet, error) {
	if len(x) == 0 {
		return nil, errors.NewValueError("dataset.New", "empty sample set")
	}
	if len(x) != len(y) {
		return nil, errors.NewDimensionError("dataset.New", len(x), len(y), 0)
	}

	width := len(x[0])
	if width == 0 {
		return nil, errors.NewValueError("dataset.New", "rows must have at least one feature")
	}
	for i, row := range x {
		if len(row) != width {
			return nil, errors.NewDimensionError("dataset.New", width, len(x[i]), 1)
		}
	}

	xc := make([][]float64, len(x))
	for i, row := range x {
		xc[i] = append([]float64(nil), row...)
	}
	return &SampleSet{x: xc, y: append([]float64(nil), y...)}, nil
}

// FromSlices builds a single-feature SampleSet from parallel x/y slices.
func FromSlices(xs, ys []float64) (*SampleSet, error) {
	rows := make([][]float64, len(xs))
	for i, v := range xs {
		rows[i] = []float64{v}
	}
	return New(rows, ys)
}

// Len returns the number of samples.
func (s *SampleSet) Len() int {
	return len(s.x)
}

// Features returns the feature width.
func (s *SampleSet) Features() int {
	return len(s.x[0])
}

// X returns the feature matrix as a fresh (n, k) dense matrix.
func (s *SampleSet) X() *mat.Dense {
	n, k := s.Len(), s.Features()
	m := mat.NewDense(n, k, nil)
	for i, row := range s.x {
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m
}

// Y returns the targets as a fresh (n, 1) column matrix.
func (s *SampleSet) Y() *mat.Dense {
	n := s.Len()
	m := mat.NewDense(n, 1, nil)
	for i, v := range s.y {
		m.Set(i, 0, v)
	}
	return m
}

// YVec returns the targets as a fresh vector.
func (s *SampleSet) YVec() *mat.VecDense {
	return mat.NewVecDense(s.Len(), append([]float64(nil), s.y...))
}

// XCol returns a copy of a single feature column. Handy for single-feature
// plots and correlation checks.
func (s *SampleSet) XCol(j int) ([]float64, error) {
	if j < 0 || j >= s.Features() {
		return nil, errors.NewValueError("SampleSet.XCol", "feature index out of range")
	}
	col := make([]float64, s.Len())
	for i, row := range s.x {
		col[i] = row[j]
	}
	return col, nil
}

// YSlice returns a copy of the targets.
func (s *SampleSet) YSlice() []float64 {
	return append([]float64(nil), s.y...)
}
