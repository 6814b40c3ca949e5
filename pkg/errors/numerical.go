package errors

import (
	"math"
)

// CheckValues returns an error if any value is NaN or Inf. Fitted
// coefficients pass through this before being exposed to the caller so a
// degenerate solve can never silently return garbage.
func CheckValues(operation string, values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Newf("goregress: %s: non-finite value %v in result", operation, v)
		}
	}
	return nil
}

// CheckScalar checks a single scalar value for NaN or Inf.
func CheckScalar(operation string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Newf("goregress: %s: non-finite value %v in result", operation, value)
	}
	return nil
}
