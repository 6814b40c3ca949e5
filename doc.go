// Package goregress is a small library for fitting ordinary-least-squares
// linear models and interpreting the coefficient of determination (R²).
//
// It covers the classic fit → predict → score pipeline:
//
//   - regression: OLS fitting (with or without an intercept), prediction,
//     the single-feature FitLine shortcut and the constant-mean baseline
//   - metrics: RSS, TSS, R², Pearson correlation, MSE/RMSE/MAE
//   - dataset: the immutable SampleSet value object and the toy data the
//     walkthrough is built around
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/goregress/goregress/dataset"
//	    "github.com/goregress/goregress/regression"
//	)
//
//	func main() {
//	    toy := dataset.Toy()
//
//	    model := regression.NewOLS()
//	    if err := model.Fit(toy.X(), toy.Y()); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    r2, err := model.Score(toy.X(), toy.Y())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("slope=%.3f intercept=%.3f R²=%.4f\n",
//	        model.Coef()[0], model.Intercept(), r2)
//	}
//
// # Reading R²
//
// R² = 1 - RSS/TSS compares a model against always predicting the mean of
// the true targets. 1 is a perfect fit, 0 is no better than the mean, and
// negative values mean the model is actively worse than the mean baseline —
// a valid signal, not an error. When the true targets have no variance at
// all, TSS is zero and R² is undefined; metrics.R2Score reports that as an
// error instead of inventing a number.
//
// All operations are pure functions over immutable inputs and are safe to
// call concurrently from independent call sites.
package goregress
