package regression

// Option configures an OLS estimator.
type Option func(*OLS)

// WithFitIntercept sets whether the intercept is learned. When false the
// intercept is fixed at 0 and the line is forced through the origin, which
// usually degrades the fit unless the true relationship passes through the
// origin. That is an expected modelling outcome, not an error.
func WithFitIntercept(fit bool) Option {
	return func(o *OLS) {
		o.fitIntercept = fit
	}
}

// WithConditionTolerance sets the condition-number threshold above which the
// design matrix is reported as ill-conditioned.
func WithConditionTolerance(tol float64) Option {
	return func(o *OLS) {
		o.condTol = tol
	}
}
