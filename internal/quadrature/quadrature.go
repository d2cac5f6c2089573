// Package quadrature provides adaptive numerical integration of real-valued
// functions of one variable.
//
// Each interval is estimated with fixed Gauss-Legendre rules of order 7 and 15
// (via gonum's integrate/quad package); the difference between the two
// estimates serves as the local error estimate, and intervals are bisected
// until the combined estimate meets tolerance or the depth limit is reached.
package quadrature

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Default tolerances, in the spirit of standard adaptive quadrature routines.
const (
	DefaultAbsTol   = 1e-10
	DefaultRelTol   = 1e-8
	DefaultMaxDepth = 30
)

// Options controls the adaptive refinement.
type Options struct {
	AbsTol   float64 // absolute tolerance per interval
	RelTol   float64 // relative tolerance per interval
	MaxDepth int     // maximum bisection depth
}

// Integrate computes the definite integral of f over [a, b] with default
// tolerances. It returns the integral and an estimate of the absolute error.
// If b < a the bounds are swapped and the sign of the result flipped.
func Integrate(f func(float64) float64, a, b float64) (value, errEst float64) {
	return IntegrateOpts(f, a, b, Options{})
}

// IntegrateOpts is Integrate with explicit options. Zero-valued fields fall
// back to the package defaults.
func IntegrateOpts(f func(float64) float64, a, b float64, opts Options) (value, errEst float64) {
	if opts.AbsTol <= 0 {
		opts.AbsTol = DefaultAbsTol
	}
	if opts.RelTol <= 0 {
		opts.RelTol = DefaultRelTol
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	if a == b {
		return 0, 0
	}
	sign := 1.0
	if b < a {
		a, b = b, a
		sign = -1
	}

	value, errEst = refine(f, a, b, opts, opts.MaxDepth)
	return sign * value, errEst
}

// refine estimates the integral over [a, b], bisecting while the low- and
// high-order estimates disagree beyond tolerance. A non-finite estimate is
// returned as-is rather than refined: subdividing cannot repair an integrand
// that is undefined somewhere on the interval.
func refine(f func(float64) float64, a, b float64, opts Options, depth int) (value, errEst float64) {
	coarse := quad.Fixed(f, a, b, 7, nil, 0)
	fine := quad.Fixed(f, a, b, 15, nil, 0)
	diff := math.Abs(fine - coarse)

	if math.IsNaN(fine) || math.IsInf(fine, 0) {
		return fine, math.Inf(1)
	}
	if diff <= math.Max(opts.AbsTol, opts.RelTol*math.Abs(fine)) || depth <= 0 {
		// Best-effort at the depth limit; adaptive quadrature accepts the
		// remaining discrepancy as the reported error estimate.
		return fine, diff
	}

	mid := a + (b-a)/2
	left, leftErr := refine(f, a, mid, opts, depth-1)
	right, rightErr := refine(f, mid, b, opts, depth-1)
	return left + right, leftErr + rightErr
}
