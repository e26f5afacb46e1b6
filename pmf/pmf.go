// SPDX-License-Identifier: MIT

// Package pmf provides the discrete probability mass functions used to fill
// mixture matrices.
//
// Distributions come from gonum.org/v1/gonum/stat/distuv; this package adds
// parameter validation with sentinel errors and an integer-indexed Mass that
// is 0 (never NaN) outside the support of the distribution.
//
//	pois, _ := pmf.NewPoisson(1)
//	bin, _ := pmf.NewBinomial(4, 0.75)
//	p := pmf.Mass(pois, 2) * pmf.Mass(bin, 1)
package pmf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution is any discrete distribution that can report its probability
// mass at a point. distuv.Poisson and distuv.Binomial satisfy it.
type Distribution interface {
	Prob(x float64) float64
}

// Compile-time assertions for the gonum distributions we rely on.
var (
	_ Distribution = distuv.Poisson{}
	_ Distribution = distuv.Binomial{}
)

// NewPoisson returns a Poisson distribution with rate lambda.
//
// Errors:
//   - ErrInvalidRate when lambda is NaN, ±Inf or <= 0.
func NewPoisson(lambda float64) (distuv.Poisson, error) {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda <= 0 {
		return distuv.Poisson{}, fmt.Errorf("NewPoisson(%g): %w", lambda, ErrInvalidRate)
	}

	return distuv.Poisson{Lambda: lambda}, nil
}

// NewBinomial returns a Binomial distribution with n trials and success
// probability p.
//
// Errors:
//   - ErrInvalidTrials when n < 0.
//   - ErrInvalidProbability when p is NaN or outside [0,1].
func NewBinomial(n int, p float64) (distuv.Binomial, error) {
	if n < 0 {
		return distuv.Binomial{}, fmt.Errorf("NewBinomial(%d,%g): %w", n, p, ErrInvalidTrials)
	}
	if err := ValidateProbability(p); err != nil {
		return distuv.Binomial{}, fmt.Errorf("NewBinomial(%d,%g): %w", n, p, err)
	}

	return distuv.Binomial{N: float64(n), P: p}, nil
}

// ValidateProbability checks p ∈ [0,1]; NaN is rejected.
func ValidateProbability(p float64) error {
	if !(p >= 0 && p <= 1) {
		return ErrInvalidProbability
	}

	return nil
}

// Mass returns the probability mass of d at the integer k.
// The result is 0 for k < 0 and wherever d reports NaN, so callers can sum
// products of masses without guarding the support themselves.
func Mass(d Distribution, k int) float64 {
	if k < 0 {
		return 0
	}
	// Degenerate Binomial: log-space evaluation hits 0*log(0) = NaN at the
	// single point that carries all the mass.
	if b, ok := d.(distuv.Binomial); ok && (b.P == 0 || b.P == 1) {
		return degenerateBinomial(b, k)
	}
	v := d.Prob(float64(k))
	if math.IsNaN(v) {
		return 0
	}

	return v
}

// degenerateBinomial is the point mass at 0 (P == 0) or at N (P == 1).
func degenerateBinomial(b distuv.Binomial, k int) float64 {
	at := 0.0
	if b.P == 1 {
		at = b.N
	}
	if float64(k) == at {
		return 1
	}

	return 0
}

// PoissonPMF is P(X = k) for X ~ Poisson(lambda).
// Invalid lambda or k < 0 yields 0.
func PoissonPMF(k int, lambda float64) float64 {
	d, err := NewPoisson(lambda)
	if err != nil {
		return 0
	}

	return Mass(d, k)
}

// BinomialPMF is P(X = k) for X ~ Binomial(n, p).
// Invalid parameters or k outside [0, n] yield 0.
func BinomialPMF(k, n int, p float64) float64 {
	d, err := NewBinomial(n, p)
	if err != nil || k > n {
		return 0
	}

	return Mass(d, k)
}
