// SPDX-License-Identifier: MIT
// Package: poisbin/mixture
//
// options.go: internal configuration and deterministic defaults.
//
// Deterministic defaults reproduce the reference matrix:
//   • lambda   = 1.0   (Poisson rate)
//   • p        = 0.75  (Binomial success probability)
//   • workers  = 1     (sequential fill)
//
// Options are applied in order (later overrides earlier). Option
// constructors panic on nonsensical values (programmer error).

package mixture

import (
	"math"

	"github.com/katalvlaran/poisbin/matrix"
	"github.com/katalvlaran/poisbin/pmf"
)

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultLambda is the Poisson rate of the column component.
	DefaultLambda = 1.0
	// DefaultSuccessProb is the Binomial success probability of the row component.
	DefaultSuccessProb = 0.75
	// DefaultWorkers runs the fill on the calling goroutine.
	DefaultWorkers = 1
)

// Internal panic messages (stable, greppable).
const (
	panicLambdaInvalid  = "mixture: WithLambda: lambda must be finite and > 0"
	panicProbInvalid    = "mixture: WithSuccessProb: p must be in [0,1]"
	panicWorkersInvalid = "mixture: WithWorkers: n must be >= 1"
)

// Option customizes Build and Cell.
type Option func(*config)

// config aggregates all knobs. It is passed by VALUE to kernels.
type config struct {
	lambda     float64         // Poisson rate, > 0
	p          float64         // Binomial success probability, [0,1]
	workers    int             // >= 1
	matrixOpts []matrix.Option // forwarded to matrix.NewDense
}

// newConfig constructs a config with deterministic defaults and applies
// all options in order. Nil options are ignored.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		lambda:  DefaultLambda,
		p:       DefaultSuccessProb,
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithLambda sets the Poisson rate used for the column offset col-m.
// Panics when lambda is NaN, ±Inf or <= 0.
func WithLambda(lambda float64) Option {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda <= 0 {
		panic(panicLambdaInvalid)
	}

	return func(c *config) { c.lambda = lambda }
}

// WithSuccessProb sets the Binomial success probability used for the row
// component. Panics when p is NaN or outside [0,1].
func WithSuccessProb(p float64) Option {
	if pmf.ValidateProbability(p) != nil {
		panic(panicProbInvalid)
	}

	return func(c *config) { c.p = p }
}

// WithWorkers splits the rows across n goroutines. The result is bitwise
// identical to the sequential fill. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(c *config) { c.workers = n }
}

// WithMatrixOptions forwards options to the result's matrix.NewDense call
// (numeric policy, comparison epsilon).
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(c *config) { c.matrixOpts = append(c.matrixOpts, opts...) }
}
