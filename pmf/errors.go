// SPDX-License-Identifier: MIT

package pmf

import "errors"

var (
	// ErrInvalidRate indicates a Poisson rate that is NaN, ±Inf or <= 0.
	ErrInvalidRate = errors.New("pmf: rate must be finite and > 0")

	// ErrInvalidTrials indicates a negative Binomial trial count.
	ErrInvalidTrials = errors.New("pmf: trials must be >= 0")

	// ErrInvalidProbability indicates a success probability outside [0,1] (or NaN).
	ErrInvalidProbability = errors.New("pmf: probability out of range")
)
