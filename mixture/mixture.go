// SPDX-License-Identifier: MIT

package mixture

import (
	"fmt"

	"github.com/katalvlaran/poisbin/matrix"
	"github.com/katalvlaran/poisbin/pmf"
)

// Method name constants used to prefix errors with the entry point.
const (
	MethodBuild   = "Build"
	MethodCell    = "Cell"
	MethodCompute = "Compute"
)

// Compute is the host-facing entry point: it takes the single integer
// dimension x and returns the x×x mixture matrix with the default
// parameters (λ=1, p=0.75).
//
// Errors:
//   - ErrInvalidArgument when x < 0.
func Compute(x int) (*matrix.Dense, error) {
	m, err := Build(x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodCompute, err)
	}

	return m, nil
}

// Build returns the size×size matrix M with
//
//	M[row][col] = Σ_{m=0}^{min(row,col)} Poisson(col-m; λ) · Binomial(m; row, p)
//
// MAIN DESCRIPTION:
//   - Each cell mixes the row's Binomial(row, p) thinning with a Poisson(λ)
//     count for the remainder of the column index.
//
// Implementation:
//   - Stage 1: validate size >= 0; resolve options.
//   - Stage 2: allocate the result (0×0 for size == 0).
//   - Stage 3: tabulate Poisson masses for 0..size-1 once.
//   - Stage 4: fill rows, sequentially or across workers (see parallel.go).
//
// Behavior highlights:
//   - Cells are independent; the summation order (m ascending, starting
//     from 0.0) is fixed, so the result is deterministic for every worker count.
//   - All entries are finite and non-negative.
//
// Errors:
//   - ErrInvalidArgument when size < 0.
//
// Complexity:
//   - Time O(size³), Space O(size²).
func Build(size int, opts ...Option) (*matrix.Dense, error) {
	if size < 0 {
		return nil, mixtureErrorf(MethodBuild, ErrInvalidArgument, "size must be >= 0, got %d", size)
	}
	cfg := newConfig(opts...)

	out, err := matrix.NewDense(size, size, cfg.matrixOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	if size == 0 {
		return out, nil
	}

	pois, err := poissonTable(size, cfg.lambda)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	if err = fillParallel(out, pois, cfg.p, cfg.workers); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	return out, nil
}

// Cell computes the single entry M[row][col] without building the matrix.
// It honours WithLambda and WithSuccessProb; other options are ignored.
//
// Errors:
//   - ErrInvalidArgument when row or col is negative.
//
// Complexity: O(min(row,col)).
func Cell(row, col int, opts ...Option) (float64, error) {
	if row < 0 || col < 0 {
		return 0, mixtureErrorf(MethodCell, ErrInvalidArgument, "indices must be >= 0, got (%d,%d)", row, col)
	}
	cfg := newConfig(opts...)

	pois, err := pmf.NewPoisson(cfg.lambda)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", MethodCell, err)
	}
	bin, err := pmf.NewBinomial(row, cfg.p)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", MethodCell, err)
	}

	var sum float64
	for m := 0; m <= min(row, col); m++ {
		sum += pmf.Mass(pois, col-m) * pmf.Mass(bin, m)
	}

	return sum, nil
}

// poissonTable returns Poisson(λ) masses for k = 0..n-1.
func poissonTable(n int, lambda float64) ([]float64, error) {
	d, err := pmf.NewPoisson(lambda)
	if err != nil {
		return nil, err
	}
	table := make([]float64, n)
	for k := range table {
		table[k] = pmf.Mass(d, k)
	}

	return table, nil
}

// fillRows writes rows [start, end) of out. pois must cover 0..out.Cols()-1.
// Every row owns its cells, so concurrent calls on disjoint ranges are safe.
// The Binomial masses for a row are tabulated once and reused across columns.
func fillRows(out *matrix.Dense, pois []float64, p float64, start, end int) error {
	n := out.Cols()
	binom := make([]float64, n)
	var row, col, m int
	for row = start; row < end; row++ {
		bin, err := pmf.NewBinomial(row, p)
		if err != nil {
			return err
		}
		for m = 0; m <= row && m < n; m++ {
			binom[m] = pmf.Mass(bin, m)
		}
		for col = 0; col < n; col++ {
			var sum float64
			for m = 0; m <= min(row, col); m++ {
				sum += pois[col-m] * binom[m]
			}
			if err = out.Set(row, col, sum); err != nil {
				return err
			}
		}
	}

	return nil
}
