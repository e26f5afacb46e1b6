// Package mixture builds square Poisson/Binomial mixture matrices.
//
// Entry (row, col) is P(B + N = col) for independent B ~ Binomial(row, p)
// and N ~ Poisson(λ): row survivors are thinned binomially and a Poisson
// number of arrivals is added. Each row is therefore a truncated PMF and
// sums to at most 1.
//
//	M[row][col] = Σ_{m=0}^{min(row,col)} Poisson(col-m; λ) · Binomial(m; row, p)
//
// Compute takes a single dimension and uses the defaults λ = 1, p = 0.75:
//
//	m, err := mixture.Compute(5)
//	// m.Rows() == m.Cols() == 5; M[0][0] == e^-1
//
// Build accepts options to change the parameters or fill rows concurrently:
//
//	m, err := mixture.Build(200, mixture.WithLambda(2), mixture.WithWorkers(8))
//
// Negative sizes fail with ErrInvalidArgument; size 0 yields an empty 0×0
// matrix. Cell evaluates a single entry without allocating the matrix.
package mixture
