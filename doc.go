// Package poisbin computes Poisson/Binomial mixture matrices: square
// matrices whose (row, col) entry is P(B + N = col) for B ~ Binomial(row, p)
// and N ~ Poisson(λ).
//
// What is inside:
//
//	mixture/  Build, Compute and Cell: the matrix builder (sequential or row-parallel)
//	pmf/      validated Poisson and Binomial masses backed by gonum/stat/distuv
//	matrix/   row-major Dense storage with bounds/NaN policy and gonum/mat interop
//	heatmap/  renders a matrix to an image with gonum/plot
//
// Quick start:
//
//	m, err := mixture.Compute(5)   // λ = 1, p = 0.75
//	v, _ := m.At(0, 0)             // e^-1 ≈ 0.367879
//
// A runnable program lives in examples/heatmap.
//
//	go get github.com/katalvlaran/poisbin
package poisbin
