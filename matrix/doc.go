// Package matrix provides the dense, row-major float64 storage that holds
// mixture matrices.
//
// The matrix package provides:
//
//   - Matrix, a small interface (Rows, Cols, At, Set, Clone) with bounds
//     checking that returns sentinel errors instead of panicking.
//   - Dense, a flat row-major implementation with an optional finite-only
//     numeric policy. Zero-sized shapes are legal.
//   - Validators (square, finite, non-negative) and AllClose comparison.
//   - Interop with gonum.org/v1/gonum/mat via ToGonum and FromGonum.
//
// See the examples in this package and in mixture for usage patterns.
package matrix
