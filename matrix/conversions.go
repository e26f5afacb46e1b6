// SPDX-License-Identifier: MIT

// Package matrix: converters between Dense and gonum's mat.Dense, so that
// mixture matrices can be handed to gonum linear algebra (products, norms,
// decompositions) without copying by hand.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a newly allocated *mat.Dense.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrInvalidDimensions when m has a zero dimension: gonum has no
//     zero-length dense matrix.
//
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("ToGonum: %dx%d: %w", r, c, ErrInvalidDimensions)
	}

	// Fast path: share the row-major layout, copy once.
	if d, ok := m.(*Dense); ok {
		return mat.NewDense(r, c, d.Data()), nil
	}

	data := make([]float64, r*c)
	var i, j int
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if data[i*c+j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("ToGonum: %w", err)
			}
		}
	}

	return mat.NewDense(r, c, data), nil
}

// FromGonum copies any gonum mat.Matrix into a new Dense. opts control the
// numeric policy of the result; with the default policy a NaN/Inf element
// is rejected with ErrNaNInf.
//
// Complexity: O(r*c).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return out, nil
}
