// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/numeric checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Element scans run in row-major order and stop at the first violation.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// A 0×0 matrix is square.
//
// Errors: ErrNilMatrix if nil, ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite checks that every element of m is finite.
//
// Errors: ErrNilMatrix, or ErrNaNInf with the offending coordinates.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}

	return scan(m, "ValidateFinite", func(v float64) error {
		if isNonFinite(v) {
			return ErrNaNInf
		}

		return nil
	})
}

// ValidateNonNegative checks that every element of m is finite and >= 0,
// which is what any sum of probability products must satisfy.
//
// Errors: ErrNilMatrix, ErrNaNInf, or ErrNegative with coordinates.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}

	return scan(m, "ValidateNonNegative", func(v float64) error {
		if isNonFinite(v) {
			return ErrNaNInf
		}
		if v < 0 {
			return ErrNegative
		}

		return nil
	})
}

// scan walks m in row-major order and returns the first check failure,
// tagged with the validator name and cell coordinates.
func scan(m Matrix, tag string, check func(float64) error) error {
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if err = check(v); err != nil {
				return fmt.Errorf("%s(%d,%d): %w", tag, i, j, err)
			}
		}
	}

	return nil
}
