// SPDX-License-Identifier: MIT
// Package: poisbin/mixture
//
// errors.go: sentinel errors for the mixture package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` via mixtureErrorf.
//   • Build/Cell never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package mixture

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a negative size, or a negative row/column
// index passed to Cell.
// Usage: if errors.Is(err, ErrInvalidArgument) { /* reject input */ }.
var ErrInvalidArgument = errors.New("mixture: invalid argument")

// mixtureErrorf wraps err with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <err>".
// Complexity: O(len(format) + Σlen(args)).
func mixtureErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
