// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Add return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Add: O(1); Clone/Data: O(r*c); Row: O(c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew = "NewDense" // ctor tag used in error wrappers
	ctxAt  = "At"       // method tag used in error wrappers
	ctxSet = "Set"      // method tag used in error wrappers
	ctxAdd = "Add"      // method tag used in error wrappers
	ctxRow = "Row"      // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The result reads "Dense.<method>(row,col): <sentinel>" and preserves the
// sentinel for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - eps is the tolerance used by Equal.
//   - validateNaNInf enables NaN/Inf rejection in Set and Add.
type Dense struct {
	r, c           int       // row and column counts (>= 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	eps            float64   // comparison tolerance for Equal
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set/Add when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation and numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: resolve options over defaults.
//   - Stage 3: allocate zero-filled buffer (possibly zero-length).
//
// Behavior highlights:
//   - 0×0, 0×N and N×0 are legal; the buffer is then empty.
//   - No panics on user errors; returns sentinel errors.
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols), wrapped with ctor context.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxNew, rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		eps:            o.eps,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether the matrix holds no elements.
func (m *Dense) IsEmpty() bool { return len(m.data) == 0 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The sentinel is returned bare; public methods wrap it with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Notes:
//   - Writes to distinct cells touch distinct slice elements, so concurrent
//     writers on disjoint cells need no locking.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Add accumulates v into (row, col), i.e. m[row,col] += v.
// MAIN DESCRIPTION:
//   - In-place accumulation used by summation kernels.
//
// Implementation:
//   - Stage 1: bounds check via indexOf.
//   - Stage 2: compute the sum; reject a non-finite result under the policy.
//   - Stage 3: store.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf when the sum is NaN/±Inf and the
//     policy is enabled (the cell is left unchanged).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Add(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxAdd, row, col, err)
	}
	sum := m.data[off] + v
	if m.validateNaNInf && isNonFinite(sum) {
		return denseErrorf(ctxAdd, row, col, ErrNaNInf)
	}
	m.data[off] = sum

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Data returns a copy of the row-major backing buffer.
// Complexity: O(r*c).
func (m *Dense) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy (new buffer, same numeric policy and eps).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		eps:            m.eps,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Equal reports whether other has the same shape as m and every element
// differs by at most the eps configured on m (see WithEpsilon).
// Errors:
//   - ErrNilMatrix when other is nil.
func (m *Dense) Equal(other Matrix) (bool, error) {
	return AllClose(m, other, m.eps)
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs and debugging.
//   - An empty matrix renders as the empty string.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// AllClose reports whether a and b share a shape and |a[i,j]-b[i,j]| <= eps
// for all cells. NaN never compares close.
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//   - ErrNaNInf when eps is NaN/±Inf or negative.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, eps float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, err
	}
	if err := ValidateNotNil(b); err != nil {
		return false, err
	}
	if isNonFinite(eps) || eps < 0 {
		return false, fmt.Errorf("AllClose: eps=%g: %w", eps, ErrNaNInf)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}

	// Fast path: both *Dense, walk the flat buffers.
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			for k := range da.data {
				if !(math.Abs(da.data[k]-db.data[k]) <= eps) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var i, j int
	var x, y float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if x, err = a.At(i, j); err != nil {
				return false, err
			}
			if y, err = b.At(i, j); err != nil {
				return false, err
			}
			if !(math.Abs(x-y) <= eps) {
				return false, nil
			}
		}
	}

	return true, nil
}
