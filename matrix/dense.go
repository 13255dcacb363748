// SPDX-License-Identifier: MIT
// Package matrix: Dense is the concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for performance and
// cache friendliness.

package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// SubCol returns a fresh copy of rows from..r-1 of column col.
// Factorization kernels read a diagonal-and-below column slice each step;
// returning a copy keeps the backing storage free of aliasing.
//
// Errors: ErrOutOfRange if col or from is outside valid bounds
// (from == r yields an empty slice, which is valid at loop boundaries).
// Complexity: O(r-from) time and memory.
func (m *Dense) SubCol(col, from int) ([]float64, error) {
	// Validate column index
	if col < 0 || col >= m.c {
		return nil, denseErrorf("SubCol", from, col, ErrOutOfRange)
	}
	// Validate starting row (r itself allowed: empty tail)
	if from < 0 || from > m.r {
		return nil, denseErrorf("SubCol", from, col, ErrOutOfRange)
	}

	// Copy the strided column tail into a contiguous slice
	out := make([]float64, m.r-from)
	for i := range out {
		out[i] = m.data[(from+i)*m.c+col]
	}

	return out, nil
}

// SetSubCol writes v into rows from..from+len(v)-1 of column col.
// The mirror of SubCol; kernels use the pair to pull a column tail into
// contiguous memory, transform it, and write it back.
//
// Errors: ErrOutOfRange if col/from is invalid,
// ErrDimensionMismatch if v overruns the column.
// Complexity: O(len(v)).
func (m *Dense) SetSubCol(col, from int, v []float64) error {
	// Validate column index
	if col < 0 || col >= m.c {
		return denseErrorf("SetSubCol", from, col, ErrOutOfRange)
	}
	// Validate starting row
	if from < 0 || from > m.r {
		return denseErrorf("SetSubCol", from, col, ErrOutOfRange)
	}
	// Validate that v fits below `from`
	if from+len(v) > m.r {
		return denseErrorf("SetSubCol", from, col, ErrDimensionMismatch)
	}

	// Scatter v back into the strided column
	for i, val := range v {
		m.data[(from+i)*m.c+col] = val
	}

	return nil
}

// DenseCopy materializes any Matrix into a fresh *Dense.
// For a *Dense input this is Clone; otherwise the contents are pulled
// through At in fixed i→j order. Factorization kernels call this once up
// front so their inner loops always run on flat storage.
//
// Errors: ErrNilMatrix (nil input), plus whatever At surfaces.
// Complexity: O(r*c) time and memory.
func DenseCopy(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	// Fast path: deep-copy the backing slice.
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}

	// Fallback: element-wise pull in fixed i→j order.
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
