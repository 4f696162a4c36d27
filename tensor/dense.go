// Package tensor: Dense is a concrete, row-major general matrix of float64
// values, storing elements in a flat slice for performance and cache
// friendliness. The 0-based At/Set pair and the 1-based Ndx/SetNdx pair are
// two views over the same storage and always resolve to the identical cell.
package tensor

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// Every Dense exclusively owns data; copies are deep, shapes never change
// after construction.
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

// FromRows creates a Dense from a row-of-rows slice, copying every value.
// The input must be rectangular (no ragged rows) and non-empty.
// Complexity: O(r*c) time and memory.
func FromRows(rows [][]float64) (*Dense, error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])

	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	// Copy rows, rejecting ragged input
	for i, row := range rows {
		if len(row) != cols {
			return nil, ErrBadShape
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for a 0-based (row, col) or returns
// ErrOutOfRange wrapped with the calling method's context.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at the 0-based (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at the 0-based (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Ndx retrieves the element at the 1-based (row, col). For all valid
// indices, Ndx(i, j) reads the same cell as At(i-1, j-1).
// Complexity: O(1).
func (m *Dense) Ndx(row, col int) (float64, error) {
	idx, err := m.indexOf("Ndx", row-1, col-1)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// SetNdx assigns value v at the 1-based (row, col). For all valid indices,
// SetNdx(i, j, v) writes the same cell as Set(i-1, j-1, v).
// Complexity: O(1).
func (m *Dense) SetNdx(row, col int, v float64) error {
	idx, err := m.indexOf("SetNdx", row-1, col-1)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// CopyFrom copies every value of src into the receiver.
// Shapes must match exactly; the receiver keeps its own storage.
// Complexity: O(r*c).
func (m *Dense) CopyFrom(src *Dense) error {
	// Validate matching shape
	if src.r != m.r || src.c != m.c {
		return fmt.Errorf("Dense.CopyFrom: %dx%d <- %dx%d: %w",
			m.r, m.c, src.r, src.c, ErrDimensionMismatch)
	}
	// Deep copy backing storage
	copy(m.data, src.data)

	return nil
}

// SetRows copies values from a row-of-rows slice into the receiver.
// The input shape must match the receiver exactly.
// Complexity: O(r*c).
func (m *Dense) SetRows(rows [][]float64) error {
	// Validate outer shape
	if len(rows) != m.r {
		return fmt.Errorf("Dense.SetRows: %dx%d <- %d rows: %w",
			m.r, m.c, len(rows), ErrDimensionMismatch)
	}
	// Copy rows, rejecting ragged input
	for i, row := range rows {
		if len(row) != m.c {
			return fmt.Errorf("Dense.SetRows: row %d has %d cols, want %d: %w",
				i, len(row), m.c, ErrDimensionMismatch)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
