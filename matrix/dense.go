// Package matrix: Dense is a concrete, row-major implementation of an exact
// rational matrix, storing *big.Rat entries in a flat slice for cache
// friendliness. All entries are defensively copied on the way in and out.
package matrix

import (
	"math/big"
	"strings"
)

// Dense is a row-major matrix of exact rational values.
// r is rows, c is columns, and data holds r*c entries in row-major order.
// Every stored entry is owned by the matrix; At and Set copy values so the
// matrix never aliases caller-owned rationals.
type Dense struct {
	r, c int
	data []*big.Rat // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to exact zeros.
// Returns ErrBadShape when rows or cols are non-positive.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}
	return &Dense{r: rows, c: cols, data: data}, nil
}

// Identity creates the n×n identity matrix.
// Returns ErrBadShape when n is non-positive.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	one := big.NewRat(1, 1)
	for i := 0; i < n; i++ {
		m.data[i*n+i].Set(one)
	}
	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or reports ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}
	return row*m.c + col, nil
}

// At returns a copy of the entry at (row, col).
// Returns ErrNilMatrix on a nil receiver and ErrOutOfRange on bad indices.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	idx, err := m.indexOf(row, col)
	if err != nil {
		return nil, err
	}
	return new(big.Rat).Set(m.data[idx]), nil
}

// Set stores a copy of v at (row, col).
// Returns ErrNilMatrix, ErrNilValue, or ErrOutOfRange on invalid input.
func (m *Dense) Set(row, col int, v *big.Rat) error {
	if m == nil {
		return ErrNilMatrix
	}
	if v == nil {
		return ErrNilValue
	}
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx].Set(v)
	return nil
}

// SetInt64 stores the integer v at (row, col); a convenience for the common
// case of 0/±1 entries in permutation-style matrices.
func (m *Dense) SetInt64(row, col int, v int64) error {
	return m.Set(row, col, new(big.Rat).SetInt64(v))
}

// Mul returns the exact product m·b.
// Returns ErrNilMatrix when either operand is nil and ErrDimensionMismatch
// when m.Cols != b.Rows.
// Complexity: O(r·c·k) big.Rat multiply-adds.
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	if m == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if m.c != b.r {
		return nil, ErrDimensionMismatch
	}
	out, err := NewDense(m.r, b.c)
	if err != nil {
		return nil, err
	}
	term := new(big.Rat)
	for i := 0; i < m.r; i++ {
		for j := 0; j < b.c; j++ {
			acc := out.data[i*b.c+j]
			for k := 0; k < m.c; k++ {
				term.Mul(m.data[i*m.c+k], b.data[k*b.c+j])
				acc.Add(acc, term)
			}
		}
	}
	return out, nil
}

// Trace returns the exact sum of the diagonal entries.
// Returns ErrNilMatrix on a nil receiver and ErrNonSquare when r != c.
func (m *Dense) Trace() (*big.Rat, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.r != m.c {
		return nil, ErrNonSquare
	}
	tr := new(big.Rat)
	for i := 0; i < m.r; i++ {
		tr.Add(tr, m.data[i*m.c+i])
	}
	return tr, nil
}

// Equal reports exact entry-wise equality of two matrices.
// Matrices of different shapes are never equal; two nil matrices are.
func (m *Dense) Equal(b *Dense) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(b.data[i]) != 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the matrix.
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	out := &Dense{r: m.r, c: m.c, data: make([]*big.Rat, len(m.data))}
	for i, v := range m.data {
		out.data[i] = new(big.Rat).Set(v)
	}
	return out
}

// String renders the matrix row by row, entries in lowest terms.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.data[i*m.c+j].RatString())
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
