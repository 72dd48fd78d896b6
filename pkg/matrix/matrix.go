/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package matrix exposes a small zero-indexed matrix API, backed by gonum's dense linear algebra,
// used by pkg/attitude to assemble and multiply the TRIAD rotation matrix.
package matrix

/*****************************************************************************************************************/

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/*****************************************************************************************************************/

// Matrix wraps a gonum dense matrix behind a row/column-count API matching the rest of this
// module's naming conventions.
type Matrix struct {
	dense *mat.Dense
}

/*****************************************************************************************************************/

// New creates a new matrix with the specified number of rows and columns, all elements zero.
func New(rows, columns int) (*Matrix, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errors.New("matrix dimensions must be positive")
	}

	return &Matrix{dense: mat.NewDense(rows, columns, nil)}, nil
}

/*****************************************************************************************************************/

// NewFromSlice creates a new matrix from a row-major slice of exactly rows*columns elements.
func NewFromSlice(value []float64, rows, columns int) (*Matrix, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errors.New("matrix dimensions must be positive")
	}

	if len(value) != rows*columns {
		return nil, fmt.Errorf("length %d does not match matrix dimensions %dx%d", len(value), rows, columns)
	}

	v := make([]float64, len(value))
	copy(v, value)

	return &Matrix{dense: mat.NewDense(rows, columns, v)}, nil
}

/*****************************************************************************************************************/

func (m *Matrix) Rows() int {
	r, _ := m.dense.Dims()
	return r
}

/*****************************************************************************************************************/

func (m *Matrix) Columns() int {
	_, c := m.dense.Dims()
	return c
}

/*****************************************************************************************************************/

func (m *Matrix) At(row, col int) (float64, error) {
	r, c := m.dense.Dims()
	if row < 0 || row >= r || col < 0 || col >= c {
		return 0, fmt.Errorf("index out of bounds: row=%d, col=%d", row, col)
	}

	return m.dense.At(row, col), nil
}

/*****************************************************************************************************************/

func (m *Matrix) Set(row, col int, value float64) error {
	r, c := m.dense.Dims()
	if row < 0 || row >= r || col < 0 || col >= c {
		return fmt.Errorf("index out of bounds: row=%d, col=%d", row, col)
	}

	m.dense.Set(row, col, value)

	return nil
}

/*****************************************************************************************************************/

// Transpose returns a new matrix that is the transpose of the original.
func (m *Matrix) Transpose() (*Matrix, error) {
	r, c := m.dense.Dims()

	result := mat.NewDense(c, r, nil)
	result.Copy(m.dense.T())

	return &Matrix{dense: result}, nil
}

/*****************************************************************************************************************/

// Multiply performs matrix multiplication between m and other, requiring m.Columns() == other.Rows().
func (m *Matrix) Multiply(other *Matrix) (*Matrix, error) {
	mr, mc := m.dense.Dims()
	or, oc := other.dense.Dims()

	if mc != or {
		return nil, fmt.Errorf("cannot multiply: %dx%d with %dx%d", mr, mc, or, oc)
	}

	result := mat.NewDense(mr, oc, nil)
	result.Mul(m.dense, other.dense)

	return &Matrix{dense: result}, nil
}

/*****************************************************************************************************************/

// Invert returns the inverse of the matrix. Only square, non-singular matrices can be inverted.
func (m *Matrix) Invert() (*Matrix, error) {
	r, c := m.dense.Dims()
	if r != c {
		return nil, errors.New("only square matrices can be inverted")
	}

	result := mat.NewDense(r, c, nil)
	if err := result.Inverse(m.dense); err != nil {
		return nil, fmt.Errorf("matrix is singular and cannot be inverted: %w", err)
	}

	return &Matrix{dense: result}, nil
}

/*****************************************************************************************************************/

// Dense exposes the underlying gonum matrix for callers that need gonum-native operations
// (eigendecomposition, SVD) beyond this package's surface.
func (m *Matrix) Dense() *mat.Dense {
	return m.dense
}

/*****************************************************************************************************************/
