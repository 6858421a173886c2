// SPDX-License-Identifier: MIT
// Package matrix - element-wise kernels, reductions and functional growth.
//
// Every kernel follows the same staging:
//   - Stage 1 (Validate): nil-checks and shape match via validators.go.
//   - Stage 2 (Prepare): allocate the result Dense.
//   - Stage 3 (Execute): fast-path for *Dense or fallback to the interface.
//
// None of the functions mutate their operands.

package matrix

import "fmt"

const (
	opHadamard  = "Hadamard"
	opScale     = "Scale"
	opSum       = "Sum"
	opRowSums   = "RowSums"
	opColSums   = "ColSums"
	opAppendRow = "AppendRow"
	opAppendCol = "AppendCol"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Hadamard returns the element-wise product a ⊙ b.
// Complexity: O(r·c) time and memory.
func Hadamard(a, b Matrix) (*Dense, error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Fast-path for two Dense matrices: single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j) // safe: bounds ensured
			bv, _ = b.At(i, j) // safe: same shape
			if err = res.Set(i, j, av*bv); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
		}
	}

	return res, nil
}

// Scale returns alpha*m as a new Dense.
// Complexity: O(r·c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx := range res.data {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
		}
	}

	return res, nil
}

// Sum returns the sum of all entries in row-major order.
// Complexity: O(r·c).
func Sum(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opSum, err)
	}

	var total float64
	if dm, ok := m.(*Dense); ok {
		for _, v := range dm.data {
			total += v
		}

		return total, nil
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			total += v
		}
	}

	return total, nil
}

// RowSums returns Σ_j m[i][j] for every row i.
// Complexity: O(r·c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	var (
		rows, cols = m.Rows(), m.Cols()
		out        = make([]float64, rows)
		i, j       int
		v          float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns Σ_i m[i][j] for every column j.
// Complexity: O(r·c).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	var (
		rows, cols = m.Rows(), m.Cols()
		out        = make([]float64, cols)
		i, j       int
		v          float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			out[j] += v
		}
	}

	return out, nil
}

// AppendRow returns a new (r+1)×c Dense holding m followed by row.
// len(row) must equal m.Cols(). m is left untouched.
// Complexity: O(r·c).
func AppendRow(m *Dense, row []float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAppendRow, err)
	}
	if err := ValidateVecLen(row, m.c); err != nil {
		return nil, matrixErrorf(opAppendRow, err)
	}
	res, err := NewDense(m.r+1, m.c)
	if err != nil {
		return nil, matrixErrorf(opAppendRow, err)
	}
	copy(res.data, m.data)
	for j, v := range row {
		if err = res.Set(m.r, j, v); err != nil {
			return nil, matrixErrorf(opAppendRow, err)
		}
	}

	return res, nil
}

// AppendCol returns a new r×(c+1) Dense holding m with col as the last column.
// len(col) must equal m.Rows(). m is left untouched.
// Complexity: O(r·c).
func AppendCol(m *Dense, col []float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAppendCol, err)
	}
	if err := ValidateVecLen(col, m.r); err != nil {
		return nil, matrixErrorf(opAppendCol, err)
	}
	res, err := NewDense(m.r, m.c+1)
	if err != nil {
		return nil, matrixErrorf(opAppendCol, err)
	}
	var i int
	for i = 0; i < m.r; i++ {
		copy(res.data[i*res.c:i*res.c+m.c], m.data[i*m.c:(i+1)*m.c])
		if err = res.Set(i, m.c, col[i]); err != nil {
			return nil, matrixErrorf(opAppendCol, err)
		}
	}

	return res, nil
}
