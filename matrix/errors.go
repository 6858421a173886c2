// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinels are returned bare or wrapped as fmt.Errorf("Op: %w", ErrX);
// match them with errors.Is. Messages carry the "matrix: " prefix.
var (
	// ErrInvalidDimensions: a requested grid has zero or negative rows or columns.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange: a row or column index lies outside the grid.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch: two operands (or a grid and a vector) disagree in shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix: a nil Matrix or vector was passed where a value is required.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf: a cell would hold NaN or ±Inf.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrRagged: row-wise input had rows of different lengths.
	ErrRagged = errors.New("matrix: ragged rows")
)
