// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write view over a grid of float64 cells that the
// transport, table and animate packages share. Cost matrices and allocation
// grids are both Matrix values; *Dense is the only production implementation.
//
// Indexers never panic: a bad (row, col) yields ErrOutOfRange.
type Matrix interface {
	// Rows is the number of suppliers for a cost or allocation grid.
	Rows() int

	// Cols is the number of consumers.
	Cols() int

	// At reads cell (row, col).
	At(row, col int) (float64, error)

	// Set writes v into cell (row, col); non-finite v yields ErrNaNInf.
	Set(row, col int, v float64) error

	// Clone deep-copies the grid. O(rows·cols).
	Clone() Matrix
}
