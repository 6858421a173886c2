// Package matrix provides the dense, row-major float64 storage used for
// transportation cost tables and allocation plans.
//
// The matrix package provides:
//
//   - Dense: a flat-slice r×c matrix with bounds-checked At/Set that return
//     sentinel errors instead of panicking.
//   - Functional growth helpers (AppendRow, AppendCol) that build a new
//     matrix and leave the operand untouched.
//   - Element-wise kernels (Hadamard, Scale) and reductions (Sum, RowSums,
//     ColSums) with a *Dense fast-path and a generic Matrix fallback.
//   - Central validators (ValidateNotNil, ValidateSameShape, ValidateVecLen).
//
// Numeric policy: every stored value must be finite; Set rejects NaN/±Inf
// with ErrNaNInf.
//
// Determinism: all loops run in fixed row-major order; no randomness and no
// map iteration.
//
//	costs, _ := matrix.NewFromRows([][]float64{{2, 3}, {4, 1}})
//	plan, _ := matrix.NewFromRows([][]float64{{5, 0}, {5, 10}})
//	weighted, _ := matrix.Hadamard(plan, costs)
//	total, _ := matrix.Sum(weighted) // 40
package matrix
