package transport

import (
	"fmt"

	"github.com/katalvlaran/nwcorner/matrix"
)

// TotalCost returns Σ_ij alloc[i][j]·costs[i][j].
//
// The reduction is Sum(Hadamard(alloc, costs)) and runs in fixed row-major
// order. A shape mismatch surfaces matrix.ErrDimensionMismatch; with a Plan
// produced from the same problem this cannot happen.
//
// Complexity: O(m·n).
func TotalCost(p *Problem, alloc matrix.Matrix) (float64, error) {
	weighted, err := matrix.Hadamard(alloc, p.costs)
	if err != nil {
		return 0, fmt.Errorf("TotalCost: %w", err)
	}
	total, err := matrix.Sum(weighted)
	if err != nil {
		return 0, fmt.Errorf("TotalCost: %w", err)
	}

	return total, nil
}
