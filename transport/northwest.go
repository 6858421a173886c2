package transport

import (
	"fmt"

	"github.com/katalvlaran/nwcorner/matrix"
)

// Step is one allocation decision: Quantity units shipped from supplier Row
// to consumer Col. Steps are logged in the exact order they were made.
type Step struct {
	Row      int
	Col      int
	Quantity float64
}

// Plan is the outcome of NorthWest.
type Plan struct {
	// Allocation has the same shape as the problem's cost matrix.
	Allocation *matrix.Dense

	// Steps is the authoritative replay log of the algorithm's decisions.
	Steps []Step
}

// NorthWest computes the northwest-corner initial basic feasible solution.
//
// Description:
//
//	Fills the allocation grid greedily starting from the top-left cell,
//	shipping as much as possible at each cell and then moving right or down
//	depending on which side is exhausted.
//
// Algorithm Outline:
//  1. Copy supply and demand into remaining vectors; i = j = 0.
//  2. While i < rows and j < cols:
//     qty = min(remSupply[i], remDemand[j])
//     allocation[i][j] = qty; log Step{i, j, qty}
//     remSupply[i] -= qty; remDemand[j] -= qty
//  3. Advance, in this exact order:
//     both ≈ 0       → i++, j++
//     supply[i] ≈ 0  → i++
//     otherwise      → j++
//
// Supply exhaustion is checked before demand exhaustion; swapping the two
// changes which degenerate steps are logged.
//
// Complexity:
//
//	Time   = O(rows·cols) (allocation buffer) + O(rows+cols) iterations
//	Memory = O(rows·cols)
//
// Errors:
//   - ErrUnbalanced: p is not balanced (run Balance first).
func NorthWest(p *Problem) (*Plan, error) {
	if !p.IsBalanced() {
		return nil, fmt.Errorf("NorthWest: supply %g, demand %g: %w", p.TotalSupply(), p.TotalDemand(), ErrUnbalanced)
	}

	var (
		rows, cols = p.Rows(), p.Cols()
		remSupply  = p.Supply()
		remDemand  = p.Demand()
		steps      = make([]Step, 0, rows+cols-1)
		i, j       int
		qty        float64
	)
	alloc, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("NorthWest: %w", err)
	}

	for i < rows && j < cols {
		qty = min(remSupply[i], remDemand[j])
		if err = alloc.Set(i, j, qty); err != nil {
			return nil, fmt.Errorf("NorthWest: %w", err)
		}
		steps = append(steps, Step{Row: i, Col: j, Quantity: qty})
		remSupply[i] -= qty
		remDemand[j] -= qty

		switch {
		case IsZero(remSupply[i]) && IsZero(remDemand[j]):
			i++
			j++
		case IsZero(remSupply[i]):
			i++
		default:
			j++
		}
	}

	return &Plan{Allocation: alloc, Steps: steps}, nil
}

// Basis returns the logged cells in step order.
func (pl *Plan) Basis() [][2]int {
	out := make([][2]int, len(pl.Steps))
	for k, s := range pl.Steps {
		out[k] = [2]int{s.Row, s.Col}
	}

	return out
}

// IsDegenerate reports whether fewer than rows+cols−1 steps were logged,
// which happens when a supply and a demand run out at the same time.
func (pl *Plan) IsDegenerate() bool {
	rows, cols := pl.Allocation.Shape()

	return len(pl.Steps) < rows+cols-1
}
