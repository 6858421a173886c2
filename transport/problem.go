package transport

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nwcorner/matrix"
)

// Eps is the zero tolerance. Totals are compared relative to their size
// (see TotalsAgree).
const Eps = 1e-9

const (
	// DummySupplierLabel names the synthetic supplier added by Balance.
	DummySupplierLabel = "DummyS"

	// DummyConsumerLabel names the synthetic consumer added by Balance.
	DummyConsumerLabel = "DummyC"

	// noDummy marks the absence of a synthetic row/column.
	noDummy = -1
)

// IsZero reports whether |v| ≤ Eps.
func IsZero(v float64) bool { return math.Abs(v) <= Eps }

// TotalsAgree reports whether two totals are equal up to Eps relative to their
// magnitude: |s − d| ≤ Eps·max(1, |s|, |d|). Below 1 this is the absolute Eps.
// Balance and IsBalanced both use it, so a problem returned by Balance always
// passes the NorthWest precondition whatever its scale.
func TotalsAgree(s, d float64) bool {
	return math.Abs(s-d) <= Eps*max(1, math.Abs(s), math.Abs(d))
}

// Problem is an immutable transportation problem.
//
// Invariants (checked by NewProblem):
//   - len(supply) == costs.Rows() == len(supplyLabels) ≥ 1
//   - len(demand) == costs.Cols() == len(demandLabels) ≥ 1
//   - every value is finite and ≥ 0
//
// All accessors return copies; a *Problem may be shared freely.
type Problem struct {
	supply       []float64
	demand       []float64
	costs        *matrix.Dense
	supplyLabels []string
	demandLabels []string

	dummyRow int // index of the synthetic supplier, or noDummy
	dummyCol int // index of the synthetic consumer, or noDummy
}

// NewProblem validates the input and builds a Problem.
// Nil label slices default to "S1".."Sm" and "C1".."Cn".
// Inputs are copied; later mutation by the caller has no effect.
//
// Errors: ErrEmptyProblem, ErrShapeMismatch, ErrNegativeValue, ErrNaNInf.
// Complexity: O(m·n).
func NewProblem(supply, demand []float64, costs [][]float64, supplyLabels, demandLabels []string) (*Problem, error) {
	if len(supply) == 0 || len(demand) == 0 {
		return nil, ErrEmptyProblem
	}
	if supplyLabels == nil {
		supplyLabels = DefaultLabels("S", len(supply))
	}
	if demandLabels == nil {
		demandLabels = DefaultLabels("C", len(demand))
	}
	if len(costs) != len(supply) || len(supplyLabels) != len(supply) || len(demandLabels) != len(demand) {
		return nil, ErrShapeMismatch
	}
	for i, row := range costs {
		if len(row) != len(demand) {
			return nil, fmt.Errorf("costs row %d: %w", i, ErrShapeMismatch)
		}
		if err := checkValues(row); err != nil {
			return nil, fmt.Errorf("costs row %d: %w", i, err)
		}
	}
	if err := checkValues(supply); err != nil {
		return nil, fmt.Errorf("supply: %w", err)
	}
	if err := checkValues(demand); err != nil {
		return nil, fmt.Errorf("demand: %w", err)
	}

	dense, err := matrix.NewFromRows(costs)
	if err != nil {
		return nil, fmt.Errorf("costs: %w", err)
	}

	return &Problem{
		supply:       cloneFloats(supply),
		demand:       cloneFloats(demand),
		costs:        dense,
		supplyLabels: cloneStrings(supplyLabels),
		demandLabels: cloneStrings(demandLabels),
		dummyRow:     noDummy,
		dummyCol:     noDummy,
	}, nil
}

// DefaultLabels returns prefix1..prefixN.
func DefaultLabels(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}

	return out
}

// checkValues enforces the finite, non-negative numeric policy.
func checkValues(vs []float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		if v < 0 {
			return ErrNegativeValue
		}
	}

	return nil
}

// Rows returns the number of suppliers.
func (p *Problem) Rows() int { return len(p.supply) }

// Cols returns the number of consumers.
func (p *Problem) Cols() int { return len(p.demand) }

// Supply returns a copy of the supply vector.
func (p *Problem) Supply() []float64 { return cloneFloats(p.supply) }

// Demand returns a copy of the demand vector.
func (p *Problem) Demand() []float64 { return cloneFloats(p.demand) }

// SupplyLabels returns a copy of the supplier labels.
func (p *Problem) SupplyLabels() []string { return cloneStrings(p.supplyLabels) }

// DemandLabels returns a copy of the consumer labels.
func (p *Problem) DemandLabels() []string { return cloneStrings(p.demandLabels) }

// Costs returns an independent copy of the cost matrix.
func (p *Problem) Costs() *matrix.Dense { return p.costs.Clone().(*matrix.Dense) }

// Cost returns costs[i][j]; out-of-range indices yield 0.
func (p *Problem) Cost(i, j int) float64 {
	v, _ := p.costs.At(i, j)

	return v
}

// TotalSupply returns Σ supply.
func (p *Problem) TotalSupply() float64 { return sum(p.supply) }

// TotalDemand returns Σ demand.
func (p *Problem) TotalDemand() float64 { return sum(p.demand) }

// IsBalanced reports whether TotalsAgree(Σsupply, Σdemand).
func (p *Problem) IsBalanced() bool { return TotalsAgree(p.TotalSupply(), p.TotalDemand()) }

// IsDummyRow reports whether row i is the synthetic supplier added by Balance.
func (p *Problem) IsDummyRow(i int) bool { return p.dummyRow != noDummy && i == p.dummyRow }

// IsDummyCol reports whether column j is the synthetic consumer added by Balance.
func (p *Problem) IsDummyCol(j int) bool { return p.dummyCol != noDummy && j == p.dummyCol }

func sum(vs []float64) float64 {
	var total float64
	for _, v := range vs {
		total += v
	}

	return total
}

func cloneFloats(vs []float64) []float64 {
	out := make([]float64, len(vs))
	copy(out, vs)

	return out
}

func cloneStrings(vs []string) []string {
	out := make([]string, len(vs))
	copy(out, vs)

	return out
}
