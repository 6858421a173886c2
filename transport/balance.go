package transport

import (
	"fmt"

	"github.com/katalvlaran/nwcorner/matrix"
)

// NoticeKind identifies which side of an unbalanced problem was short.
type NoticeKind int

const (
	// SupplySurplus: total supply exceeded total demand; a dummy consumer was added.
	SupplySurplus NoticeKind = iota + 1

	// DemandSurplus: total demand exceeded total supply; a dummy supplier was added.
	DemandSurplus
)

// Notice describes the balancing action taken by Balance.
type Notice struct {
	Kind NoticeKind
	Gap  float64 // |Σsupply − Σdemand|, the total assigned to the dummy participant
}

// String returns the user-facing balancing message.
func (n Notice) String() string {
	switch n.Kind {
	case SupplySurplus:
		return "The problem is unbalanced: supply exceeds demand. A dummy consumer was added."
	case DemandSurplus:
		return "The problem is unbalanced: demand exceeds supply. A dummy supplier was added."
	default:
		return "The problem is balanced."
	}
}

// Balance returns a balanced problem and, if it had to act, a Notice.
//
// Behavior:
//   - TotalsAgree(Σsupply, Σdemand): p itself is returned with a nil Notice.
//   - Supply surplus diff: a new Problem with demand diff under DummyConsumerLabel
//     and a zero-cost column appended to every row.
//   - Demand surplus diff: a new Problem with supply diff under DummySupplierLabel
//     and an all-zero cost row appended.
//
// p is never mutated. Only one side is ever extended.
// Complexity: O(m·n).
func Balance(p *Problem) (*Problem, *Notice) {
	supplyTotal, demandTotal := p.TotalSupply(), p.TotalDemand()
	if TotalsAgree(supplyTotal, demandTotal) {
		return p, nil
	}

	out := &Problem{
		supply:       p.Supply(),
		demand:       p.Demand(),
		supplyLabels: p.SupplyLabels(),
		demandLabels: p.DemandLabels(),
		dummyRow:     p.dummyRow,
		dummyCol:     p.dummyCol,
	}

	var (
		notice Notice
		err    error
	)
	if supplyTotal > demandTotal {
		notice = Notice{Kind: SupplySurplus, Gap: supplyTotal - demandTotal}
		out.demand = append(out.demand, notice.Gap)
		out.demandLabels = append(out.demandLabels, DummyConsumerLabel)
		out.dummyCol = len(out.demand) - 1
		out.costs, err = matrix.AppendCol(p.costs, make([]float64, p.Rows()))
	} else {
		notice = Notice{Kind: DemandSurplus, Gap: demandTotal - supplyTotal}
		out.supply = append(out.supply, notice.Gap)
		out.supplyLabels = append(out.supplyLabels, DummySupplierLabel)
		out.dummyRow = len(out.supply) - 1
		out.costs, err = matrix.AppendRow(p.costs, make([]float64, p.Cols()))
	}
	if err != nil {
		// Shapes come from a validated Problem; a failure here is a programmer error.
		panic(fmt.Sprintf("transport: Balance: %v", err))
	}

	return out, &notice
}
