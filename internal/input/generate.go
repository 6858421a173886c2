package input

import (
	"math/rand"

	"github.com/katalvlaran/nwcorner/transport"
)

const (
	randQtyMin  = 10 // inclusive
	randQtySpan = 40 // quantities fall in [10, 49]
	randCostMin = 2
	randCostSpn = 13 // costs fall in [2, 14]
)

// PresetSpec is the 2×3 demonstration problem.
func PresetSpec() Spec {
	return Spec{
		Supply: []float64{30, 40},
		Demand: []float64{20, 30, 20},
		Costs: [][]float64{
			{8, 6, 9},
			{5, 3, 7},
		},
	}
}

// Preset returns the demonstration problem.
func Preset() (*transport.Problem, error) { return PresetSpec().Problem() }

// RandomSpec draws a balanced rows×cols problem from rng.
// Supplies and demands are whole numbers in [10, 49]; the short side is
// topped up on its last entry so totals match. Costs are whole numbers in [2, 14].
// Equal seeds produce equal specs.
func RandomSpec(rows, cols int, rng *rand.Rand) Spec {
	var (
		supply    = make([]float64, rows)
		demand    = make([]float64, cols)
		costs     = make([][]float64, rows)
		supplySum float64
		demandSum float64
	)
	for i := range supply {
		supply[i] = float64(randQtyMin + rng.Intn(randQtySpan))
		supplySum += supply[i]
	}
	for j := range demand {
		demand[j] = float64(randQtyMin + rng.Intn(randQtySpan))
		demandSum += demand[j]
	}
	switch diff := supplySum - demandSum; {
	case diff > 0:
		demand[cols-1] += diff
	case diff < 0:
		supply[rows-1] -= diff
	}
	for i := range costs {
		costs[i] = make([]float64, cols)
		for j := range costs[i] {
			costs[i][j] = float64(randCostMin + rng.Intn(randCostSpn))
		}
	}

	return Spec{Supply: supply, Demand: demand, Costs: costs}
}

// Random is RandomSpec(...).Problem().
func Random(rows, cols int, rng *rand.Rand) (*transport.Problem, error) {
	return RandomSpec(rows, cols, rng).Problem()
}
