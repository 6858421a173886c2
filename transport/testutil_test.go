// Package transport_test provides small fixtures shared across *_test.go files.
package transport_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/nwcorner/transport"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet keeps the randomized property cases reproducible.
	seedDet = int64(42)

	// randomCases is the number of generated problems per property test.
	randomCases = 200
)

// mustProblem builds a Problem with default labels or fails the test.
func mustProblem(t *testing.T, supply, demand []float64, costs [][]float64) *transport.Problem {
	t.Helper()
	p, err := transport.NewProblem(supply, demand, costs, nil, nil)
	require.NoError(t, err)

	return p
}

// randomLargeProblem draws an unbalanced-prone problem whose quantities are
// fractional values in the 1e6..1e9 range with two decimals, where summing
// the totals loses low-order bits.
func randomLargeProblem(t *testing.T, rng *rand.Rand) *transport.Problem {
	t.Helper()
	rows, cols := 1+rng.Intn(6), 1+rng.Intn(6)
	draw := func() float64 {
		scale := math.Pow(10, float64(6+rng.Intn(4)))
		return math.Round(rng.Float64()*scale*100) / 100
	}
	supply := make([]float64, rows)
	for i := range supply {
		supply[i] = draw()
	}
	demand := make([]float64, cols)
	for j := range demand {
		demand[j] = draw()
	}
	costs := make([][]float64, rows)
	for i := range costs {
		costs[i] = make([]float64, cols)
		for j := range costs[i] {
			costs[i][j] = float64(1 + rng.Intn(20))
		}
	}

	return mustProblem(t, supply, demand, costs)
}

// randomProblem draws a (possibly unbalanced) problem with 1..6 suppliers and
// consumers. Roughly a third of the values are whole numbers so that
// simultaneous exhaustion (degenerate plans) shows up regularly.
func randomProblem(t *testing.T, rng *rand.Rand) *transport.Problem {
	t.Helper()
	rows, cols := 1+rng.Intn(6), 1+rng.Intn(6)
	draw := func() float64 {
		if rng.Intn(3) == 0 {
			return float64(rng.Intn(20))
		}
		return rng.Float64() * 50
	}
	supply := make([]float64, rows)
	for i := range supply {
		supply[i] = draw()
	}
	demand := make([]float64, cols)
	for j := range demand {
		demand[j] = draw()
	}
	costs := make([][]float64, rows)
	for i := range costs {
		costs[i] = make([]float64, cols)
		for j := range costs[i] {
			costs[i][j] = float64(2 + rng.Intn(13))
		}
	}

	return mustProblem(t, supply, demand, costs)
}
