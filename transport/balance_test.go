package transport_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/nwcorner/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBalance_SupplySurplus: supply [10], demand [4 4] gains a dummy consumer of 2.
func TestBalance_SupplySurplus(t *testing.T) {
	t.Parallel()

	p := mustProblem(t, []float64{10}, []float64{4, 4}, [][]float64{{3, 5}})
	b, notice := transport.Balance(p)

	require.NotNil(t, notice)
	assert.Equal(t, transport.SupplySurplus, notice.Kind)
	assert.InDelta(t, 2.0, notice.Gap, transport.Eps)
	assert.Contains(t, notice.String(), "dummy consumer")

	assert.Equal(t, []float64{4, 4, 2}, b.Demand())
	assert.Equal(t, []string{"C1", "C2", transport.DummyConsumerLabel}, b.DemandLabels())
	assert.Equal(t, [][]float64{{3, 5, 0}}, b.Costs().ToRows())
	assert.True(t, b.IsDummyCol(2))
	assert.False(t, b.IsDummyRow(0))
	assert.InDelta(t, 10.0, b.TotalSupply(), transport.Eps)
	assert.InDelta(t, 10.0, b.TotalDemand(), transport.Eps)

	// original untouched
	assert.Equal(t, []float64{4, 4}, p.Demand())
	assert.Equal(t, [][]float64{{3, 5}}, p.Costs().ToRows())
}

func TestBalance_DemandSurplus(t *testing.T) {
	t.Parallel()

	p := mustProblem(t, []float64{3, 4}, []float64{10}, [][]float64{{1}, {2}})
	b, notice := transport.Balance(p)

	require.NotNil(t, notice)
	assert.Equal(t, transport.DemandSurplus, notice.Kind)
	assert.InDelta(t, 3.0, notice.Gap, transport.Eps)
	assert.Contains(t, notice.String(), "dummy supplier")

	assert.Equal(t, []float64{3, 4, 3}, b.Supply())
	assert.Equal(t, []string{"S1", "S2", transport.DummySupplierLabel}, b.SupplyLabels())
	assert.Equal(t, [][]float64{{1}, {2}, {0}}, b.Costs().ToRows())
	assert.True(t, b.IsDummyRow(2))
	assert.Equal(t, []float64{3, 4}, p.Supply())
}

// TestBalance_Idempotent: balanced input comes back as the same value with no notice.
func TestBalance_Idempotent(t *testing.T) {
	t.Parallel()

	p := mustProblem(t, []float64{5, 15}, []float64{10, 10}, [][]float64{{2, 3}, {4, 1}})
	b, notice := transport.Balance(p)
	assert.Nil(t, notice)
	assert.Same(t, p, b)

	// balancing a balanced result is a no-op as well
	unbalanced := mustProblem(t, []float64{7}, []float64{2}, [][]float64{{1}})
	once, n1 := transport.Balance(unbalanced)
	require.NotNil(t, n1)
	twice, n2 := transport.Balance(once)
	assert.Nil(t, n2)
	assert.Same(t, once, twice)
}

// TestBalance_WithinEps: differences below Eps are treated as balanced.
func TestBalance_WithinEps(t *testing.T) {
	t.Parallel()

	p := mustProblem(t, []float64{1 + 1e-12}, []float64{1}, [][]float64{{1}})
	_, notice := transport.Balance(p)
	assert.Nil(t, notice)
}

// TestBalance_Invariant: for any problem, the balanced result passes
// IsBalanced, its totals agree to Eps relative precision and at most one
// dummy participant is appended.
func TestBalance_Invariant(t *testing.T) {
	t.Parallel()

	generators := map[string]func(*testing.T, *rand.Rand) *transport.Problem{
		"small":     randomProblem,
		"large 1e9": randomLargeProblem,
	}
	for name, gen := range generators {
		gen := gen
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewSource(seedDet))
			for k := 0; k < randomCases; k++ {
				p := gen(t, rng)
				b, notice := transport.Balance(p)

				s, d := b.TotalSupply(), b.TotalDemand()
				require.True(t, b.IsBalanced(), "case %d: supply %v, demand %v", k, s, d)
				require.LessOrEqual(t, math.Abs(s-d), transport.Eps*math.Max(1, math.Max(s, d)))
				grown := (b.Rows() - p.Rows()) + (b.Cols() - p.Cols())
				if notice == nil {
					require.Equal(t, 0, grown)
				} else {
					require.Equal(t, 1, grown)
				}

				again, n2 := transport.Balance(b)
				require.Nil(t, n2, "case %d", k)
				require.Same(t, b, again)
			}
		})
	}
}

// TestBalance_LargeFractionalTotals: recomputing a total after appending the
// dummy entry rounds away from the other side by more than the absolute Eps;
// the result must still be accepted by NorthWest.
func TestBalance_LargeFractionalTotals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		supply []float64
		demand []float64
	}{
		{
			name:   "demand surplus, single cells",
			supply: []float64{10300000.88},
			demand: []float64{31800000.56},
		},
		{
			name:   "demand surplus, three consumers",
			supply: []float64{3.420000083e+07},
			demand: []float64{9.780000033e+07, 7.22000008e+07, 3.590000015e+07},
		},
		{
			name:   "supply surplus",
			supply: []float64{9.780000033e+07, 7.22000008e+07, 3.590000015e+07},
			demand: []float64{3.420000083e+07},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			costs := make([][]float64, len(tc.supply))
			for i := range costs {
				costs[i] = make([]float64, len(tc.demand))
			}
			b, notice := transport.Balance(mustProblem(t, tc.supply, tc.demand, costs))
			require.NotNil(t, notice)
			require.True(t, b.IsBalanced())

			plan, err := transport.NorthWest(b)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(plan.Steps), b.Rows()+b.Cols()-1)
		})
	}
}

func TestTotalsAgree(t *testing.T) {
	t.Parallel()

	assert.True(t, transport.TotalsAgree(1, 1+5e-10))
	assert.False(t, transport.TotalsAgree(1, 1+5e-9))
	assert.True(t, transport.TotalsAgree(0, 1e-10))
	assert.True(t, transport.TotalsAgree(3.1800000560000002e+07, 3.180000056e+07))
	assert.False(t, transport.TotalsAgree(1e8, 1e8+1))
}

func TestNotice_StringDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "The problem is balanced.", transport.Notice{}.String())
}
