// Package transport computes an initial basic feasible solution of the
// transportation problem with the northwest-corner method.
//
// 🚀 What is the transportation problem?
//
//	m suppliers hold supply[i] units, n consumers need demand[j] units and
//	shipping one unit from i to j costs costs[i][j]. A plan assigns a
//	non-negative quantity to every (i, j) cell so that row sums equal supply
//	and column sums equal demand.
//
// ✨ Key features:
//   - Problem: immutable value (accessors return copies).
//   - Balance: appends a zero-cost dummy supplier or consumer when totals differ.
//   - NorthWest: greedy top-left fill producing the allocation and an ordered Step log.
//   - TotalCost: Σ allocation ⊙ costs.
//
// ⚙️ Usage:
//
//	p, _ := transport.NewProblem(
//	  []float64{5, 15}, []float64{10, 10},
//	  [][]float64{{2, 3}, {4, 1}}, nil, nil)
//	balanced, notice := transport.Balance(p) // notice == nil: already balanced
//	plan, _ := transport.NorthWest(balanced)
//	cost, _ := transport.TotalCost(balanced, plan.Allocation) // 40
//
// Numeric policy: values within Eps (1e-9) of zero are treated as zero;
// supply and demand totals agree when they match to Eps relative precision.
//
// Complexity:
//   - Balance: O(m·n) (one functional copy of the cost matrix)
//   - NorthWest: O(m·n) for the allocation buffer, O(m+n) loop iterations
//   - TotalCost: O(m·n)
//
// Only an initial feasible solution is produced; no optimisation pass
// (stepping-stone, MODI) is performed.
package transport
