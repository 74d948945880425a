package lotsizing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Solver computes minimum-cost production schedules for a single-item demand
// forecast using the Wagner-Whitin dynamic program. A Solver holds no state
// between calls and is safe for concurrent use.
type Solver struct{}

// NewSolver creates a new Wagner-Whitin solver
func NewSolver() *Solver {
	return &Solver{}
}

// Solve partitions the horizon into production runs minimizing total setup,
// production and holding cost while satisfying every period's demand exactly.
//
// The plan's total cost equals the sum of its run costs, cumulative production
// never falls below cumulative demand, and no other feasible partition of the
// horizon costs less. Ties between partitions are broken toward the later run
// start, so the last run is the shortest one achieving the minimum.
func (s *Solver) Solve(demand []Quantity, params CostParameters) (*Plan, error) {
	if err := validateInput(demand, params); err != nil {
		return nil, err
	}
	n := len(demand)

	// runCosts[i][k-i] is the cost of one run producing at period i+1 the
	// demand for periods i+1..k+1. Each row is filled by extending a single
	// accumulator, so the whole table is O(T^2).
	runCosts := make([][]RunCost, n)
	for i := 0; i < n; i++ {
		runCosts[i] = make([]RunCost, n-i)
		acc := newRunCostAccumulator(params)
		for k := i; k < n; k++ {
			if err := acc.extend(demand[k]); err != nil {
				return nil, err
			}
			runCosts[i][k-i] = acc.cost()
		}
	}

	// cost[k] is the minimum cost to satisfy periods 1..k; pred[k] is the
	// start of the last run achieving it. cost[0] is the empty prefix.
	cost := make([]decimal.Decimal, n+1)
	pred := make([]int, n+1)
	cost[0] = decimal.Zero
	for k := 1; k <= n; k++ {
		var best decimal.Decimal
		bestStart := 0
		// Candidate starts are scanned from latest to earliest with strict
		// improvement only, so on equal cost the latest start wins.
		for i := k; i >= 1; i-- {
			candidate := cost[i-1].Add(runCosts[i-1][k-i].Total())
			if bestStart == 0 || candidate.LessThan(best) {
				best = candidate
				bestStart = i
			}
		}
		cost[k] = best
		pred[k] = bestStart
	}

	// Backtrack the run boundaries, then reverse into chronological order.
	var runs []Run
	for k := n; k > 0; k = pred[k] - 1 {
		start := pred[k]
		var qty int64
		for t := start - 1; t < k; t++ {
			qty += int64(demand[t])
		}
		runs = append(runs, Run{
			Start:    Period(start),
			End:      Period(k),
			Quantity: Quantity(qty),
			Cost:     runCosts[start-1][k-start],
		})
	}
	for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
		runs[i], runs[j] = runs[j], runs[i]
	}

	schedule := make([]Quantity, n)
	for _, r := range runs {
		schedule[r.Start-1] = r.Quantity
	}

	return &Plan{
		Policy:    WagnerWhitin,
		Schedule:  schedule,
		Runs:      runs,
		TotalCost: cost[n],
	}, nil
}

// validateInput rejects empty or negative demand and negative cost rates
// before any computation starts.
func validateInput(demand []Quantity, params CostParameters) error {
	if len(demand) == 0 {
		return ErrEmptyDemand
	}
	for t, d := range demand {
		if d < 0 {
			return fmt.Errorf("%w: period %d has demand %d", ErrNegativeDemand, t+1, d)
		}
	}
	return params.Validate()
}
