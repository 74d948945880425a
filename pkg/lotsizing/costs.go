package lotsizing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// CostOfRun returns the decomposed cost of producing, at period start, the
// cumulative demand for periods start..end. One setup is charged per run
// regardless of length; units destined for period t are held for t-start
// periods. Pure function of its inputs.
func CostOfRun(demand []Quantity, params CostParameters, start, end Period) (RunCost, error) {
	if start < 1 || end < start || int(end) > len(demand) {
		return RunCost{}, fmt.Errorf("%w: [%d, %d] with horizon %d", ErrInvalidRun, start, end, len(demand))
	}
	acc := newRunCostAccumulator(params)
	for t := start; t <= end; t++ {
		d := demand[t-1]
		if d < 0 {
			return RunCost{}, fmt.Errorf("%w: period %d has demand %d", ErrNegativeDemand, t, d)
		}
		if err := acc.extend(d); err != nil {
			return RunCost{}, err
		}
	}
	return acc.cost(), nil
}

// runCostAccumulator computes run costs for a fixed start period as the run
// is extended one period at a time. The incremental update keeps the full
// O(T^2) sweep of run intervals from degrading to O(T^3).
type runCostAccumulator struct {
	params CostParameters
	length int64 // periods covered so far
	units  int64 // total units produced for the run
	held   int64 // unit-periods of storage: sum of (t-start)*demand[t]
}

func newRunCostAccumulator(params CostParameters) *runCostAccumulator {
	return &runCostAccumulator{params: params}
}

// extend adds the next covered period's demand to the run. The new period's
// units are held for one period per period of deferral from the run start.
func (a *runCostAccumulator) extend(d Quantity) error {
	heldUnitPeriods, err := mulNonNegative(a.length, int64(d))
	if err != nil {
		return err
	}
	if a.held, err = addNonNegative(a.held, heldUnitPeriods); err != nil {
		return err
	}
	if a.units, err = addNonNegative(a.units, int64(d)); err != nil {
		return err
	}
	a.length++
	return nil
}

// cost returns the decomposed cost of the run covered so far
func (a *runCostAccumulator) cost() RunCost {
	return RunCost{
		Setup:      a.params.SetupCost,
		Production: a.params.UnitCost.Mul(decimal.NewFromInt(a.units)),
		Holding:    a.params.HoldingCost.Mul(decimal.NewFromInt(a.held)),
	}
}

func addNonNegative(a, b int64) (int64, error) {
	if a > math.MaxInt64-b {
		return 0, fmt.Errorf("%w: %d + %d", ErrNumericOverflow, a, b)
	}
	return a + b, nil
}

func mulNonNegative(a, b int64) (int64, error) {
	if a > 0 && b > 0 && a > math.MaxInt64/b {
		return 0, fmt.Errorf("%w: %d * %d", ErrNumericOverflow, a, b)
	}
	return a * b, nil
}
