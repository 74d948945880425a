package lotsizing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// PlanLotForLot produces each period's demand in the period itself. One setup
// is charged per positive-demand period and nothing is ever held. This is the
// baseline heuristic the optimal plan is usually compared against.
func PlanLotForLot(demand []Quantity, params CostParameters) (*Plan, error) {
	if err := validateInput(demand, params); err != nil {
		return nil, err
	}
	n := len(demand)
	schedule := make([]Quantity, n)
	var runs []Run
	total := decimal.Zero
	for t := 0; t < n; t++ {
		d := demand[t]
		if d == 0 {
			// Zero-demand periods extend the preceding run's coverage.
			if len(runs) > 0 {
				runs[len(runs)-1].End = Period(t + 1)
			}
			continue
		}
		schedule[t] = d
		rc := RunCost{
			Setup:      params.SetupCost,
			Production: params.UnitCost.Mul(decimal.NewFromInt(int64(d))),
			Holding:    decimal.Zero,
		}
		runs = append(runs, Run{Start: Period(t + 1), End: Period(t + 1), Quantity: d, Cost: rc})
		total = total.Add(rc.Total())
	}
	return &Plan{Policy: LotForLot, Schedule: schedule, Runs: runs, TotalCost: total}, nil
}

// EconomicOrderQuantity derives a fixed order quantity from the average
// per-period demand: sqrt(2 * avgDemand * setupCost / holdingCost), floored,
// and at least the largest single-period demand so one order always covers
// the period that triggers it. With zero holding cost the formula diverges,
// so the entire horizon demand is ordered at once instead.
func EconomicOrderQuantity(demand []Quantity, params CostParameters) (Quantity, error) {
	if err := validateInput(demand, params); err != nil {
		return 0, err
	}
	var total, maxDemand int64
	var err error
	for _, d := range demand {
		if total, err = addNonNegative(total, int64(d)); err != nil {
			return 0, err
		}
		if int64(d) > maxDemand {
			maxDemand = int64(d)
		}
	}
	if total == 0 {
		return 0, nil
	}
	if params.HoldingCost.IsZero() {
		return Quantity(total), nil
	}
	avgDemand := float64(total) / float64(len(demand))
	setup, _ := params.SetupCost.Float64()
	holding, _ := params.HoldingCost.Float64()
	eoq := int64(math.Sqrt(2 * avgDemand * setup / holding))
	if eoq < maxDemand {
		eoq = maxDemand
	}
	return Quantity(eoq), nil
}

// PlanFixedOrderQuantity orders a fixed quantity whenever projected inventory
// cannot cover a period's demand. An orderQty of zero derives the quantity
// with EconomicOrderQuantity. Holding cost is charged on end-of-period
// inventory and attributed to the most recent order.
func PlanFixedOrderQuantity(demand []Quantity, params CostParameters, orderQty Quantity) (*Plan, error) {
	if err := validateInput(demand, params); err != nil {
		return nil, err
	}
	if orderQty < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrderQuantity, orderQty)
	}
	if orderQty == 0 {
		var err error
		if orderQty, err = EconomicOrderQuantity(demand, params); err != nil {
			return nil, err
		}
	}

	n := len(demand)
	schedule := make([]Quantity, n)
	var runs []Run
	var inventory int64
	var err error
	for t := 0; t < n; t++ {
		d := int64(demand[t])
		var produced int64
		// Order in multiples until the period's demand is covered. A derived
		// order quantity is positive whenever any demand exists.
		for inventory < d {
			if inventory, err = addNonNegative(inventory, int64(orderQty)); err != nil {
				return nil, err
			}
			if produced, err = addNonNegative(produced, int64(orderQty)); err != nil {
				return nil, err
			}
		}
		if produced > 0 {
			schedule[t] = Quantity(produced)
			runs = append(runs, Run{
				Start:    Period(t + 1),
				End:      Period(t + 1),
				Quantity: Quantity(produced),
				Cost: RunCost{
					Setup:      params.SetupCost,
					Production: params.UnitCost.Mul(decimal.NewFromInt(produced)),
					Holding:    decimal.Zero,
				},
			})
		} else if len(runs) > 0 {
			runs[len(runs)-1].End = Period(t + 1)
		}
		inventory -= d
		if inventory > 0 && len(runs) > 0 {
			carried := params.HoldingCost.Mul(decimal.NewFromInt(inventory))
			runs[len(runs)-1].Cost.Holding = runs[len(runs)-1].Cost.Holding.Add(carried)
		}
	}

	total := decimal.Zero
	for _, r := range runs {
		total = total.Add(r.Cost.Total())
	}
	return &Plan{Policy: FixedOrderQuantity, Schedule: schedule, Runs: runs, TotalCost: total}, nil
}
