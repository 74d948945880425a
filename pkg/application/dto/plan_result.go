package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/lotsize/pkg/lotsizing"
)

// PlanResult is the serializable form of a lot-sizing plan
type PlanResult struct {
	Policy    string          `json:"policy"`
	Horizon   int             `json:"horizon"`
	Schedule  []int64         `json:"schedule"`
	Runs      []RunResult     `json:"runs"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// RunResult describes one production run with its cost breakdown
type RunResult struct {
	Start      int             `json:"start"`
	End        int             `json:"end"`
	Quantity   int64           `json:"quantity"`
	Setup      decimal.Decimal `json:"setup"`
	Production decimal.Decimal `json:"production"`
	Holding    decimal.Decimal `json:"holding"`
	Total      decimal.Decimal `json:"total"`
}

// CostParameters is the serializable form of the cost rates
type CostParameters struct {
	SetupCost   decimal.Decimal `json:"setup_cost"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	HoldingCost decimal.Decimal `json:"holding_cost"`
}

// PolicyComparison pairs a heuristic plan with its cost delta over the
// optimal plan
type PolicyComparison struct {
	Plan PlanResult `json:"plan"`
	// OverOptimalPct is the percentage by which this plan's cost exceeds
	// the optimal cost, rounded to one decimal place. Zero when the optimal
	// cost is zero.
	OverOptimalPct decimal.Decimal `json:"over_optimal_pct"`
}

// PlanComparison reports the optimal plan next to the heuristic policies
// for the same forecast
type PlanComparison struct {
	Demand       []int64            `json:"demand"`
	Parameters   CostParameters     `json:"parameters"`
	Optimal      PlanResult         `json:"optimal"`
	Alternatives []PolicyComparison `json:"alternatives"`
}

// FromPlan converts a domain plan into its serializable form
func FromPlan(plan *lotsizing.Plan) PlanResult {
	schedule := make([]int64, len(plan.Schedule))
	for i, q := range plan.Schedule {
		schedule[i] = int64(q)
	}
	runs := make([]RunResult, len(plan.Runs))
	for i, r := range plan.Runs {
		runs[i] = RunResult{
			Start:      int(r.Start),
			End:        int(r.End),
			Quantity:   int64(r.Quantity),
			Setup:      r.Cost.Setup,
			Production: r.Cost.Production,
			Holding:    r.Cost.Holding,
			Total:      r.Cost.Total(),
		}
	}
	return PlanResult{
		Policy:    plan.Policy.String(),
		Horizon:   plan.Horizon(),
		Schedule:  schedule,
		Runs:      runs,
		TotalCost: plan.TotalCost,
	}
}

// FromCostParameters converts domain cost rates into their serializable form
func FromCostParameters(params lotsizing.CostParameters) CostParameters {
	return CostParameters{
		SetupCost:   params.SetupCost,
		UnitCost:    params.UnitCost,
		HoldingCost: params.HoldingCost,
	}
}
