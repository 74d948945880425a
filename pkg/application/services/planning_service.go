package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/lotsize/pkg/application/dto"
	"github.com/vsinha/lotsize/pkg/lotsizing"
)

// PlanningService runs the optimal solver and the heuristic policies over a
// single demand forecast. The service is stateless and safe for concurrent
// use.
type PlanningService struct {
	solver *lotsizing.Solver
}

// NewPlanningService creates a new planning service
func NewPlanningService() *PlanningService {
	return &PlanningService{
		solver: lotsizing.NewSolver(),
	}
}

// Plan computes a production plan for the forecast under the given policy.
// A zero orderQty lets the fixed-order-quantity policy derive its own EOQ;
// the other policies ignore it.
func (s *PlanningService) Plan(demand []lotsizing.Quantity, params lotsizing.CostParameters, policy lotsizing.Policy, orderQty lotsizing.Quantity) (*lotsizing.Plan, error) {
	switch policy {
	case lotsizing.WagnerWhitin:
		return s.solver.Solve(demand, params)
	case lotsizing.LotForLot:
		return lotsizing.PlanLotForLot(demand, params)
	case lotsizing.FixedOrderQuantity:
		return lotsizing.PlanFixedOrderQuantity(demand, params, orderQty)
	default:
		return nil, fmt.Errorf("%w: %d", lotsizing.ErrUnknownPolicy, policy)
	}
}

// Compare solves the forecast with every policy and reports the heuristics'
// cost overshoot relative to the optimal plan.
func (s *PlanningService) Compare(demand []lotsizing.Quantity, params lotsizing.CostParameters) (*dto.PlanComparison, error) {
	optimal, err := s.solver.Solve(demand, params)
	if err != nil {
		return nil, fmt.Errorf("solving optimal plan: %w", err)
	}

	lfl, err := lotsizing.PlanLotForLot(demand, params)
	if err != nil {
		return nil, fmt.Errorf("running lot-for-lot: %w", err)
	}

	foq, err := lotsizing.PlanFixedOrderQuantity(demand, params, 0)
	if err != nil {
		return nil, fmt.Errorf("running fixed-order-quantity: %w", err)
	}

	demandOut := make([]int64, len(demand))
	for i, d := range demand {
		demandOut[i] = int64(d)
	}

	return &dto.PlanComparison{
		Demand:     demandOut,
		Parameters: dto.FromCostParameters(params),
		Optimal:    dto.FromPlan(optimal),
		Alternatives: []dto.PolicyComparison{
			{Plan: dto.FromPlan(lfl), OverOptimalPct: overOptimalPct(lfl.TotalCost, optimal.TotalCost)},
			{Plan: dto.FromPlan(foq), OverOptimalPct: overOptimalPct(foq.TotalCost, optimal.TotalCost)},
		},
	}, nil
}

// overOptimalPct returns (cost/optimal - 1) * 100 rounded to one decimal
// place, or zero when the optimal cost is zero.
func overOptimalPct(cost, optimal decimal.Decimal) decimal.Decimal {
	if optimal.IsZero() {
		return decimal.Zero
	}
	return cost.Sub(optimal).Div(optimal).Mul(decimal.NewFromInt(100)).Round(1)
}
