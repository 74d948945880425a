package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/lotsize/pkg/application/dto"
)

// SolveRequest is the request body for plan creation and comparison
type SolveRequest struct {
	Demand      []int64         `json:"demand"`
	SetupCost   decimal.Decimal `json:"setup_cost"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	HoldingCost decimal.Decimal `json:"holding_cost"`
	// Policy selects the lot-sizing policy; empty means wagner-whitin
	Policy string `json:"policy,omitempty"`
	// OrderQty overrides the derived EOQ for fixed-order-quantity
	OrderQty int64 `json:"order_qty,omitempty"`
}

// PlanResponse is a stored plan with its inputs
type PlanResponse struct {
	ID         int64              `json:"id"`
	CreatedAt  time.Time          `json:"created_at"`
	Demand     []int64            `json:"demand"`
	Parameters dto.CostParameters `json:"parameters"`
	Plan       dto.PlanResult     `json:"plan"`
}

// PlanSummary is the list representation of a stored plan
type PlanSummary struct {
	ID        int64           `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Policy    string          `json:"policy"`
	Horizon   int             `json:"horizon"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// errorResponse is the JSON shape of all error replies
type errorResponse struct {
	Error string `json:"error"`
}
