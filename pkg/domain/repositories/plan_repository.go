package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/vsinha/lotsize/pkg/lotsizing"
)

// ErrPlanNotFound is returned when a stored plan id does not exist
var ErrPlanNotFound = errors.New("plan not found")

// StoredPlan is a solved plan persisted together with the inputs that
// produced it
type StoredPlan struct {
	ID        int64
	CreatedAt time.Time
	Demand    []lotsizing.Quantity
	Params    lotsizing.CostParameters
	Plan      *lotsizing.Plan
}

// PlanRepository persists solved lot-sizing plans
type PlanRepository interface {
	// SavePlan stores a plan and returns its assigned id
	SavePlan(ctx context.Context, plan *StoredPlan) (int64, error)

	// GetPlan returns the stored plan with the given id, or ErrPlanNotFound
	GetPlan(ctx context.Context, id int64) (*StoredPlan, error)

	// ListPlans returns all stored plans, newest first
	ListPlans(ctx context.Context) ([]*StoredPlan, error)
}
