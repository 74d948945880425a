package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vsinha/lotsize/pkg/domain/repositories"
)

// PlanRepository provides in-memory plan storage, used by tests and as a
// stand-in where no database is configured
type PlanRepository struct {
	mu     sync.RWMutex
	nextID int64
	plans  map[int64]*repositories.StoredPlan
}

// NewPlanRepository creates a new in-memory plan repository
func NewPlanRepository() *PlanRepository {
	return &PlanRepository{
		nextID: 1,
		plans:  make(map[int64]*repositories.StoredPlan),
	}
}

// Verify interface compliance
var _ repositories.PlanRepository = (*PlanRepository)(nil)

// SavePlan stores a plan and returns its assigned id
func (r *PlanRepository) SavePlan(ctx context.Context, plan *repositories.StoredPlan) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *plan
	stored.ID = r.nextID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.plans[stored.ID] = &stored
	r.nextID++
	return stored.ID, nil
}

// GetPlan returns the stored plan with the given id
func (r *PlanRepository) GetPlan(ctx context.Context, id int64) (*repositories.StoredPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, ok := r.plans[id]
	if !ok {
		return nil, repositories.ErrPlanNotFound
	}
	return plan, nil
}

// ListPlans returns all stored plans, newest first
func (r *PlanRepository) ListPlans(ctx context.Context) ([]*repositories.StoredPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plans := make([]*repositories.StoredPlan, 0, len(r.plans))
	for _, p := range r.plans {
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].ID > plans[j].ID })
	return plans, nil
}
