package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vsinha/lotsize/pkg/application/dto"
	"github.com/vsinha/lotsize/pkg/application/services"
	"github.com/vsinha/lotsize/pkg/domain/repositories"
	"github.com/vsinha/lotsize/pkg/lotsizing"
)

// Handler holds all dependencies for HTTP handlers
type Handler struct {
	Repo    repositories.PlanRepository
	Planner *services.PlanningService
}

// NewHandler creates a new handler backed by the given plan repository
func NewHandler(repo repositories.PlanRepository) *Handler {
	return &Handler{
		Repo:    repo,
		Planner: services.NewPlanningService(),
	}
}

// CreatePlan solves the posted forecast, persists the plan and returns it.
// POST /api/plans
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	demand, params, policy, err := req.toDomain()
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	plan, err := h.Planner.Plan(demand, params, policy, lotsizing.Quantity(req.OrderQty))
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	stored := &repositories.StoredPlan{Demand: demand, Params: params, Plan: plan}
	id, err := h.Repo.SavePlan(r.Context(), stored)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store plan: "+err.Error())
		return
	}

	saved, err := h.Repo.GetPlan(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load stored plan: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, planResponse(saved))
}

// ListPlans returns summaries of all stored plans, newest first.
// GET /api/plans
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Repo.ListPlans(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list plans: "+err.Error())
		return
	}

	summaries := make([]PlanSummary, 0, len(plans))
	for _, p := range plans {
		summaries = append(summaries, PlanSummary{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			Policy:    p.Plan.Policy.String(),
			Horizon:   p.Plan.Horizon(),
			TotalCost: p.Plan.TotalCost,
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

// GetPlan returns one stored plan.
// GET /api/plans/{id}
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan id")
		return
	}

	plan, err := h.Repo.GetPlan(r.Context(), id)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, planResponse(plan))
}

// ComparePlans solves the posted forecast with every policy without
// persisting anything.
// POST /api/plans/compare
func (h *Handler) ComparePlans(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	demand, params, _, err := req.toDomain()
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	comparison, err := h.Planner.Compare(demand, params)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, comparison)
}

// toDomain converts the request into domain inputs. Negative values are left
// for the solver's own validation so the error taxonomy stays in one place.
func (req *SolveRequest) toDomain() ([]lotsizing.Quantity, lotsizing.CostParameters, lotsizing.Policy, error) {
	policy := lotsizing.WagnerWhitin
	if req.Policy != "" {
		var err error
		if policy, err = lotsizing.ParsePolicy(req.Policy); err != nil {
			return nil, lotsizing.CostParameters{}, policy, err
		}
	}

	demand := make([]lotsizing.Quantity, len(req.Demand))
	for i, d := range req.Demand {
		demand[i] = lotsizing.Quantity(d)
	}
	params := lotsizing.CostParameters{
		SetupCost:   req.SetupCost,
		UnitCost:    req.UnitCost,
		HoldingCost: req.HoldingCost,
	}
	return demand, params, policy, nil
}

func planResponse(p *repositories.StoredPlan) PlanResponse {
	demand := make([]int64, len(p.Demand))
	for i, d := range p.Demand {
		demand[i] = int64(d)
	}
	return PlanResponse{
		ID:         p.ID,
		CreatedAt:  p.CreatedAt,
		Demand:     demand,
		Parameters: dto.FromCostParameters(p.Params),
		Plan:       dto.FromPlan(p.Plan),
	}
}

// statusForError maps domain errors onto HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, lotsizing.ErrEmptyDemand),
		errors.Is(err, lotsizing.ErrNegativeDemand),
		errors.Is(err, lotsizing.ErrNegativeCost),
		errors.Is(err, lotsizing.ErrUnknownPolicy),
		errors.Is(err, lotsizing.ErrInvalidOrderQuantity),
		errors.Is(err, lotsizing.ErrNumericOverflow):
		return http.StatusBadRequest
	case errors.Is(err, repositories.ErrPlanNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
