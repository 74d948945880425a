package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/lotsize/pkg/application/dto"
	"github.com/vsinha/lotsize/pkg/infrastructure/repositories/memory"
)

func newTestRouter() http.Handler {
	h := NewHandler(memory.NewPlanRepository())
	return NewRouter(h, Config{AllowedOrigins: []string{"*"}})
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func getPath(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreatePlan(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/plans", map[string]any{
		"demand":       []int64{10, 0, 10},
		"setup_cost":   "500",
		"unit_cost":    "0",
		"holding_cost": "1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotZero(t, resp.ID)
	assert.Equal(t, []int64{10, 0, 10}, resp.Demand)
	assert.Equal(t, "WagnerWhitin", resp.Plan.Policy)
	assert.Equal(t, []int64{20, 0, 0}, resp.Plan.Schedule)
	assert.True(t, resp.Plan.TotalCost.Equal(decimal.NewFromInt(520)))
}

func TestCreatePlan_PolicySelection(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/plans", map[string]any{
		"demand":       []int64{10, 0, 10},
		"setup_cost":   "500",
		"unit_cost":    "0",
		"holding_cost": "1",
		"policy":       "lot-for-lot",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "LotForLot", resp.Plan.Policy)
	assert.True(t, resp.Plan.TotalCost.Equal(decimal.NewFromInt(1000)))
}

func TestCreatePlan_Validation(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		body map[string]any
	}{
		{"empty_demand", map[string]any{"demand": []int64{}, "setup_cost": "10", "unit_cost": "1", "holding_cost": "1"}},
		{"negative_demand", map[string]any{"demand": []int64{-1}, "setup_cost": "10", "unit_cost": "1", "holding_cost": "1"}},
		{"negative_setup", map[string]any{"demand": []int64{5}, "setup_cost": "-10", "unit_cost": "1", "holding_cost": "1"}},
		{"unknown_policy", map[string]any{"demand": []int64{5}, "setup_cost": "10", "unit_cost": "1", "holding_cost": "1", "policy": "silver-meal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, router, "/api/plans", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestGetPlan(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/plans", map[string]any{
		"demand":       []int64{4, 5, 6},
		"setup_cost":   "100",
		"unit_cost":    "2",
		"holding_cost": "0",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	got := getPath(router, fmt.Sprintf("/api/plans/%d", created.ID))
	require.Equal(t, http.StatusOK, got.Code)

	var resp PlanResponse
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, []int64{15, 0, 0}, resp.Plan.Schedule)
}

func TestGetPlan_NotFound(t *testing.T) {
	router := newTestRouter()

	rec := getPath(router, "/api/plans/999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPlan_InvalidID(t *testing.T) {
	router := newTestRouter()

	rec := getPath(router, "/api/plans/banana")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPlans(t *testing.T) {
	router := newTestRouter()

	for i := 0; i < 2; i++ {
		rec := postJSON(t, router, "/api/plans", map[string]any{
			"demand":       []int64{10, 10},
			"setup_cost":   "10",
			"unit_cost":    "0",
			"holding_cost": "1",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := getPath(router, "/api/plans")
	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []PlanSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 2)
	assert.Greater(t, summaries[0].ID, summaries[1].ID)
	assert.Equal(t, 2, summaries[0].Horizon)
}

func TestComparePlans(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/plans/compare", map[string]any{
		"demand":       []int64{10, 0, 10},
		"setup_cost":   "500",
		"unit_cost":    "0",
		"holding_cost": "1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.PlanComparison
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Optimal.TotalCost.Equal(decimal.NewFromInt(520)))
	require.Len(t, resp.Alternatives, 2)
	for _, alt := range resp.Alternatives {
		assert.False(t, alt.OverOptimalPct.IsNegative())
	}

	// comparisons are not persisted
	list := getPath(router, "/api/plans")
	var summaries []PlanSummary
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &summaries))
	assert.Empty(t, summaries)
}
