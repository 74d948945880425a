// Package sqlite provides a SQLite-backed implementation of the plan
// repository. The database is opened in WAL mode and the schema is migrated
// on open; use ":memory:" for an in-memory database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/vsinha/lotsize/pkg/domain/repositories"
	"github.com/vsinha/lotsize/pkg/lotsizing"
)

// PlanStore implements repositories.PlanRepository using SQLite
type PlanStore struct {
	db *sql.DB
}

// Verify interface compliance
var _ repositories.PlanRepository = (*PlanStore)(nil)

// New creates a new SQLite plan store at the given database path
func New(dbPath string) (*PlanStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &PlanStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *PlanStore) Close() error {
	return s.db.Close()
}

func (s *PlanStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS plans (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at   TEXT NOT NULL,
		horizon      INTEGER NOT NULL,
		policy       TEXT NOT NULL,
		setup_cost   TEXT NOT NULL,
		unit_cost    TEXT NOT NULL,
		holding_cost TEXT NOT NULL,
		total_cost   TEXT NOT NULL,
		demand_json  TEXT NOT NULL,
		plan_json    TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_plans_created_at ON plans(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SavePlan stores a plan and returns its assigned id
func (s *PlanStore) SavePlan(ctx context.Context, plan *repositories.StoredPlan) (int64, error) {
	createdAt := plan.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	demandJSON, err := json.Marshal(plan.Demand)
	if err != nil {
		return 0, fmt.Errorf("failed to encode demand: %w", err)
	}
	planJSON, err := json.Marshal(plan.Plan)
	if err != nil {
		return 0, fmt.Errorf("failed to encode plan: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO plans (created_at, horizon, policy, setup_cost, unit_cost, holding_cost, total_cost, demand_json, plan_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		createdAt.Format(time.RFC3339Nano),
		plan.Plan.Horizon(),
		plan.Plan.Policy.String(),
		plan.Params.SetupCost.String(),
		plan.Params.UnitCost.String(),
		plan.Params.HoldingCost.String(),
		plan.Plan.TotalCost.String(),
		string(demandJSON),
		string(planJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert plan: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return id, nil
}

// GetPlan returns the stored plan with the given id
func (s *PlanStore) GetPlan(ctx context.Context, id int64) (*repositories.StoredPlan, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, setup_cost, unit_cost, holding_cost, demand_json, plan_json
		FROM plans WHERE id = ?`, id)

	plan, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %d: %w", id, err)
	}
	return plan, nil
}

// ListPlans returns all stored plans, newest first
func (s *PlanStore) ListPlans(ctx context.Context) ([]*repositories.StoredPlan, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, setup_cost, unit_cost, holding_cost, demand_json, plan_json
		FROM plans ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []*repositories.StoredPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plans: %w", err)
	}
	return plans, nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanPlan(row scanner) (*repositories.StoredPlan, error) {
	var stored repositories.StoredPlan
	var createdAt string
	var setupCost, unitCost, holdingCost string
	var demandJSON, planJSON string
	if err := row.Scan(&stored.ID, &createdAt, &setupCost, &unitCost, &holdingCost, &demandJSON, &planJSON); err != nil {
		return nil, err
	}

	parsedAt, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	stored.CreatedAt = parsedAt

	if stored.Params.SetupCost, err = decimal.NewFromString(setupCost); err != nil {
		return nil, fmt.Errorf("invalid setup_cost %q: %w", setupCost, err)
	}
	if stored.Params.UnitCost, err = decimal.NewFromString(unitCost); err != nil {
		return nil, fmt.Errorf("invalid unit_cost %q: %w", unitCost, err)
	}
	if stored.Params.HoldingCost, err = decimal.NewFromString(holdingCost); err != nil {
		return nil, fmt.Errorf("invalid holding_cost %q: %w", holdingCost, err)
	}

	if err := json.Unmarshal([]byte(demandJSON), &stored.Demand); err != nil {
		return nil, fmt.Errorf("invalid demand_json: %w", err)
	}
	stored.Plan = &lotsizing.Plan{}
	if err := json.Unmarshal([]byte(planJSON), stored.Plan); err != nil {
		return nil, fmt.Errorf("invalid plan_json: %w", err)
	}

	return &stored, nil
}
