package lotsizing

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPlanLotForLot(t *testing.T) {
	plan, err := PlanLotForLot([]Quantity{10, 0, 10}, testParams(500, 1, 9))
	if err != nil {
		t.Fatalf("PlanLotForLot failed: %v", err)
	}

	if !reflect.DeepEqual(plan.Schedule, []Quantity{10, 0, 10}) {
		t.Errorf("Expected schedule to equal demand, got %v", plan.Schedule)
	}
	if len(plan.Runs) != 2 {
		t.Fatalf("Expected two runs, got %d", len(plan.Runs))
	}
	// the zero-demand period is carried by the first run
	if plan.Runs[0].End != 2 {
		t.Errorf("Expected first run to cover through period 2, got %d", plan.Runs[0].End)
	}
	// two setups plus 20 units at unit cost 1, nothing held
	if !plan.TotalCost.Equal(decimal.NewFromInt(1020)) {
		t.Errorf("Expected total cost 1020, got %s", plan.TotalCost)
	}
}

func TestPlanLotForLot_AllZeroDemand(t *testing.T) {
	plan, err := PlanLotForLot([]Quantity{0, 0, 0}, testParams(500, 1, 1))
	if err != nil {
		t.Fatalf("PlanLotForLot failed: %v", err)
	}

	if len(plan.Runs) != 0 {
		t.Errorf("Expected no runs for zero demand, got %d", len(plan.Runs))
	}
	if !plan.TotalCost.IsZero() {
		t.Errorf("Expected zero cost, got %s", plan.TotalCost)
	}
}

func TestEconomicOrderQuantity(t *testing.T) {
	demand := []Quantity{10, 10, 10, 10}

	eoq, err := EconomicOrderQuantity(demand, testParams(500, 0, 1))
	if err != nil {
		t.Fatalf("EconomicOrderQuantity failed: %v", err)
	}

	// sqrt(2 * 10 * 500 / 1) = 100
	if eoq != 100 {
		t.Errorf("Expected EOQ 100, got %d", eoq)
	}
}

func TestEconomicOrderQuantity_ClampsToLargestDemand(t *testing.T) {
	demand := []Quantity{100, 1, 1, 1}

	eoq, err := EconomicOrderQuantity(demand, testParams(1, 0, 10))
	if err != nil {
		t.Fatalf("EconomicOrderQuantity failed: %v", err)
	}

	if eoq != 100 {
		t.Errorf("Expected EOQ clamped to 100, got %d", eoq)
	}
}

func TestEconomicOrderQuantity_ZeroHoldingOrdersEverything(t *testing.T) {
	demand := []Quantity{10, 20, 30}

	eoq, err := EconomicOrderQuantity(demand, testParams(500, 0, 0))
	if err != nil {
		t.Fatalf("EconomicOrderQuantity failed: %v", err)
	}

	if eoq != 60 {
		t.Errorf("Expected EOQ 60 (total demand), got %d", eoq)
	}
}

func TestPlanFixedOrderQuantity(t *testing.T) {
	plan, err := PlanFixedOrderQuantity([]Quantity{10, 10, 10}, testParams(100, 0, 1), 20)
	if err != nil {
		t.Fatalf("PlanFixedOrderQuantity failed: %v", err)
	}

	if !reflect.DeepEqual(plan.Schedule, []Quantity{20, 0, 20}) {
		t.Errorf("Expected schedule [20 0 20], got %v", plan.Schedule)
	}
	if len(plan.Runs) != 2 {
		t.Fatalf("Expected two orders, got %d", len(plan.Runs))
	}
	if plan.Runs[0].End != 2 {
		t.Errorf("Expected first order to cover through period 2, got %d", plan.Runs[0].End)
	}
	// two setups plus 10 units held after period 1 and 10 after period 3
	if !plan.TotalCost.Equal(decimal.NewFromInt(220)) {
		t.Errorf("Expected total cost 220, got %s", plan.TotalCost)
	}
}

func TestPlanFixedOrderQuantity_SmallOrderMultiplies(t *testing.T) {
	// An order quantity below the period demand is placed multiple times.
	plan, err := PlanFixedOrderQuantity([]Quantity{25}, testParams(10, 0, 1), 10)
	if err != nil {
		t.Fatalf("PlanFixedOrderQuantity failed: %v", err)
	}

	if plan.Schedule[0] != 30 {
		t.Errorf("Expected 30 units ordered, got %d", plan.Schedule[0])
	}
	// single production event: one setup, 5 units left over
	if !plan.TotalCost.Equal(decimal.NewFromInt(15)) {
		t.Errorf("Expected total cost 15, got %s", plan.TotalCost)
	}
}

func TestPlanFixedOrderQuantity_DerivesEOQWhenZero(t *testing.T) {
	demand := []Quantity{10, 10, 10, 10}
	params := testParams(500, 0, 1)

	plan, err := PlanFixedOrderQuantity(demand, params, 0)
	if err != nil {
		t.Fatalf("PlanFixedOrderQuantity failed: %v", err)
	}

	// derived EOQ is 100, so a single order covers the horizon
	if plan.Schedule[0] != 100 {
		t.Errorf("Expected first-period order of 100, got %d", plan.Schedule[0])
	}
	if len(plan.Runs) != 1 {
		t.Errorf("Expected one order, got %d", len(plan.Runs))
	}
}

func TestPlanFixedOrderQuantity_NegativeOrderQty(t *testing.T) {
	_, err := PlanFixedOrderQuantity([]Quantity{10}, testParams(10, 1, 1), -5)
	if !errors.Is(err, ErrInvalidOrderQuantity) {
		t.Errorf("Expected ErrInvalidOrderQuantity, got %v", err)
	}
}

func TestWagnerWhitinNeverWorseThanHeuristics(t *testing.T) {
	demands := [][]Quantity{
		{3},
		{10, 0, 10},
		{5, 7, 3, 8},
		{20, 0, 5, 9, 14},
		{12, 4, 0, 7, 30, 2, 18, 0, 9},
	}
	paramSets := []CostParameters{
		testParams(500, 0, 1),
		testParams(85, 2, 3),
		testParams(0, 4, 2),
		testParams(40, 1, 0),
	}

	solver := NewSolver()
	for _, demand := range demands {
		for _, params := range paramSets {
			optimal, err := solver.Solve(demand, params)
			if err != nil {
				t.Fatalf("Solve failed: %v", err)
			}

			lfl, err := PlanLotForLot(demand, params)
			if err != nil {
				t.Fatalf("PlanLotForLot failed: %v", err)
			}
			if optimal.TotalCost.GreaterThan(lfl.TotalCost) {
				t.Errorf("Demand %v: optimal %s exceeds lot-for-lot %s",
					demand, optimal.TotalCost, lfl.TotalCost)
			}

			foq, err := PlanFixedOrderQuantity(demand, params, 0)
			if err != nil {
				t.Fatalf("PlanFixedOrderQuantity failed: %v", err)
			}
			if optimal.TotalCost.GreaterThan(foq.TotalCost) {
				t.Errorf("Demand %v: optimal %s exceeds fixed-order-quantity %s",
					demand, optimal.TotalCost, foq.TotalCost)
			}
		}
	}
}
