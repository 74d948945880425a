package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/lotsize/pkg/application/dto"
	"github.com/vsinha/lotsize/pkg/application/services"
	"github.com/vsinha/lotsize/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/lotsize/pkg/interfaces/cli/output"
	"github.com/vsinha/lotsize/pkg/lotsizing"
)

// Config holds configuration for the plan command
type Config struct {
	ForecastFile string
	Separator    string
	SetupCost    string
	UnitCost     string
	HoldingCost  string
	Policy       string
	OrderQty     int64
	Compare      bool
	OutputDir    string
	Format       string
	Verbose      bool
	Help         bool
}

// PlanCommand handles the main lot-sizing execution logic
type PlanCommand struct {
	config Config
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(config Config) *PlanCommand {
	return &PlanCommand{
		config: config,
	}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	params, err := c.parseCostParameters()
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("📂 Loading forecast from %s...\n", c.config.ForecastFile)
	}

	loader := csv.NewLoader()
	if c.config.Separator != "" {
		loader.Separator = rune(c.config.Separator[0])
	}
	demand, err := loader.LoadForecast(c.config.ForecastFile)
	if err != nil {
		return fmt.Errorf("error loading forecast: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Forecast loaded: %d periods\n\n", len(demand))
	}

	planner := services.NewPlanningService()
	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	}

	demandOut := make([]int64, len(demand))
	for i, d := range demand {
		demandOut[i] = int64(d)
	}

	startTime := time.Now()

	if c.config.Compare {
		comparison, err := planner.Compare(demand, params)
		if err != nil {
			return fmt.Errorf("error comparing policies: %w", err)
		}
		if c.config.Verbose {
			fmt.Printf("✅ Policies compared in %v\n\n", time.Since(startTime))
		}
		return output.GenerateComparison(comparison, outputConfig)
	}

	policy := lotsizing.WagnerWhitin
	if c.config.Policy != "" {
		if policy, err = lotsizing.ParsePolicy(c.config.Policy); err != nil {
			return err
		}
	}

	plan, err := planner.Plan(demand, params, policy, lotsizing.Quantity(c.config.OrderQty))
	if err != nil {
		return fmt.Errorf("error computing plan: %w", err)
	}
	if c.config.Verbose {
		fmt.Printf("✅ Plan computed in %v\n\n", time.Since(startTime))
	}

	return output.GeneratePlan(demandOut, dto.FromPlan(plan), outputConfig)
}

// validateInputs validates the command configuration
func (c *PlanCommand) validateInputs() error {
	if c.config.ForecastFile == "" {
		return fmt.Errorf("must specify a forecast CSV file with -forecast")
	}
	if _, err := os.Stat(c.config.ForecastFile); os.IsNotExist(err) {
		return fmt.Errorf("forecast file not found: %s", c.config.ForecastFile)
	}
	if len(c.config.Separator) > 1 {
		return fmt.Errorf("separator must be a single character, got %q", c.config.Separator)
	}
	return nil
}

// parseCostParameters parses the cost flags into domain cost rates
func (c *PlanCommand) parseCostParameters() (lotsizing.CostParameters, error) {
	setup, err := decimal.NewFromString(c.config.SetupCost)
	if err != nil {
		return lotsizing.CostParameters{}, fmt.Errorf("invalid setup cost %q: %w", c.config.SetupCost, err)
	}
	unit, err := decimal.NewFromString(c.config.UnitCost)
	if err != nil {
		return lotsizing.CostParameters{}, fmt.Errorf("invalid unit cost %q: %w", c.config.UnitCost, err)
	}
	holding, err := decimal.NewFromString(c.config.HoldingCost)
	if err != nil {
		return lotsizing.CostParameters{}, fmt.Errorf("invalid holding cost %q: %w", c.config.HoldingCost, err)
	}
	return lotsizing.CostParameters{
		SetupCost:   setup,
		UnitCost:    unit,
		HoldingCost: holding,
	}, nil
}

// showHelp displays the help message
func (c *PlanCommand) showHelp() {
	fmt.Println(`Lot Sizing - Production Planning Tool

USAGE:
    lotsize -forecast <file> [OPTIONS]

OPTIONS:
    -forecast <file>     Path to forecast CSV file (required)
    -separator <char>    CSV field separator (default ";")
    -setup <cost>        Setup cost per production run (default "0")
    -unit <cost>         Production cost per unit (default "0")
    -holding <cost>      Holding cost per unit per period (default "0")
    -policy <name>       Lot-sizing policy: wagner-whitin, lot-for-lot,
                         fixed-order-quantity (default "wagner-whitin")
    -qty <n>             Fixed order quantity; 0 derives the economic
                         order quantity (default 0)
    -compare             Run every policy and compare costs
    -output <dir>        Output directory for results (optional)
    -format <format>     Output format: text, json, csv (default "text")
    -verbose             Enable verbose output
    -help                Show this help message

EXAMPLES:
    # Optimal plan for a forecast
    lotsize -forecast forecasts.csv -setup 500 -unit 2 -holding 1

    # Compare the optimal plan against the heuristics
    lotsize -forecast forecasts.csv -setup 500 -holding 1 -compare

    # Fixed order quantity with JSON output
    lotsize -forecast forecasts.csv -setup 500 -holding 1 \
        -policy fixed-order-quantity -qty 50 -format json

CSV FORMAT:
    Rows are periods in file order. The column named "forecast" holds the
    per-period demand quantity; other columns are ignored.

    period;forecast
    1;10
    2;0
    3;10`)
}
