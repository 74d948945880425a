package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vsinha/lotsize/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// GeneratePlan renders a single production plan in the configured format
func GeneratePlan(demand []int64, result dto.PlanResult, config Config) error {
	switch config.Format {
	case "text":
		return emit(renderPlanText(demand, result), "plan.txt", config)
	case "json":
		return emitJSON(result, "plan.json", config)
	case "csv":
		return emit(renderPlanCSV(demand, result), "plan.csv", config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// GenerateComparison renders a policy comparison in the configured format
func GenerateComparison(comparison *dto.PlanComparison, config Config) error {
	switch config.Format {
	case "text":
		return emit(renderComparisonText(comparison), "comparison.txt", config)
	case "json":
		return emitJSON(comparison, "comparison.json", config)
	case "csv":
		return emit(renderComparisonCSV(comparison), "comparison.csv", config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func renderPlanText(demand []int64, result dto.PlanResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 Production Plan (%s)\n", result.Policy)
	fmt.Fprintf(&b, "==========================\n\n")
	fmt.Fprintf(&b, "Horizon: %d periods\n", result.Horizon)
	fmt.Fprintf(&b, "Total Cost: %s\n\n", result.TotalCost.StringFixed(2))

	fmt.Fprintf(&b, "%-8s %-10s %-12s\n", "Period", "Demand", "Production")
	fmt.Fprintf(&b, "%-8s %-10s %-12s\n", "--------", "----------", "------------")
	for i, q := range result.Schedule {
		fmt.Fprintf(&b, "%-8d %-10d %-12d\n", i+1, demand[i], q)
	}
	b.WriteString("\n")

	if len(result.Runs) > 0 {
		fmt.Fprintf(&b, "🏭 Production Runs:\n")
		fmt.Fprintf(&b, "%-7s %-7s %-10s %-12s %-12s %-12s %-12s\n",
			"Start", "End", "Quantity", "Setup", "Production", "Holding", "Total")
		fmt.Fprintf(&b, "%-7s %-7s %-10s %-12s %-12s %-12s %-12s\n",
			"-------", "-------", "----------", "------------", "------------", "------------", "------------")
		for _, r := range result.Runs {
			fmt.Fprintf(&b, "%-7d %-7d %-10d %-12s %-12s %-12s %-12s\n",
				r.Start, r.End, r.Quantity,
				r.Setup.StringFixed(2), r.Production.StringFixed(2),
				r.Holding.StringFixed(2), r.Total.StringFixed(2))
		}
	}

	return b.String()
}

func renderPlanCSV(demand []int64, result dto.PlanResult) string {
	var b strings.Builder

	b.WriteString("period,demand,production\n")
	for i, q := range result.Schedule {
		fmt.Fprintf(&b, "%d,%d,%d\n", i+1, demand[i], q)
	}
	return b.String()
}

func renderComparisonText(comparison *dto.PlanComparison) string {
	var b strings.Builder

	b.WriteString("======================================================================\n")
	b.WriteString("PRODUCTION PLANNING COMPARISON\n")
	b.WriteString("======================================================================\n\n")

	var total int64
	fmt.Fprintf(&b, "%-20s", "Period")
	for i := range comparison.Demand {
		fmt.Fprintf(&b, "%-8d", i+1)
	}
	fmt.Fprintf(&b, "%-10s\n", "Total")
	fmt.Fprintf(&b, "%-20s", "Demand")
	for _, d := range comparison.Demand {
		fmt.Fprintf(&b, "%-8d", d)
		total += d
	}
	fmt.Fprintf(&b, "%-10d\n\n", total)

	writePlanRow := func(result dto.PlanResult) {
		fmt.Fprintf(&b, "%-20s", result.Policy)
		var produced int64
		for _, q := range result.Schedule {
			fmt.Fprintf(&b, "%-8d", q)
			produced += q
		}
		fmt.Fprintf(&b, "%-10d\n", produced)
		fmt.Fprintf(&b, "Total Cost: %s\n\n", result.TotalCost.StringFixed(2))
	}

	writePlanRow(comparison.Optimal)
	for _, alt := range comparison.Alternatives {
		writePlanRow(alt.Plan)
	}

	b.WriteString("----------------------------------------------------------------------\n")
	b.WriteString("COST COMPARISON\n")
	b.WriteString("----------------------------------------------------------------------\n")
	fmt.Fprintf(&b, "%-22s %12s   (Optimal)\n",
		comparison.Optimal.Policy, comparison.Optimal.TotalCost.StringFixed(2))
	for _, alt := range comparison.Alternatives {
		fmt.Fprintf(&b, "%-22s %12s   (+%s%%)\n",
			alt.Plan.Policy, alt.Plan.TotalCost.StringFixed(2), alt.OverOptimalPct.String())
	}

	return b.String()
}

func renderComparisonCSV(comparison *dto.PlanComparison) string {
	var b strings.Builder

	plans := append([]dto.PlanResult{comparison.Optimal}, plansOf(comparison.Alternatives)...)

	b.WriteString("period,demand")
	for _, p := range plans {
		fmt.Fprintf(&b, ",%s", p.Policy)
	}
	b.WriteString("\n")
	for i, d := range comparison.Demand {
		fmt.Fprintf(&b, "%d,%d", i+1, d)
		for _, p := range plans {
			fmt.Fprintf(&b, ",%d", p.Schedule[i])
		}
		b.WriteString("\n")
	}
	b.WriteString("total_cost,")
	for _, p := range plans {
		fmt.Fprintf(&b, ",%s", p.TotalCost.StringFixed(2))
	}
	b.WriteString("\n")
	return b.String()
}

func plansOf(alternatives []dto.PolicyComparison) []dto.PlanResult {
	plans := make([]dto.PlanResult, len(alternatives))
	for i, alt := range alternatives {
		plans[i] = alt.Plan
	}
	return plans
}

func emitJSON(v any, filename string, config Config) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return emit(string(encoded)+"\n", filename, config)
}

// emit prints the rendered output, and also writes it to the output
// directory when one is configured
func emit(rendered, filename string, config Config) error {
	fmt.Print(rendered)

	if config.OutputDir == "" {
		return nil
	}
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(config.OutputDir, filename)
	if err := os.WriteFile(path, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if config.Verbose {
		fmt.Printf("💾 Results saved to: %s\n", path)
	}
	return nil
}
