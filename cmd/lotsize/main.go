package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vsinha/lotsize/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		forecastFile = flag.String(
			"forecast",
			"",
			"Path to forecast CSV file",
		)
		separator   = flag.String("separator", ";", "CSV field separator")
		setupCost   = flag.String("setup", "0", "Setup cost per production run")
		unitCost    = flag.String("unit", "0", "Production cost per unit")
		holdingCost = flag.String("holding", "0", "Holding cost per unit per period")
		policy      = flag.String("policy", "wagner-whitin", "Lot-sizing policy: wagner-whitin, lot-for-lot, fixed-order-quantity")
		orderQty    = flag.Int64("qty", 0, "Fixed order quantity (0 derives the economic order quantity)")
		compare     = flag.Bool("compare", false, "Run every policy and compare costs")
		outputDir   = flag.String("output", "", "Output directory for results (optional)")
		format      = flag.String("format", "text", "Output format: text, json, csv")
		verbose     = flag.Bool("verbose", false, "Enable verbose output")
		help        = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		ForecastFile: *forecastFile,
		Separator:    *separator,
		SetupCost:    *setupCost,
		UnitCost:     *unitCost,
		HoldingCost:  *holdingCost,
		Policy:       *policy,
		OrderQty:     *orderQty,
		Compare:      *compare,
		OutputDir:    *outputDir,
		Format:       *format,
		Verbose:      *verbose,
		Help:         *help,
	}

	// Create and execute command
	cmd := commands.NewPlanCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
