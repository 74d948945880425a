package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vsinha/lotsize/pkg/lotsizing"
)

// forecastColumn is the header name of the per-period demand column
const forecastColumn = "forecast"

// Loader handles loading demand forecasts from CSV files
type Loader struct {
	// Separator is the CSV field separator. Forecast exports commonly use
	// semicolons.
	Separator rune
}

// NewLoader creates a new CSV loader with the default semicolon separator
func NewLoader() *Loader {
	return &Loader{Separator: ';'}
}

// LoadForecast loads an ordered demand vector from a CSV file. Rows are
// periods in file order; the column selected by the "forecast" header holds
// the per-period quantity.
func (l *Loader) LoadForecast(filename string) ([]lotsizing.Quantity, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open forecast file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = l.Separator
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read forecast CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("forecast CSV must have header and at least one data row")
	}

	column := -1
	for i, name := range records[0] {
		if strings.ToLower(strings.TrimSpace(name)) == forecastColumn {
			column = i
			break
		}
	}
	if column < 0 {
		return nil, fmt.Errorf("forecast CSV header missing %q column. Got: %v", forecastColumn, records[0])
	}

	demand := make([]lotsizing.Quantity, 0, len(records)-1)
	for i, record := range records[1:] {
		if column >= len(record) {
			return nil, fmt.Errorf("forecast CSV row %d: expected at least %d columns, got %d", i+2, column+1, len(record))
		}
		value, err := strconv.ParseInt(strings.TrimSpace(record[column]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("forecast CSV row %d: invalid forecast: %s", i+2, record[column])
		}
		if value < 0 {
			return nil, fmt.Errorf("forecast CSV row %d: %w: %d", i+2, lotsizing.ErrNegativeDemand, value)
		}
		demand = append(demand, lotsizing.Quantity(value))
	}

	return demand, nil
}
