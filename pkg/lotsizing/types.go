package lotsizing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Period represents a 1-based planning time bucket (e.g. a month)
type Period int

// Quantity represents an integer quantity value for discrete manufacturing units
type Quantity int64

// CostParameters holds the cost rates for a planning horizon. Rates are
// constant across all periods.
type CostParameters struct {
	// SetupCost is the fixed cost incurred once per production run
	SetupCost decimal.Decimal
	// UnitCost is the cost per unit produced
	UnitCost decimal.Decimal
	// HoldingCost is the cost of storing one unit for one period
	HoldingCost decimal.Decimal
}

// Validate checks that no cost rate is negative
func (p CostParameters) Validate() error {
	if p.SetupCost.IsNegative() {
		return fmt.Errorf("%w: setup cost %s", ErrNegativeCost, p.SetupCost)
	}
	if p.UnitCost.IsNegative() {
		return fmt.Errorf("%w: unit cost %s", ErrNegativeCost, p.UnitCost)
	}
	if p.HoldingCost.IsNegative() {
		return fmt.Errorf("%w: holding cost %s", ErrNegativeCost, p.HoldingCost)
	}
	return nil
}

// RunCost decomposes the cost of a single production run
type RunCost struct {
	Setup      decimal.Decimal `json:"setup"`
	Production decimal.Decimal `json:"production"`
	Holding    decimal.Decimal `json:"holding"`
}

// Total returns the summed cost of the run
func (c RunCost) Total() decimal.Decimal {
	return c.Setup.Add(c.Production).Add(c.Holding)
}

// Run is a contiguous block of periods [Start, End] whose demand is produced
// entirely by a single production event at Start
type Run struct {
	Start    Period   `json:"start"`
	End      Period   `json:"end"`
	Quantity Quantity `json:"quantity"`
	Cost     RunCost  `json:"cost"`
}

// Plan is the output of a lot-sizing computation. A plan is immutable once
// returned; callers must not modify its slices.
type Plan struct {
	Policy    Policy          `json:"policy"`
	Schedule  []Quantity      `json:"schedule"`
	Runs      []Run           `json:"runs"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// Horizon returns the number of planned periods
func (p *Plan) Horizon() int {
	return len(p.Schedule)
}

// ProductionAt returns the quantity produced at the given 1-based period
func (p *Plan) ProductionAt(t Period) Quantity {
	if t < 1 || int(t) > len(p.Schedule) {
		return 0
	}
	return p.Schedule[t-1]
}

// Policy represents the lot-sizing policy that produced a plan
type Policy int

const (
	WagnerWhitin Policy = iota
	LotForLot
	FixedOrderQuantity
)

func (p Policy) String() string {
	switch p {
	case WagnerWhitin:
		return "WagnerWhitin"
	case LotForLot:
		return "LotForLot"
	case FixedOrderQuantity:
		return "FixedOrderQuantity"
	default:
		return "Unknown"
	}
}

// ParsePolicy parses a policy name as used in CLI flags and API requests
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "wagner-whitin", "WagnerWhitin":
		return WagnerWhitin, nil
	case "lot-for-lot", "LotForLot":
		return LotForLot, nil
	case "fixed-order-quantity", "FixedOrderQuantity":
		return FixedOrderQuantity, nil
	default:
		return WagnerWhitin, fmt.Errorf("%w: %q (expected: wagner-whitin, lot-for-lot, or fixed-order-quantity)", ErrUnknownPolicy, s)
	}
}

// MarshalJSON encodes the policy as its string name
func (p Policy) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON decodes a policy from its string name
func (p *Policy) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrUnknownPolicy, s)
	}
	parsed, err := ParsePolicy(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
