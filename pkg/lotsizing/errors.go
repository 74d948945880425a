package lotsizing

import "errors"

// Sentinel errors, for use with errors.Is. Callers receive them wrapped with
// additional context.
var (
	// ErrEmptyDemand is returned when a demand vector has no periods.
	ErrEmptyDemand = errors.New("empty demand vector")

	// ErrNegativeDemand is returned when any period has negative demand.
	ErrNegativeDemand = errors.New("negative demand")

	// ErrNegativeCost is returned when a cost parameter is negative.
	ErrNegativeCost = errors.New("negative cost parameter")

	// ErrNumericOverflow is returned when accumulated quantities exceed the
	// representable int64 range. Costs themselves are arbitrary-precision
	// decimals and cannot overflow.
	ErrNumericOverflow = errors.New("numeric overflow accumulating quantities")

	// ErrUnknownPolicy is returned for an unrecognized policy name.
	ErrUnknownPolicy = errors.New("unknown lot-sizing policy")

	// ErrInvalidOrderQuantity is returned when a fixed order quantity is
	// negative.
	ErrInvalidOrderQuantity = errors.New("invalid order quantity")

	// ErrInvalidRun is returned when a run interval is out of bounds.
	ErrInvalidRun = errors.New("invalid run interval")
)
