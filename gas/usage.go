package gas

import "fmt"

// UsageClass tags the certainty of a GasUsage value.
type UsageClass string

const (
	UsageExact             UsageClass = "exact"
	UsageEstimate          UsageClass = "estimate"
	UsageEstimateWithRange UsageClass = "estimate_with_range"
)

// GasUsage is the gas usage classification of a transaction. None of the
// classes guarantees that the true cost equals the stated value or lies
// within the stated range.
type GasUsage struct {
	Class UsageClass      `json:"class"`
	Kind  TransactionKind `json:"kind"`

	// Gas is set for UsageExact and UsageEstimate.
	Gas Gas `json:"gas,omitempty"`

	// Low and High bound the estimate for UsageEstimateWithRange.
	Low  Gas `json:"low,omitempty"`
	High Gas `json:"high,omitempty"`
}

func ExactUsage(kind TransactionKind, g Gas) GasUsage {
	return GasUsage{Class: UsageExact, Kind: kind, Gas: g}
}

func EstimateUsage(kind TransactionKind, g Gas) GasUsage {
	return GasUsage{Class: UsageEstimate, Kind: kind, Gas: g}
}

func EstimateWithRangeUsage(kind TransactionKind, low, high Gas) GasUsage {
	return GasUsage{Class: UsageEstimateWithRange, Kind: kind, Low: low, High: high}
}

func (u GasUsage) String() string {
	switch u.Class {
	case UsageExact:
		return fmt.Sprintf("exact(%d)", u.Gas)
	case UsageEstimate:
		return fmt.Sprintf("estimate(%d)", u.Gas)
	case UsageEstimateWithRange:
		return fmt.Sprintf("estimate_with_range(%d - %d)", u.Low, u.High)
	}
	return "unknown_usage"
}

// GasEstimateResponse is the timed result of one estimation request.
type GasEstimateResponse struct {
	GasUsage            GasUsage `json:"gas_usage"`
	TimeElapsedInMillis int64    `json:"time_elapsed_in_millis"`
}
