package gas

import (
	"errors"
	"fmt"
)

// ErrFailedToCalculateGasEstimate is returned when both estimation sources
// failed for reasons unrelated to the gas limit. The underlying causes are
// logged, not exposed.
var ErrFailedToCalculateGasEstimate = errors.New("failed to calculate gas estimate")

// GasExceedsLimitError reports that the caller-declared gas limit is provably
// insufficient. EstimatedCost is nil when the estimating side could not tell
// the minimal cost.
type GasExceedsLimitError struct {
	EstimatedCost *Gas
	GasLimit      Gas
}

func (e *GasExceedsLimitError) Error() string {
	if e.EstimatedCost != nil {
		return fmt.Sprintf("gas exceeds limit: estimated cost %d, gas limit %d", *e.EstimatedCost, e.GasLimit)
	}
	return fmt.Sprintf("gas exceeds limit: gas limit %d", e.GasLimit)
}

// ExceedsLimit constructs a GasExceedsLimitError with a known estimated cost.
func ExceedsLimit(estimatedCost, gasLimit Gas) *GasExceedsLimitError {
	return &GasExceedsLimitError{EstimatedCost: &estimatedCost, GasLimit: gasLimit}
}

// ExceedsLimitUnknownCost constructs a GasExceedsLimitError without a cost.
func ExceedsLimitUnknownCost(gasLimit Gas) *GasExceedsLimitError {
	return &GasExceedsLimitError{GasLimit: gasLimit}
}

// AsGasExceedsLimit unwraps err as a *GasExceedsLimitError if possible.
func AsGasExceedsLimit(err error) (*GasExceedsLimitError, bool) {
	var gel *GasExceedsLimitError
	if errors.As(err, &gel) {
		return gel, true
	}
	return nil, false
}
