package limits

import (
	"errors"
	"fmt"
)

// OutOfRangeError reports an input outside its admissible interval.
// Min and Max are the inclusive bounds that Value must satisfy.
type OutOfRangeError struct {
	Field string
	Value uint32
	Min   uint32
	Max   uint32
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range: must be between %d and %d", e.Field, e.Value, e.Min, e.Max)
}

// RatioViolationError reports a provisioned IOPS/throughput combination
// that violates a family-specific cross-field constraint, even though
// each value is individually in range.
type RatioViolationError struct {
	Field      string
	Value      uint32
	Constraint string
}

func (e *RatioViolationError) Error() string {
	return fmt.Sprintf("%s %d violates ratio constraint: %s", e.Field, e.Value, e.Constraint)
}

// IsOutOfRange reports whether err is an OutOfRangeError.
func IsOutOfRange(err error) bool {
	var oor *OutOfRangeError
	return errors.As(err, &oor)
}

// IsRatioViolation reports whether err is a RatioViolationError.
func IsRatioViolation(err error) bool {
	var rv *RatioViolationError
	return errors.As(err, &rv)
}
