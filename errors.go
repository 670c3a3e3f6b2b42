package dampedfilter

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrDomain           = errors.New("domain error")
)

// ValidationError reports a parameter that violates its constraint.
type ValidationError struct {
	Field  string
	Value  float64
	Reason string

	divisor bool // field is used as a denominator
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %s = %g: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidParameter
}

// Is lets a zero divisor match ErrDomain as well as ErrInvalidParameter.
func (e *ValidationError) Is(target error) bool {
	return target == ErrDomain && e.divisor && e.Value == 0
}

// ComputationError names the quantity that became non-finite or hit a zero denominator.
type ComputationError struct {
	Quantity string
	Reason   string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("cannot compute %s: %s", e.Quantity, e.Reason)
}

func (e *ComputationError) Unwrap() error {
	return ErrDomain
}
