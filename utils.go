package dampedfilter

import (
	"math"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite[T number](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// atLeast rejects v < lo; with strict it also rejects v == lo.
func atLeast[T number](field string, v, lo T, strict bool, divisor bool) error {
	if !finite(v) {
		return &ValidationError{Field: field, Value: float64(v), Reason: "must be finite"}
	}
	if v < lo || (strict && v == lo) {
		reason := "must be >= "
		if strict {
			reason = "must be > "
		}
		return &ValidationError{
			Field:   field,
			Value:   float64(v),
			Reason:  reason + FormatEng(float64(lo)),
			divisor: divisor,
		}
	}
	return nil
}

func positive[T number](field string, v T, divisor bool) error {
	return atLeast(field, v, 0, true, divisor)
}
