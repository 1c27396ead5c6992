package canvas

import (
	"errors"
	"fmt"
)

var ErrEmptySelection = errors.New("canvas: no color selected")

// RangeError reports a dimension or block size outside [Min, Max].
// Max <= 0 means there is no upper bound.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	if e.Max > 0 {
		return fmt.Sprintf("canvas: %s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
	}
	return fmt.Sprintf("canvas: %s must be at least %d, got %d", e.Field, e.Min, e.Value)
}

func checkRange(field string, v, lo, hi int) error {
	if v < lo || (hi > 0 && v > hi) {
		return &RangeError{Field: field, Value: v, Min: lo, Max: hi}
	}
	return nil
}
