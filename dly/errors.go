package dly

import (
	"errors"
	"fmt"
)

var (
	// Returned by Load when both year bounds are set and they are inverted
	ErrInvalidYearRange = errors.New("end year cannot be less than start year")

	// Returned by the filter constructors before any data is touched
	ErrUnknownColumn   = errors.New("unknown column name")
	ErrUnknownOperator = errors.New("unknown filter operator")

	// Returned by Interpolate when the view contains no present values to
	// interpolate from
	ErrNoReferenceValues = errors.New("no present values to interpolate from")
)

// FormatError means a line of a .dly file could not be decoded at the
// expected byte offsets. Decoding is all or nothing, so the whole load fails.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}
