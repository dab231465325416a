package format

import "fmt"

// TypeConversionError is returned when a filter needs a number and got
// something without a numeric representation.
type TypeConversionError struct {
	Filter string
	Value  any
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("%s: cannot convert %T (%v) to a number", e.Filter, e.Value, e.Value)
}

// DomainError is returned when a filter got a number outside the range it can
// format, e.g. a negative byte count.
type DomainError struct {
	Filter string
	Value  any
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v is %s", e.Filter, e.Value, e.Reason)
}
