package parking

import (
	"errors"
	"fmt"
)

// Error values returned by the allocation engine and grid construction.
var (
	// ErrNoBayAvailable is returned by Park when no matching bay is
	// reachable. It is a normal outcome (the structure is full, the only
	// matching bays are of the wrong type, or no pedestrian exit exists
	// to anchor the search), not a fault.
	ErrNoBayAvailable = errors.New("no bay found")

	// ErrInvalidBayIndex is returned by Unpark and BayAt when the index
	// lies outside [0, total).
	ErrInvalidBayIndex = errors.New("bay index out of range")

	// ErrInvalidVehicleTag is returned by Park when the tag is one of the
	// reserved diagram characters '=', '@' or 'U'.
	ErrInvalidVehicleTag = errors.New("vehicle tag is a reserved character")
)

// ConfigError describes an invalid grid layout detected at construction.
type ConfigError struct {
	// Field is the layout parameter at fault ("lane_size",
	// "pedestrian_exits", "disabled_bays").
	Field string

	// Value is the offending value.
	Value int

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid parking layout: %s: %s (value %d)", e.Field, e.Message, e.Value)
}

func newConfigError(field string, value int, message string) *ConfigError {
	return &ConfigError{Field: field, Value: value, Message: message}
}
