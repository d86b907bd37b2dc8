package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidConfig      = errors.New("invalid layer configuration")
	ErrInvalidMask        = errors.New("invalid mask specification")
	ErrDuplicateParameter = errors.New("parameter already exists")
)

// ConfigError describes a rejected construction argument.
// It wraps ErrInvalidConfig or ErrInvalidMask.
type ConfigError struct {
	Field  string // Argument name (e.g., "Mask.Groups")
	Value  any    // Offending value
	Reason string // Why it was rejected
	Err    error  // Sentinel category
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s=%v: %s", e.Err, e.Field, e.Value, e.Reason)
}

// Unwrap returns the sentinel category so errors.Is works.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErr(field string, value any, reason string) error {
	return &ConfigError{Field: field, Value: value, Reason: reason, Err: ErrInvalidConfig}
}

func maskErr(field string, value any, reason string) error {
	return &ConfigError{Field: field, Value: value, Reason: reason, Err: ErrInvalidMask}
}
