package bookart

import (
	"errors"
	"fmt"
)

// Sentinel errors for invalid configurations.
var (
	ErrPageRange      = errors.New("bookart: first page must be less than last page")
	ErrNegative       = errors.New("bookart: value must not be negative")
	ErrUnknownUnit    = errors.New("bookart: unknown unit")
	ErrUnknownFormat  = errors.New("bookart: unknown document format")
	ErrMalformedColor = errors.New("bookart: malformed color")
)

// ConfigError reports an invalid configuration field. It wraps one of the
// sentinel errors of this package.
type ConfigError struct {
	Field string // configuration field, e.g. "pages_before"
	Err   error  // underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bookart: invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("bookart: invalid %s", e.Field)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func newConfigError(field string, err error) *ConfigError {
	return &ConfigError{Field: field, Err: err}
}
