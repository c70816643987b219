package file

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned for extensions other than .yaml, .yml and .json.
var ErrUnsupportedFormat = errors.New("unsupported definition format")

// FieldError is a single structural problem in a definition file.
type FieldError struct {
	Key    string // path of the field, e.g. "transitions[2].symbol"
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Key, e.Reason)
}

// AggregateError collects every structural problem found in one pass.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d definition errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

// FieldErrors returns all field errors if err wraps an AggregateError.
// Otherwise returns nil.
func FieldErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
