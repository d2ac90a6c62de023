package model

import (
	"errors"
	"fmt"
)

var ErrNoRecord = errors.New("no record")

// ValidationError rejects a mutation before any state change happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ImportError wraps a failure to parse an import payload; the schedule is
// left untouched when it is returned.
type ImportError struct {
	Err error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("malformed schedule payload: %v", e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
