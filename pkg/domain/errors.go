package domain

import (
	"errors"
	"fmt"
)

// ErrDuplicateState is returned when a state name is declared twice.
var ErrDuplicateState = errors.New("duplicate state")

// ErrUnknownState is returned when a transition references an undeclared state.
var ErrUnknownState = errors.New("unknown state")

// ErrEmptyStateName is returned when a state is declared without a name.
var ErrEmptyStateName = errors.New("state name cannot be empty")

// DuplicateStateError carries the name that was declared twice.
type DuplicateStateError struct {
	Name string
}

func (e *DuplicateStateError) Error() string {
	return fmt.Sprintf("duplicate state %q", e.Name)
}

func (e *DuplicateStateError) Unwrap() error { return ErrDuplicateState }

// UnknownStateError carries the name a transition referenced without a declaration.
type UnknownStateError struct {
	Name string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown state %q", e.Name)
}

func (e *UnknownStateError) Unwrap() error { return ErrUnknownState }
