package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned by every status transition function when
// the current status does not allow the requested action.
var ErrInvalidTransition = errors.New("invalid status transition")

// TransitionError describes a rejected transition.
type TransitionError struct {
	Entity string
	From   string
	Action string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s from status %q", e.Entity, e.Action, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
