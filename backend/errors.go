package backend

import (
	"errors"
	"fmt"
)

// ErrInvalidState is matched by every InvalidStateError.
var ErrInvalidState = errors.New("invalid window state")

// ConstructionError reports that the native window could not be allocated.
type ConstructionError struct {
	Op  string
	Err error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construct window: %s: %v", e.Op, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// InvalidStateError reports an operation invoked in a lifecycle state that
// does not allow it.
type InvalidStateError struct {
	Op    string
	State State
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: window is %s", e.Op, e.State)
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}
