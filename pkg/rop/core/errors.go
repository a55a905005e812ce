package core

import (
	"errors"
	"fmt"
)

var (
	ErrChanClosed  = errors.New("core: channel closed without a value")
	ErrNilFuture   = errors.New("core: nil future")
	ErrNilEventual = errors.New("core: nil eventual")
)

// RejectedError carries a rejection reason that is not itself an error.
type RejectedError struct {
	Reason any
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("core: future rejected: %v", e.Reason)
}

// AsError returns reason unchanged when it is an error and wraps it in a
// *RejectedError otherwise.
func AsError(reason any) error {
	if err, ok := reason.(error); ok && err != nil {
		return err
	}
	return &RejectedError{Reason: reason}
}
