package rop

import (
	"errors"
	"fmt"
)

const (
	UnknownErrorMessage = "Unknown error occurred"
	NullValueMessage    = "Value is null or undefined"
	RejectionMessage    = "Promise rejected"
)

// ErrNullValue is the failure Ensure produces for an absent value.
var ErrNullValue = errors.New(NullValueMessage)

// ErrNilAwaitable rejects an async step whose callback returned nil.
var ErrNilAwaitable = errors.New("rop: nil awaitable")

// WrappedError is the failure produced when an attempted operation panics,
// returns an error or rejects. Cause holds the original value unmodified;
// it may be of any type.
type WrappedError struct {
	Cause any
}

// Capture wraps cause in a *WrappedError.
func Capture(cause any) *WrappedError {
	return &WrappedError{Cause: cause}
}

func (e *WrappedError) Error() string {
	return UnknownErrorMessage
}

// Unwrap returns Cause when it is an error.
func (e *WrappedError) Unwrap() error {
	return causeError(e.Cause)
}

// RejectionError is the failure EnsureFuture produces when its future
// rejects.
type RejectionError struct {
	Cause any
}

func (e *RejectionError) Error() string {
	return RejectionMessage
}

func (e *RejectionError) Unwrap() error {
	return causeError(e.Cause)
}

// UnwrapError is raised when Unwrap meets a Failure. It signals a
// programming error, not a data-flow condition.
type UnwrapError struct {
	Err any
}

func (e *UnwrapError) Error() string {
	return fmt.Sprintf("rop: called Unwrap on a failure: %v", e.Err)
}

func (e *UnwrapError) Unwrap() error {
	return causeError(e.Err)
}

func causeError(cause any) error {
	if err, ok := cause.(error); ok {
		return err
	}
	return nil
}
