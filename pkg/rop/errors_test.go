package rop

import (
	"errors"
	"testing"
)

func TestWrappedError(t *testing.T) {
	t.Parallel()

	cause := errors.New("inner")
	err := Capture(cause)
	if err.Error() != UnknownErrorMessage {
		t.Fatalf("expected %q, got %q", UnknownErrorMessage, err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to reach the cause")
	}

	if Capture("text").Unwrap() != nil {
		t.Fatalf("non-error causes must not unwrap")
	}
}

func TestRejectionError(t *testing.T) {
	t.Parallel()

	cause := errors.New("reason")
	err := &RejectionError{Cause: cause}
	if err.Error() != RejectionMessage {
		t.Fatalf("expected %q, got %q", RejectionMessage, err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to reach the cause")
	}
}

func TestUnwrapError(t *testing.T) {
	t.Parallel()

	err := &UnwrapError{Err: 404}
	if err.Error() != "rop: called Unwrap on a failure: 404" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("non-error failures must not unwrap")
	}
}
