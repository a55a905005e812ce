package rop

import (
	"github.com/ib-77/outcome/pkg/rop/core"
)

// Ensure succeeds with value unless it is absent (see IsNil), in which case
// it fails with ErrNullValue. Zero values such as 0, "", false and NaN are
// present.
func Ensure[T any](value T) Result[T, error] {
	if IsNil(value) {
		return Fail[T](ErrNullValue)
	}
	return Ok(value)
}

// EnsureFuture applies Ensure to the value f resolves to. A rejection fails
// with *RejectionError carrying the reason.
func EnsureFuture[T any](f *core.Future[T]) *AsyncResult[T, error] {
	return newAsync(core.Then(f, func(v T, reason any, ok bool) *core.Future[Result[T, error]] {
		if !ok {
			return core.Resolved(Fail[T](&RejectionError{Cause: reason}))
		}
		return core.Resolved(Ensure(v))
	}))
}
