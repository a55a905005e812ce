package rop

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/rop/core"
)

// Result is either a Success holding a value of type T or a Failure holding
// an error of type E. The zero Result is a Failure carrying the zero E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Success[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value: value,
		ok:    true,
	}
}

func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err: err,
		ok:  false,
	}
}

// Ok is Success with the error slot fixed to error.
func Ok[T any](value T) Result[T, error] {
	return Success[T, error](value)
}

// Fail is Failure with the error slot fixed to error.
func Fail[T any](err error) Result[T, error] {
	return Failure[T](err)
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Value returns the success value, or the zero T on Failure.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the failure error, or the zero E on Success.
func (r Result[T, E]) Err() E {
	return r.err
}

// Get returns both slots and the discriminant.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.value, r.err, r.ok
}

// AndThen continues the success path with fn. Failures pass through and fn
// is not called.
func (r Result[T, E]) AndThen(fn func(T) Result[T, E]) Result[T, E] {
	if r.ok {
		return fn(r.value)
	}
	return r
}

// OrElse continues the failure path with fn. Successes pass through.
func (r Result[T, E]) OrElse(fn func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return fn(r.err)
}

func (r Result[T, E]) Map(fn func(T) T) Result[T, E] {
	if r.ok {
		return Success[T, E](fn(r.value))
	}
	return r
}

func (r Result[T, E]) MapErr(fn func(E) E) Result[T, E] {
	if r.ok {
		return r
	}
	return Failure[T](fn(r.err))
}

// Tap calls fn with the success value for its side effect. A panic raised by
// fn is recovered and discarded; r is returned as is.
func (r Result[T, E]) Tap(fn func(T)) Result[T, E] {
	if r.ok {
		observe("tap", uuid.Nil, func() { fn(r.value) })
	}
	return r
}

// TapErr is Tap for the failure side.
func (r Result[T, E]) TapErr(fn func(E)) Result[T, E] {
	if !r.ok {
		observe("tap_err", uuid.Nil, func() { fn(r.err) })
	}
	return r
}

// Unwrap returns the success value. On Failure it panics with *UnwrapError.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&UnwrapError{Err: r.err})
	}
	return r.value
}

// UnwrapOr returns the success value, or fallback on Failure.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

// ToAsync returns an AsyncResult already settled to r.
func (r Result[T, E]) ToAsync() *AsyncResult[T, E] {
	return newAsync(r.future())
}

// Await returns r. It lets a Result stand wherever an Awaitable is expected.
func (r Result[T, E]) Await() Result[T, E] {
	return r
}

func (r Result[T, E]) future() *core.Future[Result[T, E]] {
	return core.Resolved(r)
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}
