package rop

import (
	"github.com/ib-77/outcome/pkg/rop/core"
)

// Attempt runs a synchronous thunk. A returned error or a panic becomes a
// Failure holding *WrappedError with the original error or panic value as
// Cause.
func Attempt[T any](thunk func() (T, error)) Result[T, error] {
	var (
		v   T
		err error
	)
	if recovered, panicked := core.Guard(func() { v, err = thunk() }); panicked {
		return Fail[T](Capture(recovered))
	}
	if err != nil {
		return Fail[T](Capture(err))
	}
	return Ok(v)
}

// AttemptAsync invokes thunk right away and captures the future it returns.
// A panic raised while producing the future is captured the same way as a
// rejection.
func AttemptAsync[T any](thunk func() *core.Future[T]) *AsyncResult[T, error] {
	var f *core.Future[T]
	if recovered, panicked := core.Guard(func() { f = thunk() }); panicked {
		return AsyncFailure[T](error(Capture(recovered)))
	}
	return AttemptFuture(f)
}

// AttemptFuture captures the outcome of an existing future.
func AttemptFuture[T any](f *core.Future[T]) *AsyncResult[T, error] {
	return newAsync(core.Then(f, func(v T, reason any, ok bool) *core.Future[Result[T, error]] {
		if !ok {
			return core.Resolved(Fail[T](Capture(reason)))
		}
		return core.Resolved(Ok(v))
	}))
}

// AttemptInitiator builds a future from a callback-style initiator and
// captures its outcome. The value passed to reject becomes the Cause.
func AttemptInitiator[T any](initiator func(resolve func(T), reject func(any))) *AsyncResult[T, error] {
	return AttemptFuture(core.New(initiator))
}

// Operation is one of SyncThunk, AsyncThunk, Deferred or Initiator. The
// variant decides whether AttemptOperation answers now or later.
type Operation[T any] interface {
	attempt() Awaitable[T, error]
}

type (
	SyncThunk[T any]  func() (T, error)
	AsyncThunk[T any] func() *core.Future[T]
	Initiator[T any]  func(resolve func(T), reject func(any))
)

// Deferred is an Operation over a future that already exists.
type Deferred[T any] struct {
	Future *core.Future[T]
}

func (op SyncThunk[T]) attempt() Awaitable[T, error]  { return Attempt[T](op) }
func (op AsyncThunk[T]) attempt() Awaitable[T, error] { return AttemptAsync[T](op) }
func (op Initiator[T]) attempt() Awaitable[T, error]  { return AttemptInitiator[T](op) }
func (op Deferred[T]) attempt() Awaitable[T, error]   { return AttemptFuture(op.Future) }

// AttemptOperation dispatches on the Operation variant. A SyncThunk yields a
// Result, every other variant an *AsyncResult.
func AttemptOperation[T any](op Operation[T]) Awaitable[T, error] {
	if op == nil {
		return Fail[T](Capture(core.ErrNilFuture))
	}
	return op.attempt()
}
