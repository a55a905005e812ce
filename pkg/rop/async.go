package rop

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/rop/core"
)

// AsyncResult is a Result that becomes known later. Every combinator returns
// a new node deriving its future from this one; the producer behind the
// chain runs once no matter how many times a node is awaited.
type AsyncResult[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	fut       *core.Future[Result[T, E]]
}

func newAsync[T, E any](f *core.Future[Result[T, E]]) *AsyncResult[T, E] {
	return newNode(uuid.New(), f)
}

func newNode[T, E any](id uuid.UUID, f *core.Future[Result[T, E]]) *AsyncResult[T, E] {
	return &AsyncResult[T, E]{
		id:        id,
		createdAt: time.Now().UTC(),
		fut:       f,
	}
}

// AsyncSuccess returns an AsyncResult settled to Success(value).
func AsyncSuccess[T, E any](value T) *AsyncResult[T, E] {
	return Success[T, E](value).ToAsync()
}

// AsyncFailure returns an AsyncResult settled to Failure(err).
func AsyncFailure[T, E any](err E) *AsyncResult[T, E] {
	return Failure[T](err).ToAsync()
}

// AsyncSuccessLater settles to Success with the value f resolves to. If f
// rejects, so does the AsyncResult.
func AsyncSuccessLater[T, E any](f *core.Future[T]) *AsyncResult[T, E] {
	return newAsync(core.Then(f, func(v T, reason any, ok bool) *core.Future[Result[T, E]] {
		if !ok {
			return core.Rejected[Result[T, E]](reason)
		}
		return core.Resolved(Success[T, E](v))
	}))
}

// AsyncFailureLater settles to Failure with the value f resolves to.
func AsyncFailureLater[T, E any](f *core.Future[E]) *AsyncResult[T, E] {
	return newAsync(core.Then(f, func(e E, reason any, ok bool) *core.Future[Result[T, E]] {
		if !ok {
			return core.Rejected[Result[T, E]](reason)
		}
		return core.Resolved(Failure[T](e))
	}))
}

// AsyncFrom accepts a Result or an AsyncResult. An AsyncResult is returned
// as is.
func AsyncFrom[T, E any](r Awaitable[T, E]) *AsyncResult[T, E] {
	a, isAsync := r.(*AsyncResult[T, E])
	if isAsync && a != nil {
		return a
	}
	if r == nil || isAsync {
		return newAsync(core.Rejected[Result[T, E]](ErrNilAwaitable))
	}
	return newAsync(r.future())
}

// FromFuture wraps a future of a Result.
func FromFuture[T, E any](f *core.Future[Result[T, E]]) *AsyncResult[T, E] {
	if f == nil {
		f = core.Rejected[Result[T, E]](core.ErrNilFuture)
	}
	return newAsync(f)
}

// Lift0 turns a function returning a future of a Result into one returning
// an AsyncResult.
func Lift0[T, E any](fn func() *core.Future[Result[T, E]]) func() *AsyncResult[T, E] {
	return func() *AsyncResult[T, E] {
		return FromFuture(fn())
	}
}

// Lift is Lift0 for one-argument functions.
func Lift[A, T, E any](fn func(A) *core.Future[Result[T, E]]) func(A) *AsyncResult[T, E] {
	return func(a A) *AsyncResult[T, E] {
		return FromFuture(fn(a))
	}
}

// Lift2 is Lift0 for two-argument functions.
func Lift2[A, B, T, E any](fn func(A, B) *core.Future[Result[T, E]]) func(A, B) *AsyncResult[T, E] {
	return func(a A, b B) *AsyncResult[T, E] {
		return FromFuture(fn(a, b))
	}
}

// Continue is the single step every async combinator is made of: once a
// settles, step receives its Result and the returned Awaitable becomes the
// outcome of the new node. If a was rejected, step is skipped and the
// rejection carries over.
func Continue[T, E, U, F any](a *AsyncResult[T, E], step func(Result[T, E]) Awaitable[U, F]) *AsyncResult[U, F] {
	return continueAs(uuid.New(), a, step)
}

// continueAs is Continue with the id of the new node chosen up front, so step
// can refer to the node it produces.
func continueAs[T, E, U, F any](id uuid.UUID, a *AsyncResult[T, E], step func(Result[T, E]) Awaitable[U, F]) *AsyncResult[U, F] {
	return newNode(id, core.Then(a.fut, func(r Result[T, E], reason any, ok bool) *core.Future[Result[U, F]] {
		if !ok {
			return core.Rejected[Result[U, F]](reason)
		}

		next := step(r)
		if next == nil {
			return core.Rejected[Result[U, F]](ErrNilAwaitable)
		}
		if na, isAsync := next.(*AsyncResult[U, F]); isAsync && na == nil {
			return core.Rejected[Result[U, F]](ErrNilAwaitable)
		}
		return next.future()
	}))
}

// SuccessOf lifts an Eventual value into a Success, staying synchronous when
// the value is Immediate.
func SuccessOf[T, E any](value core.Eventual[T]) Awaitable[T, E] {
	if i, ok := value.(core.Immediate[T]); ok {
		return Success[T, E](i.Value())
	}
	return AsyncSuccessLater[T, E](core.ToFuture(value))
}

// FailureOf lifts an Eventual error into a Failure.
func FailureOf[T, E any](err core.Eventual[E]) Awaitable[T, E] {
	if i, ok := err.(core.Immediate[E]); ok {
		return Failure[T](i.Value())
	}
	return AsyncFailureLater[T](core.ToFuture(err))
}

func (a *AsyncResult[T, E]) ID() uuid.UUID {
	return a.id
}

func (a *AsyncResult[T, E]) CreatedAt() time.Time {
	return a.createdAt
}

// Future exposes the underlying future.
func (a *AsyncResult[T, E]) Future() *core.Future[Result[T, E]] {
	return a.fut
}

// Await blocks until the Result is known. If a callback earlier in the
// chain panicked or returned a rejected future outside Attempt and Tap, the
// original reason is re-panicked here, in the awaiting goroutine.
func (a *AsyncResult[T, E]) Await() Result[T, E] {
	r, reason, ok := a.fut.Wait()
	if !ok {
		panic(reason)
	}
	return r
}

// Wait is Await without the panic: a rejected chain is reported as an error.
func (a *AsyncResult[T, E]) Wait() (Result[T, E], error) {
	r, reason, ok := a.fut.Wait()
	if !ok {
		return r, core.AsError(reason)
	}
	return r, nil
}

func (a *AsyncResult[T, E]) future() *core.Future[Result[T, E]] {
	return a.fut
}

func (a *AsyncResult[T, E]) AndThen(fn func(T) Awaitable[T, E]) *AsyncResult[T, E] {
	return Continue(a, func(r Result[T, E]) Awaitable[T, E] {
		if !r.ok {
			return r
		}
		return fn(r.value)
	})
}

func (a *AsyncResult[T, E]) OrElse(fn func(E) Awaitable[T, E]) *AsyncResult[T, E] {
	return Continue(a, func(r Result[T, E]) Awaitable[T, E] {
		if r.ok {
			return r
		}
		return fn(r.err)
	})
}

func (a *AsyncResult[T, E]) Map(fn func(T) core.Eventual[T]) *AsyncResult[T, E] {
	return Continue(a, func(r Result[T, E]) Awaitable[T, E] {
		if !r.ok {
			return r
		}
		return SuccessOf[T, E](fn(r.value))
	})
}

func (a *AsyncResult[T, E]) MapErr(fn func(E) core.Eventual[E]) *AsyncResult[T, E] {
	return Continue(a, func(r Result[T, E]) Awaitable[T, E] {
		if r.ok {
			return r
		}
		return FailureOf[T](fn(r.err))
	})
}

// Tap runs fn on success and waits for whatever it returns before passing
// the Result on. Panics and rejections from fn are swallowed; a panic is
// logged against the node Tap returns. fn may return nil when there is
// nothing to wait for.
func (a *AsyncResult[T, E]) Tap(fn func(T) core.Waiter) *AsyncResult[T, E] {
	id := uuid.New()
	return continueAs(id, a, func(r Result[T, E]) Awaitable[T, E] {
		if r.ok {
			observe("tap", id, func() { core.WaitFor(fn(r.value)) })
		}
		return r
	})
}

// TapErr is Tap for the failure side.
func (a *AsyncResult[T, E]) TapErr(fn func(E) core.Waiter) *AsyncResult[T, E] {
	id := uuid.New()
	return continueAs(id, a, func(r Result[T, E]) Awaitable[T, E] {
		if !r.ok {
			observe("tap_err", id, func() { core.WaitFor(fn(r.err)) })
		}
		return r
	})
}

// Unwrap returns a future of the success value. On Failure the future
// rejects with *UnwrapError.
func (a *AsyncResult[T, E]) Unwrap() *core.Future[T] {
	return core.Then(a.fut, func(r Result[T, E], reason any, ok bool) *core.Future[T] {
		if !ok {
			return core.Rejected[T](reason)
		}
		if !r.ok {
			return core.Rejected[T](&UnwrapError{Err: r.err})
		}
		return core.Resolved(r.value)
	})
}

// UnwrapOr returns a future of the success value, or of fallback on Failure.
func (a *AsyncResult[T, E]) UnwrapOr(fallback T) *core.Future[T] {
	return core.Then(a.fut, func(r Result[T, E], reason any, ok bool) *core.Future[T] {
		if !ok {
			return core.Rejected[T](reason)
		}
		return core.Resolved(r.UnwrapOr(fallback))
	})
}
