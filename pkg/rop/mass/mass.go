package mass

import (
	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/core"
)

func AndThen[T, U, E any](input *rop.AsyncResult[T, E],
	onSuccess func(T) rop.Awaitable[U, E]) *rop.AsyncResult[U, E] {

	return rop.Continue(input, func(r rop.Result[T, E]) rop.Awaitable[U, E] {
		v, err, ok := r.Get()
		if !ok {
			return rop.Failure[U](err)
		}
		return onSuccess(v)
	})
}

func OrElse[T, E, F any](input *rop.AsyncResult[T, E],
	onFailure func(E) rop.Awaitable[T, F]) *rop.AsyncResult[T, F] {

	return rop.Continue(input, func(r rop.Result[T, E]) rop.Awaitable[T, F] {
		v, err, ok := r.Get()
		if ok {
			return rop.Success[T, F](v)
		}
		return onFailure(err)
	})
}

func Map[T, U, E any](input *rop.AsyncResult[T, E],
	onSuccess func(T) core.Eventual[U]) *rop.AsyncResult[U, E] {

	return rop.Continue(input, func(r rop.Result[T, E]) rop.Awaitable[U, E] {
		v, err, ok := r.Get()
		if !ok {
			return rop.Failure[U](err)
		}
		return rop.SuccessOf[U, E](onSuccess(v))
	})
}

func MapErr[T, E, F any](input *rop.AsyncResult[T, E],
	onFailure func(E) core.Eventual[F]) *rop.AsyncResult[T, F] {

	return rop.Continue(input, func(r rop.Result[T, E]) rop.Awaitable[T, F] {
		v, err, ok := r.Get()
		if ok {
			return rop.Success[T, F](v)
		}
		return rop.FailureOf[T](onFailure(err))
	})
}

func Tap[T, E any](input *rop.AsyncResult[T, E], sideEffect func(T) core.Waiter) *rop.AsyncResult[T, E] {
	return input.Tap(sideEffect)
}

func TapErr[T, E any](input *rop.AsyncResult[T, E], sideEffect func(E) core.Waiter) *rop.AsyncResult[T, E] {
	return input.TapErr(sideEffect)
}

// Attempt runs onTryExecute on success. A synchronous panic and a rejected
// future are captured identically into *rop.WrappedError. On failure
// onTryExecute is never called.
func Attempt[T, U any](input *rop.AsyncResult[T, error],
	onTryExecute func(T) core.Eventual[U]) *rop.AsyncResult[U, error] {

	return rop.Continue(input, func(r rop.Result[T, error]) rop.Awaitable[U, error] {
		v, err, ok := r.Get()
		if !ok {
			return rop.Fail[U](err)
		}

		var next core.Eventual[U]
		if recovered, panicked := core.Guard(func() { next = onTryExecute(v) }); panicked {
			return rop.Fail[U](rop.Capture(recovered))
		}
		if i, isNow := next.(core.Immediate[U]); isNow {
			return rop.Ok(i.Value())
		}
		return rop.AttemptFuture(core.ToFuture(next))
	})
}

// Finally collapses input into a future of a single value.
func Finally[T, E, Out any](input *rop.AsyncResult[T, E],
	onSuccess func(T) Out,
	onFailure func(E) Out) *core.Future[Out] {

	return core.Then(input.Future(), func(r rop.Result[T, E], reason any, ok bool) *core.Future[Out] {
		if !ok {
			return core.Rejected[Out](reason)
		}
		if v, err, isOk := r.Get(); isOk {
			return core.Resolved(onSuccess(v))
		} else {
			return core.Resolved(onFailure(err))
		}
	})
}

// All awaits inputs in order and collects their values, stopping at the
// first Failure. Inputs are consumed sequentially.
func All[T, E any](inputs ...*rop.AsyncResult[T, E]) *rop.AsyncResult[[]T, E] {
	acc := rop.AsyncSuccess[[]T, E](make([]T, 0, len(inputs)))
	for _, in := range inputs {
		acc = AndThen(acc, func(values []T) rop.Awaitable[[]T, E] {
			return Map(in, core.Instant(func(v T) []T {
				return append(values, v)
			}))
		})
	}
	return acc
}
