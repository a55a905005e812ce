package solo

import (
	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/core"
)

func Succeed[T, E any](value T) rop.Result[T, E] {
	return rop.Success[T, E](value)
}

func Fail[T, E any](err E) rop.Result[T, E] {
	return rop.Failure[T](err)
}

func AndThen[T, U, E any](input rop.Result[T, E], onSuccess func(T) rop.Result[U, E]) rop.Result[U, E] {
	v, err, ok := input.Get()
	if ok {
		return onSuccess(v)
	}
	return rop.Failure[U](err)
}

func OrElse[T, E, F any](input rop.Result[T, E], onFailure func(E) rop.Result[T, F]) rop.Result[T, F] {
	v, err, ok := input.Get()
	if ok {
		return rop.Success[T, F](v)
	}
	return onFailure(err)
}

func Map[T, U, E any](input rop.Result[T, E], onSuccess func(T) U) rop.Result[U, E] {
	v, err, ok := input.Get()
	if ok {
		return rop.Success[U, E](onSuccess(v))
	}
	return rop.Failure[U](err)
}

func MapErr[T, E, F any](input rop.Result[T, E], onFailure func(E) F) rop.Result[T, F] {
	v, err, ok := input.Get()
	if ok {
		return rop.Success[T, F](v)
	}
	return rop.Failure[T](onFailure(err))
}

func Tap[T, E any](input rop.Result[T, E], sideEffect func(T)) rop.Result[T, E] {
	return input.Tap(sideEffect)
}

func TapErr[T, E any](input rop.Result[T, E], sideEffect func(E)) rop.Result[T, E] {
	return input.TapErr(sideEffect)
}

// Attempt runs onTryExecute on success. A returned error or a panic becomes
// a Failure holding *rop.WrappedError; failures pass through untouched.
func Attempt[T, U any](input rop.Result[T, error],
	onTryExecute func(T) (U, error)) rop.Result[U, error] {

	v, err, ok := input.Get()
	if !ok {
		return rop.Fail[U](err)
	}

	var (
		out    U
		tryErr error
	)
	if recovered, panicked := core.Guard(func() { out, tryErr = onTryExecute(v) }); panicked {
		return rop.Fail[U](rop.Capture(recovered))
	}
	if tryErr != nil {
		return rop.Fail[U](rop.Capture(tryErr))
	}
	return rop.Ok(out)
}

// Finally collapses input into a single value.
func Finally[T, E, Out any](input rop.Result[T, E],
	onSuccess func(T) Out,
	onFailure func(E) Out) Out {

	if v, err, ok := input.Get(); ok {
		return onSuccess(v)
	} else {
		return onFailure(err)
	}
}
