package core

// Eventual is a value that is either available now (Immediate) or later
// (*Future). The set is closed: only Immediate and *Future implement it.
type Eventual[T any] interface {
	eventual() *Future[T]
}

// Immediate is an Eventual holding an already known value.
type Immediate[T any] struct {
	value T
}

// Now wraps v as an Immediate.
func Now[T any](v T) Immediate[T] {
	return Immediate[T]{value: v}
}

// Value returns the wrapped value.
func (i Immediate[T]) Value() T {
	return i.value
}

func (i Immediate[T]) eventual() *Future[T] {
	return Resolved(i.value)
}

// From turns a (value, error) pair into an Eventual: Now(v) when err is nil,
// a rejected Future carrying err otherwise.
func From[T any](v T, err error) Eventual[T] {
	if err != nil {
		return Rejected[T](err)
	}
	return Now(v)
}

// Instant adapts a plain function to the Eventual-returning shape the async
// combinators accept.
func Instant[T, U any](fn func(T) U) func(T) Eventual[U] {
	return func(v T) Eventual[U] {
		return Now(fn(v))
	}
}

// ToFuture normalizes e into a Future. A nil Eventual, including a typed nil
// *Future, becomes a Future rejected with ErrNilEventual.
func ToFuture[T any](e Eventual[T]) *Future[T] {
	if e == nil {
		return Rejected[T](ErrNilEventual)
	}
	if f, ok := e.(*Future[T]); ok && f == nil {
		return Rejected[T](ErrNilEventual)
	}
	return e.eventual()
}

// Settle blocks until e is available and reports its outcome like
// Future.Wait. Immediate values never block.
func Settle[T any](e Eventual[T]) (value T, reason any, ok bool) {
	if i, isNow := e.(Immediate[T]); isNow {
		return i.value, nil, true
	}
	return ToFuture(e).Wait()
}

// Waiter is anything exposing a settlement signal. Every *Future satisfies
// it regardless of its value type.
type Waiter interface {
	Done() <-chan struct{}
}

// WaitFor blocks until w signals. A nil Waiter returns at once.
func WaitFor(w Waiter) {
	if w == nil {
		return
	}
	var done <-chan struct{}
	if _, panicked := Guard(func() { done = w.Done() }); panicked || done == nil {
		return
	}
	<-done
}
