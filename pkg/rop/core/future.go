package core

import (
	"sync"
)

// Future is a value that becomes available later. It settles exactly once,
// either resolved with a value or rejected with a reason of any type.
// Waiting is safe from any number of goroutines.
type Future[T any] struct {
	done     chan struct{}
	once     sync.Once
	value    T
	reason   any
	rejected bool
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// New builds a Future from an initiator. The initiator runs synchronously in
// the calling goroutine and may hand resolve and reject to callback-style APIs
// that settle later. Only the first call to either settles the Future. A panic
// raised by the initiator before settlement rejects with the recovered value.
func New[T any](initiator func(resolve func(T), reject func(any))) *Future[T] {
	f := newFuture[T]()
	if recovered, panicked := Guard(func() { initiator(f.resolve, f.reject) }); panicked {
		f.reject(recovered)
	}
	return f
}

// Go runs fn on a new goroutine. A non-nil error rejects with that error, a
// panic rejects with the recovered value.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		var (
			v   T
			err error
		)
		if recovered, panicked := Guard(func() { v, err = fn() }); panicked {
			f.reject(recovered)
			return
		}
		if err != nil {
			f.reject(err)
			return
		}
		f.resolve(v)
	}()
	return f
}

// Resolved returns a Future already settled with v.
func Resolved[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.resolve(v)
	return f
}

// Rejected returns a Future already rejected with reason.
func Rejected[T any](reason any) *Future[T] {
	f := newFuture[T]()
	f.reject(reason)
	return f
}

func (f *Future[T]) resolve(v T) {
	f.once.Do(func() {
		f.value = v
		close(f.done)
	})
}

func (f *Future[T]) reject(reason any) {
	f.once.Do(func() {
		f.reason = reason
		f.rejected = true
		close(f.done)
	})
}

// follow settles f the same way src settles.
func (f *Future[T]) follow(src *Future[T]) {
	v, reason, ok := src.Wait()
	if ok {
		f.resolve(v)
		return
	}
	f.reject(reason)
}

// Wait blocks until f settles and reports the raw outcome: the value and
// ok=true when resolved, the rejection reason and ok=false otherwise.
func (f *Future[T]) Wait() (value T, reason any, ok bool) {
	<-f.done
	if f.rejected {
		var zero T
		return zero, f.reason, false
	}
	return f.value, nil, true
}

// Await blocks until f settles. Rejection reasons that are not errors are
// returned as *RejectedError.
func (f *Future[T]) Await() (T, error) {
	v, reason, ok := f.Wait()
	if !ok {
		return v, AsError(reason)
	}
	return v, nil
}

// Done is closed once f settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Settled reports whether f has settled, without blocking.
func (f *Future[T]) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

func (f *Future[T]) eventual() *Future[T] {
	return f
}
