package core

// Then drives one continuation step: a single goroutine waits for f to
// settle, hands the outcome to next and settles the returned future with the
// outcome of the future next produced. A panic in next, or a nil future from
// it, rejects the derived future. A nil f behaves as a future rejected with
// ErrNilFuture.
func Then[T, U any](f *Future[T], next func(value T, reason any, ok bool) *Future[U]) *Future[U] {
	out := newFuture[U]()

	go func() {
		var (
			v      T
			reason any = ErrNilFuture
			ok     bool
		)
		if f != nil {
			v, reason, ok = f.Wait()
		}

		var step *Future[U]
		if recovered, panicked := Guard(func() { step = next(v, reason, ok) }); panicked {
			out.reject(recovered)
			return
		}
		if step == nil {
			out.reject(ErrNilFuture)
			return
		}
		out.follow(step)
	}()

	return out
}
