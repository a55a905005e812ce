package core

// FromChan resolves with the first value received from ch. If ch is closed
// before delivering a value the Future rejects with ErrChanClosed.
func FromChan[T any](ch <-chan T) *Future[T] {
	return Go(func() (T, error) {
		v, ok := <-ch
		if !ok {
			var zero T
			return zero, ErrChanClosed
		}
		return v, nil
	})
}

// ToChan returns a channel that receives f's value once it resolves and is
// closed afterwards. On rejection the channel is closed without a value.
func ToChan[T any](f *Future[T]) <-chan T {
	out := make(chan T, 1)

	go func() {
		defer close(out)
		if v, _, ok := f.Wait(); ok {
			out <- v
		}
	}()

	return out
}

// FirstOrDefault waits for f and returns its value, or defaultV when
// f rejects.
func FirstOrDefault[T any](f *Future[T], defaultV T) T {
	if v, _, ok := f.Wait(); ok {
		return v
	}
	return defaultV
}
