package core

// Guard runs fn and recovers any panic it raises. The recovered value is
// returned untouched so callers can keep it as a cause.
func Guard(fn func()) (recovered any, panicked bool) {
	panicked = true
	defer func() {
		if panicked {
			recovered = recover()
		}
	}()
	fn()
	panicked = false
	return nil, false
}
