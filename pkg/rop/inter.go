package rop

import "github.com/ib-77/outcome/pkg/rop/core"

// Awaitable is a Result now or later. Only Result and *AsyncResult
// implement it.
type Awaitable[T, E any] interface {
	// Await blocks until the outcome is known and returns it
	Await() Result[T, E]

	future() *core.Future[Result[T, E]]
}

var (
	_ Awaitable[int, error] = Result[int, error]{}
	_ Awaitable[int, error] = (*AsyncResult[int, error])(nil)
)
