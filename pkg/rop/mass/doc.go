// Package mass lifts the solo combinators onto rop.AsyncResult. Every
// function derives a new AsyncResult from its input; callbacks may answer
// immediately (core.Now, core.Instant) or later (a *core.Future, or for
// AndThen/OrElse an AsyncResult).
//
// For same-type steps the AsyncResult methods are enough; use these when the
// value or error type changes.
package mass
