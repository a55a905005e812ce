// Package solo contains the synchronous, type-changing combinators over
// rop.Result[T, E]. The rop.Result methods cover the cases where the types
// stay the same; these functions are needed whenever a step changes the
// value or error type.
//
// Highlights:
// - AndThen/OrElse: continue the success or failure path with a new Result
// - Map/MapErr: transform the value or the error
// - Tap/TapErr: best-effort side effects, panics are discarded
// - Attempt: run a (U, error) function, capturing errors and panics
// - Finally: reduce to a concrete value via success/failure handlers
package solo
