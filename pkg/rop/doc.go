// Package rop is the entry point of the library: the Result success/failure
// container, AsyncResult for Results that become known later, and the
// adapters that turn ordinary fallible operations into either.
//
// Highlights:
// - Success/Failure (Ok/Fail for error failures): construct Result[T, E]
// - AndThen/OrElse/Map/MapErr/Tap/TapErr: same-type combinators on Result and AsyncResult
// - Unwrap/UnwrapOr: leave the container, Unwrap panics on Failure
// - AsyncSuccess/AsyncFailure/AsyncFrom/FromFuture/Lift: build AsyncResult
// - Attempt/AttemptAsync/AttemptFuture/AttemptInitiator/AttemptOperation: capture panics, errors and rejections
// - Ensure/EnsureFuture: fail on absent values
//
// Type-changing combinators live in package solo (synchronous) and package
// mass (asynchronous), since Go methods cannot introduce type parameters.
package rop
