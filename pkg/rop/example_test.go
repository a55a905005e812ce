package rop_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/core"
)

func ExampleAttempt() {
	r := rop.Attempt(func() (int, error) { return strconv.Atoi("12") }).
		Map(func(v int) int { return v * 2 })
	fmt.Println(r)

	failed := rop.Attempt(func() (int, error) { panic("boom") })
	var wrapped *rop.WrappedError
	if errors.As(failed.Err(), &wrapped) {
		fmt.Println(wrapped.Error(), "-", wrapped.Cause)
	}
	// Output:
	// Success(24)
	// Unknown error occurred - boom
}

func ExampleEnsure() {
	fmt.Println(rop.Ensure(0))
	var missing *int
	fmt.Println(rop.Ensure(missing))
	// Output:
	// Success(0)
	// Failure(Value is null or undefined)
}

func ExampleAttemptAsync() {
	a := rop.AttemptAsync(func() *core.Future[string] {
		return core.Go(func() (string, error) { return "loaded", nil })
	}).Map(func(s string) core.Eventual[string] {
		return core.Now(s + "!")
	})
	fmt.Println(a.Await())
	// Output:
	// Success(loaded!)
}

func ExampleResult_UnwrapOr() {
	r := rop.Fail[int](errors.New("unavailable"))
	fmt.Println(r.UnwrapOr(-1))
	// Output:
	// -1
}
