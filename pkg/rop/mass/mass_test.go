package mass

import (
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/core"
)

func later[T any](v T) *core.Future[T] {
	return core.Go(func() (T, error) {
		time.Sleep(5 * time.Millisecond)
		return v, nil
	})
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	parsed := AndThen(rop.AsyncSuccess[string, error]("21"), func(s string) rop.Awaitable[int, error] {
		return rop.Attempt(func() (int, error) { return strconv.Atoi(s) })
	})
	assert.Equal(t, rop.Ok(21), parsed.Await())

	deferred := AndThen(parsed, func(v int) rop.Awaitable[string, error] {
		return rop.AsyncSuccessLater[string, error](later(strconv.Itoa(v * 2)))
	})
	assert.Equal(t, rop.Ok("42"), deferred.Await())
}

func TestAndThen_SkipsOnFailure(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	boom := errors.New("boom")
	out := AndThen(rop.AsyncFailure[string](boom), func(s string) rop.Awaitable[int, error] {
		calls.Add(1)
		return rop.Ok(len(s))
	})

	assert.Same(t, boom, out.Await().Err())
	assert.Zero(t, calls.Load())
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	out := OrElse(rop.AsyncFailure[int](errors.New("missing")), func(err error) rop.Awaitable[int, string] {
		return rop.Failure[int]("recovered: " + err.Error())
	})
	r := out.Await()
	require.True(t, r.IsErr())
	assert.Equal(t, "recovered: missing", r.Err())

	healed := OrElse(rop.AsyncFailure[int](errors.New("missing")), func(error) rop.Awaitable[int, string] {
		return rop.AsyncSuccessLater[int, string](later(7))
	})
	assert.Equal(t, rop.Success[int, string](7), healed.Await())
}

func TestMap(t *testing.T) {
	t.Parallel()

	now := Map(rop.AsyncSuccess[int, error](3), core.Instant(strconv.Itoa))
	assert.Equal(t, rop.Ok("3"), now.Await())

	deferred := Map(rop.AsyncSuccess[int, error](4), func(v int) core.Eventual[string] {
		return later(strconv.Itoa(v))
	})
	assert.Equal(t, rop.Ok("4"), deferred.Await())

	boom := errors.New("boom")
	failed := Map(rop.AsyncFailure[int](boom), core.Instant(strconv.Itoa))
	assert.Same(t, boom, failed.Await().Err())
}

func TestMap_RejectedCallbackRejectsNode(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	out := Map(rop.AsyncSuccess[int, error](1), func(int) core.Eventual[string] {
		return core.Rejected[string](boom)
	})

	_, err := out.Wait()
	assert.Same(t, boom, err)
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	out := MapErr(rop.AsyncFailure[string](errors.New("not found")), func(error) core.Eventual[int] {
		return core.Now(404)
	})
	r := out.Await()
	require.True(t, r.IsErr())
	assert.Equal(t, 404, r.Err())

	ok := MapErr(rop.AsyncSuccess[string, error]("x"), func(error) core.Eventual[int] {
		return later(500)
	})
	assert.Equal(t, rop.Success[string, int]("x"), ok.Await())
}

func TestTap_WaitsForSideEffect(t *testing.T) {
	t.Parallel()

	var seen atomic.Value
	out := Tap(rop.AsyncSuccess[string, error]("v"), func(s string) core.Waiter {
		return core.Go(func() (struct{}, error) {
			time.Sleep(5 * time.Millisecond)
			seen.Store(s)
			return struct{}{}, nil
		})
	})

	assert.Equal(t, rop.Ok("v"), out.Await())
	assert.Equal(t, "v", seen.Load())
}

func TestTapErr_SwallowsRejections(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	out := TapErr(rop.AsyncFailure[int](boom), func(error) core.Waiter {
		return core.Rejected[int](errors.New("observer failed"))
	})
	assert.Same(t, boom, out.Await().Err())

	panicked := TapErr(rop.AsyncFailure[int](boom), func(error) core.Waiter {
		panic("observer")
	})
	assert.Same(t, boom, panicked.Await().Err())
}

func TestAttempt(t *testing.T) {
	t.Parallel()

	ok := Attempt(rop.AsyncSuccess[string, error]("8"), func(s string) core.Eventual[int] {
		return core.From(strconv.Atoi(s))
	})
	assert.Equal(t, rop.Ok(8), ok.Await())

	bad := Attempt(rop.AsyncSuccess[string, error]("eight"), func(s string) core.Eventual[int] {
		return core.From(strconv.Atoi(s))
	})
	var wrapped *rop.WrappedError
	require.ErrorAs(t, bad.Await().Err(), &wrapped)
	var numErr *strconv.NumError
	assert.ErrorAs(t, wrapped, &numErr)
}

func TestAttempt_PanicAndRejectionAreCapturedAlike(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	input := rop.AsyncSuccess[int, error](1)

	thrown := Attempt(input, func(int) core.Eventual[int] {
		panic(boom)
	}).Await()
	rejected := Attempt(input, func(int) core.Eventual[int] {
		return core.Rejected[int](boom)
	}).Await()

	var fromPanic, fromReject *rop.WrappedError
	require.ErrorAs(t, thrown.Err(), &fromPanic)
	require.ErrorAs(t, rejected.Err(), &fromReject)
	assert.Equal(t, fromPanic, fromReject)
	assert.Same(t, boom, fromPanic.Cause)
}

func TestAttempt_FailureNeverInvokes(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	boom := errors.New("upstream")
	out := Attempt(rop.AsyncFailure[string](boom), func(string) core.Eventual[int] {
		calls.Add(1)
		return core.Now(1)
	})

	assert.Same(t, boom, out.Await().Err())
	assert.Zero(t, calls.Load())
}

func TestAttempt_NilEventual(t *testing.T) {
	t.Parallel()

	out := Attempt(rop.AsyncSuccess[int, error](1), func(int) core.Eventual[int] {
		return nil
	}).Await()

	var wrapped *rop.WrappedError
	require.ErrorAs(t, out.Err(), &wrapped)
	assert.Same(t, core.ErrNilEventual, wrapped.Cause)
}

func TestFinally(t *testing.T) {
	t.Parallel()

	describe := func(a *rop.AsyncResult[int, error]) string {
		out, err := Finally(a,
			func(v int) string { return "val:" + strconv.Itoa(v) },
			func(err error) string { return "err:" + err.Error() },
		).Await()
		require.NoError(t, err)
		return out
	}

	assert.Equal(t, "val:2", describe(rop.AsyncSuccessLater[int, error](later(2))))
	assert.Equal(t, "err:x", describe(rop.AsyncFailure[int](errors.New("x"))))
}

func TestFinally_KeepsRejection(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	a := rop.AsyncSuccessLater[int, error](core.Rejected[int](boom))
	_, err := Finally(a,
		func(int) string { return "val" },
		func(error) string { return "err" },
	).Await()
	assert.Same(t, boom, err)
}

func TestAll(t *testing.T) {
	t.Parallel()

	out := All(
		rop.AsyncSuccessLater[int, error](later(1)),
		rop.AsyncSuccess[int, error](2),
		rop.AsyncSuccessLater[int, error](later(3)),
	)
	assert.Equal(t, rop.Ok([]int{1, 2, 3}), out.Await())

	empty := All[int, error]()
	assert.Equal(t, rop.Ok([]int{}), empty.Await())
}

func TestAll_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	first := errors.New("first")
	out := All(
		rop.AsyncSuccess[int, error](1),
		rop.AsyncFailure[int](first),
		rop.AsyncFailure[int](errors.New("second")),
	)
	assert.Same(t, first, out.Await().Err())
}
