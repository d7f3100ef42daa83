package functions

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/sinks"
)

var errBoom = errors.New("boom")

func atoi(s string) (int, error) { return strconv.Atoi(s) }

func divide(a, b int) (int, error) {
	if b == 0 {
		return 0, errors.New("division by zero")
	}
	return a / b, nil
}

func clamp(v, lo, hi int) (int, error) {
	if lo > hi {
		return 0, errBoom
	}
	return min(max(v, lo), hi), nil
}

func sum(inputs ...int) (int, error) {
	total := 0
	for _, in := range inputs {
		if in < 0 {
			return 0, errBoom
		}
		total += in
	}
	return total, nil
}

func TestHandle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 12, Handle(atoi, "12", func(err error, in string) int { return -1 }))

	var seenIn string
	got := Handle(atoi, "x", func(err error, in string) int {
		seenIn = in
		return -1
	})
	assert.Equal(t, -1, got)
	assert.Equal(t, "x", seenIn)
}

func TestHandle2_ArgumentOrder(t *testing.T) {
	t.Parallel()

	got := Handle2(divide, 7, 0, func(err error, a, b int) int {
		assert.EqualError(t, err, "division by zero")
		assert.Equal(t, 7, a)
		assert.Equal(t, 0, b)
		return a*10 + b
	})
	assert.Equal(t, 70, got)
}

func TestHandle3(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Handle3(clamp, 9, 0, 5, func(error, int, int, int) int { return -1 }))

	var seen [3]int
	Handle3(clamp, 1, 9, 2, func(err error, v, lo, hi int) int {
		seen = [3]int{v, lo, hi}
		return 0
	})
	assert.Equal(t, [3]int{1, 9, 2}, seen)
}

func TestHandleN(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, HandleN(sum, func(error, ...int) int { return -1 }, 1, 2, 3))

	var seen []int
	got := HandleN(sum, func(err error, inputs ...int) int {
		seen = inputs
		return -1
	}, 1, -2)
	assert.Equal(t, -1, got)
	assert.Equal(t, []int{1, -2}, seen)
}

func TestMust(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, Must(atoi, "4"))
	assert.Equal(t, 2, Must2(divide, 4, 2))
	assert.Equal(t, 3, Must3(clamp, 3, 0, 5))
	assert.Equal(t, 10, MustN(sum, 1, 2, 3, 4))
}

func TestMust_AbortMessages(t *testing.T) {
	t.Parallel()

	err := fallible.Catch(func() { Must2(divide, 1, 0) })
	require.Error(t, err)
	assert.Equal(t,
		fallible.ErrorText(errors.New("division by zero"), fallible.BiFunction[int, int, int](divide), 1, 0),
		err.Error())
	assert.Contains(t, err.Error(), "functions.divide with inputs (1, 0): division by zero")

	assert.PanicsWithError(t,
		fallible.ErrorText(errBoom, fallible.TriFunction[int, int, int, int](clamp), 1, 9, 2),
		func() { Must3(clamp, 1, 9, 2) })

	assert.PanicsWithError(t,
		fallible.ErrorText(errBoom, fallible.PolyFunction[int, int](sum), 1, -2),
		func() { MustN(sum, 1, -2) })

	var numErr *strconv.NumError
	err = fallible.Catch(func() { Must(atoi, "x") })
	assert.ErrorAs(t, err, &numErr)
}

func TestOptional(t *testing.T) {
	t.Parallel()

	rec := sinks.NewRecorder()
	ctx := fallible.WithSink(context.Background(), rec)

	v, ok := Optional(ctx, atoi, "5").Get()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Zero(t, rec.Len())

	assert.False(t, Optional(ctx, atoi, "five").IsPresent())
	require.Equal(t, 1, rec.Len())
	assert.Contains(t, rec.Messages()[0], "functions.atoi with inputs (five): ")
	assert.Equal(t, "five", rec.Diagnostics()[0].Element)
}

func TestOptional2And3(t *testing.T) {
	t.Parallel()

	rec := sinks.NewRecorder()
	ctx := fallible.WithSink(context.Background(), rec)

	assert.Equal(t, 3, Optional2(ctx, divide, 9, 3).OrElse(-1))
	assert.Equal(t, -1, Optional2(ctx, divide, 9, 0).OrElse(-1))
	assert.Equal(t, 2, Optional3(ctx, clamp, 2, 0, 5).OrElse(-1))
	assert.Equal(t, -1, Optional3(ctx, clamp, 2, 5, 0).OrElse(-1))

	require.Equal(t, 2, rec.Len())
	assert.Equal(t,
		fallible.ErrorText(errors.New("division by zero"), fallible.BiFunction[int, int, int](divide), 9, 0),
		rec.Messages()[0])
	assert.Equal(t, []any{2, 5, 0}, rec.Diagnostics()[1].Element)
}

func TestOptional_NilResult(t *testing.T) {
	t.Parallel()

	rec := sinks.NewRecorder()
	ctx := fallible.WithSink(context.Background(), rec)

	opt := Optional(ctx, func(key string) (map[string]int, error) { return nil, nil }, "k")

	assert.False(t, opt.IsPresent())
	assert.Equal(t, 1, rec.Len())
}

func TestAttempt_KeepsOutcome(t *testing.T) {
	t.Parallel()

	out := Attempt(atoi, "x")
	assert.True(t, out.IsFailure())

	out = Attempt(atoi, "1")
	assert.Equal(t, 1, out.Value())
}
