package flow

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/metricz"

	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/sinks"
)

var errEven = errors.New("even")

func failOnEven(i int) (string, error) {
	if i%2 == 0 {
		return "", errEven
	}
	return strconv.Itoa(i), nil
}

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func setup(t *testing.T, workers int) (context.Context, *sinks.Recorder) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	rec := sinks.NewRecorder()
	return fallible.WithWorkers(fallible.WithSink(ctx, rec), workers), rec
}

func TestFromSliceAndCollect(t *testing.T) {
	t.Parallel()
	ctx, _ := setup(t, 1)

	assert.Equal(t, []int{1, 2, 3}, Collect(ctx, FromSlice(ctx, []int{1, 2, 3})))
	assert.Empty(t, Collect(ctx, FromSlice(ctx, []int{})))
}

func TestRemoveErrors_SingleLine(t *testing.T) {
	t.Parallel()
	ctx, rec := setup(t, 1)

	got := Collect(ctx, RemoveErrors(ctx, FromSlice(ctx, numbers(10)), failOnEven))

	assert.Equal(t, []string{"1", "3", "5", "7", "9"}, got)
	assert.Equal(t, 10, rec.Len())
}

func TestRemoveErrors_ManyLinesKeepInputOrder(t *testing.T) {
	t.Parallel()
	ctx, _ := setup(t, 8)

	slow := func(i int) (string, error) {
		// later elements finish first
		time.Sleep(time.Duration(50-i) * 100 * time.Microsecond)
		return failOnEven(i)
	}

	got := Collect(ctx, RemoveErrors(ctx, FromSlice(ctx, numbers(50)), slow))

	want := make([]string, 0, 25)
	for i := 1; i < 50; i += 2 {
		want = append(want, strconv.Itoa(i))
	}
	assert.Equal(t, want, got)
}

func TestSplitErrors(t *testing.T) {
	t.Parallel()
	ctx, _ := setup(t, 1)

	out, rejects := SplitErrors(ctx, FromSlice(ctx, numbers(10)), failOnEven).Unpack()

	assert.Equal(t, []string{"1", "3", "5", "7", "9"}, Collect(ctx, out))
	// a single line finishes in input order
	assert.Equal(t, []int{0, 2, 4, 6, 8}, slices.Collect(rejects.All()))
	assert.Equal(t, 5, rejects.Len())
}

func TestSplitErrors_ManyLines(t *testing.T) {
	t.Parallel()
	ctx, _ := setup(t, 4)
	registry := metricz.New()
	ctx = fallible.WithMetrics(ctx, registry)

	out, rejects := SplitErrors(ctx, FromSlice(ctx, numbers(100)), failOnEven).Unpack()

	got := Collect(ctx, out)
	require.Len(t, got, 50)
	assert.Equal(t, "1", got[0])
	assert.Equal(t, "99", got[49])

	// completion order is not guaranteed, membership is
	evens := make([]int, 0, 50)
	for i := 0; i < 100; i += 2 {
		evens = append(evens, i)
	}
	assert.ElementsMatch(t, evens, rejects.Slice())

	assert.Equal(t, float64(100), registry.Counter(fallible.SeqProcessedTotal).Value())
	assert.Equal(t, float64(50), registry.Counter(fallible.SeqDroppedTotal).Value())
}

func TestSplitErrors_RejectsBeforeCloseIsAnError(t *testing.T) {
	t.Parallel()
	ctx, _ := setup(t, 2)

	in := make(chan int)
	_, rejects := SplitErrors[int, string](ctx, in, failOnEven).Unpack()

	assert.PanicsWithError(t, ErrOutputNotDrained.Error(), func() {
		for range rejects.All() {
		}
	})
	assert.Zero(t, rejects.Len())
	close(in)
}

func TestRemoveErrors_CancelStopsFeeding(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(fallible.WithSink(context.Background(), sinks.Discard))
	defer cancel()

	var calls atomic.Int32
	in := make(chan int)
	go func() {
		defer close(in)
		for i := 0; ; i++ {
			select {
			case in <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	out := RemoveErrors[int, int](ctx, in, func(i int) (int, error) {
		calls.Add(1)
		return i, nil
	})

	for v := range out {
		if v == 10 {
			cancel()
			break
		}
	}

	// the output closes once the lines notice the cancellation
	for range out {
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(11))
}

func TestSplitErrors_CancelledRejectsAreUnreadable(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{1, 4} {
		ctx, cancel := context.WithCancel(fallible.WithSink(context.Background(), sinks.Discard))
		ctx = fallible.WithWorkers(ctx, workers)

		out, rejects := SplitErrors(ctx, FromSlice(ctx, numbers(100)), failOnEven).Unpack()
		for v := range out {
			if v == "5" {
				cancel()
				break
			}
		}
		for range out {
		}
		cancel()

		assert.Less(t, rejects.Len(), 50, "workers=%d", workers)
		assert.PanicsWithError(t, ErrOutputNotDrained.Error(), func() {
			rejects.Slice()
		}, "workers=%d", workers)
		assert.PanicsWithError(t, ErrOutputNotDrained.Error(), func() {
			for range rejects.All() {
			}
		}, "workers=%d", workers)
	}
}

func TestSplitErrors_EmptyInput(t *testing.T) {
	t.Parallel()
	ctx, _ := setup(t, 3)

	out, rejects := SplitErrors(ctx, FromSlice(ctx, []int{}), failOnEven).Unpack()

	assert.Empty(t, Collect(ctx, out))
	assert.Empty(t, rejects.Slice())
}

func TestRejects_AllStopsEarly(t *testing.T) {
	t.Parallel()

	r := &Rejects[int]{}
	r.add(1)
	r.add(2)
	r.close(true)

	var got []int
	for v := range r.All() {
		got = append(got, v)
		break
	}
	assert.Equal(t, []int{1}, got)
}
