package flow

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/ib-77/fallible/pkg/fallible"
)

type job[I any] struct {
	idx int
	in  I
}

type done[I, O any] struct {
	idx int
	in  I
	out fallible.Optional[O]
}

// line evaluates jobs until the input closes or ctx is done. Rejects are
// appended as soon as a job finishes.
func line[I, O any](ctx context.Context, jobs <-chan job[I], results chan<- done[I, O],
	fn fallible.Function[I, O], rejects *Rejects[I], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-jobs:
			if !ok {
				return
			}

			out := fallible.Screen(ctx, fn, j.in)
			if !out.IsPresent() && rejects != nil {
				rejects.add(j.in)
			}

			select {
			case results <- done[I, O]{idx: j.idx, in: j.in, out: out}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// fed holds the number of jobs handed out, or -1 while the input is open or
// when feeding stopped because ctx was done.
type fed struct {
	total atomic.Int64
}

func newFed() *fed {
	f := &fed{}
	f.total.Store(-1)
	return f
}

// number indexes the input. An input that closes after ctx is done counts as
// interrupted.
func number[I any](ctx context.Context, in <-chan I, f *fed) <-chan job[I] {
	jobs := make(chan job[I])

	go func() {
		defer close(jobs)

		idx := 0
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					if ctx.Err() == nil {
						f.total.Store(int64(idx))
					}
					return
				}
				select {
				case jobs <- job[I]{idx: idx, in: v}:
					idx++
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return jobs
}

// reorder emits present values in input order. Once every line has finished it
// closes rejects, complete only when every fed job went through, then closes out.
func reorder[I, O any](ctx context.Context, results <-chan done[I, O], out chan<- O,
	rejects *Rejects[I], f *fed) {
	next := 0
	stopped := false
	defer func() {
		if rejects != nil {
			rejects.close(!stopped && int64(next) == f.total.Load())
		}
		close(out)
	}()

	pending := make(map[int]done[I, O])

	for r := range results {
		pending[r.idx] = r

		for {
			d, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++

			v, present := d.out.Get()
			if !present {
				continue
			}
			select {
			case out <- v:
			case <-ctx.Done():
				stopped = true
				drain(results)
				return
			}
		}
	}
}

func drain[T any](ch <-chan T) {
	for range ch {
	}
}
