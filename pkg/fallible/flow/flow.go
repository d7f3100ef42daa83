package flow

import (
	"context"
	"errors"
	"iter"
	"sync"

	pkgerrors "github.com/pkg/errors"

	"github.com/ib-77/fallible/pkg/fallible"
)

var ErrOutputNotDrained = errors.New("rejects read before the output was drained")

// RemoveErrors maps in through fn on fallible.WorkersFrom(ctx, 1) lines and
// emits the successes in input order.
func RemoveErrors[I, O any](ctx context.Context, in <-chan I, fn fallible.Function[I, O]) <-chan O {
	return run(ctx, in, fn, nil)
}

// SplitErrors is RemoveErrors plus a record of the failing inputs. The rejects
// are readable once the output channel has been closed after the whole input
// was consumed; a flow stopped by ctx leaves them unreadable.
func SplitErrors[I, O any](ctx context.Context, in <-chan I,
	fn fallible.Function[I, O]) fallible.Pair[<-chan O, *Rejects[I]] {

	rejects := &Rejects[I]{}
	return fallible.PairOf(run(ctx, in, fn, rejects), rejects)
}

func run[I, O any](ctx context.Context, in <-chan I, fn fallible.Function[I, O], rejects *Rejects[I]) <-chan O {
	lines := fallible.WorkersFrom(ctx, 1)

	f := newFed()
	jobs := number(ctx, in, f)
	results := make(chan done[I, O])
	out := make(chan O)

	wg := &sync.WaitGroup{}
	for range lines {
		wg.Add(1)
		go line(ctx, jobs, results, fn, rejects, wg)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go reorder(ctx, results, out, rejects, f)

	return out
}

// Rejects collects the inputs a flow dropped, in completion order.
type Rejects[I any] struct {
	mu       sync.Mutex
	items    []I
	complete bool
}

func (r *Rejects[I]) add(in I) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, in)
}

func (r *Rejects[I]) close(complete bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.complete = complete
}

// Len is safe to call at any time.
func (r *Rejects[I]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// All ranges over the rejects. It panics with ErrOutputNotDrained when ranged
// over before the output channel has been closed, or when the flow was
// stopped by ctx before the input ran out.
func (r *Rejects[I]) All() iter.Seq[I] {
	return func(yield func(I) bool) {
		for _, in := range r.Slice() {
			if !yield(in) {
				return
			}
		}
	}
}

// Slice copies the rejects. Same precondition as All.
func (r *Rejects[I]) Slice() []I {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.complete {
		panic(pkgerrors.WithStack(ErrOutputNotDrained))
	}
	items := make([]I, len(r.items))
	copy(items, r.items)
	return items
}
