package streams

import (
	"context"
	"errors"
	"iter"
	"sync"

	pkgerrors "github.com/pkg/errors"

	"github.com/ib-77/fallible/pkg/fallible"
)

var ErrOutputNotDrained = errors.New("rejects read before the output sequence was drained")

func RemoveErrors[I, O any](ctx context.Context, seq iter.Seq[I], fn fallible.Function[I, O]) iter.Seq[O] {
	return func(yield func(O) bool) {
		for in := range seq {
			if out, ok := fallible.Screen(ctx, fn, in).Get(); ok {
				if !yield(out) {
					return
				}
			}
		}
	}
}

// SplitErrors returns (output, rejects). Failing inputs are collected while the
// output is pulled, so rejects is complete only after the output has been
// ranged over to the end. Ranging over rejects earlier, or after a traversal
// that stopped early, panics with ErrOutputNotDrained. Each traversal of the
// output starts a fresh collection.
func SplitErrors[I, O any](ctx context.Context, seq iter.Seq[I],
	fn fallible.Function[I, O]) fallible.Pair[iter.Seq[O], iter.Seq[I]] {

	rejects := &collector[I]{}

	output := func(yield func(O) bool) {
		rejects.reset()
		for in := range seq {
			out, ok := fallible.Screen(ctx, fn, in).Get()
			if !ok {
				rejects.add(in)
				continue
			}
			if !yield(out) {
				return
			}
		}
		rejects.finish()
	}

	rejected := func(yield func(I) bool) {
		items, drained := rejects.snapshot()
		if !drained {
			panic(pkgerrors.WithStack(ErrOutputNotDrained))
		}
		for _, in := range items {
			if !yield(in) {
				return
			}
		}
	}

	return fallible.PairOf[iter.Seq[O], iter.Seq[I]](output, rejected)
}

// Partition drains seq once and returns (outputs, rejects), both in input order.
func Partition[I, O any](ctx context.Context, seq iter.Seq[I], fn fallible.Function[I, O]) fallible.Pair[[]O, []I] {
	outputs := make([]O, 0)
	rejects := make([]I, 0)

	for in := range seq {
		if out, ok := fallible.Screen(ctx, fn, in).Get(); ok {
			outputs = append(outputs, out)
		} else {
			rejects = append(rejects, in)
		}
	}

	return fallible.PairOf(outputs, rejects)
}

type collector[I any] struct {
	mu      sync.Mutex
	items   []I
	drained bool
}

func (c *collector[I]) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.drained = false
}

func (c *collector[I]) add(in I) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, in)
}

func (c *collector[I]) finish() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drained = true
}

func (c *collector[I]) snapshot() ([]I, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]I, len(c.items))
	copy(items, c.items)
	return items, c.drained
}
