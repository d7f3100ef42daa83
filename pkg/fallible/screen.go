package fallible

import (
	"context"
	"fmt"
)

// DropText is the notice logged when an element leaves a sequence because fn
// failed on it.
func DropText(element any, fn any) string {
	return fmt.Sprintf("Element %v will be removed from the sequence as it caused an error in %s!",
		element, Describe(fn))
}

// Screen applies fn to one sequence element. A failure or nil value is reported
// twice under one correlation id: the ErrorText warning from Settle, then the
// DropText notice. Sequence counters are updated when metrics are enabled.
func Screen[I, O any](ctx context.Context, fn Function[I, O], in I) Optional[O] {
	Count(ctx, SeqProcessedTotal)

	out := Attempt(func() (O, error) { return fn(in) })
	opt := Settle(ctx, out, fn, in)
	if opt.IsPresent() {
		Count(ctx, SeqPassedTotal)
		return opt
	}

	err := out.Err()
	if err == nil {
		err = ErrNilResult
	}
	Count(ctx, SeqDroppedTotal)
	Report(ctx, out.ID(), DropText(in, fn), in, err)
	return opt
}
