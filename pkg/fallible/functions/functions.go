package functions

import (
	"context"

	"github.com/ib-77/fallible/pkg/fallible"
)

func Handle[I, O any](f fallible.Function[I, O], in I, onErr func(err error, in I) O) O {
	return fallible.Dispatch(
		func() (O, error) { return f(in) },
		func(err error) O { return onErr(err, in) })
}

func Handle2[I1, I2, O any](f fallible.BiFunction[I1, I2, O], in1 I1, in2 I2,
	onErr func(err error, in1 I1, in2 I2) O) O {
	return fallible.Dispatch(
		func() (O, error) { return f(in1, in2) },
		func(err error) O { return onErr(err, in1, in2) })
}

func Handle3[I1, I2, I3, O any](f fallible.TriFunction[I1, I2, I3, O], in1 I1, in2 I2, in3 I3,
	onErr func(err error, in1 I1, in2 I2, in3 I3) O) O {
	return fallible.Dispatch(
		func() (O, error) { return f(in1, in2, in3) },
		func(err error) O { return onErr(err, in1, in2, in3) })
}

// HandleN takes the callback before the inputs so the inputs can stay variadic.
func HandleN[I, O any](f fallible.PolyFunction[I, O], onErr func(err error, inputs ...I) O, inputs ...I) O {
	return fallible.Dispatch(
		func() (O, error) { return f(inputs...) },
		func(err error) O { return onErr(err, inputs...) })
}

func Must[I, O any](f fallible.Function[I, O], in I) O {
	return Handle(f, in, func(err error, in I) O {
		return fallible.Abort[O](err, f, in)
	})
}

func Must2[I1, I2, O any](f fallible.BiFunction[I1, I2, O], in1 I1, in2 I2) O {
	return Handle2(f, in1, in2, func(err error, in1 I1, in2 I2) O {
		return fallible.Abort[O](err, f, in1, in2)
	})
}

func Must3[I1, I2, I3, O any](f fallible.TriFunction[I1, I2, I3, O], in1 I1, in2 I2, in3 I3) O {
	return Handle3(f, in1, in2, in3, func(err error, in1 I1, in2 I2, in3 I3) O {
		return fallible.Abort[O](err, f, in1, in2, in3)
	})
}

func MustN[I, O any](f fallible.PolyFunction[I, O], inputs ...I) O {
	return HandleN(f, func(err error, inputs ...I) O {
		return fallible.Abort[O](err, f, fallible.Args(inputs)...)
	}, inputs...)
}

func Optional[I, O any](ctx context.Context, f fallible.Function[I, O], in I) fallible.Optional[O] {
	return fallible.Settle(ctx, Attempt(f, in), f, in)
}

func Optional2[I1, I2, O any](ctx context.Context, f fallible.BiFunction[I1, I2, O], in1 I1, in2 I2) fallible.Optional[O] {
	return fallible.Settle(ctx,
		fallible.Attempt(func() (O, error) { return f(in1, in2) }),
		f, in1, in2)
}

func Optional3[I1, I2, I3, O any](ctx context.Context, f fallible.TriFunction[I1, I2, I3, O],
	in1 I1, in2 I2, in3 I3) fallible.Optional[O] {
	return fallible.Settle(ctx,
		fallible.Attempt(func() (O, error) { return f(in1, in2, in3) }),
		f, in1, in2, in3)
}

// Attempt applies f to in once and keeps the outcome, for callers that need
// the correlation id as well as the Optional.
func Attempt[I, O any](f fallible.Function[I, O], in I) fallible.Outcome[O] {
	return fallible.Attempt(func() (O, error) { return f(in) })
}
