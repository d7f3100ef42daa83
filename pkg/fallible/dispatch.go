package fallible

import "context"

// Attempt invokes call exactly once and captures what it returned.
func Attempt[T any](call func() (T, error)) Outcome[T] {
	v, err := call()
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// Dispatch invokes call once. On failure the error goes to onErr and its result
// is returned instead. A panic in onErr is not recovered.
func Dispatch[T any](call func() (T, error), onErr func(err error) T) T {
	out := Attempt(call)
	if out.IsFailure() {
		return onErr(out.Err())
	}
	return out.Value()
}

// Settle turns an outcome into an Optional. Failures and nil values produce a
// single warning diagnostic formatted with ErrorText.
func Settle[T any](ctx context.Context, out Outcome[T], callable any, args ...any) Optional[T] {
	if out.HasValue() {
		return Of(out.Value())
	}

	err := out.Err()
	if err == nil {
		err = ErrNilResult
	}
	Report(ctx, out.ID(), ErrorText(err, callable, args...), elementOf(args), err)
	return Empty[T]()
}

// Procedure lifts an error-only call into the (value, error) form Dispatch uses.
func Procedure(call func() error) func() (struct{}, error) {
	return func() (struct{}, error) {
		return struct{}{}, call()
	}
}

// DispatchProc is Dispatch for calls that produce no value.
func DispatchProc(call func() error, onErr func(err error)) {
	Dispatch(Procedure(call), func(err error) struct{} {
		onErr(err)
		return struct{}{}
	})
}
