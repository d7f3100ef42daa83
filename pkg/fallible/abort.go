package fallible

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// AbortError is the panic value raised when a failure is forced to abort.
// Its message is ErrorText(Cause, Callable, Args...).
type AbortError struct {
	Callable string
	Args     []any
	Cause    error
}

func (e *AbortError) Error() string {
	return ErrorText(e.Cause, e.Callable, e.Args...)
}

func (e *AbortError) Unwrap() error {
	return e.Cause
}

// NewAbortError builds the error Abort panics with, including the stack of the
// caller. Format it with %+v to print the stack.
func NewAbortError(err error, callable any, args ...any) error {
	return pkgerrors.WithStack(&AbortError{
		Callable: Describe(callable),
		Args:     args,
		Cause:    err,
	})
}

// Abort panics with NewAbortError(err, callable, args...). The type parameter
// lets it stand in for a disposition of any return type.
func Abort[T any](err error, callable any, args ...any) T {
	panic(NewAbortError(err, callable, args...))
}

// Catch runs fn and returns the error of an abort raised inside it. Any other
// panic is re-raised.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			var abort *AbortError
			if errors.As(e, &abort) {
				err = e
				return
			}
		}
		panic(r)
	}()

	fn()
	return nil
}
