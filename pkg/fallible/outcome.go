package fallible

import "github.com/google/uuid"

// Outcome is the captured result of a single attempt.
type Outcome[T any] struct {
	id        uuid.UUID
	value     T
	err       error
	isSuccess bool
}

// Success builds a successful outcome. A nil value still counts as success, but
// it gets a correlation id because Settle reports it.
func Success[T any](v T) Outcome[T] {
	out := Outcome[T]{
		value:     v,
		isSuccess: true,
	}
	if IsNil(v) {
		out.id = uuid.New()
	}
	return out
}

func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		isSuccess: false,
		id:        uuid.New(),
	}
}

func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T]) IsFailure() bool {
	return !o.isSuccess
}

// HasValue reports a success carrying a non-nil value.
func (o Outcome[T]) HasValue() bool {
	return o.isSuccess && !IsNil(o.value)
}

// ID correlates the diagnostics produced for this outcome. It is uuid.Nil for
// successes with a non-nil value.
func (o Outcome[T]) ID() uuid.UUID {
	return o.id
}
