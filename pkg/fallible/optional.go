package fallible

import "fmt"

// Optional holds either a non-nil value or nothing.
type Optional[T any] struct {
	value   T
	present bool
}

// Of wraps v. A nil v yields an empty Optional.
func Of[T any](v T) Optional[T] {
	if IsNil(v) {
		return Empty[T]()
	}
	return Optional[T]{value: v, present: true}
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

// OrElseGet calls supply only when the Optional is empty.
func (o Optional[T]) OrElseGet(supply func() T) T {
	if o.present {
		return o.value
	}
	return supply()
}

func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}
