package fallible

import "reflect"

// IsNil reports whether i is nil or holds a nil pointer, map, slice, channel,
// func or interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Args converts typed inputs into the []any form used by ErrorText.
func Args[I any](inputs []I) []any {
	if len(inputs) == 0 {
		return nil
	}
	args := make([]any, len(inputs))
	for i, in := range inputs {
		args[i] = in
	}
	return args
}

func elementOf(args []any) any {
	switch len(args) {
	case 0:
		return nil
	case 1:
		return args[0]
	default:
		return args
	}
}
