package fallible

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// ErrorText formats the message shared by Abort, Settle and the sequence
// transforms:
//
//	Caught an exception when evaluating <callable> with inputs (<a0>, <a1>): <err>
//
// The " with inputs (...)" part is omitted when no args are given.
func ErrorText(err error, callable any, args ...any) string {
	var sb strings.Builder
	sb.WriteString("Caught an exception when evaluating ")
	sb.WriteString(Describe(callable))

	if len(args) > 0 {
		sb.WriteString(" with inputs (")
		for i, arg := range args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprint(arg))
		}
		sb.WriteString(")")
	}

	sb.WriteString(": ")
	if err != nil {
		sb.WriteString(err.Error())
	} else {
		sb.WriteString("<nil>")
	}
	return sb.String()
}

// Describe renders a callable for diagnostics. Strings and fmt.Stringer values
// render as themselves, funcs as their runtime symbol name.
func Describe(callable any) string {
	switch c := callable.(type) {
	case nil:
		return "<nil>"
	case string:
		return c
	case fmt.Stringer:
		return c.String()
	}

	v := reflect.ValueOf(callable)
	if v.Kind() == reflect.Func {
		if v.IsNil() {
			return "<nil func>"
		}
		if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
			return fn.Name()
		}
	}
	return fmt.Sprint(callable)
}
