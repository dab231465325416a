package format

import (
	"math"
	"reflect"
)

const (
	tokenTrue  = "t"
	tokenFalse = "f"
)

// Bool returns "t" for truthy values and "f" for falsy ones.
func Bool(v any) string {
	if Truthy(v) {
		return tokenTrue
	}
	return tokenFalse
}

// Truthy reports whether v counts as set. False, numeric zero, NaN, the empty
// string, nil and nil pointers/maps/slices/funcs/channels are falsy; everything
// else is truthy, including empty but non-nil collections.
func Truthy(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return !rv.IsNil()
	default:
		return true
	}
}
