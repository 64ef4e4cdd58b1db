// Package nilcheck reports nil-ness of values boxed in interfaces.
package nilcheck

import "reflect"

// Interface reports whether value is nil, including typed nils stored in an
// interface (a nil pointer, map, slice, chan, func or nested interface).
func Interface(value any) bool {
	switch value.(type) {
	case nil:
		return true
	case string, bool, int, int32, int64, uint, uint32, uint64, float64:
		return false
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
