package rop

import (
	"reflect"
)

// IsNil reports whether i is absent: a nil interface or a nil pointer, map,
// slice, channel, func or unsafe pointer. Zero values of other kinds are
// present.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
