package helpers

import "reflect"

// StrPanic returns p, or panics with panicMessage when p is empty.
// Used by constructors for required strings such as the restart service base URL.
func StrPanic(p string, panicMessage string) string {
	if p == "" {
		panic(panicMessage)
	}
	return p
}

// NilPanic returns v, or panics with panicMessage when v is nil.
// Typed nils (pointer, slice, map, chan, func, interface) count as nil.
// Used by constructors to reject missing collaborators at composition time.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
