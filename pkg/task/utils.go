package task

import (
	"reflect"
)

// IsNil reports whether i is nil, including typed nil pointers, maps,
// slices and functions hidden behind an interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}

	return false
}

// GetErrors flattens err into its component errors. Aggregates built with
// multierror or errors.Join are unpacked; a plain error yields itself.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if e, ok := err.(interface{ WrappedErrors() []error }); ok {
		return e.WrappedErrors()
	}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		return e.Unwrap()
	}

	return []error{err}
}
