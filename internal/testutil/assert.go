// Package testutil provides assertion helpers and sequence fixtures shared
// by the lazyseq test suites.
package testutil

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// Assert provides test assertions.
type Assert struct {
	t *testing.T
}

// NewAssert creates a new assert helper.
func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t}
}

// Equal asserts that two values are equal.
func (a *Assert) Equal(expected, actual any, msgAndArgs ...any) {
	a.t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		a.fail(fmt.Sprintf("Expected: %v\nActual: %v", expected, actual), msgAndArgs...)
	}
}

// True asserts that a value is true.
func (a *Assert) True(value bool, msgAndArgs ...any) {
	a.t.Helper()
	if !value {
		a.fail("Expected true, but got false", msgAndArgs...)
	}
}

// False asserts that a value is false.
func (a *Assert) False(value bool, msgAndArgs ...any) {
	a.t.Helper()
	if value {
		a.fail("Expected false, but got true", msgAndArgs...)
	}
}

// Error asserts that an error occurred.
func (a *Assert) Error(err error, msgAndArgs ...any) {
	a.t.Helper()
	if err == nil {
		a.fail("Expected error, but got nil", msgAndArgs...)
	}
}

// NoError asserts that no error occurred.
func (a *Assert) NoError(err error, msgAndArgs ...any) {
	a.t.Helper()
	if err != nil {
		a.fail(fmt.Sprintf("Expected no error, but got: %v", err), msgAndArgs...)
	}
}

// ErrorIs asserts that err wraps target.
func (a *Assert) ErrorIs(err, target error, msgAndArgs ...any) {
	a.t.Helper()
	if !errors.Is(err, target) {
		a.fail(fmt.Sprintf("Expected error wrapping %v, but got: %v", target, err), msgAndArgs...)
	}
}

// Len asserts the length of a collection.
func (a *Assert) Len(collection any, length int, msgAndArgs ...any) {
	a.t.Helper()
	v := reflect.ValueOf(collection)
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.String:
		if v.Len() != length {
			a.fail(fmt.Sprintf("Expected length %d, but got %d", length, v.Len()), msgAndArgs...)
		}
	default:
		a.fail(fmt.Sprintf("Cannot take length of %T", collection), msgAndArgs...)
	}
}

func (a *Assert) fail(message string, msgAndArgs ...any) {
	a.t.Helper()
	if len(msgAndArgs) > 0 {
		if format, ok := msgAndArgs[0].(string); ok {
			message = fmt.Sprintf(format, msgAndArgs[1:]...) + "\n" + message
		}
	}
	a.t.Error(message)
}
