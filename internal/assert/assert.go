package assert

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// Equal verifies equality of two objects.
func Equal[T any](t *testing.T, a T, b T) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("%v != %v", a, b)
	}
}

// NotEqual verifies objects are not equal.
func NotEqual[T any](t *testing.T, a T, b T) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Fatalf("%v == %v", a, b)
	}
}

// IsNil verifies that the object is nil.
func IsNil(t *testing.T, a any) {
	t.Helper()
	if a != nil && !isNilValue(a) {
		t.Fatalf("%v is not nil", a)
	}
}

// NotNil verifies that the object is not nil.
func NotNil(t *testing.T, a any) {
	t.Helper()
	if a == nil || isNilValue(a) {
		t.Fatal("value is nil")
	}
}

// ErrorIs checks whether any error in err's tree matches target.
func ErrorIs(t *testing.T, err error, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error %v is not %v", err, target)
	}
}

// True verifies the condition holds.
func True(t *testing.T, condition bool) {
	t.Helper()
	if !condition {
		t.Fatal("condition is false")
	}
}

// False verifies the condition does not hold.
func False(t *testing.T, condition bool) {
	t.Helper()
	if condition {
		t.Fatal("condition is true")
	}
}

// Contains verifies that s contains substr.
func Contains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Fatalf("%q does not contain %q", s, substr)
	}
}

func isNilValue(a any) bool {
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice:
		return v.IsNil()
	}
	return false
}
