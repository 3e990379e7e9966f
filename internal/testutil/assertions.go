package testutil

import (
	"strings"
	"testing"

	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
)

// Custom assertion helpers to reduce boilerplate in tests

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: got error %v, expected none", msg, err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error, got none", msg)
	}
}

// AssertErrorContains fails the test if err is nil or doesn't contain the expected substring
func AssertErrorContains(t *testing.T, err error, expected string, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error containing %q, got none", msg, expected)
	}
	if !strings.Contains(err.Error(), expected) {
		t.Fatalf("%s: expected error containing %q, got %q", msg, expected, err.Error())
	}
}

// AssertErrorType fails the test if err is nil or is not the expected error type
func AssertErrorType(t *testing.T, err error, expected errors.ErrorType, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected %s error, got none", msg, expected)
	}
	if !errors.IsType(err, expected) {
		t.Fatalf("%s: expected %s error, got %s: %v", msg, expected, errors.GetType(err), err)
	}
}

// AssertEqual fails the test if got != expected
func AssertEqual(t *testing.T, got, expected interface{}, msg string) {
	t.Helper()
	if got != expected {
		t.Fatalf("%s: got %v, expected %v", msg, got, expected)
	}
}

// AssertStringEqual fails the test if got != expected (string-specific for cleaner output)
func AssertStringEqual(t *testing.T, got, expected string, msg string) {
	t.Helper()
	if got != expected {
		t.Fatalf("%s: got %q, expected %q", msg, got, expected)
	}
}

// AssertStringContains fails the test if str doesn't contain substring
func AssertStringContains(t *testing.T, str, substring string, msg string) {
	t.Helper()
	if !strings.Contains(str, substring) {
		t.Fatalf("%s: expected %q to contain %q", msg, str, substring)
	}
}

// AssertStringNotContains fails the test if str contains substring
func AssertStringNotContains(t *testing.T, str, substring string, msg string) {
	t.Helper()
	if strings.Contains(str, substring) {
		t.Fatalf("%s: expected %q to not contain %q", msg, str, substring)
	}
}

// AssertSliceEqual fails the test if slices don't have the same elements in the same order
func AssertSliceEqual(t *testing.T, got, expected []string, msg string) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("%s: got %d elements, expected %d\ngot: %v\nexpected: %v", msg, len(got), len(expected), got, expected)
	}

	for i, g := range got {
		if g != expected[i] {
			t.Fatalf("%s: element %d: got %q, expected %q\ngot: %v\nexpected: %v", msg, i, g, expected[i], got, expected)
		}
	}
}

// AssertSliceContains fails the test if slice doesn't contain element
func AssertSliceContains(t *testing.T, slice []string, element string, msg string) {
	t.Helper()
	for _, item := range slice {
		if item == element {
			return
		}
	}
	t.Fatalf("%s: expected slice %v to contain %q", msg, slice, element)
}
