package match

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

type tHelper interface {
	Helper()
}

// AssertArgs asserts that actual matches expected element by element,
// using Equal so matchers inside expected are honored.
func AssertArgs(t assert.TestingT, expected, actual []interface{}, msgAndArgs ...interface{}) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	ok := len(expected) == len(actual)
	for i := 0; ok && i < len(expected); i++ {
		ok = Equal(expected[i], actual[i])
	}
	if ok {
		return true
	}

	return assert.Fail(t, fmt.Sprintf("Arguments do not match\nexpected: %s\nactual  : %s",
		renderAll(expected), renderAll(actual)), msgAndArgs...)
}

// AssertMatches asserts a single value against expected using Equal
func AssertMatches(t assert.TestingT, expected, actual interface{}, msgAndArgs ...interface{}) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if Equal(expected, actual) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Value does not match\nexpected: %s\nactual  : %#v",
		Render(expected), actual), msgAndArgs...)
}
