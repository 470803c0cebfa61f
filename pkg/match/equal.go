package match

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/stretchr/testify/assert"
)

// Matcher is an expected value that decides equality itself
type Matcher interface {
	Matches(actual interface{}) bool
	String() string
}

// Equal compares expected and actual. A Matcher on either side decides the
// comparison; maps and slices are walked so matchers nested inside them
// are honored; everything else falls back to testify's ObjectsAreEqual.
func Equal(expected, actual interface{}) bool {
	if m, ok := expected.(Matcher); ok {
		return m.Matches(actual)
	}
	if m, ok := actual.(Matcher); ok {
		return m.Matches(expected)
	}

	switch exp := expected.(type) {
	case map[string]interface{}:
		act, ok := actual.(map[string]interface{})
		if !ok || len(exp) != len(act) {
			return false
		}
		for k, v := range exp {
			av, present := act[k]
			if !present || !Equal(v, av) {
				return false
			}
		}
		return true
	case []interface{}:
		act, ok := actual.([]interface{})
		if !ok || len(exp) != len(act) {
			return false
		}
		for i := range exp {
			if !Equal(exp[i], act[i]) {
				return false
			}
		}
		return true
	}

	return assert.ObjectsAreEqual(expected, actual)
}

// Render formats a value for failure output, using String for matchers
func Render(v interface{}) string {
	if m, ok := v.(Matcher); ok {
		return m.String()
	}
	return fmt.Sprintf("%#v", v)
}

func renderAll(values []interface{}) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Render(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// toStringMap converts any map with string keys into map[string]interface{}
func toStringMap(v interface{}) (map[string]interface{}, bool) {
	if m, ok := v.(map[string]interface{}); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]interface{}, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
