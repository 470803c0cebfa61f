package match

import (
	"reflect"
	"strings"

	"github.com/stretchr/testify/mock"
)

// TypeMatcher matches any value whose dynamic type is one of a fixed set
// of types. Interface types match their implementers.
type TypeMatcher struct {
	types []reflect.Type
}

// Type matches values of type T. T may be an interface type.
func Type[T any]() TypeMatcher {
	return TypeMatcher{types: []reflect.Type{reflect.TypeOf((*T)(nil)).Elem()}}
}

// TypeOf matches values sharing the dynamic type of any sample.
// nil samples carry no type and are skipped.
func TypeOf(samples ...interface{}) TypeMatcher {
	var types []reflect.Type
	for _, s := range samples {
		if s == nil {
			continue
		}
		types = append(types, reflect.TypeOf(s))
	}
	return TypeMatcher{types: types}
}

// Types matches values of any of the given types
func Types(types ...reflect.Type) TypeMatcher {
	held := make([]reflect.Type, 0, len(types))
	for _, t := range types {
		if t != nil {
			held = append(held, t)
		}
	}
	return TypeMatcher{types: held}
}

// Matches reports whether v is an instance of one of the held types
func (m TypeMatcher) Matches(v interface{}) bool {
	if v == nil {
		return false
	}
	vt := reflect.TypeOf(v)
	for _, t := range m.types {
		if t.Kind() == reflect.Interface {
			if vt.Implements(t) {
				return true
			}
			continue
		}
		if vt == t || vt.AssignableTo(t) {
			return true
		}
	}
	return false
}

// String lists the held types
func (m TypeMatcher) String() string {
	names := make([]string, len(m.types))
	for i, t := range m.types {
		names[i] = t.String()
	}
	return "TypeMatcher(" + strings.Join(names, "|") + ")"
}

// Argument adapts the matcher for testify mock expectations
func (m TypeMatcher) Argument() interface{} {
	return mock.MatchedBy(func(v interface{}) bool { return m.Matches(v) })
}

var _ Matcher = TypeMatcher{}
