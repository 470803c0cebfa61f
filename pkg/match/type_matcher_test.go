package match_test

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"reflect"
	"testing"

	"github.com/arthur-debert/glintfix/pkg/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type project struct {
	Name string
}

type label string

func TestTypeMatcher_Matches(t *testing.T) {
	tests := []struct {
		name    string
		matcher match.TypeMatcher
		value   interface{}
		want    bool
	}{
		{"direct instance", match.Type[*project](), &project{Name: "x"}, true},
		{"value vs pointer", match.Type[*project](), project{}, false},
		{"interface implementer", match.Type[io.Reader](), &bytes.Buffer{}, true},
		{"interface non-implementer", match.Type[io.Reader](), "text", false},
		{"stringer implementer", match.Type[fmt.Stringer](), match.Type[int](), true},
		{"unrelated type", match.Type[string](), 42, false},
		{"named type is distinct", match.Type[string](), label("x"), false},
		{"nil never matches", match.Type[io.Reader](), nil, false},
		{"empty interface matches anything", match.Type[interface{}](), 3.14, true},
		{"tuple first member", match.TypeOf("", 0), "hello", true},
		{"tuple second member", match.TypeOf("", 0), 7, true},
		{"tuple no member", match.TypeOf("", 0), 7.5, false},
		{"explicit types", match.Types(reflect.TypeOf(&os.File{})), os.Stdout, true},
		{"no types matches nothing", match.TypeOf(nil), "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.matcher.Matches(tt.value))
		})
	}
}

func TestTypeMatcher_String(t *testing.T) {
	assert.Equal(t, "TypeMatcher(*match_test.project)", match.Type[*project]().String())
	assert.Equal(t, "TypeMatcher(string|int)", match.TypeOf("", 0).String())
}

func TestTypeMatcher_InsideEqual(t *testing.T) {
	expected := []interface{}{"open", match.Type[*project](), map[string]interface{}{"force": match.Type[bool]()}}
	actual := []interface{}{"open", &project{Name: "demo"}, map[string]interface{}{"force": true}}

	assert.True(t, match.Equal(expected, actual))
	assert.True(t, match.Equal(&project{}, match.Type[*project]()), "matcher on the right also decides")

	actual[2] = map[string]interface{}{"force": "yes"}
	assert.False(t, match.Equal(expected, actual))
}

type opener struct {
	mock.Mock
}

func (o *opener) Open(p *project, mode string) error {
	return o.Called(p, mode).Error(0)
}

func TestTypeMatcher_Argument(t *testing.T) {
	o := &opener{}
	o.On("Open", match.Type[*project]().Argument(), "rw").Return(nil)

	assert.NoError(t, o.Open(&project{Name: "a"}, "rw"))
	o.AssertExpectations(t)
}
