package match_test

import (
	"testing"

	"github.com/arthur-debert/glintfix/pkg/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPartialDict_Equal(t *testing.T) {
	tests := []struct {
		name  string
		self  map[string]interface{}
		other map[string]interface{}
		want  bool
	}{
		{
			name:  "all shared keys equal",
			self:  map[string]interface{}{"a": 1, "b": "x"},
			other: map[string]interface{}{"a": 1, "b": "x"},
			want:  true,
		},
		{
			name:  "shared key differs",
			self:  map[string]interface{}{"a": 1},
			other: map[string]interface{}{"a": 2},
			want:  false,
		},
		{
			name:  "extra keys in other never fail",
			self:  map[string]interface{}{"a": 1},
			other: map[string]interface{}{"a": 1, "verbose": true, "timeout": 30},
			want:  true,
		},
		{
			name:  "keys only in self are ignored",
			self:  map[string]interface{}{"a": 1, "b": 2},
			other: map[string]interface{}{"a": 1},
			want:  true,
		},
		{
			name:  "empty other",
			self:  map[string]interface{}{"a": 1},
			other: map[string]interface{}{},
			want:  true,
		},
		{
			name:  "matcher value",
			self:  map[string]interface{}{"path": match.Type[string]()},
			other: map[string]interface{}{"path": "/tmp/x"},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := match.PartialFrom(tt.self)
			assert.Equal(t, tt.want, d.Equal(tt.other))
		})
	}
}

func TestPartialDict_RecordsNotGivenEvenOnFailure(t *testing.T) {
	d := match.Partial("a", 1)

	ok := d.Equal(map[string]interface{}{"a": 2, "z": "late", "b": true})

	assert.False(t, ok)
	assert.Equal(t, map[string]interface{}{"b": true, "z": "late"}, d.NotGiven())
}

func TestPartialDict_RepeatedComparisonIsStable(t *testing.T) {
	d := match.Partial("a", 1)
	other := map[string]interface{}{"a": 1, "b": 2}

	first := d.Equal(other)
	second := d.Equal(other)
	assert.Equal(t, first, second)

	d.Equal(map[string]interface{}{"c": 3})
	assert.Equal(t, map[string]interface{}{"b": 2, "c": 3}, d.NotGiven(), "not-given accumulates")

	d.Reset()
	assert.Empty(t, d.NotGiven())
	assert.True(t, d.Equal(other))
}

func TestPartialDict_MappingOpsDoNotTouchNotGiven(t *testing.T) {
	d := match.Partial("a", 1)
	d.Equal(map[string]interface{}{"b": 2})

	d.Set("c", 3)
	d.Set("a", 10)
	d.Delete("c")
	d.Delete("missing")
	_ = d.Get("b")

	assert.Equal(t, map[string]interface{}{"b": 2}, d.NotGiven())
	assert.Equal(t, []string{"a"}, d.Keys())
	assert.Equal(t, 1, d.Len())
	v, ok := d.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	_, ok = d.Lookup("b")
	assert.False(t, ok, "b was only seen in a comparison")
}

func TestPartialDict_String(t *testing.T) {
	d := match.Partial("name", "demo", "count", 2)
	assert.Equal(t, `{"name": "demo", "count": 2}`, d.String())

	d.Equal(map[string]interface{}{"name": "demo", "force": true})
	assert.Equal(t, `{"name": "demo", "count": 2, "force": true}`, d.String())

	withMatcher := match.Partial("p", match.Type[int]())
	assert.Equal(t, `{"p": TypeMatcher(int)}`, withMatcher.String())
}

func TestPartialDict_Matches(t *testing.T) {
	d := match.Partial("retries", 3)

	assert.True(t, d.Matches(map[string]int{"retries": 3, "delay": 1}))
	assert.False(t, d.Matches(map[string]int{"retries": 4}))
	assert.False(t, d.Matches("not a map"))
	assert.False(t, d.Matches(map[int]int{1: 1}))
}

func TestPartial_Panics(t *testing.T) {
	assert.Panics(t, func() { match.Partial("a") })
	assert.Panics(t, func() { match.Partial(1, 2) })
}

type uploader struct {
	mock.Mock
}

func (u *uploader) Upload(opts map[string]interface{}) error {
	return u.Called(opts).Error(0)
}

func TestPartialDict_Argument(t *testing.T) {
	u := &uploader{}
	expected := match.Partial("bucket", "assets")
	u.On("Upload", expected.Argument()).Return(nil)

	require.NoError(t, u.Upload(map[string]interface{}{"bucket": "assets", "acl": "private"}))
	u.AssertExpectations(t)
	assert.Equal(t, map[string]interface{}{"acl": "private"}, expected.NotGiven())
}

func TestPartialDict_ZeroValue(t *testing.T) {
	var d match.PartialDict

	assert.True(t, d.Equal(map[string]interface{}{"verbose": true}))
	assert.Equal(t, map[string]interface{}{"verbose": true}, d.NotGiven())

	d.Set("path", "/srv")
	assert.Equal(t, "/srv", d.Get("path"))
	assert.Equal(t, []string{"path"}, d.Keys())
	assert.False(t, d.Equal(map[string]interface{}{"path": "/tmp"}))
}
