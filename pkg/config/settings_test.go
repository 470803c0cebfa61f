package config

import (
	"testing"

	"github.com/arthur-debert/glintfix/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name string
		path string
		want map[string]interface{}
	}{
		{
			name: "toml",
			path: "testdata/settings.toml",
			want: map[string]interface{}{"retries": int64(3), "project": "demo", "editor.font": "mono"},
		},
		{
			name: "yaml",
			path: "testdata/settings.yaml",
			want: map[string]interface{}{"retries": 5, "editor.font": "serif"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := LoadSettings(tt.path)
			require.NoError(t, err)

			for k, v := range tt.want {
				assert.EqualValues(t, v, s.Get(k), "key %s", k)
			}
			assert.Nil(t, s.Get("undeclared"))
		})
	}
}

func TestLoadSettings_Errors(t *testing.T) {
	_, err := LoadSettings("testdata/settings.ini")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)

	_, err = LoadSettings("testdata/missing.toml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad), "got %v", err)

	_, err = LoadSettings("testdata/broken.toml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad), "got %v", err)

	assert.Panics(t, func() { MustLoadSettings("testdata/missing.toml") })
}

func TestSettings_MergeAndKeys(t *testing.T) {
	base := Settings{"retries": 3, "project": "demo"}
	merged := base.Merge(Settings{"retries": 5})

	assert.Equal(t, 5, merged.Get("retries"))
	assert.Equal(t, 3, base.Get("retries"), "merge must not mutate the receiver")
	assert.Equal(t, []string{"project", "retries"}, merged.Keys())
}

func TestSettings_Nested(t *testing.T) {
	s := Settings{"retries": 3, "editor.font": "mono"}

	nested, err := s.Nested()
	require.NoError(t, err)

	assert.Equal(t, 3, nested["retries"])
	editor, ok := nested["editor"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "mono", editor["font"])
}
