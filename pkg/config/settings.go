package config

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/glintfix/pkg/errors"
)

// Settings is a flat view of host settings. Nested tables in a settings
// file become dotted keys, so [editor] font = "mono" is "editor.font".
type Settings map[string]interface{}

// Get returns the setting under key, or nil
func (s Settings) Get(key string) interface{} {
	return s[key]
}

// Keys returns the setting names in sorted order
func (s Settings) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge returns a new Settings with other layered over s
func (s Settings) Merge(other Settings) Settings {
	out := make(Settings, len(s)+len(other))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Nested returns the settings as nested maps, the inverse of the dotted view
func (s Settings) Nested() (map[string]interface{}, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(map[string]interface{}(s), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to nest settings")
	}
	return k.Raw(), nil
}

// LoadSettings reads a TOML (.toml) or YAML (.yaml, .yml) settings file
func LoadSettings(path string) (Settings, error) {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported settings file %s", path).
			WithDetail("path", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load settings from %s", path)
	}

	return Settings(k.All()), nil
}

// MustLoadSettings is LoadSettings for package-level declarations; it
// panics when the file cannot be read.
func MustLoadSettings(path string) Settings {
	s, err := LoadSettings(path)
	if err != nil {
		panic(err)
	}
	return s
}
