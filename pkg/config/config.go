package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/glintfix/pkg/errors"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "GLINTFIX_"

// Config is the fixture configuration
type Config struct {
	LogLevel    string `koanf:"log_level" toml:"log_level"`
	ScratchBase string `koanf:"scratch_base" toml:"scratch_base"`
	KeepScratch bool   `koanf:"keep_scratch" toml:"keep_scratch"`
}

var (
	current     *Config
	currentErr  error
	currentOnce sync.Once
	currentMu   sync.Mutex
)

// Get returns the process-wide configuration, loading it on first use
func Get() (*Config, error) {
	currentMu.Lock()
	defer currentMu.Unlock()
	currentOnce.Do(func() {
		current, currentErr = Load()
	})
	return current, currentErr
}

// Reset drops the cached configuration so the next Get reloads it
func Reset() {
	currentMu.Lock()
	defer currentMu.Unlock()
	current, currentErr = nil, nil
	currentOnce = sync.Once{}
}

// Load builds a Config from defaults, GLINTFIX_CONFIG and the environment
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if path := os.Getenv(EnvPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
	}

	// Empty variables are skipped so an exported-but-blank override
	// does not wipe out a default.
	envKeys := env.Provider(EnvPrefix, ".", func(s string) string {
		if os.Getenv(s) == "" {
			return ""
		}
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envKeys, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.ScratchBase == "" {
		cfg.ScratchBase = filepath.Join(xdg.CacheHome, "glintfix", "scratch")
	}

	return &cfg, nil
}

// ResolveScratch makes a relative scratch path absolute under ScratchBase
func (c *Config) ResolveScratch(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ScratchBase, path)
}

// ScratchPath resolves path like ResolveScratch and rejects results that
// fall outside ScratchBase. The base itself is accepted.
func (c *Config) ScratchPath(path string) (string, error) {
	dir := filepath.Clean(c.ResolveScratch(path))
	base := filepath.Clean(c.ScratchBase)

	rel, err := filepath.Rel(base, dir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrInvalidInput, "%s is outside the scratch base %s", path, base).
			WithDetail("path", path)
	}
	return dir, nil
}
