// Package styles holds the lipgloss styles used by the glintfix command
// line. Colors adapt to light and dark terminals and are declared in an
// embedded styles.yaml.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef is an adaptive color definition
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// Config is the styles file layout
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var registry map[string]lipgloss.Style

func init() {
	Reset()
}

// Reset reloads the embedded styles
func Reset() {
	if err := Load(embeddedStyles); err != nil {
		registry = map[string]lipgloss.Style{}
	}
}

// Load replaces the registry with the styles in data
func Load(data []byte) error {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse styles: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	next := make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := lipgloss.NewStyle().Bold(def.Bold).Italic(def.Italic)
		if c, ok := colors[def.Foreground]; ok {
			style = style.Foreground(c)
		} else if def.Foreground != "" {
			style = style.Foreground(lipgloss.Color(def.Foreground))
		}
		next[name] = style
	}
	registry = next
	return nil
}

// Get returns the named style, or a plain style for unknown names
func Get(name string) lipgloss.Style {
	if s, ok := registry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Render renders text in the named style
func Render(name, text string) string {
	return Get(name).Render(text)
}
