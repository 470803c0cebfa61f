package fixture

import (
	"testing"

	"github.com/arthur-debert/glintfix/pkg/config"
)

// SettingsDeclarer is anything that declares the host settings a test
// expects: a Module at package scope, or a test suite at type scope.
type SettingsDeclarer interface {
	DeclaredSettings() config.Settings
}

// Module holds the declarations a test package makes once
type Module struct {
	// Settings served by the settings fixture
	Settings config.Settings

	// GlintRoot is the scratch directory owned by the scratch fixture.
	// Relative paths resolve under the configured scratch base.
	GlintRoot string
}

// DeclaredSettings implements SettingsDeclarer
func (m Module) DeclaredSettings() config.Settings {
	return m.Settings
}

// ScratchDir is shorthand for ScratchDir(t, m)
func (m Module) ScratchDir(t testing.TB) string {
	t.Helper()
	return ScratchDir(t, m)
}
