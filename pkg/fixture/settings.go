package fixture

import (
	"testing"

	"github.com/arthur-debert/glintfix/pkg/config"
	"github.com/arthur-debert/glintfix/pkg/host"
	"github.com/arthur-debert/glintfix/pkg/logging"
)

// GetSetting wires main's GetSetting to the first scope that declares
// settings, so list a suite before the package Module to let the suite win.
// Keys the declaration lacks read as nil. With no declaring scope the
// double keeps its current behavior. The previous wiring is restored when
// the test ends.
func GetSetting(t testing.TB, main *host.MockMain, scopes ...SettingsDeclarer) config.Settings {
	t.Helper()

	var settings config.Settings
	for _, scope := range scopes {
		if scope == nil {
			continue
		}
		if declared := scope.DeclaredSettings(); declared != nil {
			settings = declared
			break
		}
	}

	log := logging.ForTest(t, "fixture")
	if settings == nil {
		log.Debug().Msg("No settings declared")
		return nil
	}

	Swap(t, &main.GetSettingFunc, func(key string) interface{} {
		return settings.Get(key)
	})
	log.Debug().Strs("keys", settings.Keys()).Msg("Settings wired")
	return settings
}
