package fixture

import (
	"testing"

	"github.com/arthur-debert/glintfix/pkg/config"
	"github.com/arthur-debert/glintfix/pkg/errors"
	"github.com/arthur-debert/glintfix/pkg/filesystem"
	"github.com/arthur-debert/glintfix/pkg/logging"
)

// ScratchDir gives the test a freshly emptied directory at the module's
// GlintRoot and removes it when the test ends. A module without GlintRoot
// gets no directory and an empty path back.
func ScratchDir(t testing.TB, m Module) string {
	t.Helper()
	return ScratchDirFS(t, filesystem.NewOS(), m)
}

// ScratchDirFS is ScratchDir on an arbitrary filesystem
func ScratchDirFS(t testing.TB, fsys filesystem.FS, m Module) string {
	t.Helper()
	if m.GlintRoot == "" {
		return ""
	}

	cfg, err := config.Get()
	if err != nil {
		t.Fatalf("scratch directory: %v", err)
	}
	dir := cfg.ResolveScratch(m.GlintRoot)
	log := logging.ForTest(t, "fixture").With().Str("path", dir).Logger()

	if _, err := RemoveScratch(fsys, dir); err != nil {
		t.Fatalf("scratch directory: %v", err)
	}
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("scratch directory: cannot create %s: %v", dir, err)
	}
	log.Debug().Msg("Scratch directory ready")

	t.Cleanup(func() {
		if cfg.KeepScratch {
			log.Info().Msg("Keeping scratch directory")
			return
		}
		inUse, err := RemoveScratch(fsys, dir)
		if err != nil {
			t.Errorf("scratch directory: %v", err)
			return
		}
		if inUse {
			log.Warn().Msg("Scratch directory still in use, left in place")
		}
	})
	return dir
}

// RemoveScratch deletes dir and everything under it. A missing directory is
// not an error. When the OS refuses because something still holds the
// directory open, RemoveScratch reports inUse and no error.
func RemoveScratch(fsys filesystem.FS, dir string) (inUse bool, err error) {
	if err := fsys.RemoveAll(dir); err != nil {
		if isInUse(err) {
			return true, nil
		}
		return false, errors.Wrapf(err, errors.ErrScratchDir, "cannot remove %s", dir)
	}
	return false, nil
}
