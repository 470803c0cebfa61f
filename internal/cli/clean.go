package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/glintfix/internal/cli/styles"
	"github.com/arthur-debert/glintfix/pkg/config"
	"github.com/arthur-debert/glintfix/pkg/filesystem"
	"github.com/arthur-debert/glintfix/pkg/fixture"
	"github.com/arthur-debert/glintfix/pkg/logging"
)

func newCleanCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "clean [path...]",
		Short: "Remove scratch directories",
		Long: `Remove scratch directories left behind by the scratch fixture, for
example after running with GLINTFIX_KEEP_SCRATCH or after a killed test
binary. Relative paths resolve under the scratch base; paths that end up
outside it are refused. Without paths the whole scratch base is removed.
Directories still in use are skipped.`,
		Example: `  # Remove one test package's scratch directory
  glintfix clean projects-test

  # Remove everything under the scratch base
  glintfix clean`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logging.LogOperationStart(logging.GetLogger("cli.clean"), "clean")()

			cfg, err := config.Get()
			if err != nil {
				return err
			}
			return cleanScratch(cmd, filesystem.NewOS(), cfg, args, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List what would be removed without removing it")
	return cmd
}

func cleanScratch(cmd *cobra.Command, fsys filesystem.FS, cfg *config.Config, paths []string, dryRun bool) error {
	if len(paths) == 0 {
		paths = []string{cfg.ScratchBase}
	}
	dirs := make([]string, 0, len(paths))
	for _, p := range paths {
		dir, err := cfg.ScratchPath(p)
		if err != nil {
			return err
		}
		dirs = append(dirs, dir)
	}
	out := cmd.OutOrStdout()

	for _, dir := range dirs {
		if !filesystem.Exists(fsys, dir) {
			fmt.Fprintf(out, "%s %s\n", styles.Render("Muted", "missing"), dir)
			continue
		}
		if dryRun {
			label := "would remove"
			if empty, err := filesystem.IsEmptyDir(fsys, dir); err == nil && empty {
				label = "would remove (empty)"
			}
			fmt.Fprintf(out, "%s %s\n", styles.Render("Muted", label), dir)
			continue
		}

		inUse, err := fixture.RemoveScratch(fsys, dir)
		if err != nil {
			return err
		}
		if inUse {
			log.Warn().Str("path", dir).Msg("Scratch directory in use")
			fmt.Fprintf(out, "%s %s\n", styles.Render("Warning", "in use"), dir)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", styles.Render("Success", "removed"), dir)
	}
	return nil
}
