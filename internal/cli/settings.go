package cli

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/glintfix/internal/cli/styles"
	"github.com/arthur-debert/glintfix/pkg/config"
	"github.com/arthur-debert/glintfix/pkg/errors"
)

func newSettingsCmd() *cobra.Command {
	var (
		format string
		keys   bool
	)

	cmd := &cobra.Command{
		Use:   "settings <file> [key...]",
		Short: "Render a settings file as the settings fixture serves it",
		Long: `Load a TOML or YAML settings file and print it back. With keys, print
only those settings, one per line, using the dotted names a test would pass
to GetSetting. Keys the file does not declare print as <nil>.`,
		Example: `  # Convert a TOML settings file to YAML
  glintfix settings testdata/settings.toml --format yaml

  # Look up single settings
  glintfix settings testdata/settings.toml editor.font retries`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(args[0])
			if err != nil {
				return err
			}
			log.Debug().Str("file", args[0]).Int("count", len(settings)).Msg("Settings loaded")
			out := cmd.OutOrStdout()

			if keys {
				for _, name := range settings.Keys() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			if len(args) > 1 {
				for _, key := range args[1:] {
					fmt.Fprintf(out, "%s = %v\n", styles.Render("Key", key), settings.Get(key))
				}
				return nil
			}

			data, err := renderSettings(settings, format)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "Output format (toml|yaml)")
	cmd.Flags().BoolVar(&keys, "keys", false, "List the dotted setting names only")
	return cmd
}

func renderSettings(settings config.Settings, format string) ([]byte, error) {
	nested, err := settings.Nested()
	if err != nil {
		return nil, err
	}
	switch format {
	case "toml":
		return toml.Marshal(nested)
	case "yaml", "yml":
		return yaml.Marshal(nested)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported format %q", format).
			WithDetail("format", format)
	}
}
