package cli

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/glintfix/pkg/config"
)

func newConfigCmd() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective fixture configuration",
		Long: `Show the configuration the fixtures run with: the built-in defaults,
overlaid with the file named by GLINTFIX_CONFIG, overlaid with GLINTFIX_*
environment variables.`,
		Example: `  # Effective configuration
  glintfix config

  # Built-in defaults, ready to copy into a config file
  glintfix config --defaults`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if defaults {
				_, err := fmt.Fprint(out, config.DefaultContent())
				return err
			}

			cfg, err := config.Get()
			if err != nil {
				return err
			}
			data, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to render configuration: %w", err)
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "Print the built-in defaults instead")
	return cmd
}
