package cli

import (
	"fmt"

	"github.com/githubnext/gh-prtitle/pkg/config"
	"github.com/githubnext/gh-prtitle/pkg/constants"
	"github.com/githubnext/gh-prtitle/pkg/prtitle"
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective title validation configuration",
		Long: `Print the configuration validate would use, as YAML. Values missing from the
configuration file are filled in with the built-in defaults, so the output is a
complete starting point for a new ` + constants.DefaultConfigFile + `.

Examples:
  ` + string(constants.CLIExtensionPrefix) + ` config                          # Show the effective configuration
  ` + string(constants.CLIExtensionPrefix) + ` config > .github/pr-title.yml   # Write a starter configuration`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			cfg, err := config.Load(configPath, !cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			if _, err := prtitle.NewValidator(cfg.Validator); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			data, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("failed to render configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringP("config", "c", constants.DefaultConfigFile, "Configuration file")
	return cmd
}
