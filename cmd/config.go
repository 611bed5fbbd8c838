package cmd

import (
	"fmt"
	"os"

	"github.com/grovetools/storefront/cli"
	"github.com/grovetools/storefront/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCmd creates the `config` command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Display the effective configuration",
		Long: `Shows the configuration after merging layers:
1. Global config (<config dir>/storefront.yml)
2. Project config (storefront.yml found from the working directory upward)
Defaults fill anything neither layer sets.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd)
			cfg, path, err := loadConfig(cmd, logger)
			if err != nil {
				return err
			}

			if cli.GetOptions(cmd).JSONOutput {
				return cli.WriteJSON(cmd.OutOrStdout(), cfg)
			}

			out := cmd.OutOrStdout()
			if path != "" {
				fmt.Fprintf(out, "# Source: %s\n", path)
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Fprint(out, string(data))
			return nil
		},
	}

	cmd.AddCommand(newConfigValidateCmd())
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a storefront config file against its schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				found, err := cli.InitConfig(cli.GetOptions(cmd).ConfigFile)
				if err != nil {
					return err
				}
				path = found
			}
			if path == "" {
				cwd, _ := os.Getwd()
				_, err := config.FindConfigFile(cwd)
				return err
			}

			v, err := config.NewSchemaValidator()
			if err != nil {
				return err
			}
			if err := v.ValidateFile(path); err != nil {
				return err
			}
			if _, err := config.Load(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is valid\n", cli.DefaultTheme.Success.Render("*"), path)
			return nil
		},
	}
}
