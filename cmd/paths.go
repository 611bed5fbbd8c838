package cmd

import (
	"fmt"

	"github.com/grovetools/storefront/cli"
	"github.com/grovetools/storefront/pkg/paths"
	"github.com/spf13/cobra"
)

// PathsOutput lists the directories and files storefront uses.
type PathsOutput struct {
	ConfigDir   string `json:"config_dir"`
	StateDir    string `json:"state_dir"`
	LogDir      string `json:"log_dir"`
	StorageFile string `json:"storage_file"`
}

func NewPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the directories and files storefront uses",
		Long: `Print the directories and files storefront uses.

STOREFRONT_HOME moves everything under one directory; otherwise the XDG
base directories are used:
- config_dir: global storefront.yml
- state_dir: storage file and logs
- storage_file: default location of the saved cart and favorites`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := PathsOutput{
				ConfigDir:   paths.ConfigDir(),
				StateDir:    paths.StateDir(),
				LogDir:      paths.LogDir(),
				StorageFile: paths.StorageFile(),
			}

			a, err := newApp(cmd)
			if err == nil {
				output.StorageFile = a.storage.Path()
			}

			if cli.GetOptions(cmd).JSONOutput {
				return cli.WriteJSON(cmd.OutOrStdout(), output)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config_dir:    %s\n", output.ConfigDir)
			fmt.Fprintf(out, "state_dir:     %s\n", output.StateDir)
			fmt.Fprintf(out, "log_dir:       %s\n", output.LogDir)
			fmt.Fprintf(out, "storage_file:  %s\n", output.StorageFile)
			return nil
		},
	}
}
