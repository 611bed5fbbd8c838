package cmd

import (
	"github.com/grovetools/storefront/cli"
	"github.com/grovetools/storefront/version"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the storefront command tree.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand(
		"storefront",
		"Manage the local cart and favorites of the catering storefront",
	)
	root.Long = `Manage the local cart and favorites of the catering storefront.

Both lists live in a local storage file and survive between runs. Catalog
records (menus, dishes, events) are read from a snapshot exported from the
content API, given with --catalog or catalog.path in storefront.yml.

Examples:
  # Add two persons of menu 5 and show the cart
  storefront cart add-menu 5 --qty 2 --catalog catalog.yml
  storefront cart show

  # Bookmark an event
  storefront favorites add-event 3 --catalog catalog.yml`

	cli.SetVersionTemplate(root, version.GetInfo())

	root.AddCommand(NewCartCmd())
	root.AddCommand(NewFavoritesCmd())
	root.AddCommand(NewWatchCmd())
	root.AddCommand(NewSchemaCmd())
	root.AddCommand(NewConfigCmd())
	root.AddCommand(NewPathsCmd())
	root.AddCommand(NewResetCmd())
	root.AddCommand(cli.NewVersionCommand("storefront"))

	cli.ApplyStyledHelpRecursive(root)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	cli.InitializeColor()
	root := NewRootCmd()
	cmd, err := root.ExecuteC()
	if err != nil {
		if cmd == nil {
			cmd = root
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		cli.NewErrorHandler(verbose).Handle(err)
		return 1
	}
	return 0
}
