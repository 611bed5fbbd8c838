package cmd

import (
	"fmt"

	"github.com/grovetools/storefront/errors"
	"github.com/spf13/cobra"
)

// NewResetCmd creates the `reset` command.
func NewResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved cart and favorites",
		Long: `Forget the saved cart and favorites.

Both lists are emptied and their keys are removed from the storage file,
so the next run starts as if nothing had ever been saved.

Examples:
  storefront reset --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New(errors.ErrCodeInvalidInput, "refusing to reset without --yes")
			}
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			if err := a.provider.Forget(); err != nil {
				return err
			}
			a.logger.WithField("path", a.storage.Path()).Info("Saved state removed")
			fmt.Fprintf(cmd.OutOrStdout(), "Removed saved cart and favorites from %s\n", a.storage.Path())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm removing the saved state")
	return cmd
}
