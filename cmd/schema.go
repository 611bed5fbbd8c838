package cmd

import (
	"fmt"

	"github.com/grovetools/storefront/cart"
	"github.com/grovetools/storefront/config"
	"github.com/grovetools/storefront/errors"
	"github.com/grovetools/storefront/favorites"
	"github.com/grovetools/storefront/schema"
	"github.com/spf13/cobra"
)

// NewSchemaCmd creates the `schema` command.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema [cart|favorites|config]",
		Short:     "Print the JSON Schema of the saved cart, saved favorites or storefront.yml",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"cart", "favorites", "config"},
		RunE: func(cmd *cobra.Command, args []string) error {
			which := "cart"
			if len(args) == 1 {
				which = args[0]
			}

			var (
				data []byte
				err  error
			)
			switch which {
			case "cart":
				data, err = schema.Generate([]cart.LineItem{}, "cart")
			case "favorites":
				data, err = schema.Generate([]favorites.FavoriteItem{}, "favorites")
			case "config":
				data, err = config.GenerateSchema()
			default:
				return errors.New(errors.ErrCodeInvalidInput,
					fmt.Sprintf("unknown schema %q (want cart, favorites or config)", which))
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
