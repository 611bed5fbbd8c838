package cmd

import (
	"fmt"
	"strconv"

	"github.com/grovetools/storefront/cart"
	"github.com/grovetools/storefront/cli"
	"github.com/grovetools/storefront/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewCartCmd creates the `cart` command group.
func NewCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and change the shopping cart",
		Long: `Show and change the shopping cart.

Adding the same menu or dish again increases its quantity. Setting a
quantity to 0 removes the line. Totals are always computed from the lines.

Examples:
  storefront cart show
  storefront cart add-dish 12 --qty 3 --catalog catalog.yml
  storefront cart set-qty dish 12 1
  storefront cart remove menu 5`,
	}

	cmd.AddCommand(newCartShowCmd())
	cmd.AddCommand(newCartAddCmd(cart.KindMenu))
	cmd.AddCommand(newCartAddCmd(cart.KindDish))
	cmd.AddCommand(newCartRemoveCmd())
	cmd.AddCommand(newCartSetQtyCmd())
	cmd.AddCommand(newCartSimpleCmd("clear", "Remove every line from the cart", (*cart.Store).Clear))
	cmd.AddCommand(newCartSimpleCmd("toggle", "Flip the cart drawer open or closed", (*cart.Store).ToggleOpen))
	cmd.AddCommand(newCartSimpleCmd("close", "Close the cart drawer", (*cart.Store).Close))

	return cmd
}

func printCart(cmd *cobra.Command, a *app, s cart.State) error {
	if a.opts.JSONOutput {
		return cli.WriteJSON(cmd.OutOrStdout(), s)
	}
	cli.RenderCart(cmd.OutOrStdout(), s)
	return nil
}

func newCartShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show cart lines and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return printCart(cmd, a, a.provider.Cart().State())
		},
	}
}

func newCartAddCmd(kind cart.Kind) *cobra.Command {
	var qty int
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("add-%s <id>", kind),
		Short: fmt.Sprintf("Add a %s from the catalog to the cart", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			cat, err := a.catalog()
			if err != nil {
				return err
			}

			store := a.provider.Cart()
			switch kind {
			case cart.KindMenu:
				menu, err := cat.Menu(id)
				if err != nil {
					return err
				}
				err = store.AddMenu(menu, qty)
				if err != nil {
					return err
				}
			case cart.KindDish:
				dish, err := cat.Dish(id)
				if err != nil {
					return err
				}
				err = store.AddDish(dish, qty)
				if err != nil {
					return err
				}
			}

			a.logger.WithFields(logrus.Fields{"kind": kind, "id": id, "qty": qty}).Info("Added to cart")
			return printCart(cmd, a, store.State())
		},
	}
	unit := "portions"
	if kind == cart.KindMenu {
		unit = "persons"
	}
	cmd.Flags().IntVarP(&qty, "qty", "q", 1, "Number of "+unit)
	return cmd
}

func newCartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <menu|dish> <id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := parseLine(args[0], args[1])
			if err != nil {
				return err
			}
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			store := a.provider.Cart()
			store.RemoveItem(id, kind)
			return printCart(cmd, a, store.State())
		},
	}
}

func newCartSetQtyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-qty <menu|dish> <id> <qty>",
		Short: "Set the quantity of a line (0 removes it)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := parseLine(args[0], args[1])
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[2])
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInvalidInput, fmt.Sprintf("invalid quantity %q", args[2]))
			}
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			store := a.provider.Cart()
			store.UpdateQuantity(id, kind, qty)
			return printCart(cmd, a, store.State())
		},
	}
}

func newCartSimpleCmd(use, short string, op func(*cart.Store)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			store := a.provider.Cart()
			op(store)
			return printCart(cmd, a, store.State())
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("invalid id %q", s))
	}
	return id, nil
}

func parseLine(kindArg, idArg string) (cart.Kind, int, error) {
	kind, err := cart.ParseKind(kindArg)
	if err != nil {
		return "", 0, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid product kind")
	}
	id, err := parseID(idArg)
	if err != nil {
		return "", 0, err
	}
	return kind, id, nil
}
