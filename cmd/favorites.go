package cmd

import (
	"fmt"

	"github.com/grovetools/storefront/catalog"
	"github.com/grovetools/storefront/cli"
	"github.com/grovetools/storefront/errors"
	"github.com/grovetools/storefront/favorites"
	"github.com/spf13/cobra"
)

// NewFavoritesCmd creates the `favorites` command group.
func NewFavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Bookmark events, dishes and menus",
		Long: `Bookmark events, dishes and menus.

Each record can be bookmarked once; adding it again changes nothing.

Examples:
  storefront favorites add-event 3 --catalog catalog.yml
  storefront favorites list --type dish
  storefront favorites check menu 5`,
	}

	cmd.AddCommand(newFavoritesListCmd())
	for _, t := range favorites.Types {
		cmd.AddCommand(newFavoritesAddCmd(t))
	}
	cmd.AddCommand(newFavoritesRemoveCmd())
	cmd.AddCommand(newFavoritesCheckCmd())
	cmd.AddCommand(newFavoritesClearCmd())

	return cmd
}

func printFavorites(cmd *cobra.Command, a *app, s favorites.State, filter favorites.Type) error {
	if a.opts.JSONOutput {
		if filter != "" {
			return cli.WriteJSON(cmd.OutOrStdout(), s.GetByType(filter))
		}
		return cli.WriteJSON(cmd.OutOrStdout(), s)
	}
	cli.RenderFavorites(cmd.OutOrStdout(), s, filter)
	return nil
}

func newFavoritesListCmd() *cobra.Command {
	var typeFlag string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookmarks, optionally of one type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter favorites.Type
			if typeFlag != "" {
				t, err := parseType(typeFlag)
				if err != nil {
					return err
				}
				filter = t
			}
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return printFavorites(cmd, a, a.provider.Favorites().State(), filter)
		},
	}
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "Only show one type: event, dish, menu")
	return cmd
}

func newFavoritesAddCmd(t favorites.Type) *cobra.Command {
	var toggle bool
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("add-%s <id>", t),
		Short: fmt.Sprintf("Bookmark a %s from the catalog", t),
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
			if err := addFavorite(a.provider.Favorites(), cat, t, id, toggle); err != nil {
				return err
			}
			return printFavorites(cmd, a, a.provider.Favorites().State(), "")
		},
	}
	cmd.Flags().BoolVar(&toggle, "toggle", false, "Remove the bookmark if it already exists")
	return cmd
}

func addFavorite(store *favorites.Store, cat *catalog.Catalog, t favorites.Type, id int, toggle bool) error {
	switch t {
	case favorites.TypeEvent:
		e, err := cat.Event(id)
		if err != nil {
			return err
		}
		if toggle {
			store.ToggleEvent(e)
		} else {
			store.AddEvent(e)
		}
	case favorites.TypeDish:
		d, err := cat.Dish(id)
		if err != nil {
			return err
		}
		if toggle {
			store.ToggleDish(d)
		} else {
			store.AddDish(d)
		}
	case favorites.TypeMenu:
		m, err := cat.Menu(id)
		if err != nil {
			return err
		}
		if toggle {
			store.ToggleMenu(m)
		} else {
			store.AddMenu(m)
		}
	}
	return nil
}

func newFavoritesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <event|dish|menu> <id>",
		Short: "Remove a bookmark",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, id, err := parseFavorite(args[0], args[1])
			if err != nil {
				return err
			}
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			store := a.provider.Favorites()
			store.RemoveFavorite(id, t)
			return printFavorites(cmd, a, store.State(), "")
		},
	}
}

func newFavoritesCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <event|dish|menu> <id>",
		Short: "Report whether a record is bookmarked",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, id, err := parseFavorite(args[0], args[1])
			if err != nil {
				return err
			}
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			ok := a.provider.Favorites().IsFavorite(id, t)
			if a.opts.JSONOutput {
				return cli.WriteJSON(cmd.OutOrStdout(), map[string]interface{}{
					"id": id, "type": t, "favorite": ok,
				})
			}
			th := cli.DefaultTheme
			if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s #%d is a favorite\n", th.Success.Render("*"), t, id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s #%d is not a favorite\n", th.Muted.Render("-"), t, id)
			}
			return nil
		},
	}
}

func newFavoritesClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every bookmark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			store := a.provider.Favorites()
			store.Clear()
			return printFavorites(cmd, a, store.State(), "")
		},
	}
}

func parseType(s string) (favorites.Type, error) {
	t, err := favorites.ParseType(s)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid favorite type")
	}
	return t, nil
}

func parseFavorite(typeArg, idArg string) (favorites.Type, int, error) {
	t, err := parseType(typeArg)
	if err != nil {
		return "", 0, err
	}
	id, err := parseID(idArg)
	if err != nil {
		return "", 0, err
	}
	return t, id, nil
}
