package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/grovetools/storefront/cli"
	"github.com/grovetools/storefront/logging"
	"github.com/grovetools/storefront/state"
	"github.com/grovetools/storefront/storefront"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewWatchCmd creates the `watch` command.
func NewWatchCmd() *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show cart and favorites, refreshing when another process changes them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(a.storage.Path()), 0755); err != nil {
				return fmt.Errorf("failed to create storage directory: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			if !a.opts.JSONOutput && isTerminal(out) {
				// Log lines would tear the redrawn view
				defer logging.SetGlobalOutput(io.Discard)()
			}

			render := func(p *storefront.Provider) {
				if a.opts.JSONOutput {
					_ = cli.WriteJSON(out, map[string]interface{}{
						"cart":      p.Cart().State(),
						"favorites": p.Favorites().State(),
					})
					return
				}
				clearScreen(out)
				cli.RenderCart(out, p.Cart().State())
				fmt.Fprintln(out)
				cli.RenderFavorites(out, p.Favorites().State(), "")
				fmt.Fprintln(out, cli.DefaultTheme.Muted.Render("\nWatching "+a.storage.Path()+" (Ctrl+C to stop)"))
			}

			render(a.provider)

			w, err := state.NewWatcher(a.storage.Path(), debounce, a.logger, func() {
				a.logger.Debug("Storage changed, reloading")
				render(storefront.New(a.storage, storefront.Options{Config: a.cfg}))
			})
			if err != nil {
				return fmt.Errorf("failed to watch storage: %w", err)
			}
			w.Start(ctx)
			return nil
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", 200*time.Millisecond, "Minimum time between refreshes")
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func clearScreen(w io.Writer) {
	if !isTerminal(w) {
		return
	}
	termenv.NewOutput(w.(*os.File)).ClearScreen()
}

