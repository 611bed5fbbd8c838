package cli

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/grovetools/storefront/cart"
	"github.com/grovetools/storefront/errors"
	"github.com/grovetools/storefront/favorites"
	"github.com/grovetools/storefront/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config not found", errors.ConfigNotFound("/tmp/x"), "Configuration not found"},
		{"invalid quantity", errors.InvalidQuantity("menu", 5, 0), "Quantity must be at least 1 (got 0)"},
		{"record not found", errors.RecordNotFound("dish", 404), "dish #404 is not in the catalog"},
		{"storage", errors.StorageWrite("cart", stderrors.New("disk full")), "Local storage is unavailable"},
		{"plain", stderrors.New("boom"), "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &ErrorHandler{Out: &buf}
			returned := h.Handle(tt.err)
			assert.Equal(t, tt.err, returned)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestErrorHandlerVerbose(t *testing.T) {
	var buf bytes.Buffer
	h := &ErrorHandler{Verbose: true, Out: &buf}
	h.Handle(errors.RecordNotFound("menu", 9))
	assert.Contains(t, buf.String(), `"code": "RECORD_NOT_FOUND"`)
}

func TestRenderCart(t *testing.T) {
	s := cart.Initial()
	var buf bytes.Buffer
	RenderCart(&buf, s)
	assert.Contains(t, buf.String(), "Your cart is empty")

	s, err := cart.Reduce(s, cart.AddMenu{Menu: testutil.Menu(5, 1000), Quantity: 2})
	require.NoError(t, err)
	s, err = cart.Reduce(s, cart.AddDish{Dish: testutil.Dish(12, "420.50"), Quantity: 1})
	require.NoError(t, err)

	buf.Reset()
	RenderCart(&buf, s)
	out := buf.String()
	assert.Contains(t, out, "Menu 5")
	assert.Contains(t, out, "Dish 12")
	assert.Contains(t, out, "2 000 руб")
	assert.Contains(t, out, "3 items, 2 420,50 руб")
}

func TestRenderFavorites(t *testing.T) {
	at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s, err := favorites.Reduce(favorites.Initial(), favorites.Add{Item: favorites.NewEvent(testutil.Event(3, "Summer wedding"), at)})
	require.NoError(t, err)
	s, err = favorites.Reduce(s, favorites.Add{Item: favorites.NewDish(testutil.Dish(11, "350"), at)})
	require.NoError(t, err)

	var buf bytes.Buffer
	RenderFavorites(&buf, s, "")
	assert.Contains(t, buf.String(), "EVENTS")
	assert.Contains(t, buf.String(), "Summer wedding")
	assert.Contains(t, buf.String(), "DISHES")
	assert.NotContains(t, buf.String(), "DISHS")

	s, err = favorites.Reduce(s, favorites.Add{Item: favorites.NewMenu(testutil.Menu(5, 1000), at)})
	require.NoError(t, err)
	buf.Reset()
	RenderFavorites(&buf, s, favorites.TypeMenu)
	assert.Contains(t, buf.String(), "MENUS")
	assert.NotContains(t, buf.String(), "EVENTS")

	buf.Reset()
	RenderFavorites(&buf, favorites.Initial(), favorites.TypeMenu)
	assert.Contains(t, buf.String(), "No favorites yet")
}

func TestWrapText(t *testing.T) {
	wrapped := wrapText("one two three four five six", 10)
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), 10)
	}
	assert.Equal(t, "short", wrapText("short", 10))
}

func TestParseDescription(t *testing.T) {
	desc, examples := parseDescription("Does things.\n\nExamples:\n  storefront cart show")
	assert.Equal(t, "Does things.", desc)
	assert.Equal(t, "storefront cart show", examples)
}

func TestStyledHelp(t *testing.T) {
	root := NewStandardCommand("storefront", "Manage the cart")
	root.AddCommand(&cobra.Command{Use: "cart", Short: "Cart commands", Run: func(*cobra.Command, []string) {}})

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})
	require.NoError(t, root.Execute())

	out := buf.String()
	assert.Contains(t, out, "STOREFRONT")
	assert.Contains(t, out, "COMMANDS")
	assert.Contains(t, out, "cart")
}

func TestGetOptions(t *testing.T) {
	cmd := NewStandardCommand("storefront", "test")
	require.NoError(t, cmd.ParseFlags([]string{"--json", "-v", "--catalog", "c.yml", "-c", "s.yml"}))

	opts := GetOptions(cmd)
	assert.True(t, opts.JSONOutput)
	assert.True(t, opts.Verbose)
	assert.Equal(t, "c.yml", opts.CatalogFile)
	assert.Equal(t, "s.yml", opts.ConfigFile)
}
