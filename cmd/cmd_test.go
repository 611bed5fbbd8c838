package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/storefront/cart"
	"github.com/grovetools/storefront/errors"
	"github.com/grovetools/storefront/favorites"
	"github.com/grovetools/storefront/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogYAML = `
menus:
  - id: 5
    name: Banquet
    pricePerPerson: 1000
    currency: руб
dishes:
  - id: 12
    name: Salmon tartare
    price: "420.50"
events:
  - id: 3
    title: Summer wedding
`

type env struct {
	dir     string
	config  string
	catalog string
}

func setupEnv(t *testing.T) env {
	t.Helper()
	testutil.IsolateHome(t)
	dir := t.TempDir()
	catalogPath := testutil.WriteFile(t, dir, "catalog.yml", catalogYAML)
	configPath := testutil.WriteFile(t, dir, "storefront.yml", `
version: "1.0"
storage:
  path: ./state/storage.yml
catalog:
  path: ./catalog.yml
`)
	return env{dir: dir, config: configPath, catalog: catalogPath}
}

func run(t *testing.T, e env, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", e.config}, args...))
	err := root.Execute()
	return out.String(), err
}

func runJSON(t *testing.T, e env, target interface{}, args ...string) {
	t.Helper()
	out, err := run(t, e, append(args, "--json")...)
	require.NoError(t, err, out)
	require.NoError(t, json.Unmarshal([]byte(out), target), out)
}

func TestCartCommands(t *testing.T) {
	e := setupEnv(t)

	var s cart.State
	runJSON(t, e, &s, "cart", "add-menu", "5", "--qty", "2")
	assert.Equal(t, 2, s.TotalItems)
	assert.Equal(t, "2000", s.TotalAmount.String())

	runJSON(t, e, &s, "cart", "add-dish", "12")
	assert.Equal(t, 3, s.TotalItems)
	assert.Equal(t, "2420.5", s.TotalAmount.String())

	// State persisted between invocations
	runJSON(t, e, &s, "cart", "show")
	assert.Len(t, s.Items, 2)

	runJSON(t, e, &s, "cart", "set-qty", "menu", "5", "1")
	assert.Equal(t, 2, s.TotalItems)

	runJSON(t, e, &s, "cart", "set-qty", "dish", "12", "0")
	assert.Equal(t, 1, s.TotalItems)

	runJSON(t, e, &s, "cart", "remove", "menu", "5")
	assert.Empty(t, s.Items)

	assert.FileExists(t, filepath.Join(e.dir, "state", "storage.yml"))
}

func TestResetCommand(t *testing.T) {
	e := setupEnv(t)

	var s cart.State
	runJSON(t, e, &s, "cart", "add-menu", "5")
	_, err := run(t, e, "favorites", "add-event", "3")
	require.NoError(t, err)

	_, err = run(t, e, "reset")
	require.Error(t, err, "reset needs --yes")

	out, err := run(t, e, "reset", "--yes")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Removed saved cart and favorites")

	data, err := os.ReadFile(filepath.Join(e.dir, "state", "storage.yml"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "cart")
	assert.NotContains(t, string(data), "favorites")

	runJSON(t, e, &s, "cart", "show")
	assert.Empty(t, s.Items)
}

func TestCartRejectsBadInput(t *testing.T) {
	e := setupEnv(t)

	_, err := run(t, e, "cart", "add-menu", "5", "--qty", "0")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidQuantity))

	_, err = run(t, e, "cart", "add-menu", "404")
	assert.True(t, errors.Is(err, errors.ErrCodeRecordNotFound))

	_, err = run(t, e, "cart", "remove", "event", "3")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = run(t, e, "cart", "set-qty", "dish", "12", "many")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestCartShowRendersTable(t *testing.T) {
	e := setupEnv(t)
	_, err := run(t, e, "cart", "add-menu", "5", "--qty", "2")
	require.NoError(t, err)

	out, err := run(t, e, "cart", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Banquet")
	assert.Contains(t, out, "2 items, 2 000 руб")
}

func TestFavoritesCommands(t *testing.T) {
	e := setupEnv(t)

	var s favorites.State
	runJSON(t, e, &s, "favorites", "add-event", "3")
	runJSON(t, e, &s, "favorites", "add-event", "3")
	assert.Equal(t, 1, s.TotalItems)

	runJSON(t, e, &s, "favorites", "add-dish", "12")
	assert.Equal(t, 2, s.TotalItems)

	var dishes []favorites.FavoriteItem
	runJSON(t, e, &dishes, "favorites", "list", "--type", "dish")
	require.Len(t, dishes, 1)
	assert.Equal(t, 12, dishes[0].ID)

	var check map[string]interface{}
	runJSON(t, e, &check, "favorites", "check", "event", "3")
	assert.Equal(t, true, check["favorite"])

	runJSON(t, e, &s, "favorites", "add-menu", "5", "--toggle")
	assert.Equal(t, 3, s.TotalItems)
	runJSON(t, e, &s, "favorites", "add-menu", "5", "--toggle")
	assert.Equal(t, 2, s.TotalItems)

	runJSON(t, e, &s, "favorites", "remove", "event", "3")
	assert.Equal(t, 1, s.TotalItems)

	runJSON(t, e, &s, "favorites", "clear")
	assert.Equal(t, 0, s.TotalItems)
}

func TestCorruptStorageStartsEmpty(t *testing.T) {
	e := setupEnv(t)
	testutil.WriteFile(t, e.dir, "state/storage.yml", "cart: '{broken'\nfavorites: '[]'\n")

	var s cart.State
	runJSON(t, e, &s, "cart", "show")
	assert.Empty(t, s.Items)
}

func TestSchemaCommand(t *testing.T) {
	e := setupEnv(t)

	for _, which := range []string{"cart", "favorites", "config"} {
		out, err := run(t, e, "schema", which)
		require.NoError(t, err)
		var doc map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &doc), which)
	}

	_, err := run(t, e, "schema", "orders")
	assert.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	e := setupEnv(t)

	var cfg map[string]interface{}
	runJSON(t, e, &cfg, "config")
	storage := cfg["storage"].(map[string]interface{})
	assert.Equal(t, filepath.Join(e.dir, "state", "storage.yml"), storage["path"])
	assert.Equal(t, "cart", storage["cart_key"])

	out, err := run(t, e, "config", "validate", e.config)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestVersionCommand(t *testing.T) {
	e := setupEnv(t)
	out, err := run(t, e, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "storefront dev")
}
