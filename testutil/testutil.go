package testutil

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/grovetools/storefront/catalog"
	"github.com/grovetools/storefront/errors"
	"github.com/grovetools/storefront/state"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Menu returns a menu priced per person in roubles.
func Menu(id int, pricePerPerson int64) catalog.Menu {
	return catalog.Menu{
		ID:             id,
		Name:           "Menu " + strconv.Itoa(id),
		PricePerPerson: decimal.NewFromInt(pricePerPerson),
		Currency:       catalog.DefaultCurrency,
	}
}

// Dish returns a dish with a decimal price string such as "450.50".
func Dish(id int, price string) catalog.Dish {
	return catalog.Dish{
		ID:       id,
		Name:     "Dish " + strconv.Itoa(id),
		Price:    decimal.RequireFromString(price),
		Currency: catalog.DefaultCurrency,
	}
}

// Event returns an event page with the given title.
func Event(id int, title string) catalog.EventPage {
	return catalog.EventPage{ID: id, Title: title}
}

// SampleCatalog returns a small catalog with two menus, three dishes and an event.
func SampleCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Menus:  []catalog.Menu{Menu(5, 1000), Menu(6, 2500)},
		Dishes: []catalog.Dish{Dish(11, "350"), Dish(12, "420.50"), Dish(13, "90")},
		Events: []catalog.EventPage{Event(3, "Summer wedding")},
	}
}

// IsolateHome points STOREFRONT_HOME at a temp dir so tests never touch the
// real config or state directories.
func IsolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("STOREFRONT_HOME", home)
	t.Setenv("STOREFRONT_LOG_LEVEL", "error")
	return home
}

// TempStorage returns a FileStore backed by a file in a temp dir.
func TempStorage(t *testing.T) *state.FileStore {
	t.Helper()
	return state.NewFileStore(filepath.Join(t.TempDir(), "storage.yml"))
}

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// DiscardLogger returns a logger whose output goes nowhere.
func DiscardLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)
	return logrus.NewEntry(logger)
}

// AssertPanicsWithCode runs fn and checks that it panics with an error
// carrying code.
func AssertPanicsWithCode(t *testing.T, code errors.ErrorCode, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic with %s", code)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, code), "expected %s, got %v", code, err)
	}()
	fn()
}
