package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/storefront/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlCatalog = `
menus:
  - id: 5
    name: Banquet
    pricePerPerson: 1000
    currency: руб
    dishes:
      - id: 11
        name: Pelmeni
        price: 350.50
dishes:
  - id: 7
    name: Borscht
    price: "420"
events:
  - id: 3
    title: Wedding on the river
`

func TestParseYAML(t *testing.T) {
	cat, err := Parse([]byte(yamlCatalog), "yaml")
	require.NoError(t, err)

	menu, err := cat.Menu(5)
	require.NoError(t, err)
	assert.Equal(t, "Banquet", menu.Name)
	assert.True(t, menu.PricePerPerson.Equal(decimal.NewFromInt(1000)))

	dish, err := cat.Dish(7)
	require.NoError(t, err)
	assert.True(t, dish.Price.Equal(decimal.NewFromInt(420)), "quoted prices decode too")

	nested, err := cat.Dish(11)
	require.NoError(t, err)
	assert.True(t, nested.Price.Equal(decimal.RequireFromString("350.5")))

	event, err := cat.Event(3)
	require.NoError(t, err)
	assert.Equal(t, "Wedding on the river", event.Title)
}

func TestLookupMisses(t *testing.T) {
	cat := &Catalog{}

	_, err := cat.Menu(1)
	assert.True(t, errors.Is(err, errors.ErrCodeRecordNotFound))
	_, err = cat.Dish(1)
	assert.True(t, errors.Is(err, errors.ErrCodeRecordNotFound))
	_, err = cat.Event(1)
	assert.True(t, errors.Is(err, errors.ErrCodeRecordNotFound))
}

func TestLoadFileFormats(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"dishes":[{"id":1,"price":99.9}]}`), 0644))
	cat, err := LoadFile(jsonPath)
	require.NoError(t, err)
	require.Len(t, cat.Dishes, 1)

	tomlPath := filepath.Join(dir, "catalog.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[[menus]]\nid = 2\npricePerPerson = 1500\n"), 0644))
	cat, err = LoadFile(tomlPath)
	require.NoError(t, err)
	menu, err := cat.Menu(2)
	require.NoError(t, err)
	assert.True(t, menu.PricePerPerson.Equal(decimal.NewFromInt(1500)))

	_, err = LoadFile(filepath.Join(dir, "missing.yml"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = Parse([]byte("x"), "xml")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount   decimal.Decimal
		currency string
		want     string
	}{
		{decimal.NewFromInt(0), "руб", "0 руб"},
		{decimal.NewFromInt(1000), "руб", "1 000 руб"},
		{decimal.NewFromInt(1234567), "EUR", "1 234 567 EUR"},
		{decimal.RequireFromString("1000.5"), "", "1 000,50 руб"},
		{decimal.NewFromInt(-2500), "руб", "-2 500 руб"},
		{decimal.RequireFromString("12.999"), "руб", "13 руб"},
		{decimal.RequireFromString("999.995"), "руб", "1 000 руб"},
		{decimal.RequireFromString("12.345"), "руб", "12,35 руб"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.amount, tt.currency))
	}
}
