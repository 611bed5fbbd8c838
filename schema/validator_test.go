package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priced struct {
	ID    int             `json:"id"`
	Label string          `json:"label,omitempty"`
	Price decimal.Decimal `json:"price"`
	At    time.Time       `json:"at"`
}

func TestGenerateMarksRequiredFields(t *testing.T) {
	data, err := Generate([]priced{}, "priced")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "priced", doc["title"])
	assert.Equal(t, "array", doc["type"])

	defs := doc["$defs"].(map[string]interface{})
	item := defs["priced"].(map[string]interface{})
	assert.ElementsMatch(t, []interface{}{"id", "price", "at"}, item["required"])
}

func TestValidatorAcceptsAndRejects(t *testing.T) {
	v, err := For([]priced{}, "priced")
	require.NoError(t, err)

	require.NoError(t, v.ValidateJSON([]byte(`[]`)))
	require.NoError(t, v.ValidateJSON([]byte(`[{"id":1,"price":1000,"at":"2026-01-02T10:00:00Z"}]`)))
	require.NoError(t, v.ValidateJSON([]byte(`[{"id":1,"price":"10.50","at":"2026-01-02T10:00:00Z","extra":true}]`)))

	err = v.ValidateJSON([]byte(`[{"id":1,"at":"2026-01-02T10:00:00Z"}]`))
	assert.Error(t, err, "missing price must fail")

	err = v.ValidateJSON([]byte(`[{"id":"one","price":1,"at":"2026-01-02T10:00:00Z"}]`))
	assert.Error(t, err, "string id must fail")

	err = v.ValidateJSON([]byte(`[{"id":1.5,"price":1,"at":"2026-01-02T10:00:00Z"}]`))
	assert.Error(t, err, "fractional id must fail")

	require.NoError(t, v.ValidateJSON([]byte(`[{"id":9007199254740993,"price":12345678901234567890.01,"at":"2026-01-02T10:00:00Z"}]`)))

	err = v.ValidateJSON([]byte(`{"id":1}`))
	assert.Error(t, err, "object instead of array must fail")

	err = v.ValidateJSON([]byte(`[{`))
	assert.Error(t, err)
}

func TestValidateValue(t *testing.T) {
	v, err := For([]priced{}, "priced")
	require.NoError(t, err)

	items := []priced{{ID: 1, Price: decimal.NewFromInt(5), At: time.Now()}}
	assert.NoError(t, v.Validate(items))
}
