package schema

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/shopspring/decimal"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// Generate reflects a JSON Schema for the persisted form of v.
// Fields without omitempty are required, so records missing them fail validation.
// Unknown properties are allowed; newer content API fields must not invalidate saved data.
func Generate(v interface{}, title string) ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		Anonymous:                 true,
		Mapper:                    mapType,
	}

	s := r.Reflect(v)
	s.Title = title
	s.Version = "https://json-schema.org/draft/2020-12/schema"

	return json.MarshalIndent(s, "", "  ")
}

// mapType describes decimals as the number-or-string they marshal to.
func mapType(t reflect.Type) *jsonschema.Schema {
	if t == decimalType {
		return &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{
				{Type: "number"},
				{Type: "string", Pattern: `^-?[0-9]+(\.[0-9]+)?$`},
			},
		}
	}
	return nil
}
