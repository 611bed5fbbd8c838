package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for the typed part of
// storefront.yml. Extension sections such as logging are not described and
// are accepted as-is.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	type BaseConfig struct {
		Name    string        `yaml:"name,omitempty" jsonschema:"description=Name of the storefront profile"`
		Version string        `yaml:"version,omitempty" jsonschema:"description=Configuration version (e.g. '1.0')"`
		Storage StorageConfig `yaml:"storage,omitempty" jsonschema:"description=Local storage for cart and favorites"`
		Catalog CatalogConfig `yaml:"catalog,omitempty" jsonschema:"description=Catalog snapshot exported from the content API"`
	}

	schema := r.Reflect(&BaseConfig{})
	schema.Title = "Storefront Configuration"
	schema.Description = "Schema for storefront.yml."
	schema.Version = "https://json-schema.org/draft/2020-12/schema"

	return json.MarshalIndent(schema, "", "  ")
}
