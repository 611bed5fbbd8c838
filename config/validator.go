package config

import (
	"fmt"
	"os"

	"github.com/grovetools/storefront/errors"
	"github.com/grovetools/storefront/schema"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// SchemaValidator validates raw configuration documents against the schema
// from GenerateSchema.
type SchemaValidator struct {
	validator *schema.Validator
}

// NewSchemaValidator compiles the configuration schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	data, err := GenerateSchema()
	if err != nil {
		return nil, err
	}
	validator, err := schema.NewValidator("storefront-config.json", data)
	if err != nil {
		return nil, err
	}
	return &SchemaValidator{validator: validator}, nil
}

// Validate validates decoded configuration data.
func (v *SchemaValidator) Validate(configData interface{}) error {
	if err := v.validator.Validate(configData); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "configuration does not match schema")
	}
	return nil
}

// ValidateFile reads a YAML or TOML config file and validates it.
func (v *SchemaValidator) ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.ConfigNotFound(path)
		}
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, fmt.Sprintf("failed to read %s", path))
	}

	doc, err := decodeRaw([]byte(expandEnvVars(string(data))), FormatFromPath(path))
	if err != nil {
		return err
	}
	return v.Validate(doc)
}

// decodeRaw decodes a config document to plain maps for schema validation.
func decodeRaw(data []byte, format Format) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if format == FormatTOML {
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML config")
		}
	} else if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config")
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	return doc, nil
}
