package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

const (
	DefaultCartKey      = "cart"
	DefaultFavoritesKey = "favorites"
)

// StorageConfig locates the local key/value area the stores persist into.
type StorageConfig struct {
	// Path of the storage file. Defaults to <state dir>/storage.yml.
	Path         string `yaml:"path,omitempty" toml:"path,omitempty" json:"path,omitempty"`
	CartKey      string `yaml:"cart_key,omitempty" toml:"cart_key,omitempty" json:"cart_key,omitempty"`
	FavoritesKey string `yaml:"favorites_key,omitempty" toml:"favorites_key,omitempty" json:"favorites_key,omitempty"`
}

// CatalogConfig points at a catalog snapshot exported from the content API.
type CatalogConfig struct {
	Path string `yaml:"path,omitempty" toml:"path,omitempty" json:"path,omitempty"`
}

// Config is the parsed storefront.yml.
type Config struct {
	Name    string        `yaml:"name,omitempty" json:"name,omitempty"`
	Version string        `yaml:"version" json:"version"`
	Storage StorageConfig `yaml:"storage,omitempty" json:"storage"`
	Catalog CatalogConfig `yaml:"catalog,omitempty" json:"catalog"`

	// Extensions captures all other top-level keys (e.g. logging).
	Extensions map[string]interface{} `yaml:",inline" json:"extensions,omitempty"`
}

// Default returns a configuration with only default values applied.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Storage.Path == "" {
		c.Storage.Path = defaultStoragePath()
	}
	if c.Storage.CartKey == "" {
		c.Storage.CartKey = DefaultCartKey
	}
	if c.Storage.FavoritesKey == "" {
		c.Storage.FavoritesKey = DefaultFavoritesKey
	}
}

// UnmarshalExtension decodes a specific extension's configuration into the
// provided target struct. The target must be a pointer. A missing key is not
// an error; the target is left zero-valued.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
