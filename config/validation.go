package config

import (
	"strings"

	"github.com/grovetools/storefront/errors"
)

// Validate checks that the storage settings can address two distinct keys.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Storage.CartKey) == "" {
		return errors.ConfigInvalid("storage.cart_key must not be empty")
	}
	if strings.TrimSpace(c.Storage.FavoritesKey) == "" {
		return errors.ConfigInvalid("storage.favorites_key must not be empty")
	}
	if c.Storage.CartKey == c.Storage.FavoritesKey {
		return errors.ConfigInvalid("storage.cart_key and storage.favorites_key must differ").
			WithDetail("key", c.Storage.CartKey)
	}
	return nil
}
