package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *StorefrontError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *StorefrontError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// InvalidQuantity is returned when an add operation receives a quantity below one.
func InvalidQuantity(kind string, id int, quantity int) *StorefrontError {
	return New(ErrCodeInvalidQuantity,
		fmt.Sprintf("quantity must be positive, got %d for %s #%d", quantity, kind, id)).
		WithDetail("kind", kind).
		WithDetail("id", id).
		WithDetail("quantity", quantity)
}

// NotInitialized signals a store that was used before it was constructed.
func NotInitialized(store string) *StorefrontError {
	return New(ErrCodeNotInitialized,
		fmt.Sprintf("%s store used before it was initialized; construct it with storefront.New", store)).
		WithDetail("store", store)
}

// RecordNotFound creates a catalog lookup error
func RecordNotFound(kind string, id int) *StorefrontError {
	return New(ErrCodeRecordNotFound, fmt.Sprintf("%s #%d not found in catalog", kind, id)).
		WithDetail("kind", kind).
		WithDetail("id", id)
}

// StorageRead wraps a failure to read a persisted key
func StorageRead(key string, err error) *StorefrontError {
	return Wrap(err, ErrCodeStorageRead, fmt.Sprintf("failed to read key '%s'", key)).
		WithDetail("key", key)
}

// StorageWrite wraps a failure to persist a key
func StorageWrite(key string, err error) *StorefrontError {
	return Wrap(err, ErrCodeStorageWrite, fmt.Sprintf("failed to write key '%s'", key)).
		WithDetail("key", key)
}

// CorruptState wraps a persisted value that could not be decoded or validated
func CorruptState(key string, err error) *StorefrontError {
	return Wrap(err, ErrCodeCorruptState, fmt.Sprintf("saved data under '%s' is unusable", key)).
		WithDetail("key", key)
}
