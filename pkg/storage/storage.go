package storage

import (
	"context"
	"errors"
)

// Common storage errors
var (
	ErrKeyNotFound = errors.New("key not found")
)

// Store defines the persistent key-value contract used by the wallet
// ledger, settings and auth session state.
type Store interface {
	// Get returns the value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set writes the value for key, creating it if needed.
	Set(ctx context.Context, key string, value string) error

	// Remove deletes the key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases any underlying resources.
	Close() error
}
