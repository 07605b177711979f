// Package kv abstracts the key-value store the dashboard persists into.
// Two backends exist: a Redis-backed store for setups that already run one,
// and a diskv-backed store writing plain files under the user's data
// directory, which is the default for a single machine.
package kv

import "context"

// Store reads and writes named string blobs.
type Store interface {
	// Get returns the value for key. The second result is false when the
	// key does not exist.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the value for key, overwriting any prior contents.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
