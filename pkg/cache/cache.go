// Package cache stores rendered artifacts, such as SVG diagrams, keyed by a
// hash of their source.
//
// Rendering a diagram through the embedded Graphviz takes orders of
// magnitude longer than building its DOT source, and the source fully
// determines the output, so a server can keep rendered bytes around and
// skip Graphviz for repeated requests. Nothing is written to disk.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored bytes and whether the key was present and
	// not expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero keeps the entry until it is
	// evicted or deleted.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
