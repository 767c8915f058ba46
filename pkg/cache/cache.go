// Package cache provides pluggable byte caches for rendered output.
//
// The HTTP service renders the same tree with the same options repeatedly;
// entries are keyed by a hash of the Newick source and the render options,
// so a cache hit returns a byte-identical response. Backends:
//   - [FileCache]: per-machine cache under a directory, for single instances
//   - [RedisCache]: shared cache for multi-instance deployments
//   - [NullCache]: caching disabled
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is the interface all cache backends implement.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any backend resources.
	Close() error
}

// Key builds a cache key by hashing the parts under a readable prefix.
// The same parts always produce the same key, and the full SHA-256 digest
// keeps collisions out of reach.
func Key(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
