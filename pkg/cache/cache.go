// Package cache provides response caching for the generation pipeline.
//
// The cached unit is the text-generation collaborator's raw response,
// keyed by model and description. Validated plans and rendered images are
// never cached: a plan lives for exactly one render call.
//
// Backends: a null cache (caching disabled), a file cache for CLI usage,
// and redis/mongo caches for server deployments.
package cache

import (
	"context"
	"time"
)

// TTL values for cached entries.
const (
	// TTLGeneration is how long a generation response stays valid.
	// Identical descriptions within this window reuse the model's
	// previous answer instead of paying for a new call.
	TTLGeneration = 24 * time.Hour
)

// Cache stores opaque byte values under string keys with a TTL.
// Implementations must treat expired or missing entries as a miss, never
// as an error.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys. Implementations must be deterministic:
// equal inputs always produce equal keys.
type Keyer interface {
	// GenerationKey keys a text-generation response by model and
	// description.
	GenerationKey(model, description string) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GenerationKey generates a key for a generation response.
func (k *DefaultKeyer) GenerationKey(model, description string) string {
	return hashKey("gen", model, description)
}
