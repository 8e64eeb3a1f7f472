// Package cache stores layout results and rendered artifacts.
//
// A layout pass is a pure function of the document and the few options that
// change its geometry, so its result can be reused across runs. The pipeline
// caches two levels:
//
//   - Layouts: the [layout.MultiLayout] of a document, as JSON
//   - Artifacts: the rendered output (dump, JSON, SVG, PDF, PNG) of a layout
//
// Backends implement [Cache]: [FileCache] for the CLI, [RedisCache] for a
// shared server deployment and [NullCache] to disable caching. Keys are
// produced by a [Keyer] so that every backend sees the same key space.
//
// [layout.MultiLayout]: github.com/matzehuels/stackbox/pkg/layout.MultiLayout
package cache

import (
	"context"
	"time"
)

// Default time-to-live values for cached entries.
const (
	LayoutTTL   = 7 * 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is reported with ok == false and
	// a nil error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A ttl of zero keeps the entry until deleted.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// NullCache never stores anything. The CLI uses it for --no-cache and when
// no cache directory can be created.
type NullCache struct{}

// NewNullCache returns a cache that always misses.
func NewNullCache() Cache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Close() error { return nil }
