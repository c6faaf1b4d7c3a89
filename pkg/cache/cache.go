// Package cache stores rendered artifacts so repeated exports of the same
// scene skip Graphviz.
//
// Two backends are provided: [FileCache] persists entries for the CLI and
// [MemoryCache] keeps them for the life of a process. Keys come from a [Keyer]; [ScopedKeyer] prefixes
// every key, which the CLI uses to separate builds of different versions.
package cache

import (
	"context"
	"time"

	"github.com/matzehuels/algoviz/pkg/observability"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the cached data and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey returns the key of a rendered scene. sceneHash identifies
	// the scene content, usually the hash of its DOT source.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render settings that change an artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Title  string `json:"title,omitempty"`
}

// DefaultKeyer derives keys from a content hash.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}

// GetOrBuild returns the entry for key, calling build and storing its result
// on a miss. The hit result reports whether build was skipped. Read errors
// are treated as misses; write errors are returned alongside the data.
func GetOrBuild(ctx context.Context, c Cache, key, keyType string, ttl time.Duration, build func() ([]byte, error)) ([]byte, bool, error) {
	hooks := observability.Cache()
	if data, hit, err := c.Get(ctx, key); err == nil && hit {
		hooks.OnCacheHit(ctx, keyType)
		return data, true, nil
	}
	hooks.OnCacheMiss(ctx, keyType)

	data, err := build()
	if err != nil {
		return nil, false, err
	}
	if err := c.Set(ctx, key, data, ttl); err != nil {
		return data, false, err
	}
	hooks.OnCacheSet(ctx, keyType, len(data))
	return data, false, nil
}
