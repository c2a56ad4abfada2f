// Package cache provides pluggable byte caches for expensive pipeline
// stages: parsed feature sets, assembled figure documents, and rendered
// artifacts. Backends include a file cache for CLI usage, a Redis cache
// for the server, and a null cache that disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented cache with optional expiry. Implementations
// must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// FeatureKeyOpts distinguishes feature-set cache entries parsed from the
// same source with different filters.
type FeatureKeyOpts struct {
	SeqID string
	Kinds []string
}

// FigureKeyOpts distinguishes figure documents assembled from the same
// feature set with different display settings.
type FigureKeyOpts struct {
	Width       int
	Height      int
	LeftTrack   bool
	BottomTrack bool
}

// ArtifactKeyOpts distinguishes rendered outputs of the same figure
// document.
type ArtifactKeyOpts struct {
	Format string // "json", "html", "svg", "png"
}

// Keyer generates cache keys for the pipeline stages. Keys embed a hash
// of the options so that any change in settings produces a distinct key.
type Keyer interface {
	// FeatureKey keys a parsed feature set by its source content hash.
	FeatureKey(sourceHash string, opts FeatureKeyOpts) string

	// FigureKey keys an assembled figure document by its feature hash.
	FigureKey(featureHash string, opts FigureKeyOpts) string

	// ArtifactKey keys a rendered artifact by its figure hash.
	ArtifactKey(figureHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard [Keyer] implementation.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// FeatureKey generates a key for feature-set caching.
func (k *DefaultKeyer) FeatureKey(sourceHash string, opts FeatureKeyOpts) string {
	return hashKey("feature", sourceHash, opts)
}

// FigureKey generates a key for figure-document caching.
func (k *DefaultKeyer) FigureKey(featureHash string, opts FigureKeyOpts) string {
	return hashKey("figure", featureHash, opts)
}

// ArtifactKey generates a key for rendered-artifact caching.
func (k *DefaultKeyer) ArtifactKey(figureHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", figureHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
