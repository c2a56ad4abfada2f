package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation. The
// server uses this to keep per-project cache entries apart when several
// projects share one Redis instance.
//
// Example usage:
//
//	// Project-specific keys
//	projKeyer := NewScopedKeyer(NewDefaultKeyer(), "proj:abc123:")
//
//	// Global keys
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// FeatureKey generates a prefixed key for feature-set caching.
func (k *ScopedKeyer) FeatureKey(sourceHash string, opts FeatureKeyOpts) string {
	return k.prefix + k.inner.FeatureKey(sourceHash, opts)
}

// FigureKey generates a prefixed key for figure-document caching.
func (k *ScopedKeyer) FigureKey(featureHash string, opts FigureKeyOpts) string {
	return k.prefix + k.inner.FigureKey(featureHash, opts)
}

// ArtifactKey generates a prefixed key for rendered-artifact caching.
func (k *ScopedKeyer) ArtifactKey(figureHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(figureHash, opts)
}
