package cache

import "github.com/matzehuels/hashart/pkg/config"

// ScopedKeyer prefixes every key of an inner Keyer, so several deployments
// can share one Redis instance.
//
//	k := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner (DefaultKeyer when nil) with prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey returns the prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(hash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(hash, opts)
}

// PlanKey returns the prefixed plan key.
func (k *ScopedKeyer) PlanKey(hash string, cfg config.GenerationConfig) string {
	return k.prefix + k.inner.PlanKey(hash, cfg)
}
