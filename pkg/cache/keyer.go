package cache

import (
	"github.com/matzehuels/hashart/pkg/config"
)

// Keyer derives cache keys for generation outputs.
type Keyer interface {
	// ArtifactKey keys an encoded image.
	ArtifactKey(hash string, opts ArtifactKeyOpts) string

	// PlanKey keys a serialized placement plan.
	PlanKey(hash string, cfg config.GenerationConfig) string
}

// ArtifactKeyOpts holds everything besides the hash that changes the output.
type ArtifactKeyOpts struct {
	Format string                  `json:"format"`
	Config config.GenerationConfig `json:"config"`
}

// DefaultKeyer hashes the full config into every key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "art:<sha256>".
func (DefaultKeyer) ArtifactKey(hash string, opts ArtifactKeyOpts) string {
	opts.Config = opts.Config.WithDefaults()
	return hashKey("art", hash, opts)
}

// PlanKey returns "plan:<sha256>".
func (DefaultKeyer) PlanKey(hash string, cfg config.GenerationConfig) string {
	return hashKey("plan", hash, cfg.WithDefaults())
}
