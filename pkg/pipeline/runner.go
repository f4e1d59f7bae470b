package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hashart/pkg/cache"
	"github.com/matzehuels/hashart/pkg/config"
	"github.com/matzehuels/hashart/pkg/observability"
	"github.com/matzehuels/hashart/pkg/placement"
)

// FormatPNG is the only artifact format.
const FormatPNG = "png"

// Job is one generation request.
type Job struct {
	Hash   string
	Label  string
	Config config.GenerationConfig

	// Refresh skips the cache read but still stores the result.
	Refresh bool
}

// Result is the output of one job.
type Result struct {
	Job      Job
	PNG      []byte
	CacheHit bool
	Duration time.Duration
}

// Runner wraps generation with caching, hooks and logging.
//
// A Runner holds no per-call state; one value may serve many goroutines.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger
	TTL     time.Duration
	Options []Option
}

// NewRunner returns a runner. A nil cache disables caching, a nil keyer
// uses the default keyer and a nil logger uses the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLArtifact,
	}
}

// Generate renders job, serving it from the cache when possible.
func (r *Runner) Generate(ctx context.Context, job Job) (*Result, error) {
	start := time.Now()
	key := r.Keyer.ArtifactKey(job.Hash, cache.ArtifactKeyOpts{Format: FormatPNG, Config: job.Config})

	if !job.Refresh {
		if data, ok := r.lookup(ctx, key, "art"); ok {
			r.Logger.Debug("cache hit", "hash", job.Hash, "label", job.Label)
			return &Result{Job: job, PNG: data, CacheHit: true, Duration: time.Since(start)}, nil
		}
	}

	hooks := observability.Generation()
	hooks.OnGenerateStart(ctx, job.Hash)
	comp, data, err := generate(ctx, job.Hash, job.Config, newSettings(r.Options))
	shapes := 0
	if comp != nil {
		shapes = comp.ShapeCount()
	}
	hooks.OnGenerateComplete(ctx, job.Hash, shapes, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, "art", data, r.TTL)
	r.Logger.Info("generated",
		"hash", job.Hash,
		"label", job.Label,
		"shapes", shapes,
		"bytes", len(data),
		"duration", time.Since(start))

	return &Result{Job: job, PNG: data, Duration: time.Since(start)}, nil
}

// Plan returns the placement for job, caching it as JSON.
func (r *Runner) Plan(ctx context.Context, job Job) (*placement.Composition, bool, error) {
	key := r.Keyer.PlanKey(job.Hash, job.Config)
	if !job.Refresh {
		if data, ok := r.lookup(ctx, key, "plan"); ok {
			var comp placement.Composition
			if err := json.Unmarshal(data, &comp); err == nil {
				return &comp, true, nil
			}
			r.Logger.Warn("discarding unreadable cached plan", "hash", job.Hash)
		}
	}

	comp, err := plan(job.Hash, job.Config, newSettings(r.Options))
	if err != nil {
		return nil, false, err
	}
	if data, err := json.Marshal(comp); err == nil {
		r.store(ctx, key, "plan", data, cache.TTLPlan)
	}
	return comp, false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// lookup treats cache errors as misses; the cache never fails a render.
func (r *Runner) lookup(ctx context.Context, key, keyType string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "type", keyType, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) store(ctx context.Context, key, keyType string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}
