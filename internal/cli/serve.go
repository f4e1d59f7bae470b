package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hashart/pkg/cache"
	"github.com/matzehuels/hashart/pkg/pipeline"
	"github.com/matzehuels/hashart/pkg/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string
	redisURL  string        // shared cache; the local file cache is used when empty
	prefix    string        // key namespace inside a shared cache
	ttl       time.Duration // artifact lifetime in the cache
	maxPixels int
	timeout   time.Duration
	noCache   bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:      server.DefaultAddr,
		ttl:       cache.TTLArtifact,
		maxPixels: server.DefaultMaxPixels,
		timeout:   server.DefaultRenderTimeout,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve art over HTTP",
		Long: `Serve starts an HTTP API that renders hashes and presets on request.

Rendered images are cached in the local cache directory, or in Redis when
--redis-url is given so that several instances share one cache.`,
		Example: `  hashart serve
  hashart serve --addr :9000 --redis-url redis://localhost:6379/0 --prefix prod`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "Redis URL for a shared cache (redis:// or rediss://)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "cache key prefix")
	cmd.Flags().DurationVar(&opts.ttl, "cache-ttl", opts.ttl, "how long rendered images stay cached")
	cmd.Flags().IntVar(&opts.maxPixels, "max-pixels", opts.maxPixels, "largest canvas (width*height) a request may ask for")
	cmd.Flags().DurationVar(&opts.timeout, "render-timeout", opts.timeout, "per-request render deadline")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	store, err := c.loadStore()
	if err != nil {
		return err
	}
	runner, err := c.serveRunner(ctx, opts)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv := server.New(runner, store, c.Logger, server.Options{
		Addr:          opts.addr,
		MaxPixels:     opts.maxPixels,
		RenderTimeout: opts.timeout,
	})
	printInfo("Serving %d presets on %s", store.Len(), StyleHighlight.Render(opts.addr))
	return srv.ListenAndServe(ctx)
}

// serveRunner picks the cache backend and key namespace for the server.
func (c *CLI) serveRunner(ctx context.Context, opts serveOpts) (*pipeline.Runner, error) {
	var backend cache.Cache
	switch {
	case opts.noCache:
		backend = cache.NewNullCache()
	case opts.redisURL != "":
		rc, err := cache.NewRedisCache(ctx, opts.redisURL)
		if err != nil {
			return nil, err
		}
		c.Logger.Info("using redis cache", "prefix", opts.prefix)
		backend = rc
	default:
		backend = c.newCache(false)
	}

	keyer := cache.NewDefaultKeyer()
	if opts.prefix != "" {
		keyer = cache.NewScopedKeyer(keyer, strings.TrimSuffix(opts.prefix, ":")+":")
	}

	runner := pipeline.NewRunner(backend, keyer, c.Logger)
	runner.TTL = opts.ttl
	return runner, nil
}
