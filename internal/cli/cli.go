// Package cli implements the hashart command-line interface.
//
// # Commands
//
//   - render: Generate one PNG from a hash or a named preset
//   - render-all: Generate every preset in parallel
//   - presets: List presets or pick one interactively
//   - shapes: Show the shape catalog, motifs and palette options
//   - serve: Serve art over HTTP
//   - cache: Manage the local artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so long-running commands can report progress.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hashart/pkg/buildinfo"
	"github.com/matzehuels/hashart/pkg/cache"
	"github.com/matzehuels/hashart/pkg/config"
	"github.com/matzehuels/hashart/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "hashart"

	// defaultOutDir is where rendered files land unless --out is given.
	defaultOutDir = "."
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// presetsFile is an optional TOML file loaded over the built-in presets.
	presetsFile string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Hashart turns hashes into layered geometric art",
		Long:         `Hashart is a CLI tool that derives a deterministic, layered composition of geometric shapes from a hex hash and renders it to PNG. The same hash and configuration always produce the same image.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.presetsFile, "presets", "", "TOML file with extra [[preset]] tables")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.renderAllCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.shapesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(c.newCache(noCache), nil, c.Logger)
}

// newCache returns the local file cache, or a null cache when disabled or
// when the cache directory cannot be created.
func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("cache disabled", "err", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("cache disabled", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// loadStore returns the built-in presets plus any loaded from --presets.
func (c *CLI) loadStore() (*config.Store, error) {
	store, err := config.DefaultStore()
	if err != nil {
		return nil, err
	}
	if c.presetsFile != "" {
		if err := store.LoadFile(c.presetsFile); err != nil {
			return nil, err
		}
		c.Logger.Debug("loaded presets", "file", c.presetsFile, "total", store.Len())
	}
	return store, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/hashart/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
