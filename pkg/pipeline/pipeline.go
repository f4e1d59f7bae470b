// Package pipeline is the generation entry point shared by the CLI and the
// HTTP server.
//
// # Stages
//
// A generation call runs, all or nothing:
//
//  1. Validate the hash and the config.
//  2. Derive the seed and the palette.
//  3. Place shapes across layers.
//  4. Paint the composition onto a fresh raster surface.
//  5. Encode PNG.
//
// Nothing is drawn when any of the first three stages fails, so a bad
// variant name or config never produces a partial image.
//
// # Usage
//
//	png, err := pipeline.Generate(ctx, hash, config.Default())
//	path, err := pipeline.Save(png, "out", hash, "react", 1024, 1024)
//
// [Runner] adds caching, hooks and logging; [Runner.Batch] renders many jobs
// concurrently.
package pipeline

import (
	"bytes"
	"context"

	"github.com/matzehuels/hashart/pkg/config"
	"github.com/matzehuels/hashart/pkg/errors"
	"github.com/matzehuels/hashart/pkg/palette"
	"github.com/matzehuels/hashart/pkg/placement"
	"github.com/matzehuels/hashart/pkg/render"
	"github.com/matzehuels/hashart/pkg/seed"
)

// =============================================================================
// Options
// =============================================================================

// Option customizes one generation call.
type Option func(*settings)

type settings struct {
	paletteFn palette.Func
	palette   palette.Palette
	paint     []render.Option
}

// WithPaletteFunc replaces the built-in palette generator.
func WithPaletteFunc(fn palette.Func) Option { return func(s *settings) { s.paletteFn = fn } }

// WithPalette uses p as-is instead of deriving a palette from the seed.
func WithPalette(p palette.Palette) Option { return func(s *settings) { s.palette = p } }

// WithPaintOptions appends painter options after those derived from the config.
func WithPaintOptions(opts ...render.Option) Option {
	return func(s *settings) { s.paint = append(s.paint, opts...) }
}

func newSettings(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// =============================================================================
// Entry points
// =============================================================================

// Plan validates its inputs and returns the placement without drawing.
func Plan(hash string, cfg config.GenerationConfig, opts ...Option) (*placement.Composition, error) {
	return plan(hash, cfg, newSettings(opts))
}

// Generate renders hash under cfg and returns the PNG bytes.
func Generate(ctx context.Context, hash string, cfg config.GenerationConfig, opts ...Option) ([]byte, error) {
	_, data, err := generate(ctx, hash, cfg, newSettings(opts))
	return data, err
}

func plan(hash string, cfg config.GenerationConfig, s settings) (*placement.Composition, error) {
	if err := seed.Validate(hash); err != nil {
		return nil, err
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pal := s.palette
	if pal == nil {
		var err error
		if pal, err = seedPalette(hash, cfg, s.paletteFn); err != nil {
			return nil, err
		}
	}
	return placement.Place(hash, cfg, pal)
}

func seedPalette(hash string, cfg config.GenerationConfig, fn palette.Func) (palette.Palette, error) {
	sd, err := seed.FromHash(hash)
	if err != nil {
		return nil, err
	}
	scheme, err := palette.ParseScheme(string(cfg.Scheme))
	if err != nil {
		return nil, err
	}
	variation, err := palette.ParseVariation(string(cfg.Variation))
	if err != nil {
		return nil, err
	}
	return palette.FromSeed(sd, scheme, variation, fn)
}

func generate(ctx context.Context, hash string, cfg config.GenerationConfig, s settings) (*placement.Composition, []byte, error) {
	comp, err := plan(hash, cfg, s)
	if err != nil {
		return nil, nil, err
	}
	paintOpts, err := render.ConfigOptions(cfg)
	if err != nil {
		return nil, nil, err
	}

	canvas := render.NewCanvas(comp.Width, comp.Height)
	if err := render.Paint(ctx, canvas, comp, append(paintOpts, s.paint...)...); err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := canvas.EncodePNG(&buf); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return comp, buf.Bytes(), nil
}
