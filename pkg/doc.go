// Package pkg provides the core libraries for hashart generative art.
//
// # Overview
//
// Hashart turns a hex hash (a commit id, a content digest) into a layered
// composition of geometric shapes and renders it to PNG. Everything is
// derived from the hash, so the same hash and configuration always produce
// the same image.
//
// # Architecture
//
// The data flow through hashart:
//
//	hex hash
//	    ↓
//	[seed] (seed value + deterministic unit stream)
//	    ↓
//	[palette] (seeded hue → color scheme)
//	    ↓
//	[placement] (grid jitter, shape kinds, sizes, rotations, lines)
//	    ↓
//	[render] (gradient background, shapes, motifs, lines)
//	    ↓
//	PNG
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/hashart/pkg/config"
//	    "github.com/matzehuels/hashart/pkg/pipeline"
//	)
//
//	png, err := pipeline.Generate(ctx, "46192e59d42f741c761cbea79462a8b3815dd905", config.Default())
//	if err != nil {
//	    return err
//	}
//	path, err := pipeline.Save(png, "out", hash, "react", 1024, 1024)
//
// # Main Packages
//
// ## Generation
//
// [seed] - Seed extraction and the window-based unit stream every random
// choice reads from.
//
// [shapes] - The shape registry: primitive, sacred and complex kinds, each
// producing an outline path centered on the origin.
//
// [pattern] - Motifs: nested stacks of patterns sized by a proportion.
//
// [palette] - Color schemes and variations built with go-colorful.
//
// [placement] - Layered placement of shapes and lines on the canvas.
//
// [render] - The drawing surface contract, the gg rasterizer and the
// composition painter.
//
// ## Orchestration
//
// [pipeline] - Plan / Generate / Save, plus a cached [pipeline.Runner] and
// parallel batches used by the CLI and the server.
//
// [config] - Generation config, validation and the TOML preset store.
//
// ## Infrastructure
//
// [cache] - Artifact cache with file, Redis and null backends.
//
// [server] - HTTP API serving rendered art.
//
// [observability] - Hooks for generation, cache and HTTP events.
//
// [errors] - Coded errors shared by every layer.
//
// [buildinfo] - Version information set at link time.
//
// [seed]: https://pkg.go.dev/github.com/matzehuels/hashart/pkg/seed
// [shapes]: https://pkg.go.dev/github.com/matzehuels/hashart/pkg/shapes
// [pattern]: https://pkg.go.dev/github.com/matzehuels/hashart/pkg/pattern
// [palette]: https://pkg.go.dev/github.com/matzehuels/hashart/pkg/palette
// [placement]: https://pkg.go.dev/github.com/matzehuels/hashart/pkg/placement
// [render]: https://pkg.go.dev/github.com/matzehuels/hashart/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/hashart/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/hashart/pkg/pipeline#Runner
// [config]: https://pkg.go.dev/github.com/matzehuels/hashart/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/hashart/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/hashart/pkg/server
// [observability]: https://pkg.go.dev/github.com/matzehuels/hashart/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/hashart/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/hashart/pkg/buildinfo
package pkg
