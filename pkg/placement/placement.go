// Package placement distributes shapes across grid cells and layers.
//
// # Algorithm
//
// For each layer L the engine takes numShapes(L) = spl + floor(draw(L,
// 0, spl/2)) shapes, where spl is the configured shapes per layer. Shape i of
// layer L sits in cell (i/gridSize, i%gridSize) and takes its parameters from
// draws at composite indices b+i*2 (x offset), b+i*2+1 (y offset), b+i*3
// (variant), b+i*4 (size), b+i*5 (rotation), b+i*6 (fill) and b+i*7 (stroke),
// with b = L*numShapes(L). Indices collide across parameters and layers;
// that overlap is part of the output and must be preserved.
//
// Cell indices wrap past the grid when numShapes exceeds gridSize^2; extra
// shapes then spill into columns beyond the canvas edge. This is density
// overflow, not an error.
//
// After its shapes, every layer carries floor(15*w*h/1024^2) decorative lines
// whose endpoints come from draws 4i..4i+3. Those indices do not depend on the
// layer, so every layer draws the same lines.
//
// # Purity
//
// [Place] performs no I/O and holds no state: the same hash, config and
// palette yield an identical [Composition] on every call.
package placement

import (
	"math"

	"github.com/matzehuels/hashart/pkg/config"
	"github.com/matzehuels/hashart/pkg/errors"
	"github.com/matzehuels/hashart/pkg/palette"
	"github.com/matzehuels/hashart/pkg/seed"
	"github.com/matzehuels/hashart/pkg/shapes"
)

// ReferenceSize is the canvas edge against which shape sizes are specified.
const ReferenceSize = 1024.0

// linesPerReferenceCanvas is the decorative line count on a 1024x1024 canvas.
const linesPerReferenceCanvas = 15

// Composition is the full layout of one generation call.
type Composition struct {
	Hash    string          `json:"hash"`
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Seed    uint32          `json:"seed"`
	Hue     int             `json:"hue"`
	Palette palette.Palette `json:"palette"`
	Layers  []Layer         `json:"layers"`
}

// ShapeCount returns the number of placed shapes across all layers.
func (c *Composition) ShapeCount() int {
	n := 0
	for _, l := range c.Layers {
		n += len(l.Shapes)
	}
	return n
}

// Layer is one ordinal pass over the grid.
type Layer struct {
	Index int `json:"index"`

	// Opacity is baseOpacity - Index*opacityReduction as computed, which may
	// fall below zero. Shapes carry the clamped value.
	Opacity float64       `json:"opacity"`
	Shapes  []PlacedShape `json:"shapes"`
	Lines   []Line        `json:"lines"`
}

// PlacedShape is a fully resolved shape instance.
type PlacedShape struct {
	Kind     shapes.Kind `json:"kind"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	GridX    int         `json:"grid_x"`
	GridY    int         `json:"grid_y"`
	Size     float64     `json:"size"`
	Rotation float64     `json:"rotation"` // degrees
	Fill     int         `json:"fill"`     // palette index
	Stroke   int         `json:"stroke"`   // palette index
	Opacity  float64     `json:"opacity"`  // in [0,1]
}

// Line is a decorative segment between two canvas points.
type Line struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Place computes the composition for hash under cfg, choosing color indices
// into pal. The config is validated and variants resolved before any draw is
// taken.
func Place(hash string, cfg config.GenerationConfig, pal palette.Palette) (*Composition, error) {
	stream, err := seed.NewStream(hash)
	if err != nil {
		return nil, err
	}
	s, err := seed.FromHash(hash)
	if err != nil {
		return nil, err
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(pal) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "palette needs at least 2 colors, got %d", len(pal))
	}
	variants, err := shapes.LookupAll(cfg.Variants)
	if err != nil {
		return nil, err
	}

	comp := &Composition{
		Hash:    hash,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Seed:    s,
		Hue:     seed.Hue(s),
		Palette: append(palette.Palette(nil), pal...),
		Layers:  make([]Layer, cfg.Layers),
	}
	lines := Lines(stream, cfg.Width, cfg.Height)
	for l := range comp.Layers {
		comp.Layers[l] = placeLayer(stream, cfg, l, variants, len(pal))
		comp.Layers[l].Lines = append([]Line(nil), lines...)
	}
	return comp, nil
}

func placeLayer(s seed.Stream, cfg config.GenerationConfig, l int, variants []shapes.Kind, paletteSize int) Layer {
	n := NumShapes(s, l, cfg.ShapesPerLayer)
	raw := LayerOpacity(cfg.BaseOpacity, cfg.OpacityReduction, l)
	opacity := clamp01(raw)

	cellW := float64(cfg.Width) / float64(cfg.GridSize)
	cellH := float64(cfg.Height) / float64(cfg.GridSize)
	sf := ScaleFactor(cfg.Width, cfg.Height)
	minSize := cfg.MinShapeSize * sf
	sizeRange := (cfg.MaxShapeSize - cfg.MinShapeSize) * sf

	b := l * n
	out := Layer{Index: l, Opacity: raw, Shapes: make([]PlacedShape, n)}
	for i := 0; i < n; i++ {
		gx, gy := Cell(i, cfg.GridSize)
		out.Shapes[i] = PlacedShape{
			Kind:     variants[s.Int(b+i*3, len(variants))],
			X:        float64(gx)*cellW + s.Value(b+i*2, 0, cellW),
			Y:        float64(gy)*cellH + s.Value(b+i*2+1, 0, cellH),
			GridX:    gx,
			GridY:    gy,
			Size:     minSize + s.Value(b+i*4, 0, sizeRange),
			Rotation: s.Value(b+i*5, 0, 360),
			Fill:     s.Int(b+i*6, paletteSize),
			Stroke:   s.Int(b+i*7, paletteSize),
			Opacity:  opacity,
		}
	}
	return out
}

// NumShapes returns spl + floor(draw(layer, 0, spl/2)).
func NumShapes(s seed.Stream, layer, spl int) int {
	return spl + int(math.Floor(s.Value(layer, 0, float64(spl)/2)))
}

// LayerOpacity returns the unclamped opacity of a layer.
func LayerOpacity(base, reduction float64, layer int) float64 {
	return base - float64(layer)*reduction
}

// Cell returns the grid cell of shape ordinal i.
func Cell(i, gridSize int) (gridX, gridY int) {
	return i / gridSize, i % gridSize
}

// ScaleFactor maps reference sizes onto a width x height canvas.
func ScaleFactor(width, height int) float64 {
	return float64(min(width, height)) / ReferenceSize
}

// LineCount returns the decorative line count for a canvas.
func LineCount(width, height int) int {
	return int(math.Floor(linesPerReferenceCanvas * float64(width) * float64(height) / (ReferenceSize * ReferenceSize)))
}

// Lines returns the decorative lines shared by every layer.
func Lines(s seed.Stream, width, height int) []Line {
	n := LineCount(width, height)
	w, h := float64(width), float64(height)
	out := make([]Line, n)
	for i := range out {
		out[i] = Line{
			X1: s.Value(i*4, 0, w),
			Y1: s.Value(i*4+1, 0, h),
			X2: s.Value(i*4+2, 0, w),
			Y2: s.Value(i*4+3, 0, h),
		}
	}
	return out
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
