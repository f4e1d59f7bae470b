// Package config defines the generation configuration and named presets.
//
// [GenerationConfig] fully determines a composition's layout for a given
// hash. [Default] mirrors the reference look (1024x1024, a 4x4 grid, five
// layers); [GenerationConfig.WithDefaults] derives shapes per layer and fills
// unset optional selectors, and [GenerationConfig.Validate] rejects anything
// the placement engine cannot honor before a single draw is taken.
//
// Presets are named (hash, config) pairs kept in a [Store], loaded from TOML.
package config

import (
	"math"

	"github.com/matzehuels/hashart/pkg/errors"
	"github.com/matzehuels/hashart/pkg/palette"
	"github.com/matzehuels/hashart/pkg/pattern"
	"github.com/matzehuels/hashart/pkg/shapes"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	DefaultWidth            = 1024
	DefaultHeight           = 1024
	DefaultGridSize         = 4
	DefaultLayers           = 5
	DefaultMinShapeSize     = 20.0
	DefaultMaxShapeSize     = 180.0
	DefaultBaseOpacity      = 0.6
	DefaultOpacityReduction = 0.1
	DefaultLineOpacity      = 0.2

	// DefaultScheme and DefaultVariation select the palette.
	DefaultScheme    = palette.SchemeAnalogic
	DefaultVariation = palette.VariationSoft

	// shapesPerCell derives ShapesPerLayer from the grid when unset.
	shapesPerCell = 1.5
)

// DefaultVariants is the variant list used when none is configured.
var DefaultVariants = []string{"circle", "square", "triangle", "hexagon"}

// GenerationConfig controls layout and look. It is a value: callers copy and
// modify it freely.
type GenerationConfig struct {
	Width  int `toml:"width" json:"width"`
	Height int `toml:"height" json:"height"`

	// GridSize partitions the canvas into GridSize x GridSize cells.
	GridSize int `toml:"grid_size" json:"grid_size"`
	Layers   int `toml:"layers" json:"layers"`

	// ShapesPerLayer is the base shape count. Zero derives
	// floor(GridSize^2 * 1.5).
	ShapesPerLayer int `toml:"shapes_per_layer" json:"shapes_per_layer,omitempty"`

	// Shape sizes are in pixels on a 1024 reference canvas.
	MinShapeSize float64 `toml:"min_shape_size" json:"min_shape_size"`
	MaxShapeSize float64 `toml:"max_shape_size" json:"max_shape_size"`

	BaseOpacity      float64 `toml:"base_opacity" json:"base_opacity"`
	OpacityReduction float64 `toml:"opacity_reduction" json:"opacity_reduction"`

	// Variants lists the shape variant names placement chooses from, in
	// order. The order is part of the output: reordering changes the art.
	Variants []string `toml:"variants" json:"variants,omitempty"`

	// Motif, when set, replaces every placed shape with the named motif
	// stack drawn at the shape's size.
	Motif          string  `toml:"motif" json:"motif,omitempty"`
	Proportion     string  `toml:"proportion" json:"proportion,omitempty"`
	RotationOffset float64 `toml:"rotation_offset" json:"rotation_offset,omitempty"`

	Scheme      palette.Scheme    `toml:"scheme" json:"scheme,omitempty"`
	Variation   palette.Variation `toml:"variation" json:"variation,omitempty"`
	LineOpacity float64           `toml:"line_opacity" json:"line_opacity"`
}

// Default returns the reference configuration.
func Default() GenerationConfig {
	return GenerationConfig{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		GridSize:         DefaultGridSize,
		Layers:           DefaultLayers,
		MinShapeSize:     DefaultMinShapeSize,
		MaxShapeSize:     DefaultMaxShapeSize,
		BaseOpacity:      DefaultBaseOpacity,
		OpacityReduction: DefaultOpacityReduction,
		Variants:         append([]string(nil), DefaultVariants...),
		Proportion:       pattern.DefaultProportion,
		Scheme:           DefaultScheme,
		Variation:        DefaultVariation,
		LineOpacity:      DefaultLineOpacity,
	}
}

// WithDefaults returns a copy with derived and optional fields filled in:
// ShapesPerLayer from the grid, and the variant list, proportion, scheme and
// variation when unset. Canvas, grid, layers, sizes and opacities are taken
// as given, so a zero there is left for [GenerationConfig.Validate] to
// reject. Start from [Default] to get the reference structure.
func (c GenerationConfig) WithDefaults() GenerationConfig {
	if c.ShapesPerLayer == 0 && c.GridSize > 0 {
		c.ShapesPerLayer = DeriveShapesPerLayer(c.GridSize)
	}
	if len(c.Variants) == 0 {
		c.Variants = append([]string(nil), DefaultVariants...)
	} else {
		c.Variants = append([]string(nil), c.Variants...)
	}
	if c.Proportion == "" {
		c.Proportion = pattern.DefaultProportion
	}
	if c.Scheme == "" {
		c.Scheme = DefaultScheme
	}
	if c.Variation == "" {
		c.Variation = DefaultVariation
	}
	return c
}

// DeriveShapesPerLayer returns floor(gridSize^2 * 1.5).
func DeriveShapesPerLayer(gridSize int) int {
	return int(math.Floor(float64(gridSize*gridSize) * shapesPerCell))
}

// Validate reports the first problem with c. Numeric and palette problems
// are INVALID_CONFIG; unknown variant or motif names are UNKNOWN_VARIANT.
func (c GenerationConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return invalid("canvas must be positive, got %dx%d", c.Width, c.Height)
	case c.GridSize <= 0:
		return invalid("grid_size must be positive, got %d", c.GridSize)
	case c.Layers <= 0:
		return invalid("layers must be positive, got %d", c.Layers)
	case c.ShapesPerLayer < 0:
		return invalid("shapes_per_layer cannot be negative, got %d", c.ShapesPerLayer)
	case !finite(c.MinShapeSize) || !finite(c.MaxShapeSize) || c.MinShapeSize <= 0 || c.MaxShapeSize <= 0:
		return invalid("shape sizes must be positive, got %v..%v", c.MinShapeSize, c.MaxShapeSize)
	case c.MinShapeSize > c.MaxShapeSize:
		return invalid("min_shape_size %v exceeds max_shape_size %v", c.MinShapeSize, c.MaxShapeSize)
	case !finite(c.BaseOpacity) || c.BaseOpacity < 0 || c.BaseOpacity > 1:
		return invalid("base_opacity must be in [0,1], got %v", c.BaseOpacity)
	case !finite(c.OpacityReduction) || c.OpacityReduction < 0:
		return invalid("opacity_reduction cannot be negative, got %v", c.OpacityReduction)
	case !finite(c.LineOpacity) || c.LineOpacity < 0 || c.LineOpacity > 1:
		return invalid("line_opacity must be in [0,1], got %v", c.LineOpacity)
	case !finite(c.RotationOffset):
		return invalid("rotation_offset must be finite")
	}

	if _, err := palette.ParseScheme(string(c.Scheme)); err != nil {
		return err
	}
	if _, err := palette.ParseVariation(string(c.Variation)); err != nil {
		return err
	}
	if _, err := pattern.Proportion(c.Proportion); err != nil {
		return err
	}
	if len(c.Variants) == 0 {
		return invalid("variants cannot be empty")
	}
	if _, err := shapes.LookupAll(c.Variants); err != nil {
		return err
	}
	if c.Motif != "" {
		if _, err := pattern.Motif(c.Motif); err != nil {
			return err
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, format, args...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
