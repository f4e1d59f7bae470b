package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/matzehuels/hashart/pkg/config"
	"github.com/matzehuels/hashart/pkg/palette"
)

// genFlags holds generation overrides. Only flags the user set are applied,
// so a preset keeps every value the command line leaves alone.
type genFlags struct {
	width, height  int
	grid, layers   int
	shapes         int
	minSize        float64
	maxSize        float64
	opacity        float64
	fade           float64
	lineOpacity    float64
	variants       string
	motif          string
	proportion     string
	rotationOffset float64
	scheme         string
	variation      string
}

func (g *genFlags) register(fs *pflag.FlagSet) {
	d := config.Default()
	fs.IntVar(&g.width, "width", d.Width, "canvas width in pixels")
	fs.IntVar(&g.height, "height", d.Height, "canvas height in pixels")
	fs.IntVar(&g.grid, "grid", d.GridSize, "grid cells per side")
	fs.IntVar(&g.layers, "layers", d.Layers, "number of layers")
	fs.IntVar(&g.shapes, "shapes", 0, "shapes per layer (default derived from --grid)")
	fs.Float64Var(&g.minSize, "min-size", d.MinShapeSize, "smallest shape size")
	fs.Float64Var(&g.maxSize, "max-size", d.MaxShapeSize, "largest shape size")
	fs.Float64Var(&g.opacity, "opacity", d.BaseOpacity, "opacity of the first layer")
	fs.Float64Var(&g.fade, "fade", d.OpacityReduction, "opacity lost per layer")
	fs.Float64Var(&g.lineOpacity, "line-opacity", d.LineOpacity, "opacity of the decorative lines")
	fs.StringVar(&g.variants, "variants", "", "comma-separated shape kinds to draw from")
	fs.StringVar(&g.motif, "motif", "", "replace shapes with a motif stack (see 'shapes')")
	fs.StringVar(&g.proportion, "proportion", "", "size ratio between motif instances")
	fs.Float64Var(&g.rotationOffset, "rotation-offset", 0, "degrees each motif instance turns")
	fs.StringVar(&g.scheme, "scheme", "", "palette scheme: mono, contrast, triade, tetrade, analogic")
	fs.StringVar(&g.variation, "variation", "", "palette variation: default, pastel, soft, light, hard, pale")
}

// apply copies every changed flag onto cfg.
func (g *genFlags) apply(fs *pflag.FlagSet, cfg *config.GenerationConfig) {
	set := fs.Changed
	if set("width") {
		cfg.Width = g.width
	}
	if set("height") {
		cfg.Height = g.height
	}
	if set("grid") {
		cfg.GridSize = g.grid
		if !set("shapes") {
			cfg.ShapesPerLayer = 0
		}
	}
	if set("layers") {
		cfg.Layers = g.layers
	}
	if set("shapes") {
		cfg.ShapesPerLayer = g.shapes
	}
	if set("min-size") {
		cfg.MinShapeSize = g.minSize
	}
	if set("max-size") {
		cfg.MaxShapeSize = g.maxSize
	}
	if set("opacity") {
		cfg.BaseOpacity = g.opacity
	}
	if set("fade") {
		cfg.OpacityReduction = g.fade
	}
	if set("line-opacity") {
		cfg.LineOpacity = g.lineOpacity
	}
	if set("variants") {
		cfg.Variants = splitList(g.variants)
	}
	if set("motif") {
		cfg.Motif = g.motif
	}
	if set("proportion") {
		cfg.Proportion = g.proportion
	}
	if set("rotation-offset") {
		cfg.RotationOffset = g.rotationOffset
	}
	if set("scheme") {
		cfg.Scheme = palette.Scheme(g.scheme)
	}
	if set("variation") {
		cfg.Variation = palette.Variation(g.variation)
	}
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
