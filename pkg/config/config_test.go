package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/hashart/pkg/errors"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.WithDefaults().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if c.Width != 1024 || c.Height != 1024 || c.GridSize != 4 || c.Layers != 5 {
		t.Errorf("Default() structure = %dx%d grid %d layers %d", c.Width, c.Height, c.GridSize, c.Layers)
	}
	if c.MinShapeSize != 20 || c.MaxShapeSize != 180 || c.BaseOpacity != 0.6 || c.OpacityReduction != 0.1 {
		t.Errorf("Default() sizes/opacity = %+v", c)
	}
	if diff := cmp.Diff([]string{"circle", "square", "triangle", "hexagon"}, c.Variants); diff != "" {
		t.Errorf("Default().Variants mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveShapesPerLayer(t *testing.T) {
	tests := map[int]int{1: 1, 2: 6, 3: 13, 4: 24, 8: 96}
	for g, want := range tests {
		if got := DeriveShapesPerLayer(g); got != want {
			t.Errorf("DeriveShapesPerLayer(%d) = %d, want %d", g, got, want)
		}
	}
}

func TestWithDefaults(t *testing.T) {
	c := GenerationConfig{GridSize: 4, BaseOpacity: 0.5}.WithDefaults()
	if c.ShapesPerLayer != 24 {
		t.Errorf("ShapesPerLayer = %d, want 24", c.ShapesPerLayer)
	}
	if c.BaseOpacity != 0.5 {
		t.Errorf("BaseOpacity = %v, want caller value 0.5", c.BaseOpacity)
	}
	if c.Scheme != DefaultScheme || c.Variation != DefaultVariation || len(c.Variants) == 0 {
		t.Errorf("optional selectors not filled: %+v", c)
	}

	explicit := GenerationConfig{GridSize: 4, ShapesPerLayer: 7}.WithDefaults()
	if explicit.ShapesPerLayer != 7 {
		t.Errorf("explicit ShapesPerLayer overwritten: %d", explicit.ShapesPerLayer)
	}
}

func TestWithDefaultsKeepsStructure(t *testing.T) {
	c := GenerationConfig{}.WithDefaults()
	want := [4]int{}
	if got := [4]int{c.Width, c.Height, c.GridSize, c.Layers}; got != want {
		t.Errorf("structure filled in: %v", got)
	}
	if c.ShapesPerLayer != 0 {
		t.Errorf("ShapesPerLayer derived from a zero grid: %d", c.ShapesPerLayer)
	}
	if err := c.Validate(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("zero config Validate() = %v, want INVALID_CONFIG", err)
	}
}

func TestWithDefaultsCopiesVariants(t *testing.T) {
	orig := GenerationConfig{Variants: []string{"star", "heart"}}
	c := orig.WithDefaults()
	c.Variants[0] = "circle"
	if orig.Variants[0] != "star" {
		t.Error("WithDefaults aliased the caller's Variants slice")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*GenerationConfig)
		code   errors.Code
	}{
		{"zero width", func(c *GenerationConfig) { c.Width = 0 }, errors.ErrCodeInvalidConfig},
		{"zero height", func(c *GenerationConfig) { c.Height = 0 }, errors.ErrCodeInvalidConfig},
		{"negative height", func(c *GenerationConfig) { c.Height = -1 }, errors.ErrCodeInvalidConfig},
		{"zero grid", func(c *GenerationConfig) { c.GridSize = 0 }, errors.ErrCodeInvalidConfig},
		{"zero layers", func(c *GenerationConfig) { c.Layers = 0 }, errors.ErrCodeInvalidConfig},
		{"negative shapes", func(c *GenerationConfig) { c.ShapesPerLayer = -3 }, errors.ErrCodeInvalidConfig},
		{"zero min size", func(c *GenerationConfig) { c.MinShapeSize = 0 }, errors.ErrCodeInvalidConfig},
		{"min above max", func(c *GenerationConfig) { c.MinShapeSize = 200 }, errors.ErrCodeInvalidConfig},
		{"nan size", func(c *GenerationConfig) { c.MaxShapeSize = math.NaN() }, errors.ErrCodeInvalidConfig},
		{"opacity above one", func(c *GenerationConfig) { c.BaseOpacity = 1.5 }, errors.ErrCodeInvalidConfig},
		{"negative opacity", func(c *GenerationConfig) { c.BaseOpacity = -0.1 }, errors.ErrCodeInvalidConfig},
		{"negative reduction", func(c *GenerationConfig) { c.OpacityReduction = -0.1 }, errors.ErrCodeInvalidConfig},
		{"line opacity", func(c *GenerationConfig) { c.LineOpacity = 2 }, errors.ErrCodeInvalidConfig},
		{"unknown scheme", func(c *GenerationConfig) { c.Scheme = "rainbow" }, errors.ErrCodeInvalidConfig},
		{"unknown variation", func(c *GenerationConfig) { c.Variation = "neon" }, errors.ErrCodeInvalidConfig},
		{"unknown proportion", func(c *GenerationConfig) { c.Proportion = "E" }, errors.ErrCodeInvalidConfig},
		{"unknown variant", func(c *GenerationConfig) { c.Variants = []string{"circle", "blob"} }, errors.ErrCodeUnknownVariant},
		{"unknown motif", func(c *GenerationConfig) { c.Motif = "galaxy" }, errors.ErrCodeUnknownVariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			err := c.Validate()
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want code %s", err, tt.code)
			}
			if err := c.WithDefaults().Validate(); !errors.Is(err, tt.code) {
				t.Errorf("WithDefaults().Validate() = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestValidateAcceptsEdges(t *testing.T) {
	c := Default()
	c.MinShapeSize, c.MaxShapeSize = 10, 10
	c.BaseOpacity, c.OpacityReduction = 1, 0
	c.Motif = "platonic-progression"
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestDefaultStore(t *testing.T) {
	s, err := DefaultStore()
	if err != nil {
		t.Fatalf("DefaultStore: %v", err)
	}
	names := s.Names()
	if len(names) < 14 || names[0] != "react" {
		t.Fatalf("Names() = %v", names)
	}

	banner, err := s.Get("banner")
	if err != nil {
		t.Fatalf("Get(banner): %v", err)
	}
	if banner.Config.Width != 1920 || banner.Config.Height != 480 || banner.Config.GridSize != 8 || banner.Config.ShapesPerLayer != 40 {
		t.Errorf("banner config = %+v", banner.Config)
	}
	// unspecified keys keep defaults
	if banner.Config.Layers != DefaultLayers || banner.Config.BaseOpacity != DefaultBaseOpacity {
		t.Errorf("banner defaults not applied: %+v", banner.Config)
	}

	react, _ := s.Get("react")
	if react.Config.ShapesPerLayer != 24 {
		t.Errorf("react ShapesPerLayer = %d, want derived 24", react.Config.ShapesPerLayer)
	}

	cplx, _ := s.Get("complex")
	if cplx.Config.MinShapeSize != 30 || cplx.Config.MaxShapeSize != 250 {
		t.Errorf("complex sizes = %v..%v", cplx.Config.MinShapeSize, cplx.Config.MaxShapeSize)
	}

	for _, p := range s.All() {
		if err := p.Config.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", p.Name, err)
		}
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := NewStore()
	if _, err := s.Get("nope"); !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("Get(nope) error = %v, want PRESET_NOT_FOUND", err)
	}
}

func TestStoreLoadMerges(t *testing.T) {
	s, err := DefaultStore()
	if err != nil {
		t.Fatal(err)
	}
	n := s.Len()

	err = s.Load(strings.NewReader(`
[[preset]]
name = "react"
hash = "abcdef"
width = 64
height = 64

[[preset]]
name = "mine"
hash = "0123456789"
grid_size = 2
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Len() != n+1 {
		t.Errorf("Len() = %d, want %d", s.Len(), n+1)
	}
	if s.Names()[0] != "react" || s.Names()[n] != "mine" {
		t.Errorf("order after merge = %v", s.Names())
	}
	react, _ := s.Get("react")
	if react.Hash != "abcdef" || react.Config.Width != 64 {
		t.Errorf("react not replaced: %+v", react)
	}
	mine, _ := s.Get("mine")
	if mine.Config.ShapesPerLayer != 6 {
		t.Errorf("mine ShapesPerLayer = %d, want 6", mine.Config.ShapesPerLayer)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		toml string
		code errors.Code
	}{
		{"syntax", `[[preset`, errors.ErrCodeInvalidConfig},
		{"bad name", "[[preset]]\nname = \"../x\"\nhash = \"ab\"", errors.ErrCodeInvalidConfig},
		{"bad hash", "[[preset]]\nname = \"x\"\nhash = \"zz\"", errors.ErrCodeInvalidConfig},
		{"duplicate", "[[preset]]\nname = \"x\"\nhash = \"ab\"\n[[preset]]\nname = \"x\"\nhash = \"cd\"", errors.ErrCodeInvalidConfig},
		{"bad config", "[[preset]]\nname = \"x\"\nhash = \"ab\"\nlayers = -1", errors.ErrCodeInvalidConfig},
		{"zero width", "[[preset]]\nname = \"x\"\nhash = \"ab\"\nwidth = 0", errors.ErrCodeInvalidConfig},
		{"bad variant", "[[preset]]\nname = \"x\"\nhash = \"ab\"\nvariants = [\"blob\"]", errors.ErrCodeUnknownVariant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.toml))
			if !errors.Is(err, tt.code) {
				t.Errorf("Parse() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.toml")
	if err := os.WriteFile(path, []byte("[[preset]]\nname = \"tiny\"\nhash = \"ff\"\nwidth = 32\nheight = 32\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore()
	if err := s.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if p, err := s.Get("tiny"); err != nil || p.Config.Width != 32 {
		t.Errorf("Get(tiny) = %+v, %v", p, err)
	}
	if err := s.LoadFile(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("LoadFile(missing) error = %v, want NOT_FOUND", err)
	}
}
