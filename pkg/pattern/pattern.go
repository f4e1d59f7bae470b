// Package pattern stacks shape variants into diminishing motifs.
//
// A motif is an ordered list of [Pattern] values. [Layer] resolves it against
// a [ComposeConfig]: instance k is drawn at BaseSize*Proportion^k with
// opacity max(0.1, BaseOpacity-k*OpacityReduction), turned by
// k*RotationOffset degrees. The composer takes no draws from the hash; every
// parameter comes from the enclosing placed shape.
//
// Unless a config names one, the proportion is [InverseGoldenRatio]
// (about 0.618), so nested instances shrink inward. Every other named
// proportion is above 1 and makes instances grow past the placed shape;
// pick [GoldenRatio] to get outward growth by the same factor.
package pattern

import (
	"math"
	"sort"
	"strings"

	"github.com/matzehuels/hashart/pkg/errors"
	"github.com/matzehuels/hashart/pkg/shapes"
)

// MinOpacity is the floor applied to every instance's opacity.
const MinOpacity = 0.1

// Pattern is one entry of a motif.
type Pattern struct {
	Kind  shapes.Kind  `json:"kind"`
	Solid shapes.Solid `json:"solid,omitempty"`
}

// Options returns the outline options for the pattern.
func (p Pattern) Options() shapes.Options {
	return shapes.Options{Solid: p.Solid}
}

// ComposeConfig carries the resolved parameters of the enclosing shape.
type ComposeConfig struct {
	BaseSize         float64
	BaseOpacity      float64
	OpacityReduction float64
	Proportion       float64
	RotationOffset   float64 // degrees per ordinal
}

// Instance is one resolved entry of a layered motif.
type Instance struct {
	Pattern  Pattern
	Ordinal  int
	Size     float64
	Opacity  float64
	Rotation float64 // degrees, relative to the enclosing shape
}

// Layer resolves patterns into instances in order.
func Layer(patterns []Pattern, cfg ComposeConfig) []Instance {
	out := make([]Instance, len(patterns))
	for k, p := range patterns {
		out[k] = Instance{
			Pattern:  p,
			Ordinal:  k,
			Size:     cfg.BaseSize * math.Pow(cfg.Proportion, float64(k)),
			Opacity:  math.Max(MinOpacity, cfg.BaseOpacity-float64(k)*cfg.OpacityReduction),
			Rotation: float64(k) * cfg.RotationOffset,
		}
	}
	return out
}

// =============================================================================
// Proportions
// =============================================================================

// Proportion names.
const (
	GoldenRatio        = "GOLDEN_RATIO"
	InverseGoldenRatio = "INVERSE_GOLDEN_RATIO"
	SquareRoot2        = "SQUARE_ROOT_2"
	SquareRoot3        = "SQUARE_ROOT_3"
	SquareRoot5        = "SQUARE_ROOT_5"
	Pi                 = "PI"
	Phi                = "PHI"
)

// DefaultProportion shrinks each nested instance by the golden ratio.
const DefaultProportion = InverseGoldenRatio

var proportions = map[string]float64{
	GoldenRatio:        1.618034,
	InverseGoldenRatio: 2 / (1 + math.Sqrt(5)),
	SquareRoot2:        math.Sqrt2,
	SquareRoot3:        math.Sqrt(3),
	SquareRoot5:        math.Sqrt(5),
	Pi:                 math.Pi,
	Phi:                math.Phi,
}

// Proportion resolves a proportion name, case-insensitively. An empty name
// selects [DefaultProportion].
func Proportion(name string) (float64, error) {
	if name == "" {
		name = DefaultProportion
	}
	v, ok := proportions[strings.ToUpper(name)]
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "unknown proportion %q", name)
	}
	return v, nil
}

// Proportions returns the proportion names, sorted.
func Proportions() []string {
	names := make([]string, 0, len(proportions))
	for n := range proportions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// Motifs
// =============================================================================

// Motif names.
const (
	MotifFlowerOfLifeMandala = "flower-of-life-mandala"
	MotifPlatonicProgression = "platonic-progression"
	MotifCosmicTree          = "cosmic-tree"
)

var motifs = map[string][]Pattern{
	MotifFlowerOfLifeMandala: {
		{Kind: shapes.Merkaba},
		{Kind: shapes.SriYantra},
	},
	MotifPlatonicProgression: {
		{Kind: shapes.PlatonicSolid, Solid: shapes.SolidTetrahedron},
		{Kind: shapes.PlatonicSolid, Solid: shapes.SolidCube},
		{Kind: shapes.PlatonicSolid, Solid: shapes.SolidOctahedron},
	},
	MotifCosmicTree: {
		{Kind: shapes.FibonacciSpiral},
		{Kind: shapes.MetatronsCube},
	},
}

// Motif returns a copy of the named motif.
func Motif(name string) ([]Pattern, error) {
	m, ok := motifs[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownVariant, "unknown motif %q", name)
	}
	return append([]Pattern(nil), m...), nil
}

// Motifs returns the motif names, sorted.
func Motifs() []string {
	names := make([]string, 0, len(motifs))
	for n := range motifs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
