// Package shapes is the catalog of shape variants.
//
// # Overview
//
// Every variant is a pure function from a size to an [Outline]: a [Path] of
// primitives in a local frame centred on the origin, unrotated and
// unscaled beyond size. Callers apply translation and rotation.
//
//	o, err := shapes.OutlineOf("hexagon", 120, shapes.Options{})
//	for _, seg := range o.Path.Segments {
//	    // replay onto a drawing surface
//	}
//
// # Catalog Order
//
// [Kinds] and [Names] return variants in catalog order. Placement indexes
// into a list of variants with a stream draw, so the order is part of the
// reproducibility contract and must never be reshuffled.
//
// # Tiers
//
//   - Primitive: closed-form polygons and curves (circle ... cube)
//   - Sacred: overlapping circle and line constructions (flower-of-life ...)
//   - Complex: motifs with sub-selectors or bounded recursion
//     (platonic-solid, fibonacci-spiral, fractal ...)
package shapes

import (
	"fmt"

	"github.com/matzehuels/hashart/pkg/errors"
)

// Kind identifies a shape variant.
type Kind int

// Catalog, in contract order.
const (
	Circle Kind = iota
	Square
	Triangle
	Hexagon
	Star
	JackedStar
	Heart
	Diamond
	Cube
	FlowerOfLife
	TreeOfLife
	MetatronsCube
	SriYantra
	SeedOfLife
	VesicaPiscis
	Torus
	EggOfLife
	PlatonicSolid
	FibonacciSpiral
	IslamicPattern
	CelticKnot
	Merkaba
	Mandala
	Fractal

	numKinds
)

// Tier groups variants by construction.
type Tier int

const (
	TierPrimitive Tier = iota
	TierSacred
	TierComplex
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierPrimitive:
		return "primitive"
	case TierSacred:
		return "sacred"
	case TierComplex:
		return "complex"
	}
	return "unknown"
}

// Outline is the geometry of one variant at one size.
type Outline struct {
	Kind Kind
	Path Path

	// Fillable is false for drawings made only of open strokes; filling
	// them would paint nothing or an unintended hull.
	Fillable bool
}

// Options carries per-variant sub-selectors.
type Options struct {
	// Solid selects the platonic solid projection. Zero means [SolidTetrahedron].
	Solid Solid
}

type entry struct {
	name    string
	tier    Tier
	outline func(size float64, opts Options) Outline
}

// registry maps every Kind to its entry. The array is sized by numKinds, so
// a new constant without an entry leaves a zero slot that init rejects.
var registry = [numKinds]entry{
	Circle:     {"circle", TierPrimitive, circle},
	Square:     {"square", TierPrimitive, square},
	Triangle:   {"triangle", TierPrimitive, triangle},
	Hexagon:    {"hexagon", TierPrimitive, hexagon},
	Star:       {"star", TierPrimitive, star},
	JackedStar: {"jacked-star", TierPrimitive, jackedStar},
	Heart:      {"heart", TierPrimitive, heart},
	Diamond:    {"diamond", TierPrimitive, diamond},
	Cube:       {"cube", TierPrimitive, cube},

	FlowerOfLife:  {"flower-of-life", TierSacred, flowerOfLife},
	TreeOfLife:    {"tree-of-life", TierSacred, treeOfLife},
	MetatronsCube: {"metatrons-cube", TierSacred, metatronsCube},
	SriYantra:     {"sri-yantra", TierSacred, sriYantra},
	SeedOfLife:    {"seed-of-life", TierSacred, seedOfLife},
	VesicaPiscis:  {"vesica-piscis", TierSacred, vesicaPiscis},
	Torus:         {"torus", TierSacred, torus},
	EggOfLife:     {"egg-of-life", TierSacred, eggOfLife},

	PlatonicSolid:   {"platonic-solid", TierComplex, platonicSolid},
	FibonacciSpiral: {"fibonacci-spiral", TierComplex, fibonacciSpiral},
	IslamicPattern:  {"islamic-pattern", TierComplex, islamicPattern},
	CelticKnot:      {"celtic-knot", TierComplex, celticKnot},
	Merkaba:         {"merkaba", TierComplex, merkaba},
	Mandala:         {"mandala", TierComplex, mandala},
	Fractal:         {"fractal", TierComplex, fractal},
}

var byName = make(map[string]Kind, numKinds)

func init() {
	for k, e := range registry {
		if e.name == "" || e.outline == nil {
			panic(fmt.Sprintf("shapes: kind %d has no registry entry", k))
		}
		if _, dup := byName[e.name]; dup {
			panic(fmt.Sprintf("shapes: duplicate variant name %q", e.name))
		}
		byName[e.name] = Kind(k)
	}
}

// Valid reports whether k is in the catalog.
func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

// String returns the variant name.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return registry[k].name
}

// Tier returns the variant's tier.
func (k Kind) Tier() Tier {
	if !k.Valid() {
		return -1
	}
	return registry[k].tier
}

// MarshalText encodes the kind as its name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.New(errors.ErrCodeUnknownVariant, "unknown variant %d", int(k))
	}
	return []byte(registry[k].name), nil
}

// UnmarshalText decodes a variant name.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := Lookup(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Lookup resolves a variant name.
func Lookup(name string) (Kind, error) {
	k, ok := byName[name]
	if !ok {
		return 0, errors.New(errors.ErrCodeUnknownVariant, "unknown shape variant %q", name)
	}
	return k, nil
}

// LookupAll resolves names in order, failing on the first unknown one.
func LookupAll(names []string) ([]Kind, error) {
	kinds := make([]Kind, len(names))
	for i, n := range names {
		k, err := Lookup(n)
		if err != nil {
			return nil, err
		}
		kinds[i] = k
	}
	return kinds, nil
}

// Kinds returns every variant in catalog order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Names returns every variant name in catalog order.
func Names() []string {
	out := make([]string, numKinds)
	for i, e := range registry {
		out[i] = e.name
	}
	return out
}

// KindsInTier returns the variants of one tier in catalog order.
func KindsInTier(t Tier) []Kind {
	var out []Kind
	for i, e := range registry {
		if e.tier == t {
			out = append(out, Kind(i))
		}
	}
	return out
}

// OutlineFor returns the geometry of k at size.
func OutlineFor(k Kind, size float64, opts Options) (Outline, error) {
	if !k.Valid() {
		return Outline{}, errors.New(errors.ErrCodeUnknownVariant, "unknown variant %d", int(k))
	}
	o := registry[k].outline(size, opts)
	o.Kind = k
	return o, nil
}

// OutlineOf resolves name and returns its geometry.
func OutlineOf(name string, size float64, opts Options) (Outline, error) {
	k, err := Lookup(name)
	if err != nil {
		return Outline{}, err
	}
	return OutlineFor(k, size, opts)
}
