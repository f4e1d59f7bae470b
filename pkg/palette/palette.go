// Package palette derives ordered color lists from a seed hue.
//
// A palette is produced by a [Func]: a pure function from a hue and a pair
// of selectors to hex colors. [Generate] is the built-in implementation;
// callers may substitute their own to change the look without touching
// placement. [FromSeed] builds the palette used for a composition: the
// primary scheme at the seed's hue followed by one contrasting color.
package palette

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/hashart/pkg/errors"
)

// Palette is an ordered list of "#rrggbb" colors. Placement refers to
// colors by index, so order is identity.
type Palette []string

// Last returns the final color, or "" for an empty palette.
func (p Palette) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Func generates colors for a hue in [0, 360).
type Func func(hue int, scheme Scheme, variation Variation) []string

// Scheme selects which hues around the base hue contribute colors.
type Scheme string

const (
	SchemeMono     Scheme = "mono"
	SchemeContrast Scheme = "contrast"
	SchemeTriade   Scheme = "triade"
	SchemeTetrade  Scheme = "tetrade"
	SchemeAnalogic Scheme = "analogic"
)

// Variation selects the saturation and brightness of each hue's colors.
type Variation string

const (
	VariationDefault Variation = "default"
	VariationPastel  Variation = "pastel"
	VariationSoft    Variation = "soft"
	VariationLight   Variation = "light"
	VariationHard    Variation = "hard"
	VariationPale    Variation = "pale"
)

// hue offsets in degrees, in output order
var schemeOffsets = map[Scheme][]float64{
	SchemeMono:     {0},
	SchemeContrast: {0, 180},
	SchemeTriade:   {0, 150, 210},
	SchemeTetrade:  {0, 180, 30, 210},
	SchemeAnalogic: {0, -30, 30},
}

type sv struct{ s, v float64 }

// Every variation yields four tones per hue: base, shade, tint, muted.
var variationTones = map[Variation][4]sv{
	VariationDefault: {{1.00, 1.00}, {1.00, 0.70}, {0.25, 1.00}, {0.50, 0.90}},
	VariationPastel:  {{0.50, 0.90}, {0.50, 0.70}, {0.25, 1.00}, {0.30, 0.85}},
	VariationSoft:    {{0.45, 0.85}, {0.45, 0.60}, {0.20, 0.95}, {0.30, 0.75}},
	VariationLight:   {{0.30, 1.00}, {0.40, 0.90}, {0.10, 1.00}, {0.20, 0.95}},
	VariationHard:    {{1.00, 0.90}, {1.00, 0.50}, {0.80, 1.00}, {0.90, 0.70}},
	VariationPale:    {{0.15, 0.95}, {0.20, 0.80}, {0.08, 1.00}, {0.12, 0.90}},
}

// ColorsPerHue is the number of tones each scheme hue contributes.
const ColorsPerHue = 4

// Schemes returns the supported schemes.
func Schemes() []Scheme {
	return []Scheme{SchemeMono, SchemeContrast, SchemeTriade, SchemeTetrade, SchemeAnalogic}
}

// Variations returns the supported variations.
func Variations() []Variation {
	return []Variation{VariationDefault, VariationPastel, VariationSoft, VariationLight, VariationHard, VariationPale}
}

// ParseScheme resolves a scheme name, case-insensitively.
func ParseScheme(s string) (Scheme, error) {
	sc := Scheme(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := schemeOffsets[sc]; !ok {
		return "", errors.New(errors.ErrCodeInvalidConfig, "unknown palette scheme %q", s)
	}
	return sc, nil
}

// ParseVariation resolves a variation name, case-insensitively.
func ParseVariation(s string) (Variation, error) {
	v := Variation(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := variationTones[v]; !ok {
		return "", errors.New(errors.ErrCodeInvalidConfig, "unknown palette variation %q", s)
	}
	return v, nil
}

// Generate is the built-in [Func]. Unknown selectors produce no colors.
func Generate(hue int, scheme Scheme, variation Variation) []string {
	offsets, ok := schemeOffsets[scheme]
	if !ok {
		return nil
	}
	tones, ok := variationTones[variation]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(offsets)*ColorsPerHue)
	for _, off := range offsets {
		h := normalizeHue(float64(hue) + off)
		for _, t := range tones {
			out = append(out, colorful.Hsv(h, t.s, t.v).Hex())
		}
	}
	return out
}

func normalizeHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

// ContrastHue returns the hue opposite h on the color wheel.
func ContrastHue(hue int) int {
	return ((hue+180)%360 + 360) % 360
}

// FromSeed builds a composition palette: the primary scheme at seed%360 with
// the first mono color of the opposite hue appended. A nil fn uses
// [Generate].
func FromSeed(seed uint32, scheme Scheme, variation Variation, fn Func) (Palette, error) {
	if fn == nil {
		fn = Generate
	}
	hue := int(seed % 360)
	colors := append(Palette{}, fn(hue, scheme, variation)...)
	if accent := fn(ContrastHue(hue), SchemeMono, variation); len(accent) > 0 {
		colors = append(colors, accent[0])
	}
	if len(colors) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"palette %s/%s produced %d colors, need at least 2", scheme, variation, len(colors))
	}
	return colors, nil
}

// ParseHex parses "#rrggbb" or "#rgb" into a color.
func ParseHex(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid color %q", s)
	}
	return c, nil
}
