package palette

import (
	"regexp"
	"testing"

	"github.com/matzehuels/hashart/pkg/errors"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestGenerateCounts(t *testing.T) {
	want := map[Scheme]int{
		SchemeMono:     4,
		SchemeContrast: 8,
		SchemeTriade:   12,
		SchemeTetrade:  16,
		SchemeAnalogic: 12,
	}
	for _, sc := range Schemes() {
		for _, v := range Variations() {
			got := Generate(123, sc, v)
			if len(got) != want[sc] {
				t.Errorf("Generate(123, %s, %s) len = %d, want %d", sc, v, len(got), want[sc])
			}
			for _, c := range got {
				if !hexColor.MatchString(c) {
					t.Errorf("Generate(123, %s, %s) produced %q", sc, v, c)
				}
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for hue := 0; hue < 360; hue += 17 {
		a := Generate(hue, SchemeAnalogic, VariationSoft)
		b := Generate(hue, SchemeAnalogic, VariationSoft)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("Generate(%d) not deterministic at %d: %s != %s", hue, i, a[i], b[i])
			}
		}
	}
}

func TestGenerateUnknown(t *testing.T) {
	if got := Generate(0, "rainbow", VariationSoft); got != nil {
		t.Errorf("Generate with unknown scheme = %v, want nil", got)
	}
	if got := Generate(0, SchemeMono, "neon"); got != nil {
		t.Errorf("Generate with unknown variation = %v, want nil", got)
	}
}

func TestGenerateHue(t *testing.T) {
	// pure red at full saturation and value
	got := Generate(0, SchemeMono, VariationDefault)
	if got[0] != "#ff0000" {
		t.Errorf("Generate(0, mono, default)[0] = %s, want #ff0000", got[0])
	}
	got = Generate(120, SchemeMono, VariationDefault)
	if got[0] != "#00ff00" {
		t.Errorf("Generate(120, mono, default)[0] = %s, want #00ff00", got[0])
	}
}

func TestFromSeed(t *testing.T) {
	p, err := FromSeed(0x46192e59, SchemeAnalogic, VariationSoft, nil)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	if len(p) != 13 {
		t.Fatalf("len(palette) = %d, want 13", len(p))
	}
	hue := int(uint32(0x46192e59) % 360)
	accent := Generate(ContrastHue(hue), SchemeMono, VariationSoft)[0]
	if p.Last() != accent {
		t.Errorf("Last() = %s, want contrast accent %s", p.Last(), accent)
	}
	primary := Generate(hue, SchemeAnalogic, VariationSoft)
	for i, c := range primary {
		if p[i] != c {
			t.Errorf("palette[%d] = %s, want %s", i, p[i], c)
		}
	}
}

func TestFromSeedCustomFunc(t *testing.T) {
	calls := 0
	fn := func(hue int, scheme Scheme, variation Variation) []string {
		calls++
		return []string{"#000000"}
	}
	p, err := FromSeed(1, SchemeMono, VariationSoft, fn)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	if len(p) != 2 || calls != 2 {
		t.Errorf("FromSeed with custom fn: len = %d, calls = %d", len(p), calls)
	}
}

func TestFromSeedTooFewColors(t *testing.T) {
	empty := func(int, Scheme, Variation) []string { return nil }
	_, err := FromSeed(1, SchemeMono, VariationSoft, empty)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("FromSeed with empty generator error = %v, want INVALID_CONFIG", err)
	}
}

func TestParse(t *testing.T) {
	if s, err := ParseScheme(" Analogic "); err != nil || s != SchemeAnalogic {
		t.Errorf("ParseScheme = %q, %v", s, err)
	}
	if _, err := ParseScheme("rainbow"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("ParseScheme(rainbow) error = %v", err)
	}
	if v, err := ParseVariation("PALE"); err != nil || v != VariationPale {
		t.Errorf("ParseVariation = %q, %v", v, err)
	}
	if _, err := ParseVariation("neon"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("ParseVariation(neon) error = %v", err)
	}
}

func TestContrastHue(t *testing.T) {
	tests := map[int]int{0: 180, 90: 270, 180: 0, 359: 179}
	for in, want := range tests {
		if got := ContrastHue(in); got != want {
			t.Errorf("ContrastHue(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff8000")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if c.Hex() != "#ff8000" {
		t.Errorf("round trip = %s", c.Hex())
	}
	if _, err := ParseHex("orange"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ParseHex(orange) error = %v", err)
	}
}
