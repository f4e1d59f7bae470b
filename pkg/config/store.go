package config

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hashart/pkg/errors"
	"github.com/matzehuels/hashart/pkg/seed"
)

//go:embed presets.toml
var builtinPresets []byte

// Preset is a named hash and configuration.
type Preset struct {
	Name   string           `json:"name"`
	Hash   string           `json:"hash"`
	Config GenerationConfig `json:"config"`
}

// Store holds presets in load order. Loading a preset whose name already
// exists replaces it in place.
type Store struct {
	presets []Preset
	index   map[string]int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// DefaultStore returns a store holding the built-in presets.
func DefaultStore() (*Store, error) {
	s := NewStore()
	if err := s.Load(bytes.NewReader(builtinPresets)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "built-in presets")
	}
	return s, nil
}

// presetFile is the TOML layout:
//
//	[[preset]]
//	name = "banner"
//	hash = "d847ffd4..."
//	width = 1920
//	height = 480
//
// Config keys sit beside name and hash. Keys a preset omits keep the
// [Default] value.
type presetFile struct {
	Preset []toml.Primitive `toml:"preset"`
}

type presetHeader struct {
	Name string `toml:"name"`
	Hash string `toml:"hash"`
}

// Parse decodes presets from TOML and validates each one.
func Parse(r io.Reader) ([]Preset, error) {
	var file presetFile
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse presets")
	}

	out := make([]Preset, 0, len(file.Preset))
	seen := make(map[string]bool, len(file.Preset))
	for i, prim := range file.Preset {
		var h presetHeader
		if err := md.PrimitiveDecode(prim, &h); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "preset #%d", i+1)
		}
		if err := errors.ValidateLabel(h.Name); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "preset #%d name", i+1)
		}
		if seen[h.Name] {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "duplicate preset %q", h.Name)
		}
		seen[h.Name] = true
		if err := seed.Validate(h.Hash); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "preset %q", h.Name)
		}

		cfg := Default()
		if err := md.PrimitiveDecode(prim, &cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "preset %q", h.Name)
		}
		cfg = cfg.WithDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "preset %q", h.Name)
		}
		out = append(out, Preset{Name: h.Name, Hash: h.Hash, Config: cfg})
	}
	return out, nil
}

// Load parses presets from r and merges them into the store. Nothing is
// merged when any preset fails to parse.
func (s *Store) Load(r io.Reader) error {
	presets, err := Parse(r)
	if err != nil {
		return err
	}
	for _, p := range presets {
		s.put(p)
	}
	return nil
}

// LoadFile merges presets from a TOML file.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeNotFound, err, "preset file %s", path)
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "open preset file %s", path)
	}
	defer f.Close()
	return s.Load(f)
}

func (s *Store) put(p Preset) {
	if i, ok := s.index[p.Name]; ok {
		s.presets[i] = p
		return
	}
	s.index[p.Name] = len(s.presets)
	s.presets = append(s.presets, p)
}

// Get returns the named preset.
func (s *Store) Get(name string) (Preset, error) {
	i, ok := s.index[name]
	if !ok {
		return Preset{}, errors.New(errors.ErrCodePresetNotFound, "preset %q not found", name)
	}
	p := s.presets[i]
	p.Config.Variants = append([]string(nil), p.Config.Variants...)
	return p, nil
}

// Names returns preset names in load order.
func (s *Store) Names() []string {
	names := make([]string, len(s.presets))
	for i, p := range s.presets {
		names[i] = p.Name
	}
	return names
}

// All returns every preset in load order.
func (s *Store) All() []Preset {
	out := make([]Preset, len(s.presets))
	for i := range s.presets {
		out[i], _ = s.Get(s.presets[i].Name)
	}
	return out
}

// Len returns the number of presets.
func (s *Store) Len() int { return len(s.presets) }
