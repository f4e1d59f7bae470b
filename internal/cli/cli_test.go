package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hashart/pkg/cache"
	"github.com/matzehuels/hashart/pkg/config"
	"github.com/matzehuels/hashart/pkg/errors"
	"github.com/matzehuels/hashart/pkg/palette"
)

const tinyPresets = `
[[preset]]
name = "tiny"
hash = "c0ffee00"
width = 64
height = 48
grid_size = 2
layers = 1
`

// execute runs the root command with output discarded.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func isolateCache(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	return filepath.Join(dir, appName)
}

func writePresets(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.toml")
	if err := os.WriteFile(path, []byte(tinyPresets), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"render", "render-all", "presets", "shapes", "serve", "cache", "completion"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing subcommand %q in %v", want, names)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	isolateCache(t)
	out := t.TempDir()

	err := execute(t, "render", "CAFEBABE", "--width", "64", "--height", "48", "--grid", "2", "--layers", "1", "-o", out)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(out, "cafebabe-64x48.png"))
	if err != nil {
		t.Fatalf("output file: %v", err)
	}
	if !strings.HasPrefix(string(data), "\x89PNG") {
		t.Error("output is not a PNG")
	}
}

func TestRenderCommandPreset(t *testing.T) {
	isolateCache(t)
	out := t.TempDir()
	presets := writePresets(t)

	if err := execute(t, "--presets", presets, "render", "-p", "tiny", "-o", out); err != nil {
		t.Fatalf("render preset: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "tiny-64x48-c0ffee00.png")); err != nil {
		t.Errorf("preset output: %v", err)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	isolateCache(t)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"no hash", []string{"render"}, errors.ErrCodeInvalidInput},
		{"unknown preset", []string{"render", "-p", "nope"}, errors.ErrCodePresetNotFound},
		{"malformed hash", []string{"render", "xyz", "--no-cache"}, errors.ErrCodeMalformedHash},
		{"unknown variant", []string{"render", "abcd", "--variants", "blob", "--no-cache"}, errors.ErrCodeUnknownVariant},
		{"bad size", []string{"render", "abcd", "--width", "-1", "--no-cache"}, errors.ErrCodeInvalidConfig},
		{"zero width", []string{"render", "abcd", "--width", "0", "--no-cache"}, errors.ErrCodeInvalidConfig},
		{"zero layers", []string{"render", "abcd", "--layers", "0", "--no-cache"}, errors.ErrCodeInvalidConfig},
		{"bad label", []string{"render", "abcd", "--width", "32", "--height", "32", "-l", "../x", "-o", t.TempDir(), "--no-cache"}, errors.ErrCodeInvalidLabel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRenderPlan(t *testing.T) {
	isolateCache(t)
	if err := execute(t, "render", "cafebabe", "--plan", "--width", "64", "--height", "48", "--no-cache"); err != nil {
		t.Fatalf("render --plan: %v", err)
	}
}

func TestRenderAllCommand(t *testing.T) {
	isolateCache(t)
	out := t.TempDir()

	err := execute(t, "render-all", "--only", "react,banner", "--width", "64", "--height", "64", "--layers", "1", "-j", "2", "-o", out)
	if err != nil {
		t.Fatalf("render-all: %v", err)
	}
	for _, name := range []string{"react-64x64-46192e59.png", "banner-64x64-d847ffd4.png"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	if err := execute(t, "render-all", "--only", "react,nope"); !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("unknown preset: got %v", err)
	}
}

func TestCacheClearCommand(t *testing.T) {
	dir := isolateCache(t)

	if err := execute(t, "cache", "clear"); err != nil {
		t.Fatalf("clear on missing dir: %v", err)
	}
	if err := execute(t, "render", "abcd", "--width", "32", "--height", "32", "--layers", "1", "-o", t.TempDir()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if n := countEntries(t, dir); n == 0 {
		t.Fatal("render left nothing in the cache")
	}
	if err := execute(t, "cache", "clear"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if n := countEntries(t, dir); n != 0 {
		t.Errorf("%d entries left after clear", n)
	}
}

func countEntries(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".json" {
			n++
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestListingCommands(t *testing.T) {
	isolateCache(t)
	for _, args := range [][]string{
		{"presets", "list"},
		{"shapes"},
		{"cache", "path"},
		{"completion", "bash"},
		{"completion", "zsh"},
	} {
		if err := execute(t, args...); err != nil {
			t.Errorf("%v: %v", args, err)
		}
	}
	if err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion accepted an unknown shell")
	}
}

func TestGenFlagsApply(t *testing.T) {
	tests := []struct {
		name string
		args []string
		base config.GenerationConfig
		want func(*config.GenerationConfig)
	}{
		{
			name: "untouched",
			base: config.Default(),
			want: func(*config.GenerationConfig) {},
		},
		{
			name: "size and palette",
			args: []string{"--width", "640", "--height", "320", "--scheme", "triade", "--variation", "pastel"},
			base: config.Default(),
			want: func(c *config.GenerationConfig) {
				c.Width, c.Height = 640, 320
				c.Scheme, c.Variation = palette.SchemeTriade, palette.VariationPastel
			},
		},
		{
			name: "grid resets shapes per layer",
			args: []string{"--grid", "6"},
			base: config.GenerationConfig{GridSize: 8, ShapesPerLayer: 40},
			want: func(c *config.GenerationConfig) { c.GridSize, c.ShapesPerLayer = 6, 0 },
		},
		{
			name: "grid with explicit shapes",
			args: []string{"--grid", "6", "--shapes", "10"},
			base: config.GenerationConfig{GridSize: 8, ShapesPerLayer: 40},
			want: func(c *config.GenerationConfig) { c.GridSize, c.ShapesPerLayer = 6, 10 },
		},
		{
			name: "variants and motif",
			args: []string{"--variants", "circle, star,,heart", "--motif", "cosmic-tree", "--rotation-offset", "15"},
			base: config.Default(),
			want: func(c *config.GenerationConfig) {
				c.Variants = []string{"circle", "star", "heart"}
				c.Motif, c.RotationOffset = "cosmic-tree", 15
			},
		},
		{
			name: "zero opacity is kept",
			args: []string{"--line-opacity", "0", "--fade", "0"},
			base: config.Default(),
			want: func(c *config.GenerationConfig) { c.LineOpacity, c.OpacityReduction = 0, 0 },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g genFlags
			cmd := &cobra.Command{Use: "x"}
			g.register(cmd.Flags())
			if err := cmd.Flags().Parse(tt.args); err != nil {
				t.Fatal(err)
			}

			got := tt.base
			got.Variants = append([]string(nil), tt.base.Variants...)
			g.apply(cmd.Flags(), &got)

			want := tt.base
			want.Variants = append([]string(nil), tt.base.Variants...)
			tt.want(&want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("config (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPresetListModel(t *testing.T) {
	store, err := config.DefaultStore()
	if err != nil {
		t.Fatal(err)
	}
	m := NewPresetListModel(store.All())
	m.Height = 2

	key := func(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }
	step := func(msg tea.Msg) tea.Cmd {
		next, cmd := m.Update(msg)
		m = next.(PresetListModel)
		return cmd
	}

	step(key("k"))
	if m.Cursor != 0 {
		t.Fatalf("cursor moved above the first row: %d", m.Cursor)
	}
	step(tea.KeyMsg{Type: tea.KeyDown})
	step(key("j"))
	if m.Cursor != 2 || m.Offset != 1 {
		t.Fatalf("cursor=%d offset=%d, want 2 and 1", m.Cursor, m.Offset)
	}
	if view := m.View(); !strings.Contains(view, store.All()[2].Name) || !strings.Contains(view, "[3/") {
		t.Errorf("view does not show the cursor row:\n%s", view)
	}

	if cmd := step(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Fatal("enter did not quit")
	}
	if m.Selected == nil || m.Selected.Name != store.All()[2].Name {
		t.Errorf("selected = %+v, want %s", m.Selected, store.All()[2].Name)
	}

	step(tea.WindowSizeMsg{Height: 3})
	if m.Height != 5 {
		t.Errorf("height = %d, want floor of 5", m.Height)
	}
}

func TestPresetListModelQuit(t *testing.T) {
	m := NewPresetListModel(nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || next.(PresetListModel).Selected != nil {
		t.Error("enter on an empty list should quit without a selection")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Error("esc did not quit")
	}
}

func TestTables(t *testing.T) {
	presets := []config.Preset{{Name: "tiny", Hash: "c0ffee0012", Config: config.GenerationConfig{Width: 64, Height: 48, Motif: "cosmic-tree"}}}
	out := presetTable(presets)
	for _, want := range []string{"tiny", "c0ffee00", "64x48", "cosmic-tree"} {
		if !strings.Contains(out, want) {
			t.Errorf("preset table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "c0ffee0012") {
		t.Error("preset table shows the full hash")
	}

	shapes := shapeTable()
	for _, want := range []string{"circle", "primitive", "merkaba"} {
		if !strings.Contains(shapes, want) {
			t.Errorf("shape table missing %q", want)
		}
	}
}

func TestStatsLine(t *testing.T) {
	line := statsLine(1024, 768, 1234567*time.Microsecond, true)
	for _, want := range []string{"1024x768", "1.235s", iconCached} {
		if !strings.Contains(line, want) {
			t.Errorf("stats line %q missing %q", line, want)
		}
	}
	if line := statsLine(1, 1, 0, false); !strings.Contains(line, iconFresh) {
		t.Errorf("stats line %q missing %q", line, iconFresh)
	}
}

func TestServeRunner(t *testing.T) {
	isolateCache(t)
	c := New(io.Discard, LogInfo)

	if _, err := c.serveRunner(context.Background(), serveOpts{redisURL: "http://localhost:6379"}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("non-redis URL: got %v", err)
	}

	r, err := c.serveRunner(context.Background(), serveOpts{prefix: "prod", ttl: time.Hour})
	if err != nil {
		t.Fatalf("serveRunner: %v", err)
	}
	defer r.Close()
	if r.TTL != time.Hour {
		t.Errorf("TTL = %v, want 1h", r.TTL)
	}
	if _, ok := r.Cache.(*cache.FileCache); !ok {
		t.Errorf("cache = %T, want *cache.FileCache", r.Cache)
	}
	key := r.Keyer.PlanKey("abcd", config.Default())
	if !strings.HasPrefix(key, "prod:plan:") {
		t.Errorf("plan key = %q, want prod:plan: prefix", key)
	}

	r, err = c.serveRunner(context.Background(), serveOpts{noCache: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.Cache.(*cache.NullCache); !ok {
		t.Errorf("cache = %T, want *cache.NullCache", r.Cache)
	}
}

func TestHelpers(t *testing.T) {
	if got := shortHash("abc"); got != "abc" {
		t.Errorf("shortHash(abc) = %q", got)
	}
	if got := shortHash("0123456789"); got != "01234567" {
		t.Errorf("shortHash = %q", got)
	}
	if got := joinOr(nil, "none"); got != "none" {
		t.Errorf("joinOr(nil) = %q", got)
	}
	if diff := cmp.Diff([]string{"a", "b"}, splitList(" a ,, b,")); diff != "" {
		t.Errorf("splitList (-want +got):\n%s", diff)
	}
}
