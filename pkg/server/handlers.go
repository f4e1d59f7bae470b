package server

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/hashart/pkg/config"
	hserrors "github.com/matzehuels/hashart/pkg/errors"
	"github.com/matzehuels/hashart/pkg/palette"
	"github.com/matzehuels/hashart/pkg/pipeline"
	"github.com/matzehuels/hashart/pkg/shapes"
)

type shapeInfo struct {
	Name string `json:"name"`
	Tier string `json:"tier"`
}

func (s *Server) handleShapes(w http.ResponseWriter, r *http.Request) {
	kinds := shapes.Kinds()
	out := make([]shapeInfo, len(kinds))
	for i, k := range kinds {
		out[i] = shapeInfo{Name: k.String(), Tier: k.Tier().String()}
	}
	writeJSON(w, http.StatusOK, out)
}

type presetInfo struct {
	Name   string                  `json:"name"`
	Hash   string                  `json:"hash"`
	Config config.GenerationConfig `json:"config"`
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	all := s.store.All()
	out := make([]presetInfo, len(all))
	for i, p := range all {
		out[i] = presetInfo{Name: p.Name, Hash: p.Hash, Config: p.Config}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePresetArt(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Get(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.checkCanvas(p.Config); err != nil {
		s.writeError(w, r, err)
		return
	}
	job := pipeline.Job{Hash: p.Hash, Label: p.Name, Config: p.Config, Refresh: r.URL.Query().Has("refresh")}
	s.render(w, r, job)
}

func (s *Server) handleArt(w http.ResponseWriter, r *http.Request) {
	job, err := s.jobFor(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, job)
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	job, err := s.jobFor(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	comp, _, err := s.runner.Plan(r.Context(), job)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comp)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, job pipeline.Job) {
	ctx, cancel := context.WithTimeout(r.Context(), s.opts.RenderTimeout)
	defer cancel()
	res, err := s.runner.Generate(ctx, job)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writePNG(w, res.PNG, res.CacheHit)
}

// jobFor builds a job from the hash path parameter and query overrides,
// starting from ?preset= when given and the default config otherwise.
func (s *Server) jobFor(r *http.Request) (pipeline.Job, error) {
	q := r.URL.Query()
	cfg := config.Default()
	if name := q.Get("preset"); name != "" {
		p, err := s.store.Get(name)
		if err != nil {
			return pipeline.Job{}, err
		}
		cfg = p.Config
	}
	if err := applyQuery(&cfg, q); err != nil {
		return pipeline.Job{}, err
	}
	if err := s.checkCanvas(cfg); err != nil {
		return pipeline.Job{}, err
	}
	return pipeline.Job{
		Hash:    strings.ToLower(chi.URLParam(r, "hash")),
		Config:  cfg,
		Refresh: q.Has("refresh"),
	}, nil
}

// checkCanvas rejects canvases larger than MaxPixels. Non-positive sizes
// pass through to config validation.
func (s *Server) checkCanvas(cfg config.GenerationConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil
	}
	if cfg.Width > s.opts.MaxPixels/cfg.Height {
		return hserrors.New(hserrors.ErrCodeInvalidConfig,
			"canvas %dx%d exceeds the %d pixel limit", cfg.Width, cfg.Height, s.opts.MaxPixels)
	}
	return nil
}

func applyQuery(cfg *config.GenerationConfig, q url.Values) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{"width", &cfg.Width},
		{"height", &cfg.Height},
		{"grid", &cfg.GridSize},
		{"layers", &cfg.Layers},
		{"shapes", &cfg.ShapesPerLayer},
	}
	for _, f := range ints {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return hserrors.Wrap(hserrors.ErrCodeInvalidInput, err, "%s must be an integer", f.name)
		}
		*f.dst = n
	}
	if q.Get("grid") != "" && q.Get("shapes") == "" {
		// re-derive from the new grid
		cfg.ShapesPerLayer = 0
	}

	if v := q.Get("variants"); v != "" {
		cfg.Variants = strings.Split(v, ",")
	}
	if q.Has("motif") {
		cfg.Motif = q.Get("motif")
	}
	if v := q.Get("scheme"); v != "" {
		cfg.Scheme = palette.Scheme(v)
	}
	if v := q.Get("variation"); v != "" {
		cfg.Variation = palette.Variation(v)
	}
	return nil
}
