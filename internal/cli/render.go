package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hashart/pkg/config"
	"github.com/matzehuels/hashart/pkg/errors"
	"github.com/matzehuels/hashart/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	preset  string // start from a named preset
	out     string // output directory
	label   string // file name label
	plan    bool   // print the placement as JSON instead of rendering
	noCache bool   // bypass the local cache
	refresh bool   // re-render even when cached
	gen     genFlags
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [hash]",
		Short: "Render a hash (or a preset) to PNG",
		Long: `Render derives a composition from a hex hash and writes it as a PNG.

Start from a preset with --preset; any generation flag overrides the preset's
value. Without --preset the reference configuration is used.`,
		Example: `  hashart render 46192e59d42f741c761cbea79462a8b3815dd905
  hashart render --preset banner --scheme triade
  hashart render cafebabe --width 512 --height 512 --motif cosmic-tree
  hashart render cafebabe --plan > plan.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := c.renderJob(cmd, args, &opts)
			if err != nil {
				return err
			}
			if opts.plan {
				return c.runPlan(cmd.Context(), job, opts)
			}
			return c.runRender(cmd.Context(), job, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "start from a named preset")
	cmd.Flags().StringVarP(&opts.out, "out", "o", defaultOutDir, "output directory")
	cmd.Flags().StringVarP(&opts.label, "label", "l", "", "label used in the file name")
	cmd.Flags().BoolVar(&opts.plan, "plan", false, "print the placement as JSON instead of rendering")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	opts.gen.register(cmd.Flags())

	return cmd
}

// renderJob resolves the hash, base config and flag overrides into a job.
func (c *CLI) renderJob(cmd *cobra.Command, args []string, opts *renderOpts) (pipeline.Job, error) {
	job := pipeline.Job{Config: config.Default(), Label: opts.label, Refresh: opts.refresh}

	if opts.preset != "" {
		store, err := c.loadStore()
		if err != nil {
			return job, err
		}
		p, err := store.Get(opts.preset)
		if err != nil {
			return job, err
		}
		job.Hash, job.Config = p.Hash, p.Config
		if job.Label == "" {
			job.Label = p.Name
		}
	}
	if len(args) == 1 {
		job.Hash = strings.ToLower(args[0])
	}
	if job.Hash == "" {
		return job, errors.New(errors.ErrCodeInvalidInput, "a hash argument or --preset is required")
	}

	opts.gen.apply(cmd.Flags(), &job.Config)
	return job, nil
}

func (c *CLI) runRender(ctx context.Context, job pipeline.Job, opts renderOpts) error {
	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	ctx = withLogger(ctx, c.Logger)
	logger := loggerFromContext(ctx)
	logger.Debug("render", "hash", job.Hash, "label", job.Label)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", shortHash(job.Hash)))
	spinner.Start()
	res, err := runner.Generate(ctx, job)
	spinner.Stop()
	if err != nil {
		return err
	}

	cfg := job.Config.WithDefaults()
	path, err := pipeline.Save(res.PNG, opts.out, job.Hash, job.Label, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", StyleHighlight.Render(shortHash(job.Hash)))
	printFile(path)
	printStats(cfg.Width, cfg.Height, res.Duration, res.CacheHit)
	return nil
}

func (c *CLI) runPlan(ctx context.Context, job pipeline.Job, opts renderOpts) error {
	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	comp, cached, err := runner.Plan(ctx, job)
	if err != nil {
		return err
	}
	c.Logger.Debug("plan", "hash", job.Hash, "shapes", comp.ShapeCount(), "cached", cached)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(comp)
}

// renderAllOpts holds the command-line flags for the render-all command.
type renderAllOpts struct {
	out      string
	only     string
	parallel int
	noCache  bool
	refresh  bool
	gen      genFlags
}

// renderAllCommand creates the render-all command.
func (c *CLI) renderAllCommand() *cobra.Command {
	var opts renderAllOpts

	cmd := &cobra.Command{
		Use:   "render-all",
		Short: "Render every preset in parallel",
		Long: `Render-all renders each preset to the output directory. Generation flags
apply to every preset. The first failure stops the batch.`,
		Example: `  hashart render-all -o out/
  hashart render-all --only react,banner --parallel 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := c.presetJobs(cmd, &opts)
			if err != nil {
				return err
			}
			return c.runRenderAll(cmd.Context(), jobs, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", defaultOutDir, "output directory")
	cmd.Flags().StringVar(&opts.only, "only", "", "comma-separated preset names to render")
	cmd.Flags().IntVarP(&opts.parallel, "parallel", "j", 0, "concurrent renders (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	opts.gen.register(cmd.Flags())

	return cmd
}

// presetJobs builds one job per selected preset.
func (c *CLI) presetJobs(cmd *cobra.Command, opts *renderAllOpts) ([]pipeline.Job, error) {
	store, err := c.loadStore()
	if err != nil {
		return nil, err
	}

	var presets []config.Preset
	if opts.only == "" {
		presets = store.All()
	} else {
		for _, name := range splitList(opts.only) {
			p, err := store.Get(name)
			if err != nil {
				return nil, err
			}
			presets = append(presets, p)
		}
	}

	jobs := make([]pipeline.Job, len(presets))
	for i, p := range presets {
		jobs[i] = pipeline.Job{Hash: p.Hash, Label: p.Name, Config: p.Config, Refresh: opts.refresh}
		opts.gen.apply(cmd.Flags(), &jobs[i].Config)
	}
	return jobs, nil
}

func (c *CLI) runRenderAll(ctx context.Context, jobs []pipeline.Job, opts renderAllOpts) error {
	if len(jobs) == 0 {
		printWarning("No presets to render")
		return nil
	}

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d presets...", len(jobs)))
	spinner.Start()
	results, err := runner.Batch(ctx, jobs, opts.parallel)
	if err != nil {
		spinner.StopWithError("Batch failed")
		return err
	}
	spinner.Stop()

	hits := 0
	for _, res := range results {
		cfg := res.Job.Config.WithDefaults()
		path, err := pipeline.Save(res.PNG, opts.out, res.Job.Hash, res.Job.Label, cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
		printFile(path)
		if res.CacheHit {
			hits++
		}
	}

	printSuccess("Rendered %d presets", len(results))
	printDetail("%d from cache", hits)
	prog.done(fmt.Sprintf("Rendered %d presets", len(results)))
	return nil
}
