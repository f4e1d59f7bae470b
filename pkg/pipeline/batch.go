package pipeline

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Batch runs jobs with at most parallel in flight (GOMAXPROCS when <= 0).
// Results keep the order of jobs. The first failure cancels the rest.
func (r *Runner) Batch(ctx context.Context, jobs []Job, parallel int) ([]*Result, error) {
	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}
	results := make([]*Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			res, err := r.Generate(ctx, job)
			if err != nil {
				return fmt.Errorf("%s: %w", jobName(job), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func jobName(j Job) string {
	if j.Label != "" {
		return j.Label
	}
	return j.Hash
}
