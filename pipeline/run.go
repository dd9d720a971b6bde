package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RunFile loads and executes a single pipeline file.
func RunFile(ctx context.Context, path string, opts ...LoaderOption) (*Outcome, error) {
	def, err := NewParser().ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p, err := NewLoader(opts...).Load(def)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	out, err := p.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// RunFiles loads and executes several pipeline files, at most concurrency at
// a time (0 means no limit). Outcomes keep the order of paths.
//
// Concurrency here is across independent pipelines only: each gets its own
// Loader and Lua state, and element evaluation within a pipeline stays
// strictly single-threaded. The first failure cancels the remaining work.
func RunFiles(ctx context.Context, paths []string, concurrency int, opts ...LoaderOption) ([]Outcome, error) {
	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	outcomes := make([]Outcome, len(paths))
	for idx, path := range paths {
		idx, path := idx, path
		g.Go(func() error {
			out, err := RunFile(ctx, path, opts...)
			if err != nil {
				return err
			}
			outcomes[idx] = *out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
