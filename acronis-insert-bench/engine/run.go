package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/acronis/perfkit-insert-bench/benchmark"
)

// sweep is one (shape, implementation) combination of a run
type sweep struct {
	impl   benchmark.Implementation
	params benchmark.SweepParams
}

// buildPlan enumerates sweeps with the shape as the outer loop and the implementation as the inner one
func buildPlan(opts SweepOpts) ([]sweep, error) {
	shapes, err := benchmark.ParseShapes(opts.Shapes)
	if err != nil {
		return nil, err
	}

	impls, err := benchmark.LookupList(opts.Implementations)
	if err != nil {
		return nil, err
	}

	var plan []sweep
	for _, shape := range shapes {
		for _, impl := range impls {
			params := benchmark.SweepParams{
				BlockSize:  opts.BlockSize,
				BlockCount: opts.BlockCount,
				Shape:      shape,
				Name:       impl.Name,
			}
			if err = params.Validate(); err != nil {
				return nil, err
			}
			plan = append(plan, sweep{impl: impl, params: params})
		}
	}

	return plan, nil
}

// Run executes every sweep of the plan in order, one at a time.
// The first failing sweep stops the run.
func Run(ctx context.Context, b *benchmark.Benchmark, opts *TestOpts) error {
	plan, err := buildPlan(opts.SweepOpts)
	if err != nil {
		return err
	}

	dir := opts.SweepOpts.OutputDir
	if dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create output dir %s: %w", dir, err)
		}
	}

	var d *InsertBenchData
	if b.Vault != nil {
		d, _ = b.Vault.(*InsertBenchData)
	}

	for i, s := range plan {
		b.Logger.Info("sweep %d/%d: %s values into %s, %d epochs of %d", i+1, len(plan),
			s.params.Shape, s.params.Name, s.params.BlockCount, s.params.BlockSize)

		report, err := b.RunSweep(i, s.impl, s.params, dir)
		if err != nil {
			return err
		}

		if d != nil && d.Store != nil {
			if err = d.Store.SaveSeries(ctx, d.RunID, report.Series); err != nil {
				return err
			}
		}
	}

	return nil
}
