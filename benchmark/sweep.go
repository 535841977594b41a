package benchmark

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/acronis/perfkit-insert-bench/logger"
)

// ErrInvalidParams is returned for sweep parameters that cannot describe a sweep
var ErrInvalidParams = errors.New("invalid sweep parameters")

// SweepParams are the immutable parameters of one sweep
type SweepParams struct {
	BlockSize  int    // per-epoch growth of the dataset
	BlockCount int    // number of epochs
	Shape      Shape  // dataset shape
	Name       string // label of the implementation under test, used for output naming
}

// Validate checks that the parameters describe a runnable sweep
func (p SweepParams) Validate() error {
	switch {
	case p.BlockSize < 1:
		return fmt.Errorf("%w: block size should be > 0, got %d", ErrInvalidParams, p.BlockSize)
	case p.BlockCount < 1:
		return fmt.Errorf("%w: block count should be > 0, got %d", ErrInvalidParams, p.BlockCount)
	case p.Name == "":
		return fmt.Errorf("%w: implementation name is empty", ErrInvalidParams)
	}

	if _, err := ParseShape(string(p.Shape)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	return nil
}

// Label returns "<shape>/<name>"
func (p SweepParams) Label() string {
	return fmt.Sprintf("%s/%s", p.Shape, p.Name)
}

// Point is a single measurement of a sweep
type Point struct {
	DatasetSize int
	ElapsedMs   float64
}

// Series holds one point per epoch in ascending epoch order
type Series struct {
	Params SweepParams
	Points []Point
}

// Keys returns dataset sizes in series order
func (s Series) Keys() []int {
	keys := make([]int, len(s.Points))
	for i, p := range s.Points {
		keys[i] = p.DatasetSize
	}

	return keys
}

// TotalMs returns the sum of all measured times
func (s Series) TotalMs() float64 {
	var total float64
	for _, p := range s.Points {
		total += p.ElapsedMs
	}

	return total
}

// Runner executes sweeps one epoch at a time
type Runner struct {
	Generator *Generator
	Logger    logger.Logger
}

// NewRunner creates a Runner
func NewRunner(g *Generator, l logger.Logger) *Runner {
	return &Runner{Generator: g, Logger: l}
}

// RunSweep measures insertion of BlockSize*epoch values for epoch = 1..BlockCount.
// Each epoch generates its dataset only after the previous measurement has finished,
// so at most one dataset and one set instance are alive at a time.
func (r *Runner) RunSweep(impl Implementation, params SweepParams) (Series, error) {
	if err := params.Validate(); err != nil {
		return Series{}, err
	}
	if impl.New == nil {
		return Series{}, fmt.Errorf("%w: implementation %s has no factory", ErrInvalidParams, impl.Name)
	}

	series := Series{Params: params, Points: make([]Point, 0, params.BlockCount)}

	for epoch := 1; epoch <= params.BlockCount; epoch++ {
		numValues := params.BlockSize * epoch

		if r.Logger != nil {
			if params.Shape == ShapeOrdered {
				r.Logger.Info("Epoch: %d. Max value: %s", epoch, humanize.Comma(int64(numValues)))
			} else {
				r.Logger.Info("Epoch: %d. Number of values: %s", epoch, humanize.Comma(int64(numValues)))
			}
		}

		ds, err := r.Generator.Generate(params.Shape, numValues)
		if err != nil {
			return Series{}, fmt.Errorf("epoch %d: %w", epoch, err)
		}

		elapsed := Measure(impl.New, ds)
		if r.Logger != nil {
			r.Logger.Debug("epoch %d took %.3f ms", epoch, elapsed)
		}

		series.Points = append(series.Points, Point{DatasetSize: numValues, ElapsedMs: elapsed})
	}

	return series, nil
}
