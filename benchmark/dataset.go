package benchmark

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/acronis/perfkit-insert-bench/logger"
)

// Shape is the structural pattern of a generated dataset
type Shape string

const (
	ShapeRandom  Shape = "random"  // ShapeRandom is a sequence of pairwise-distinct random values
	ShapeOrdered Shape = "ordered" // ShapeOrdered is the ascending run 1..n
)

var (
	// ErrUnknownShape is returned for shape names other than random and ordered
	ErrUnknownShape = errors.New("unknown dataset shape")
	// ErrDatasetSize signals a generated dataset that does not hold the requested number of values
	ErrDatasetSize = errors.New("dataset size invariant violated")
)

// Shapes lists every supported shape in driver order
var Shapes = []Shape{ShapeRandom, ShapeOrdered}

// ParseShape converts a shape name to Shape
func ParseShape(s string) (Shape, error) {
	switch Shape(strings.ToLower(strings.TrimSpace(s))) {
	case ShapeRandom:
		return ShapeRandom, nil
	case ShapeOrdered:
		return ShapeOrdered, nil
	default:
		return "", fmt.Errorf("%w: '%s', supported shapes are: random|ordered", ErrUnknownShape, s)
	}
}

// ParseShapes parses a comma separated list of shapes, keeping the given order
func ParseShapes(list string) ([]Shape, error) {
	var shapes []Shape
	for _, name := range SplitList(list) {
		shape, err := ParseShape(name)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, shape)
	}

	if len(shapes) == 0 {
		return nil, fmt.Errorf("%w: empty shape list", ErrUnknownShape)
	}

	return shapes, nil
}

// Dataset is an input sequence for a single epoch
type Dataset []int32

// Generator produces datasets for epochs
type Generator struct {
	rand   *rand.Rand
	logger logger.Logger
}

// NewGenerator returns a Generator drawing random values from r
func NewGenerator(r *rand.Rand, l logger.Logger) *Generator {
	return &Generator{rand: r, logger: l}
}

// GenerateRandom returns numValues pairwise-distinct values from [0, MaxInt32] and the number of
// draws it took. Values are kept in the order they were first drawn.
//
// Draws are rejection-sampled without a retry cap: the loop never ends if numValues
// exceeds the 2^31 distinct non-negative int32 values.
func (g *Generator) GenerateRandom(numValues int) (Dataset, int) {
	if numValues <= 0 {
		return Dataset{}, 0
	}

	seen := NewSet[int32](numValues)
	values := make(Dataset, 0, numValues)
	attempts := 0
	for len(values) < numValues {
		attempts++
		if v := g.rand.Int31(); seen.Add(v) {
			values = append(values, v)
		}
	}

	return values, attempts
}

// GenerateOrdered returns 1, 2, ..., numValues
func GenerateOrdered(numValues int) Dataset {
	if numValues <= 0 {
		return Dataset{}
	}

	values := make(Dataset, numValues)
	for i := range values {
		values[i] = int32(i + 1)
	}

	return values
}

// Generate returns a dataset of the given shape and size
func (g *Generator) Generate(shape Shape, numValues int) (Dataset, error) {
	var ds Dataset

	switch shape {
	case ShapeRandom:
		var attempts int
		ds, attempts = g.GenerateRandom(numValues)
		if g.logger != nil {
			g.logger.Info("randomAttempts: %s", humanize.Comma(int64(attempts)))
		}
	case ShapeOrdered:
		ds = GenerateOrdered(numValues)
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownShape, shape)
	}

	if want := max(numValues, 0); len(ds) != want {
		return nil, fmt.Errorf("%w: %s dataset holds %d values, want %d", ErrDatasetSize, shape, len(ds), want)
	}

	return ds, nil
}
