// Package benchmark is a library to measure how long it takes to insert growing
// volumes of integers into interchangeable set implementations.
//
// A sweep runs BlockCount epochs; epoch i generates a dataset of BlockSize*i values
// (pairwise-distinct random values or the ascending run 1..n), inserts it into a fresh
// set and records the elapsed milliseconds. The resulting Series is written as a CSV of
// "<datasetSize>, <log10 ms>" lines.
//
// Example:
//
//	runner := benchmark.NewRunner(benchmark.NewGenerator(rand.New(rand.NewSource(1)), nil), nil)
//	impl, _ := benchmark.Lookup("LLRB")
//	series, err := runner.RunSweep(impl, benchmark.SweepParams{
//	    BlockSize:  1000,
//	    BlockCount: 50,
//	    Shape:      benchmark.ShapeRandom,
//	    Name:       impl.Name,
//	})
//	if err == nil {
//	    err = benchmark.WriteCSV(series, benchmark.ResultPath(".", series.Params))
//	}
//
// Set implementations register themselves with Register from an init() function, the
// same way database connectors do, and binaries pull them in with a blank import.
//
// The CLI wrapper over go-flags provides common options (verbose, quiet, randseed);
// binaries add their own flag groups through Benchmark.AddOpts.
package benchmark
