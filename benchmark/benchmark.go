package benchmark

import (
	"fmt"
	"os"

	"github.com/acronis/perfkit-insert-bench/logger"
)

// TestOpts represents all user specified flags
type TestOpts interface{}

// AnyData represents any data
type AnyData interface{}

// SweepReport describes a finished sweep
type SweepReport struct {
	Series Series
	Path   string // CSV file the series was written to
}

// Benchmark is used for running sweeps
// AddOpts is called once by InitOpts and should register binary specific flag groups
// Init is called once after the options are parsed
// Finish is called once after all sweeps and should release whatever Init acquired
// PreExit is called right before the process exits through Exit
type Benchmark struct {
	AddOpts         func() TestOpts
	Init            func()
	Finish          func()
	PreExit         func()
	PrintReports    func(reports []SweepReport)
	CommonOpts      CommonOpts
	Cli             CLI
	TestOpts        TestOpts
	OptsInitialized bool
	Logger          logger.Logger

	CliArgs []string
	Vault   AnyData

	Randomizer *Randomizer

	Reports []SweepReport
}

// NewBenchmark creates a new Benchmark instance with default values
func NewBenchmark() *Benchmark {
	b := Benchmark{
		AddOpts: func() TestOpts {
			var testOpts TestOpts

			return &testOpts
		},
		Init: func() {
		},
		Finish: func() {
		},
		PreExit: func() {
		},
		OptsInitialized: false,
	}

	b.PrintReports = func(reports []SweepReport) {
		PrintSummary(os.Stdout, reports)
	}

	b.Logger = logger.NewPlaneLogger(logger.LevelInfo, false)
	b.Randomizer = NewRandomizer(0)
	b.Cli.Init(os.Args[0], &b.CommonOpts)

	return &b
}

// InitOpts parses os.Args and initializes the logger and randomizer
func (b *Benchmark) InitOpts() {
	if b.OptsInitialized {
		return
	}
	b.TestOpts = b.AddOpts()
	b.CliArgs = b.Cli.Parse()
	b.applyCommonOpts()
}

// InitOptsFromArgs is InitOpts for explicit arguments, returning parse errors instead of exiting
func (b *Benchmark) InitOptsFromArgs(args []string) error {
	if b.OptsInitialized {
		return nil
	}
	b.TestOpts = b.AddOpts()

	values, err := b.Cli.ParseArgs(args)
	if err != nil {
		return err
	}
	b.CliArgs = values
	b.applyCommonOpts()

	return nil
}

func (b *Benchmark) applyCommonOpts() {
	b.OptsInitialized = true

	level := logger.LevelInfo + logger.LogLevel(len(b.CommonOpts.Verbose))
	if level > logger.LevelTrace {
		level = logger.LevelTrace
	}
	if b.CommonOpts.Quiet {
		level = logger.LevelError
	}
	b.Logger.SetLevel(level)

	b.Randomizer = NewRandomizer(b.CommonOpts.RandSeed)
}

// SetUsage sets usage information
func (b *Benchmark) SetUsage(usage string) {
	b.Cli.SetUsage(usage)
}

// NewRunner returns a Runner for the sweep with the given index, logging with the sweep label
func (b *Benchmark) NewRunner(sweepIndex int, params SweepParams) *Runner {
	l := logger.NewSweepLogger(b.Logger, params.Label())

	return NewRunner(NewGenerator(b.Randomizer.Source(sweepIndex), l), l)
}

// RunSweep runs one sweep and writes its CSV into dir
func (b *Benchmark) RunSweep(sweepIndex int, impl Implementation, params SweepParams, dir string) (SweepReport, error) {
	series, err := b.NewRunner(sweepIndex, params).RunSweep(impl, params)
	if err != nil {
		return SweepReport{}, fmt.Errorf("sweep %s: %w", params.Label(), err)
	}

	path := ResultPath(dir, params)
	if err = WriteCSV(series, path); err != nil {
		return SweepReport{}, fmt.Errorf("sweep %s: %w", params.Label(), err)
	}
	b.Logger.Debug("sweep %s written to %s", params.Label(), path)

	report := SweepReport{Series: series, Path: path}
	b.Reports = append(b.Reports, report)

	return report, nil
}

// Exit calls os.Exit() and sets 127 exit code if there is a message (+ args) passed, otherwise just exit with 0 (successful exit)
func (b *Benchmark) Exit(fmtAndArgs ...interface{}) {
	if len(fmtAndArgs) == 0 {
		b.PreExit()
		os.Exit(0)
	}

	// Assume the first argument, if present, is the format string
	fmtStr, ok := fmtAndArgs[0].(string)
	if !ok {
		fmt.Println(fmtAndArgs[0])
		b.PreExit()
		os.Exit(exitCodeFatal)
	}

	if len(fmtAndArgs) > 1 {
		fmt.Printf(fmtStr, fmtAndArgs[1:]...)
	} else {
		fmt.Print(fmtStr)
	}

	fmt.Println()
	b.PreExit()
	os.Exit(exitCodeFatal)
}
