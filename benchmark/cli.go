package benchmark

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

// CommonOpts represents common flags for every harness binary
type CommonOpts struct {
	Verbose  []bool `short:"v" long:"verbose" description:"Show verbose debug information (-v - debug, -vv - trace)"`
	Quiet    bool   `short:"Q" long:"quiet" description:"be quiet and print as less information as possible"`
	RandSeed int64  `short:"s" long:"randseed" description:"Seed used for random dataset generation, 0 seeds every sweep from the clock" required:"false" default:"0"`
}

// CLI is a wrapper for go-flags library
type CLI struct {
	parser     *flags.Parser
	commonOpts *CommonOpts
}

// Init initializes CLI with given application name and commonOptsPointer.
func (cli *CLI) Init(applicationName string, commonOptsPointer *CommonOpts) {
	cli.parser = flags.NewNamedParser(applicationName, flags.Default)
	cli.commonOpts = commonOptsPointer
}

// SetApplicationName sets application name.
func (cli *CLI) SetApplicationName(name string) {
	cli.parser.Name = name
}

// addDefaultGroup adds default group with common options.
func (cli *CLI) addDefaultGroup(commonOptsPointer *CommonOpts) {
	_, err := cli.parser.AddGroup("Common options", "CommonOptions represents common flags for every test", commonOptsPointer)
	handleAddGroupError(err)
}

// AddFlagGroup adds flags in struct flagsPtr(should be pointer!) to given group.
func (cli *CLI) AddFlagGroup(groupName, groupDescription string, flagsPtr interface{}) {
	_, err := cli.parser.AddGroup(groupName, groupDescription, flagsPtr)
	handleAddGroupError(err)
}

// handleAddGroupError handles error from AddGroup.
func handleAddGroupError(err error) {
	if err != nil {
		FatalError(err.Error())
	}
}

// checkCommonOpts checks common options.
func (cli *CLI) checkCommonOpts() error {
	if cli.commonOpts.Quiet && len(cli.commonOpts.Verbose) > 0 {
		return errors.New("--quiet and --verbose are mutually exclusive")
	}

	return nil
}

// SetUsage sets usage.
func (cli *CLI) SetUsage(usage string) {
	cli.parser.Usage = usage
}

// SetDescription sets description.
func (cli *CLI) SetDescription(description string) {
	cli.parser.Usage = cli.parser.Usage + "\n" + description
}

// ParseArgs parses given arguments, returns leftover positional arguments.
// Help requests are reported as an error wrapping flags.ErrHelp.
func (cli *CLI) ParseArgs(args []string) ([]string, error) {
	cli.addDefaultGroup(cli.commonOpts)

	values, err := cli.parser.ParseArgs(args)
	if err != nil {
		var flagsError *flags.Error
		if errors.As(err, &flagsError) && flagsError.Type == flags.ErrHelp {
			return nil, fmt.Errorf("%w", flags.ErrHelp)
		}

		return nil, err
	}

	if err = cli.checkCommonOpts(); err != nil {
		return nil, err
	}

	return values, nil
}

// Parse initializes CLI arguments from os.Args, exiting on help or bad flags.
func (cli *CLI) Parse() []string {
	values, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flags.ErrHelp) {
			os.Exit(0)
		}
		fmt.Println(err)
		os.Exit(1)
	}

	return values
}
