package benchmark

import (
	"errors"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIParseArgs(t *testing.T) {
	var opts CommonOpts
	var cli CLI
	cli.Init("test", &opts)

	rest, err := cli.ParseArgs([]string{"-v", "--randseed=3", "leftover"})
	require.NoError(t, err)

	assert.Equal(t, []string{"leftover"}, rest)
	assert.Len(t, opts.Verbose, 1)
	assert.Equal(t, int64(3), opts.RandSeed)
}

func TestCLIParseArgsUnknownFlag(t *testing.T) {
	var opts CommonOpts
	var cli CLI
	cli.Init("test", &opts)
	cli.parser.Options &^= flags.PrintErrors

	_, err := cli.ParseArgs([]string{"--no-such-flag"})
	assert.Error(t, err)
}

func TestCLIParseArgsHelp(t *testing.T) {
	var opts CommonOpts
	var cli CLI
	cli.Init("test", &opts)
	cli.parser.Options &^= flags.PrintErrors

	_, err := cli.ParseArgs([]string{"--help"})
	assert.True(t, errors.Is(err, flags.ErrHelp))
}

func TestCLISetUsage(t *testing.T) {
	var opts CommonOpts
	var cli CLI
	cli.Init("test", &opts)

	cli.SetApplicationName("insert-bench")
	cli.SetUsage("[OPTIONS]")
	cli.SetDescription("measures insertion")

	assert.Equal(t, "insert-bench", cli.parser.Name)
	assert.Equal(t, "[OPTIONS]\nmeasures insertion", cli.parser.Usage)
}
