package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "single", in: "LLRB", want: []string{"LLRB"}},
		{name: "pair", in: "LLRB,BinarySearchTree", want: []string{"LLRB", "BinarySearchTree"}},
		{name: "blanks", in: " random , ,ordered ", want: []string{"random", "ordered"}},
		{name: "empty", in: "", want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitList(tc.in))
		})
	}
}

func TestDumpOptions(t *testing.T) {
	type inner struct {
		Shapes string
	}
	type opts struct {
		Verbose   []bool
		BlockSize int
		Inner     inner
		hidden    int //nolint:unused
	}

	got := DumpOptions(&opts{Verbose: []bool{true, true}, BlockSize: 1000, Inner: inner{Shapes: "random"}})

	assert.Equal(t, "Verbose => 2\nBlockSize => 1000\nInner =>\n  Shapes => \"random\"", got)
}

func TestDumpOptionsNil(t *testing.T) {
	var o *CommonOpts
	assert.Equal(t, "nil", DumpOptions(o))
}
