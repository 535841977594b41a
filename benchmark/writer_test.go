package benchmark

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogScale(t *testing.T) {
	tests := []struct {
		ms   float64
		want float64
	}{
		{ms: 0, want: 0},
		{ms: -3, want: 0},
		{ms: 1, want: 0},
		{ms: 10, want: 1},
		{ms: 100, want: 2},
		{ms: 0.01, want: -2},
	}

	for _, tc := range tests {
		assert.InDelta(t, tc.want, LogScale(tc.ms), 1e-12, "LogScale(%v)", tc.ms)
	}
}

type csvLine struct {
	size  int
	value float64
}

func readCSV(t *testing.T, path string) []csvLine {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(data), "\n"), "file should end with a newline")

	var lines []csvLine
	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		fields := strings.Split(line, ", ")
		require.Len(t, fields, 2, "line %q", line)

		size, err := strconv.Atoi(fields[0])
		require.NoError(t, err)
		value, err := strconv.ParseFloat(fields[1], 64)
		require.NoError(t, err)

		lines = append(lines, csvLine{size: size, value: value})
	}

	return lines
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	series := Series{Points: []Point{{DatasetSize: 10, ElapsedMs: 0.0}, {DatasetSize: 20, ElapsedMs: 100.0}}}

	require.NoError(t, WriteCSV(series, path))

	lines := readCSV(t, path)
	require.Len(t, lines, 2)
	assert.Equal(t, 10, lines[0].size)
	assert.Equal(t, 0.0, lines[0].value)
	assert.Equal(t, 20, lines[1].size)
	assert.InDelta(t, 2.0, lines[1].value, 1e-12)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "10, 0\n20, "), "got %q", string(data))
}

func TestWriteCSVFractional(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	series := Series{Points: []Point{{DatasetSize: 1000, ElapsedMs: 0.5}, {DatasetSize: 2000, ElapsedMs: -1}}}

	require.NoError(t, WriteCSV(series, path))

	lines := readCSV(t, path)
	require.Len(t, lines, 2)
	assert.InDelta(t, -0.30103, lines[0].value, 1e-5)
	assert.Equal(t, 0.0, lines[1].value)
}

func TestWriteCSVReplacesPreviousContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	first := Series{Points: []Point{{DatasetSize: 10, ElapsedMs: 10}, {DatasetSize: 20, ElapsedMs: 100}, {DatasetSize: 30, ElapsedMs: 1000}}}
	second := Series{Points: []Point{{DatasetSize: 5, ElapsedMs: 10}}}

	require.NoError(t, WriteCSV(first, path))
	require.NoError(t, WriteCSV(second, path))

	lines := readCSV(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].size)
	assert.InDelta(t, 1.0, lines[0].value, 1e-12)
}

func TestWriteCSVEmptySeries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, WriteCSV(Series{}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteCSVUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	err := WriteCSV(Series{Points: []Point{{DatasetSize: 1, ElapsedMs: 1}}}, path)
	assert.Error(t, err)
}

func TestResultFileName(t *testing.T) {
	p := SweepParams{BlockSize: 1000, BlockCount: 50, Shape: ShapeRandom, Name: "LLRB"}

	assert.Equal(t, "1000x50_random_values_LLRB_results.csv", ResultFileName(p))
	assert.Equal(t, "1000x50_random_values_LLRB_results.csv", ResultPath("", p))
	assert.Equal(t, filepath.Join("out", "1000x50_random_values_LLRB_results.csv"), ResultPath("out", p))
}
