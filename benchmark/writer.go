package benchmark

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

// LogScale maps elapsed milliseconds to log10(ms), and anything not positive to 0
func LogScale(ms float64) float64 {
	if ms <= 0 {
		return 0
	}

	return math.Log10(ms)
}

// ResultFileName returns "{blockSize}x{blockCount}_{shape}_values_{name}_results.csv"
func ResultFileName(p SweepParams) string {
	return fmt.Sprintf("%dx%d_%s_values_%s_results.csv", p.BlockSize, p.BlockCount, p.Shape, p.Name)
}

// ResultPath joins dir and ResultFileName
func ResultPath(dir string, p SweepParams) string {
	if dir == "" {
		dir = "."
	}

	return filepath.Join(dir, ResultFileName(p))
}

// WriteCSV replaces the file at path with one "<datasetSize>, <log10 ms>" line per point.
// The old file is removed first and the new one is not written atomically.
func WriteCSV(series Series, path string) (err error) {
	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot remove old results %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create results %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot close results %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, p := range series.Points {
		if _, err = fmt.Fprintf(w, "%d, %s\n", p.DatasetSize, strconv.FormatFloat(LogScale(p.ElapsedMs), 'f', -1, 64)); err != nil {
			return fmt.Errorf("cannot write results %s: %w", path, err)
		}
	}

	if err = w.Flush(); err != nil {
		return fmt.Errorf("cannot flush results %s: %w", path, err)
	}

	return nil
}
