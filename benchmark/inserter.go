package benchmark

import (
	"time"
)

// IntSet is everything the harness needs from a set under test.
// The return value of an insertion, if any, is ignored.
type IntSet interface {
	Insert(v int32)
}

// Factory constructs a fresh, empty set under test
type Factory func() IntSet

// Implementation is a named set under test
type Implementation struct {
	Name string
	New  Factory
}

// Measure inserts every element of ds, in order, into a fresh set and returns
// the elapsed time in fractional milliseconds.
// time.Now carries a monotonic clock reading, so the result never goes backwards.
func Measure(newSet Factory, ds Dataset) float64 {
	s := newSet()

	start := time.Now()
	for _, v := range ds {
		s.Insert(v)
	}
	elapsed := time.Since(start)

	return float64(elapsed) / float64(time.Millisecond)
}
