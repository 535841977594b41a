package sets

import (
	"github.com/acronis/perfkit-insert-bench/benchmark"
)

// HashSet is the unordered baseline the trees are compared against
type HashSet struct {
	set *benchmark.Set[int32]
}

// NewHashSet returns an empty set
func NewHashSet() *HashSet {
	return &HashSet{set: benchmark.NewSet[int32](0)}
}

// Insert adds v unless it is already present
func (s *HashSet) Insert(v int32) {
	s.set.Add(v)
}

// Contains reports whether v is in the set
func (s *HashSet) Contains(v int32) bool {
	return s.set.Contains(v)
}

// Len returns the number of values
func (s *HashSet) Len() int {
	return s.set.Size()
}
