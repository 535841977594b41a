package benchmark

// Set data structure using map
type Set[T comparable] struct {
	elements map[T]struct{}
}

// NewSet creates a new Set sized for capacity elements
func NewSet[T comparable](capacity int) *Set[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Set[T]{
		elements: make(map[T]struct{}, capacity),
	}
}

// Add an element to the set, reports whether it was not present before
func (s *Set[T]) Add(element T) bool {
	if _, exists := s.elements[element]; exists {
		return false
	}
	s.elements[element] = struct{}{}

	return true
}

// Contains checks if an element is in the set
func (s *Set[T]) Contains(element T) bool {
	_, exists := s.elements[element]

	return exists
}

// Size returns the number of elements in the set
func (s *Set[T]) Size() int {
	return len(s.elements)
}
