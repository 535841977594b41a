package sets

import (
	"github.com/tidwall/btree"
)

// BTree is an in-memory B-tree
type BTree struct {
	set btree.Set[int32]
}

// NewBTree returns an empty tree
func NewBTree() *BTree {
	return &BTree{}
}

// Insert adds v unless it is already present
func (t *BTree) Insert(v int32) {
	t.set.Insert(v)
}

// Contains reports whether v is in the tree
func (t *BTree) Contains(v int32) bool {
	return t.set.Contains(v)
}

// Len returns the number of values
func (t *BTree) Len() int {
	return t.set.Len()
}

// Values returns all values in ascending order
func (t *BTree) Values() []int32 {
	return t.set.Keys()
}
