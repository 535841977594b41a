package sets

import (
	"github.com/petar/GoLLRB/llrb"
)

// LLRB is a left-leaning red-black tree, kept balanced on every insertion
type LLRB struct {
	tree *llrb.LLRB
}

// NewLLRB returns an empty tree
func NewLLRB() *LLRB {
	return &LLRB{tree: llrb.New()}
}

// Insert adds v unless it is already present
func (t *LLRB) Insert(v int32) {
	t.tree.InsertNoReplace(llrb.Int(v))
}

// Contains reports whether v is in the tree
func (t *LLRB) Contains(v int32) bool {
	return t.tree.Has(llrb.Int(v))
}

// Len returns the number of values
func (t *LLRB) Len() int {
	return t.tree.Len()
}

// Values returns all values in ascending order
func (t *LLRB) Values() []int32 {
	values := make([]int32, 0, t.tree.Len())
	if t.tree.Len() == 0 {
		return values
	}
	t.tree.AscendGreaterOrEqual(t.tree.Min(), func(i llrb.Item) bool {
		values = append(values, int32(i.(llrb.Int)))
		return true
	})

	return values
}
