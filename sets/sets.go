// Package sets provides the set implementations exercised by the insertion benchmark.
// Every implementation registers itself with the benchmark registry on import.
package sets

import (
	"github.com/acronis/perfkit-insert-bench/benchmark"
)

const (
	NameBinarySearchTree = "BinarySearchTree" // NameBinarySearchTree is the unbalanced binary search tree
	NameLLRB             = "LLRB"             // NameLLRB is the left-leaning red-black tree
	NameBTree            = "BTree"            // NameBTree is the in-memory B-tree
	NameHashSet          = "HashSet"          // NameHashSet is the unordered map-backed baseline
)

func init() {
	for name, factory := range map[string]benchmark.Factory{
		NameBinarySearchTree: func() benchmark.IntSet { return NewBinarySearchTree() },
		NameLLRB:             func() benchmark.IntSet { return NewLLRB() },
		NameBTree:            func() benchmark.IntSet { return NewBTree() },
		NameHashSet:          func() benchmark.IntSet { return NewHashSet() },
	} {
		if err := benchmark.Register(name, factory); err != nil {
			panic(err)
		}
	}
}
