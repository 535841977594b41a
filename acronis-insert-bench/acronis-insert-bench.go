// Package main runs insertion sweeps against the registered set implementations.
package main

import (
	// List of sets under test
	_ "github.com/acronis/perfkit-insert-bench/sets" // BinarySearchTree, LLRB, BTree, HashSet

	// Engine
	"github.com/acronis/perfkit-insert-bench/acronis-insert-bench/engine"
)

func main() {
	engine.Main()
}
