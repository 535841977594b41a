package sets

type bstNode struct {
	value       int32
	left, right *bstNode
}

// BinarySearchTree is a binary search tree without any rebalancing.
// Ordered input degrades it to a linked list.
type BinarySearchTree struct {
	root *bstNode
	size int
}

// NewBinarySearchTree returns an empty tree
func NewBinarySearchTree() *BinarySearchTree {
	return &BinarySearchTree{}
}

// Insert adds v unless it is already present.
// Iterative so degenerate trees don't grow the stack.
func (t *BinarySearchTree) Insert(v int32) {
	link := &t.root
	for *link != nil {
		switch n := *link; {
		case v < n.value:
			link = &n.left
		case v > n.value:
			link = &n.right
		default:
			return
		}
	}

	*link = &bstNode{value: v}
	t.size++
}

// Contains reports whether v is in the tree
func (t *BinarySearchTree) Contains(v int32) bool {
	n := t.root
	for n != nil {
		switch {
		case v < n.value:
			n = n.left
		case v > n.value:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Len returns the number of values
func (t *BinarySearchTree) Len() int {
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path
func (t *BinarySearchTree) Height() int {
	type frame struct {
		node  *bstNode
		depth int
	}

	height := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node == nil {
			continue
		}
		if f.depth > height {
			height = f.depth
		}
		stack = append(stack, frame{f.node.left, f.depth + 1}, frame{f.node.right, f.depth + 1})
	}

	return height
}

// Values returns all values in ascending order
func (t *BinarySearchTree) Values() []int32 {
	values := make([]int32, 0, t.size)
	var stack []*bstNode
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		values = append(values, n.value)
		n = n.right
	}

	return values
}
