// Package tree provides an explicit parent/children tree structure and
// cycle-safe operations over it: pre-order and level-order traversal,
// search, path extraction, and isomorphism-preserving clone/map/filter
// transforms.
//
// A Node's Parent field is a back-reference, and a back-reference is a
// reference cycle; on top of that the operations tolerate a node that has
// been spliced in as its own descendant by direct mutation. Every walk is
// guarded by a visited set or a node-identity memo, so each operation costs
// O(reachable nodes) and never re-descends into a node it has already
// handled.
package tree

// Node is a tree node carrying a payload and an explicit child list. The
// Parent pointer is maintained by New and by the transform operations; it
// is a back-reference, not a second ownership of the parent.
type Node[T any] struct {
	Data     T
	Children []*Node[T]
	Parent   *Node[T]
}

// New builds a node from data and adopts the given children, setting each
// child's Parent to the new node.
func New[T any](data T, children ...*Node[T]) *Node[T] {
	n := &Node[T]{Data: data, Children: children}
	for _, c := range children {
		if c != nil {
			c.Parent = n
		}
	}
	return n
}
