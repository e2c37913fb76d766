package tree

// Clone returns a structurally independent copy of the tree, preserving its
// shape exactly: shared nodes stay shared and a node reachable as its own
// descendant clones to a node reachable as its own descendant. A nil root
// clones to nil.
func Clone[T any](root *Node[T]) *Node[T] {
	return Map(root, func(data T) T { return data })
}

// Map returns a tree with the same shape as root whose node data is
// fn(data). Each output node is allocated and memoized against its input
// node before the children are resolved, so cyclic self-references land on
// the placeholder instead of recursing forever; children are then attached
// and reparented to the new node.
func Map[T, U any](root *Node[T], fn func(T) U) *Node[U] {
	if root == nil {
		return nil
	}
	memo := make(map[*Node[T]]*Node[U])
	var rebuild func(n *Node[T]) *Node[U]
	rebuild = func(n *Node[T]) *Node[U] {
		if n == nil {
			return nil
		}
		if out, ok := memo[n]; ok {
			return out
		}
		out := &Node[U]{Data: fn(n.Data)}
		memo[n] = out
		for _, c := range n.Children {
			cc := rebuild(c)
			if cc == nil {
				continue
			}
			cc.Parent = out
			out.Children = append(out.Children, cc)
		}
		return out
	}
	return rebuild(root)
}

// Filter returns a copy of the tree keeping only nodes accepted by keep; a
// rejected node is omitted together with its whole subtree. Rejections are
// memoized alongside kept nodes so that a node reached again through a
// cycle is decided once, keeping the walk O(n). A rejected (or nil) root
// yields nil.
func Filter[T any](root *Node[T], keep func(*Node[T]) bool) *Node[T] {
	if root == nil {
		return nil
	}
	// A present-but-nil entry records "rejected".
	memo := make(map[*Node[T]]*Node[T])
	var rebuild func(n *Node[T]) *Node[T]
	rebuild = func(n *Node[T]) *Node[T] {
		if n == nil {
			return nil
		}
		if out, ok := memo[n]; ok {
			return out
		}
		if !keep(n) {
			memo[n] = nil
			return nil
		}
		out := &Node[T]{Data: n.Data}
		memo[n] = out
		for _, c := range n.Children {
			cc := rebuild(c)
			if cc == nil {
				continue
			}
			cc.Parent = out
			out.Children = append(out.Children, cc)
		}
		return out
	}
	return rebuild(root)
}
