package tree

// WalkDepthFirst visits the tree pre-order and returns the visit results in
// visit order. A nil root yields an empty result. Children are pushed onto
// an explicit stack in reverse so they pop in their original order; the
// visited set skips nodes that re-appear through cycles.
func WalkDepthFirst[T, R any](root *Node[T], visit func(*Node[T]) R) []R {
	if root == nil {
		return nil
	}
	var results []R
	seen := make(map[*Node[T]]struct{})
	stack := []*Node[T]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		results = append(results, visit(n))
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return results
}

// WalkBreadthFirst visits the tree level by level and returns the visit
// results in visit order. The queue advances by cursor rather than by
// re-slicing from the front, keeping the walk O(n).
func WalkBreadthFirst[T, R any](root *Node[T], visit func(*Node[T]) R) []R {
	if root == nil {
		return nil
	}
	var results []R
	seen := make(map[*Node[T]]struct{})
	queue := []*Node[T]{root}
	for head := 0; head < len(queue); head++ {
		n := queue[head]
		if n == nil {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		results = append(results, visit(n))
		queue = append(queue, n.Children...)
	}
	return results
}

// Find returns the first node in breadth-first order satisfying pred, or
// nil if the tree holds no match.
func Find[T any](root *Node[T], pred func(*Node[T]) bool) *Node[T] {
	if root == nil {
		return nil
	}
	seen := make(map[*Node[T]]struct{})
	queue := []*Node[T]{root}
	for head := 0; head < len(queue); head++ {
		n := queue[head]
		if n == nil {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		if pred(n) {
			return n
		}
		queue = append(queue, n.Children...)
	}
	return nil
}

// PathTo returns the inclusive root-to-match node sequence for the first
// match found depth-first, or an empty path when nothing matches.
func PathTo[T any](root *Node[T], pred func(*Node[T]) bool) []*Node[T] {
	if root == nil {
		return nil
	}
	seen := make(map[*Node[T]]struct{})
	var descend func(n *Node[T]) []*Node[T]
	descend = func(n *Node[T]) []*Node[T] {
		if n == nil {
			return nil
		}
		if _, ok := seen[n]; ok {
			return nil
		}
		seen[n] = struct{}{}
		if pred(n) {
			return []*Node[T]{n}
		}
		for _, c := range n.Children {
			if path := descend(c); path != nil {
				return append([]*Node[T]{n}, path...)
			}
		}
		return nil
	}
	return descend(root)
}
