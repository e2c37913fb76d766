package tree

import "testing"

// wideTree builds a balanced tree with the given fanout and depth.
func wideTree(fanout, depth int) *Node[int] {
	id := 0
	var build func(d int) *Node[int]
	build = func(d int) *Node[int] {
		id++
		n := &Node[int]{Data: id}
		if d == 0 {
			return n
		}
		for i := 0; i < fanout; i++ {
			c := build(d - 1)
			c.Parent = n
			n.Children = append(n.Children, c)
		}
		return n
	}
	return build(depth)
}

// benchSizes spans three decades of tree size. Traversal is linear in node
// count, so ns/op should grow tenfold between neighbouring sizes; anything
// superlinear shows up as a widening ratio.
var benchSizes = []struct {
	name          string
	fanout, depth int
}{
	{"nodes=111", 10, 2},
	{"nodes=1111", 10, 3},
	{"nodes=11111", 10, 4},
	{"nodes=111111", 10, 5},
}

func BenchmarkWalkDepthFirst(b *testing.B) {
	for _, sz := range benchSizes {
		root := wideTree(sz.fanout, sz.depth)
		b.Run(sz.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				WalkDepthFirst(root, func(n *Node[int]) int { return n.Data })
			}
		})
	}
}

func BenchmarkWalkBreadthFirst(b *testing.B) {
	for _, sz := range benchSizes {
		root := wideTree(sz.fanout, sz.depth)
		b.Run(sz.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				WalkBreadthFirst(root, func(n *Node[int]) int { return n.Data })
			}
		})
	}
}

func BenchmarkFindMiss(b *testing.B) {
	for _, sz := range benchSizes {
		root := wideTree(sz.fanout, sz.depth)
		b.Run(sz.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Find(root, func(n *Node[int]) bool { return false })
			}
		})
	}
}
