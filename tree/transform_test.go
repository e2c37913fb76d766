package tree

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneShapeAndIndependence(t *testing.T) {
	root := sample()
	got := Clone(root)

	require.NotSame(t, root, got)
	assert.Equal(t, WalkBreadthFirst(root, data), WalkBreadthFirst(got, data))

	// Parent pointers rewire onto the new nodes.
	assert.Same(t, got, got.Children[0].Parent)
	assert.Same(t, got.Children[0], got.Children[0].Children[1].Parent)

	got.Children[0].Data = 99
	assert.Equal(t, 2, root.Children[0].Data, "clone aliases the source")
}

func TestCloneNil(t *testing.T) {
	assert.Nil(t, Clone[int](nil))
}

func TestCloneSharedChild(t *testing.T) {
	shared := New(9)
	root := New(1, New(2, shared), New(3))
	root.Children[1].Children = []*Node[int]{shared}

	got := Clone(root)
	a := got.Children[0].Children[0]
	b := got.Children[1].Children[0]
	assert.Same(t, a, b, "a node reachable on two paths should clone once")
}

func TestCloneCyclic(t *testing.T) {
	root := New(1, New(2))
	root.Children[0].Children = []*Node[int]{root}

	got := Clone(root)
	require.NotSame(t, root, got)
	assert.Same(t, got, got.Children[0].Children[0], "cycle should close onto the cloned root")
}

func TestMapTransformsData(t *testing.T) {
	got := Map(sample(), strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "4", "5", "3"},
		WalkDepthFirst(got, func(n *Node[string]) string { return n.Data }))
	assert.Same(t, got, got.Children[0].Parent)
}

func TestMapNil(t *testing.T) {
	assert.Nil(t, Map[int, string](nil, strconv.Itoa))
}

func TestFilterOmitsSubtree(t *testing.T) {
	root := sample()
	// Rejecting 2 drops 4 and 5 with it.
	got := Filter(root, func(n *Node[int]) bool { return n.Data != 2 })
	require.NotNil(t, got)
	assert.Equal(t, []int{1, 3}, WalkDepthFirst(got, data))
	assert.Same(t, got, got.Children[0].Parent)
}

func TestFilterPredicateNotCalledBelowRejection(t *testing.T) {
	var seen []int
	Filter(sample(), func(n *Node[int]) bool {
		seen = append(seen, n.Data)
		return n.Data != 2
	})
	assert.NotContains(t, seen, 4)
	assert.NotContains(t, seen, 5)
}

func TestFilterRejectedRoot(t *testing.T) {
	assert.Nil(t, Filter(sample(), func(n *Node[int]) bool { return n.Data != 1 }))
	assert.Nil(t, Filter[int](nil, func(n *Node[int]) bool { return true }))
}

func TestFilterCyclicEvaluatesOnce(t *testing.T) {
	root := New(1, New(2))
	root.Children[0].Children = []*Node[int]{root}

	calls := map[int]int{}
	got := Filter(root, func(n *Node[int]) bool {
		calls[n.Data]++
		return true
	})
	require.NotNil(t, got)
	for d, c := range calls {
		assert.Equal(t, 1, c, "node %d evaluated %d times", d, c)
	}
	assert.Same(t, got, got.Children[0].Children[0])
}

func TestNewSetsParents(t *testing.T) {
	a, b := New("a"), New("b")
	root := New("r", a, b)
	assert.Same(t, root, a.Parent)
	assert.Same(t, root, b.Parent)
	assert.Nil(t, root.Parent)
}
