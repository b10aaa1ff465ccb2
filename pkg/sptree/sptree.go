// Package sptree implements the binary series-parallel decomposition tree.
//
// A tree's leaves carry single graph edges; internal nodes compose two
// two-terminal subgraphs in series, in parallel, antiparallel (the right
// child read with reversed orientation), or dangling (a subtree hanging
// off a cut vertex). The recognizer builds trees bottom-up through
// Compose and LCompose only - it never rotates or rebalances.
//
// Compose and LCompose take ownership of the argument's nodes. Callers
// hand a tree over by value - typically the result of Detach, which
// empties the source - and must not use their copy afterwards. This
// mirrors the strict hierarchical ownership the recognizer relies on.
package sptree

import "fmt"

// Kind is the composition kind of a tree node.
type Kind int

const (
	// KindEdge marks a leaf carrying a single graph edge.
	KindEdge Kind = iota
	// KindSeries concatenates two subgraphs sharing one endpoint.
	KindSeries
	// KindParallel glues two subgraphs at both endpoints, same-oriented.
	KindParallel
	// KindAntiparallel glues two subgraphs at both endpoints with the
	// right child's orientation reversed.
	KindAntiparallel
	// KindDangling attaches a subtree hanging off a cut vertex; the node
	// contributes the left child's endpoints.
	KindDangling
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEdge:
		return "edge"
	case KindSeries:
		return "series"
	case KindParallel:
		return "parallel"
	case KindAntiparallel:
		return "antiparallel"
	case KindDangling:
		return "dangling"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is one node of a decomposition tree. An edge node has no children;
// every other kind has exactly two. The endpoint fields follow the
// canonical orientation of the node:
//
//   - series: Source = L.Source, Sink = R.Sink (and L.Sink = R.Source)
//   - parallel: Source = L.Source = R.Source, Sink = L.Sink = R.Sink
//   - antiparallel: Source = L.Source, Sink = L.Sink; R is read reversed
//   - dangling: Source = L.Source, Sink = L.Sink
type Node struct {
	Source int
	Sink   int
	Comp   Kind
	L, R   *Node
}

// Tree owns a decomposition tree. The zero value is the empty tree.
type Tree struct {
	root *Node
}

// Leaf creates a tree consisting of a single edge node.
func Leaf(source, sink int) Tree {
	return Tree{root: &Node{Source: source, Sink: sink, Comp: KindEdge}}
}

// Root returns the root node, or nil for the empty tree.
func (t *Tree) Root() *Node { return t.root }

// Empty reports whether the tree has no nodes.
func (t *Tree) Empty() bool { return t.root == nil }

// Source returns the root's source vertex, or -1 for the empty tree.
func (t *Tree) Source() int {
	if t.root == nil {
		return -1
	}
	return t.root.Source
}

// Sink returns the root's sink vertex, or -1 for the empty tree.
func (t *Tree) Sink() int {
	if t.root == nil {
		return -1
	}
	return t.root.Sink
}

// Detach moves the tree out of t, leaving t empty.
func (t *Tree) Detach() Tree {
	out := Tree{root: t.root}
	t.root = nil
	return out
}

// newInternal builds an internal node over l and r with endpoints derived
// from the composition kind.
func newInternal(l, r *Node, comp Kind) *Node {
	n := &Node{Comp: comp, L: l, R: r}
	switch comp {
	case KindSeries:
		n.Source = l.Source
		n.Sink = r.Sink
	default:
		n.Source = l.Source
		n.Sink = l.Sink
	}
	return n
}

// Compose makes t the composition of t (left child) and other (right
// child). If t is empty it becomes other; if other is empty the call is
// a no-op. Either way t owns other's nodes afterwards.
func (t *Tree) Compose(other Tree, comp Kind) {
	if t.root == nil {
		t.root = other.root
		return
	}
	if other.root == nil {
		return
	}
	t.root = newInternal(t.root, other.root, comp)
}

// LCompose is the mirror of Compose: other becomes the left child and t
// the right child.
func (t *Tree) LCompose(other Tree, comp Kind) {
	if t.root == nil {
		t.root = other.root
		return
	}
	if other.root == nil {
		return
	}
	t.root = newInternal(other.root, t.root, comp)
}

// UnderlyingTreePathSource walks left children from the root to the
// leftmost edge leaf and returns that leaf's sink vertex - the deep
// endpoint of the ear path the tree was built around, which is where a
// witness path starts. Returns -1 for the empty tree.
func (t *Tree) UnderlyingTreePathSource() int {
	n := t.root
	for n != nil && n.Comp != KindEdge && n.L != nil {
		n = n.L
	}
	if n == nil {
		return -1
	}
	return n.Sink
}

// String formats the tree as its root's terminal pair, "{source,sink}",
// or "(empty tree)".
func (t Tree) String() string {
	if t.root == nil {
		return "(empty tree)"
	}
	return fmt.Sprintf("{%d,%d}", t.root.Source, t.root.Sink)
}

// Walk visits every node of the tree in depth-first pre-order using an
// explicit stack, so arbitrarily deep trees cannot exhaust the host
// stack. Walking stops early if fn returns false.
func (t *Tree) Walk(fn func(n *Node) bool) {
	if t.root == nil {
		return
	}
	stack := []*Node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		if n.R != nil {
			stack = append(stack, n.R)
		}
		if n.L != nil {
			stack = append(stack, n.L)
		}
	}
}

// Size returns the number of nodes in the tree.
func (t *Tree) Size() int {
	count := 0
	t.Walk(func(*Node) bool { count++; return true })
	return count
}
