package cert

import (
	"fmt"

	"github.com/MathioL132/GSP-SP-OP/pkg/graph"
	"github.com/MathioL132/GSP-SP-OP/pkg/sptree"
)

// Positive is the positive certificate: an SP-decomposition tree whose
// leaves, glued back together through the composition rules, reconstruct
// the input graph exactly.
type Positive struct {
	verified bool

	Decomposition sptree.Tree
}

// Kind implements Certificate.
func (c *Positive) Kind() string { return "sp-decomposition" }

// Describe implements Certificate.
func (c *Positive) Describe() string {
	if c.Decomposition.Empty() {
		return "empty SP decomposition (trivial)"
	}
	return fmt.Sprintf("SP decomposition tree root: {%d,%d}", c.Decomposition.Source(), c.Decomposition.Sink())
}

// Authenticate traverses the decomposition tree iteratively, maintaining
// a swapped flag that antiparallel nodes flip for their right child. At
// each internal node the endpoint-matching rules of the composition kind
// are validated against swap-adjusted child endpoints; each leaf adds its
// edge to a rebuilt graph. Dangling nodes are rejected, so a
// decomposition that still carries a dangling attachment does not
// authenticate.
//
// After the traversal the rebuilt adjacency sequences must equal the
// input's as multisets (compared after radix sorting), which catches both
// missing and spurious edges.
func (c *Positive) Authenticate(g *graph.Graph) error {
	if c.verified {
		return nil
	}

	root := c.Decomposition.Root()
	if root == nil {
		return reject("decomposition tree does not exist")
	}

	n := g.VertexCount()
	nSrc := make([]int, n)
	nSink := make([]int, n)
	noEdge := make([]bool, n)
	swapped := false
	g2 := graph.New(n)

	inRange := func(v int) bool { return v >= 0 && v < n }

	type frame struct {
		node  *sptree.Node
		state int
	}
	hist := []frame{{root, 0}}

	for len(hist) > 0 {
		top := &hist[len(hist)-1]
		curr := top.node
		source, sink := curr.Source, curr.Sink
		if swapped {
			source, sink = sink, source
		}

		switch top.state {
		case 0:
			if curr.L == nil || curr.R == nil {
				if curr.L != nil || curr.R != nil {
					return reject("node malformed (one child)")
				}
				if curr.Comp != sptree.KindEdge {
					return reject("node malformed (leaf, but not an edge)")
				}
				if !inRange(source) || !inRange(sink) {
					return reject("edge node endpoint out of range")
				}
				if noEdge[source] || noEdge[sink] {
					return reject("edge node is incident on a vertex already merged")
				}
				g2.AddEdge(source, sink)
				nSrc[source]++
				nSink[sink]++
				hist = hist[:len(hist)-1]
			} else {
				if curr.Comp == sptree.KindAntiparallel {
					swapped = !swapped
				}
				top.state++
				hist = append(hist, frame{curr.R, 0})
			}

		case 1:
			if curr.Comp == sptree.KindAntiparallel {
				swapped = !swapped
			}
			top.state++
			hist = append(hist, frame{curr.L, 0})

		default:
			lsource, lsink := curr.L.Source, curr.L.Sink
			rsource, rsink := curr.R.Source, curr.R.Sink
			if swapped {
				lsource, lsink = curr.R.Sink, curr.R.Source
				rsource, rsink = curr.L.Sink, curr.L.Source
			}

			switch curr.Comp {
			case sptree.KindEdge:
				return reject("node malformed (edge, but internal)")

			case sptree.KindSeries:
				if lsource != source || rsink != sink || lsink != rsource {
					return reject("node malformed (series children source/sink mismatch)")
				}
				if !inRange(lsink) {
					return reject("series middle vertex out of range")
				}
				if nSrc[lsink] != 1 || nSink[lsink] != 1 {
					return reject("series node has incident edges on its middle vertex which cannot be merged")
				}
				noEdge[lsink] = true
				nSrc[lsink]--
				nSink[lsink]--

			case sptree.KindParallel:
				if lsource != source || rsource != source || lsink != sink || rsink != sink {
					return reject("node malformed (parallel children source/sink mismatch)")
				}
				if !inRange(source) || !inRange(sink) {
					return reject("parallel node endpoint out of range")
				}
				nSrc[source]--
				nSink[sink]--

			case sptree.KindAntiparallel:
				if swapped {
					if lsource != sink || rsource != source || lsink != source || rsink != sink {
						return reject("node malformed (antiparallel children source/sink mismatch)")
					}
				} else {
					if lsource != source || rsource != sink || lsink != sink || rsink != source {
						return reject("node malformed (antiparallel children source/sink mismatch)")
					}
				}
				if !inRange(source) || !inRange(sink) {
					return reject("antiparallel node endpoint out of range")
				}
				nSrc[source]--
				nSink[sink]--

			case sptree.KindDangling:
				return reject("illegal dangling composition in SP decomposition tree")
			}
			hist = hist[:len(hist)-1]
		}
	}

	if !inRange(root.Source) || !inRange(root.Sink) {
		return reject("decomposition root endpoint out of range")
	}
	nSrc[root.Source]--
	nSink[root.Sink]--

	for i := 0; i < n; i++ {
		if nSrc[i] != 0 || nSink[i] != 0 {
			return reject("additional disconnected SP subgraphs are part of the decomposition tree")
		}
	}

	for i := 0; i < n; i++ {
		l1 := append([]int(nil), g.Neighbors(i)...)
		l2 := append([]int(nil), g2.Neighbors(i)...)
		if len(l1) != len(l2) {
			return reject("vertex %d of G does not have the same adjacency list", i)
		}
		radixSort(l1)
		radixSort(l2)
		for j := range l1 {
			if l1[j] != l2[j] {
				return reject("vertex %d of G does not have the same adjacency list", i)
			}
		}
	}

	c.verified = true
	return nil
}
