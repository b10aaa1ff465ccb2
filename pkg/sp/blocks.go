package sp

import (
	"github.com/MathioL132/GSP-SP-OP/pkg/cert"
	"github.com/MathioL132/GSP-SP-OP/pkg/graph"
)

// findBlocks enumerates the biconnected components reachable from root
// with an iterative Tarjan lowpoint DFS and orders them as a chain.
//
// Each block is named by a representative pair: the cut vertex closing it
// and the tree child that started it. While emitting blocks the two
// block-tree obstructions are detected:
//
//   - a cut vertex lying in three or more blocks (three-component cut);
//   - a block containing three or more cut vertices (three-cut block).
//
// On an obstruction the matching negative certificate is stored in res
// and the partial block list returned. Otherwise cutVerts[v] holds the
// index of the block that v closes (-1 for non-cut vertices) and the
// returned list is reordered so consecutive blocks share exactly one cut
// vertex; the last pair is rewritten to name the chain terminus, which
// may leave it non-adjacent in the graph (a fake edge the engine must
// detect).
func (r *recognizer) findBlocks(root int) []graph.Edge {
	g := r.g
	n := g.VertexCount()
	dfsNo := make([]int, n)
	parent := make([]int, n)
	low := make([]int, n)
	var blocks []graph.Edge

	type frame struct{ v, i int }
	stack := []frame{{root, 0}}
	dfsNo[root] = 1
	low[root] = 1
	parent[root] = -1
	currDFS := 2
	rootCut := false

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		w := top.v
		if top.i >= g.Degree(w) {
			stack = stack[:len(stack)-1]
			continue
		}
		u := g.Neighbors(w)[top.i]

		if dfsNo[u] == 0 {
			stack = append(stack, frame{u, 0})
			parent[u] = w
			dfsNo[u] = currDFS
			currDFS++
			low[u] = dfsNo[u]
			continue
		}

		if parent[u] == w {
			// Tree edge returning from child u.
			if low[u] >= dfsNo[w] {
				// w closes a block.
				if r.cutVerts[w] != -1 {
					if w != root || rootCut {
						if r.res.Reason == nil {
							r.log.Debug("non-SP: three-component cut vertex", "v", w)
							r.res.Reason = &cert.ThreeComponentCut{V: w}
							r.res.IsSP = false
						}
					} else {
						rootCut = true
					}
				} else {
					r.cutVerts[w] = len(blocks)
				}
				blocks = append(blocks, graph.Edge{U: w, V: u})
			}
			if low[u] < low[w] {
				low[w] = low[u]
			}
		} else if dfsNo[u] < dfsNo[w] && u != parent[w] {
			if dfsNo[u] < low[w] {
				low[w] = dfsNo[u]
			}
		}
		top.i++
	}

	nBlocks := len(blocks)
	r.log.Debug("block analysis done", "blocks", nBlocks)

	if !rootCut {
		r.cutVerts[root] = -1
	}
	if r.res.Reason != nil {
		return blocks
	}

	// Three-cut-block detection: walk each non-last block's closing
	// vertex up the DFS-parent chain to the cut vertex it hangs below.
	// Two blocks parked below the same cut slot mean that slot's block
	// holds three cut vertices. The root block is covered by the
	// symmetric rootOne/rootTwo rule.
	prevCut := make([]int, nBlocks)
	for i := range prevCut {
		prevCut[i] = -1
	}
	rootOne := -1
	rootTwo := -1

	for i := 0; i < nBlocks-1; i++ {
		w := blocks[i].U
		u := -1
		start := w

		for w != root {
			u = w
			w = parent[w]
			if r.cutVerts[w] != -1 && u == blocks[r.cutVerts[w]].V {
				if prevCut[r.cutVerts[w]] == -1 {
					prevCut[r.cutVerts[w]] = start
				} else {
					c := &cert.ThreeCutBlock{C1: w, C2: start, C3: prevCut[r.cutVerts[w]]}
					r.log.Debug("non-SP: block with three cut vertices", "c1", c.C1, "c2", c.C2, "c3", c.C3)
					r.res.Reason = c
					r.res.IsSP = false
					return blocks
				}
				break
			}
		}

		if w == root && (u == blocks[nBlocks-1].V || u == -1) {
			switch {
			case rootOne == -1:
				rootOne = start
			case rootTwo == -1:
				rootTwo = start
			default:
				c := &cert.ThreeCutBlock{C1: rootOne, C2: rootTwo, C3: start}
				r.log.Debug("non-SP: root block with three cut vertices", "c1", c.C1, "c2", c.C2, "c3", c.C3)
				r.res.Reason = c
				r.res.IsSP = false
				return blocks
			}
		}
	}

	// Reorder into a chain. Among the surviving blocks at most two have
	// no cut-vertex child (the endpoints of the block-tree path); one of
	// them plus the root block bound the chain.
	if nBlocks > 1 {
		secondEndpoint := nBlocks - 1
		for i := 1; i < nBlocks-1; i++ {
			if prevCut[i] == -1 {
				secondEndpoint = i
				break
			}
		}
		r.log.Debug("ordering blocks as chain", "otherEndpoint", secondEndpoint)

		reverseEdges(blocks[secondEndpoint : nBlocks-1])
		if secondEndpoint != nBlocks-1 {
			blocks[nBlocks-1].V = blocks[nBlocks-2].U
			blocks[nBlocks-1].U = blocks[nBlocks-2].V
		} else {
			if blocks[nBlocks-1].U == blocks[nBlocks-2].U {
				blocks[nBlocks-1].U = blocks[nBlocks-1].V
			} else {
				blocks[nBlocks-1].U = parent[blocks[nBlocks-2].U]
			}
			blocks[nBlocks-1].V = blocks[nBlocks-2].U
		}

		for i := secondEndpoint; i < nBlocks-1; i++ {
			blocks[i].V = parent[blocks[i].U]
		}
	}

	return blocks
}

func reverseEdges(s []graph.Edge) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
