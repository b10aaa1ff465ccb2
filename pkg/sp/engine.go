package sp

import (
	"github.com/MathioL132/GSP-SP-OP/pkg/graph"
	"github.com/MathioL132/GSP-SP-OP/pkg/sptree"
)

// runBlockDFS runs the SP decomposition engine over one block.
//
// The DFS starts with next as the single tree child of root; root itself
// is preset visited and never expanded, so adjacencies of root into other
// blocks stay untouched. Recursion is hand-rolled with explicit
// (vertex, adjacency-index) frames: graphs may be deep and the host stack
// must stay O(1). A frame's index is left unchanged when a child is
// pushed, so the child's tree edge is revisited on return and triggers
// the update-seq step.
//
// On success seq[next] holds the block's finished SP-tree. On an
// interlacing violation r.res.Reason is set and the pass aborts.
func (r *recognizer) runBlockDFS(bi, root, next int, fakeEdge bool) {
	g := r.g
	n := g.VertexCount()

	r.dfsNo[root] = 1
	r.parent[root] = -1
	r.dfsNo[next] = 2
	r.parent[next] = root
	r.comp[next] = bi
	currDFS := 3

	type frame struct{ v, i int }
	stack := []frame{{next, 0}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		w := top.v
		v := r.parent[w]

		if top.i >= g.Degree(w) {
			// Finished w: fold the parent edge into its sequence and
			// backtrack.
			if w != root {
				if eo := r.earliestOut[w]; eo != n {
					// The deepest parked entry contributed by w's subtree
					// is followed by the path just completed.
					if st := r.stacks[eo]; len(st) > 0 {
						st[len(st)-1].tail = r.seq[w].Detach()
					}
				}

				if v == root {
					// Closing the block back to its root.
					if fakeEdge {
						r.seq[w].Compose(sptree.Tree{}, sptree.KindParallel)
					} else {
						r.seq[w].Compose(sptree.Leaf(v, w), sptree.KindParallel)
					}
					if cv := r.cutVerts[w]; cv != -1 {
						r.seq[w].Compose(r.attached[cv].Detach(), sptree.KindSeries)
					}
					r.seq[next] = r.seq[w].Detach()
					return
				}

				if cv := r.cutVerts[w]; cv != -1 {
					// w is a cut vertex: the earlier chain's tree hangs
					// off w, dangling from the parent edge.
					r.attached[cv].LCompose(sptree.Leaf(w, v), sptree.KindDangling)
					r.seq[w].Compose(r.attached[cv].Detach(), sptree.KindSeries)
				} else {
					r.seq[w].Compose(sptree.Leaf(w, v), sptree.KindSeries)
				}
			}
			stack = stack[:len(stack)-1]
			continue
		}

		u := g.Neighbors(w)[top.i]

		if r.comp[u] != -1 && r.comp[u] != bi {
			// Cross-block adjacency past a cut vertex.
			top.i++
			continue
		}

		if r.dfsNo[u] == 0 {
			stack = append(stack, frame{u, 0})
			r.parent[u] = w
			r.dfsNo[u] = currDFS
			currDFS++
			r.comp[u] = bi
			r.numChildren[w]++
			continue
		}

		childBackEdge := r.dfsNo[u] < r.dfsNo[w] && u != v

		if r.parent[u] == w {
			r.log.Debug("tree edge return", "w", w, "u", u)
			r.updateSeq(w, u)
			if r.res.Reason != nil {
				return
			}
		} else if childBackEdge {
			r.log.Debug("back edge", "w", w, "u", u)
		}

		if r.parent[u] == w || childBackEdge {
			if r.updateEarOfParent(w, u, childBackEdge) {
				return
			}
		}
		top.i++
	}
}

// updateSeq merges the pending ears parked at w into the completed child
// sequence seq[u]. Each parked entry whose end matches the source of
// seq[u]'s ear is glued antiparallel (the parked subtree runs against the
// child path's orientation) followed by its tail path in series. A parked
// entry that does not match interlaces with the child's ear: that is a
// K4 subdivision.
func (r *recognizer) updateSeq(w, u int) {
	for len(r.stacks[w]) > 0 {
		st := r.stacks[w]
		top := &st[len(st)-1]
		if r.seq[u].Source() != top.end {
			r.log.Debug("interlacing pending ear", "w", w, "u", u, "end", top.end)
			r.reportK4StackPop(w, u)
			return
		}
		r.seq[u].Compose(top.sp.Detach(), sptree.KindAntiparallel)
		r.seq[u].LCompose(top.tail.Detach(), sptree.KindSeries)
		r.stacks[w] = st[:len(st)-1]
	}
}

// updateEarOfParent folds a completed child edge into w's state. For a
// back edge (w,u) the found ear is (w,u) itself with the single-edge
// tree Leaf(u,w); for a tree edge it is the child's winning ear and
// sequence. The found ear is ranked against w's current winner by the
// DFS rank of its sink; the sentinel ear (sink n) loses to any real ear.
//
// Reports true when the pass must abort on a K4 witness.
func (r *recognizer) updateEarOfParent(w, u int, childBackEdge bool) bool {
	n := r.g.VertexCount()

	var earF graph.Edge
	var seqU sptree.Tree
	if childBackEdge {
		earF = graph.Edge{U: w, V: u}
		seqU = sptree.Leaf(u, w)
	} else {
		earF = r.ear[u]
		seqU = r.seq[u].Detach()
	}

	if r.dfsNo[earF.V] < r.dfsNo[r.ear[w].V] {
		// Case (b): the found ear strictly wins.
		if r.ear[w].U != n {
			if r.ear[w].U != w {
				r.k23Test(r.ear[w], earF, w)
			}
			if r.seq[w].Source() != r.ear[w].V {
				r.log.Debug("dethroned winner is not a complete SP subgraph", "w", w)
				r.reportK4NonStackPop(r.seq[w].Source(), w, r.ear[w].V, r.ear[w].U, earF.V, earF.U)
				return true
			}
			// Park the dethroned winner at its ear's sink.
			r.stacks[r.ear[w].V] = append(r.stacks[r.ear[w].V], chainEntry{sp: r.seq[w].Detach(), end: w})
			r.earliestOut[w] = r.ear[w].V
		}
		r.ear[w] = earF
		r.seq[w] = seqU
		return false
	}

	// Case (a) or (c): the found ear does not beat the winner. Its
	// sequence must already be a complete SP subgraph sourced at its
	// own sink.
	if seqU.Source() != earF.V {
		r.log.Debug("found ear is not a complete SP subgraph", "w", w)
		r.reportK4NonStackPop(seqU.Source(), w, earF.V, earF.U, r.ear[w].V, r.ear[w].U)
		return true
	}

	if r.dfsNo[earF.V] == r.dfsNo[r.ear[w].V] {
		// Case (c): equal sinks merge in parallel.
		if !childBackEdge && r.ear[w].U != w {
			r.k23Test(earF, r.ear[w], w)
		}
		if r.seq[w].Source() != r.ear[w].V {
			r.log.Debug("winner is not a complete SP subgraph", "w", w)
			r.reportK4NonStackPop(r.seq[w].Source(), w, r.ear[w].V, r.ear[w].U, earF.V, earF.U)
			return true
		}
		r.seq[w].Compose(seqU, sptree.KindParallel)
		// A non-trivial found ear with the earlier source takes over.
		if (r.ear[w].U == w || r.dfsNo[earF.U] < r.dfsNo[r.ear[w].U]) && earF.U != w {
			r.ear[w] = earF
		}
		return false
	}

	// Case (a): the found ear strictly loses; park its sequence at the
	// ear's sink, merging parallel with an entry w already parked there.
	if !childBackEdge {
		r.k23Test(earF, r.ear[w], w)
	}
	st := r.stacks[earF.V]
	if len(st) > 0 && st[len(st)-1].end == w {
		st[len(st)-1].sp.Compose(seqU, sptree.KindParallel)
	} else {
		r.stacks[earF.V] = append(st, chainEntry{sp: seqU, end: w})
		if r.dfsNo[earF.V] < r.dfsNo[r.earliestOut[w]] {
			r.earliestOut[w] = earF.V
		}
	}
	return false
}
