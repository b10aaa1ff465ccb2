// Package sp implements linear-time recognition of series-parallel
// graphs with machine-checkable certificates.
//
// Recognize decomposes the input into biconnected components, verifies
// that the block-tree is a path, and runs a single-DFS SP decomposition
// engine over each block in chain order, gluing per-block trees at cut
// vertices. The outcome is a cert.Result carrying either a positive
// SP-decomposition tree or one of five negative witnesses; every result
// can be re-authenticated against the graph via cert.
//
// The engine follows the ear-based recognition scheme: each DFS subtree
// maintains a winning ear (the back edge closing the lexicographically
// best tree path out of the subtree) and a partial SP-tree for the
// subgraph hanging off that ear; subtrees whose ears lose are parked on
// per-vertex pending stacks and merged antiparallel when the tree path
// through their parking vertex completes. Interlacing ears that cannot
// be merged are exactly the K4-subdivision witnesses.
package sp

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/MathioL132/GSP-SP-OP/pkg/cert"
	"github.com/MathioL132/GSP-SP-OP/pkg/graph"
	"github.com/MathioL132/GSP-SP-OP/pkg/observability"
	"github.com/MathioL132/GSP-SP-OP/pkg/sptree"
)

// Options configures a recognition run.
type Options struct {
	// Logger receives diagnostic output. Nil discards diagnostics.
	Logger *log.Logger
}

// chainEntry is one pending ear parked on a vertex stack: the SP-tree of
// the losing subtree, the vertex whose subtree contributed it, and the
// tail path composed in when the parking vertex's own path completes.
type chainEntry struct {
	sp   sptree.Tree
	end  int
	tail sptree.Tree
}

// recognizer holds the state of one recognition run. All per-vertex
// slices are allocated once and reset per block; comp persists across
// blocks so the engine can skip adjacencies leading into already
// processed blocks past cut vertices.
type recognizer struct {
	g   *graph.Graph
	log *log.Logger

	cutVerts []int
	blocks   []graph.Edge
	attached []sptree.Tree // finished block trees parked at cut vertices

	comp        []int
	dfsNo       []int // length n+1: dfsNo[n] is the sentinel ear's rank
	parent      []int
	ear         []graph.Edge
	seq         []sptree.Tree
	earliestOut []int
	numChildren []int
	alert       []int
	stacks      [][]chainEntry

	res              cert.Result
	doK23Replacement bool
	k4RewriteDone    bool
}

// Recognize determines whether g is series-parallel and returns the
// result with its certificate. The certificate is not yet authenticated;
// callers re-verify it with Result.Authenticate.
func Recognize(g *graph.Graph, opts Options) *cert.Result {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	n := g.VertexCount()
	r := &recognizer{g: g, log: logger}

	r.cutVerts = make([]int, n)
	for i := range r.cutVerts {
		r.cutVerts[i] = -1
	}

	if n == 0 {
		return &r.res
	}

	r.blocks = r.findBlocks(0)
	if r.res.Reason != nil {
		return &r.res
	}

	nBlocks := len(r.blocks)
	r.attached = make([]sptree.Tree, nBlocks)
	r.comp = make([]int, n)
	r.dfsNo = make([]int, n+1)
	r.parent = make([]int, n)
	r.ear = make([]graph.Edge, n)
	r.seq = make([]sptree.Tree, n)
	r.earliestOut = make([]int, n)
	r.numChildren = make([]int, n)
	r.alert = make([]int, n)
	r.stacks = make([][]chainEntry, n)
	for i := range r.comp {
		r.comp[i] = -1
	}
	r.dfsNo[n] = n
	r.doK23Replacement = true

	for bi := 0; bi < nBlocks; bi++ {
		r.log.Debug("processing block", "block", bi)
		r.resetBlockState()

		root := r.blocks[bi].U
		next := r.blocks[bi].V

		// The chain reordering may have rewritten this block's pair to a
		// non-adjacent vertex pair; the DFS then assumes a virtual edge
		// between them and any certificate touching it is rewritten below.
		fakeEdge := !g.Adjacent(next, root)

		observability.Recognition().OnBlockStart(bi, root, next)
		blockStart := time.Now()
		r.runBlockDFS(bi, root, next, fakeEdge)
		observability.Recognition().OnBlockComplete(bi, time.Since(blockStart))
		r.dfsNo[root] = 0

		if fakeEdge && r.res.Reason != nil {
			if k4, ok := r.res.Reason.(*cert.K4); ok && !r.k4RewriteDone {
				if t4 := rewriteK4ToT4(k4, root, next); t4 != nil {
					r.log.Debug("fake edge in K4, rewriting to T4", "root", root, "next", next)
					r.res.Reason = t4
					r.k4RewriteDone = true
					// Re-run this block so the remaining state stays
					// consistent; the pending T4 ends the run at the
					// first tree-edge return.
					bi--
					continue
				}
			}
			if k23, ok := r.res.Reason.(*cert.K23); ok && r.doK23Replacement {
				r.spliceK23FakeEdge(k23, bi, root, next)
				r.doK23Replacement = false
			}
		}

		if r.res.Reason != nil {
			r.res.IsSP = false
			break
		}

		if cv := r.cutVerts[root]; cv != -1 {
			// The chain's earlier blocks finished into a tree parked at
			// this block's root; hang it off the completed block.
			r.seq[next].Compose(r.attached[cv].Detach(), sptree.KindDangling)
		}

		if bi < nBlocks-1 {
			if cv := r.cutVerts[root]; cv != -1 {
				r.attached[cv] = r.seq[next].Detach()
			}
		} else {
			pos := &cert.Positive{Decomposition: r.seq[next].Detach()}
			r.res.Reason = pos
			r.res.IsSP = true
			r.log.Debug("graph is SP")
		}
	}

	if r.res.Reason != nil {
		observability.Recognition().OnCertificate(r.res.Reason.Kind())
	}
	return &r.res
}

// resetBlockState reinitializes the per-vertex engine state before a
// block's DFS pass. comp deliberately persists: it is what lets the DFS
// skip adjacencies into already processed blocks. The vertex stacks are
// drained by the algorithm on a clean pass, but an aborted pass (a
// certificate mid-block) can leave entries behind, so they are cleared
// explicitly.
func (r *recognizer) resetBlockState() {
	n := r.g.VertexCount()
	for i := 0; i < n; i++ {
		r.dfsNo[i] = 0
		r.parent[i] = 0
		r.ear[i] = graph.Edge{U: n, V: n}
		r.seq[i] = sptree.Tree{}
		r.earliestOut[i] = n
		r.numChildren[i] = 0
		r.alert[i] = -1
		r.stacks[i] = r.stacks[i][:0]
	}
}
