package cert

import (
	"fmt"

	"github.com/MathioL132/GSP-SP-OP/pkg/graph"
)

// K4 is a negative witness: a subdivision of the complete graph on the
// four branch vertices A, B, C, D, realized by six internally
// vertex-disjoint paths, one per vertex pair.
type K4 struct {
	verified bool

	A, B, C, D             int
	AB, AC, AD, BC, BD, CD []graph.Edge
}

// Kind implements Certificate.
func (c *K4) Kind() string { return "k4" }

// Describe implements Certificate.
func (c *K4) Describe() string {
	return fmt.Sprintf("K4 subdivision on vertices {%d,%d,%d,%d}", c.A, c.B, c.C, c.D)
}

// Authenticate checks that the four branch vertices are distinct and
// that each of the six paths is a simple path between its two endpoints,
// with all paths internally vertex-disjoint (enforced through the shared
// seen mask of tracePath).
func (c *K4) Authenticate(g *graph.Graph) error {
	if c.verified {
		return nil
	}
	if c.A == c.B || c.B == c.C || c.C == c.D || c.D == c.A || c.A == c.C || c.B == c.D {
		return reject("K4 branch vertices non-distinct")
	}
	seen := make([]bool, g.VertexCount())
	checks := []struct {
		e1, e2 int
		path   []graph.Edge
		name   string
	}{
		{c.A, c.B, c.AB, "ab"},
		{c.A, c.C, c.AC, "ac"},
		{c.A, c.D, c.AD, "ad"},
		{c.B, c.C, c.BC, "bc"},
		{c.B, c.D, c.BD, "bd"},
		{c.C, c.D, c.CD, "cd"},
	}
	for _, ch := range checks {
		if err := tracePath(ch.e1, ch.e2, ch.path, g, seen); err != nil {
			return fmt.Errorf("K4 path %s: %w", ch.name, err)
		}
	}
	c.verified = true
	return nil
}

// K23 is a negative witness: a subdivision of the complete bipartite
// graph K2,3, realized as three internally disjoint paths of length at
// least two between the branch vertices A and B.
type K23 struct {
	verified bool

	A, B            int
	One, Two, Three []graph.Edge
}

// Kind implements Certificate.
func (c *K23) Kind() string { return "k23" }

// Describe implements Certificate.
func (c *K23) Describe() string {
	return fmt.Sprintf("K23 subdivision between vertices {%d,%d}", c.A, c.B)
}

// Authenticate checks distinct branch vertices and three internally
// disjoint simple paths, each with at least one internal vertex.
func (c *K23) Authenticate(g *graph.Graph) error {
	if c.verified {
		return nil
	}
	if c.A == c.B {
		return reject("K23 branch vertices non-distinct")
	}
	seen := make([]bool, g.VertexCount())
	checks := []struct {
		path []graph.Edge
		name string
	}{
		{c.One, "one"},
		{c.Two, "two"},
		{c.Three, "three"},
	}
	for _, ch := range checks {
		if err := tracePath(c.A, c.B, ch.path, g, seen); err != nil {
			return fmt.Errorf("K23 path %s: %w", ch.name, err)
		}
		if len(ch.path) < 2 {
			return reject("K23 path %s has no internal vertex", ch.name)
		}
	}
	c.verified = true
	return nil
}

// T4 is a negative witness: a theta-four configuration in the block-tree
// setting. C1 and C2 are cut vertices, A and B terminals, joined by five
// internally disjoint paths realizing four internally disjoint routes
// between the two cut vertices.
type T4 struct {
	verified bool

	C1, C2, A, B           int
	C1A, C2A, AB, C1B, C2B []graph.Edge
}

// Kind implements Certificate.
func (c *T4) Kind() string { return "t4" }

// Describe implements Certificate.
func (c *T4) Describe() string {
	return fmt.Sprintf("T4 (theta-4) subdivision with cut vertices %d,%d and terminals %d,%d", c.C1, c.C2, c.A, c.B)
}

// Authenticate checks that the four vertices are distinct, that C1 and
// C2 are cut vertices, and that the five paths are simple and internally
// disjoint as a set.
func (c *T4) Authenticate(g *graph.Graph) error {
	if c.verified {
		return nil
	}
	if c.A == c.B || c.A == c.C1 || c.A == c.C2 || c.B == c.C1 || c.B == c.C2 || c.C1 == c.C2 {
		return reject("T4 vertices non-distinct")
	}
	if err := checkCutVertex(g, c.C1); err != nil {
		return err
	}
	if err := checkCutVertex(g, c.C2); err != nil {
		return err
	}
	seen := make([]bool, g.VertexCount())
	checks := []struct {
		e1, e2 int
		path   []graph.Edge
		name   string
	}{
		{c.C1, c.A, c.C1A, "c1a"},
		{c.C2, c.A, c.C2A, "c2a"},
		{c.A, c.B, c.AB, "ab"},
		{c.C1, c.B, c.C1B, "c1b"},
		{c.C2, c.B, c.C2B, "c2b"},
	}
	for _, ch := range checks {
		if err := tracePath(ch.e1, ch.e2, ch.path, g, seen); err != nil {
			return fmt.Errorf("T4 path %s: %w", ch.name, err)
		}
	}
	c.verified = true
	return nil
}

// ThreeComponentCut is a negative block-tree witness: removing the cut
// vertex V leaves three or more connected components, so V lies in three
// or more blocks.
type ThreeComponentCut struct {
	verified bool

	V int
}

// Kind implements Certificate.
func (c *ThreeComponentCut) Kind() string { return "three-component-cut" }

// Describe implements Certificate.
func (c *ThreeComponentCut) Describe() string {
	return fmt.Sprintf("cut vertex %d splits the graph into >=3 components", c.V)
}

// Authenticate counts components after removing V.
func (c *ThreeComponentCut) Authenticate(g *graph.Graph) error {
	if c.verified {
		return nil
	}
	comps := numComponentsAfterRemoval(g, c.V)
	if comps < 3 {
		return reject("vertex %d only splits graph into %d components", c.V, comps)
	}
	c.verified = true
	return nil
}

// ThreeCutBlock is a negative block-tree witness: the cut vertices C1,
// C2, C3 all lie in one biconnected component, so the block-tree is not
// a path.
type ThreeCutBlock struct {
	verified bool

	C1, C2, C3 int
}

// Kind implements Certificate.
func (c *ThreeCutBlock) Kind() string { return "three-cut-block" }

// Describe implements Certificate.
func (c *ThreeCutBlock) Describe() string {
	return fmt.Sprintf("biconnected component with 3 cut vertices {%d,%d,%d}", c.C1, c.C2, c.C3)
}

// Authenticate verifies that all three vertices are cut vertices and
// that a single biconnected component touches all three. The membership
// check runs a block-finding DFS keeping the current component's edges
// on a stack; when a block closes, the popped edge set is scanned for
// incidence with the three vertices.
func (c *ThreeCutBlock) Authenticate(g *graph.Graph) error {
	if c.verified {
		return nil
	}
	for _, v := range []int{c.C1, c.C2, c.C3} {
		if err := checkCutVertex(g, v); err != nil {
			return err
		}
	}

	n := g.VertexCount()
	if n == 0 {
		return reject("empty graph")
	}
	dfsNo := make([]int, n)
	parent := make([]int, n)
	low := make([]int, n)
	cutVerts := [3]int{c.C1, c.C2, c.C3}
	var compEdges []graph.Edge

	type frame struct{ v, i int }
	stack := []frame{{0, 0}}
	dfsNo[0] = 1
	low[0] = 1
	parent[0] = -1
	currDFS := 2

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
			compEdges = append(compEdges, graph.Edge{U: w, V: u})
			parent[u] = w
			dfsNo[u] = currDFS
			currDFS++
			low[u] = dfsNo[u]
			continue
		}

		if parent[u] == w {
			if low[u] >= dfsNo[w] {
				var seen [3]bool
				for len(compEdges) > 0 {
					e := compEdges[len(compEdges)-1]
					compEdges = compEdges[:len(compEdges)-1]
					for i, cv := range cutVerts {
						if e.U == cv || e.V == cv {
							seen[i] = true
						}
					}
					if e == (graph.Edge{U: w, V: u}) {
						break
					}
				}
				if seen[0] && seen[1] && seen[2] {
					c.verified = true
					return nil
				}
			}
			if low[u] < low[w] {
				low[w] = low[u]
			}
		} else if dfsNo[u] < dfsNo[w] && u != parent[w] {
			compEdges = append(compEdges, graph.Edge{U: w, V: u})
			if dfsNo[u] < low[w] {
				low[w] = dfsNo[u]
			}
		}
		top.i++
	}

	return reject("no biconnected component contains all of %d, %d, %d", c.C1, c.C2, c.C3)
}
