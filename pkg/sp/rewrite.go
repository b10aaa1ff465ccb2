package sp

import (
	"github.com/MathioL132/GSP-SP-OP/pkg/cert"
	"github.com/MathioL132/GSP-SP-OP/pkg/graph"
)

// pathIndex returns the index of test in path, matching either
// orientation, or -1 if absent.
func pathIndex(path []graph.Edge, test graph.Edge) int {
	for i, e := range path {
		if e == test || e == test.Reversed() {
			return i
		}
	}
	return -1
}

// k4ToT4Paths maps, per index of the K4 path holding the fake edge, the
// K4 path order (ab, ac, ad, bc, bd, cd) onto the T4 path order
// (c1a, c2a, c1b, c2b, ab). Removing the path through the fake edge
// leaves exactly the five-path theta-four configuration between the two
// cut vertices created by deleting the virtual edge.
var k4ToT4Paths = [6][5]int{
	{1, 3, 2, 4, 5},
	{0, 3, 2, 5, 4},
	{0, 4, 1, 5, 3},
	{0, 1, 4, 5, 2},
	{0, 2, 3, 5, 1},
	{1, 2, 3, 4, 0},
}

// k4ToT4Verts maps, per index of the K4 path holding the fake edge, the
// K4 branch vertex order (a, b, c, d) onto the T4 vertex order
// (c1, c2, a, b).
var k4ToT4Verts = [6][4]int{
	{0, 1, 2, 3},
	{0, 2, 1, 3},
	{0, 3, 1, 2},
	{1, 2, 0, 3},
	{1, 3, 0, 2},
	{2, 3, 0, 1},
}

// rewriteK4ToT4 converts a K4 witness that uses the virtual root-next
// edge in exactly one of its six paths into the corresponding T4
// witness. Returns nil when no path contains the fake edge (the K4
// stands on its own).
func rewriteK4ToT4(k4 *cert.K4, root, next int) *cert.T4 {
	paths := []*[]graph.Edge{&k4.AB, &k4.AC, &k4.AD, &k4.BC, &k4.BD, &k4.CD}
	verts := [4]int{k4.A, k4.B, k4.C, k4.D}
	fake := graph.Edge{U: root, V: next}

	pnum := 0
	for ; pnum < 6; pnum++ {
		if pathIndex(*paths[pnum], fake) != -1 {
			break
		}
	}
	if pnum == 6 {
		return nil
	}

	t4 := &cert.T4{
		C1A: *paths[k4ToT4Paths[pnum][0]],
		C2A: *paths[k4ToT4Paths[pnum][1]],
		C1B: *paths[k4ToT4Paths[pnum][2]],
		C2B: *paths[k4ToT4Paths[pnum][3]],
		AB:  *paths[k4ToT4Paths[pnum][4]],
		C1:  verts[k4ToT4Verts[pnum][0]],
		C2:  verts[k4ToT4Verts[pnum][1]],
		A:   verts[k4ToT4Verts[pnum][2]],
		B:   verts[k4ToT4Verts[pnum][3]],
	}
	return t4
}

// spliceK23FakeEdge repairs a K23 witness whose path uses the virtual
// root-next edge, replacing the edge with a detour found through a tree
// child of next outside the K23: that child's subtree carries an ear
// back to root, giving a real path from next to root avoiding the three
// existing paths.
func (r *recognizer) spliceK23FakeEdge(k23 *cert.K23, bi, root, next int) {
	paths := []*[]graph.Edge{&k23.One, &k23.Two, &k23.Three}
	fake := graph.Edge{U: root, V: next}

	pnum, pathInd := 0, -1
	for ; pnum < 3; pnum++ {
		pathInd = pathIndex(*paths[pnum], fake)
		if pathInd != -1 {
			break
		}
	}
	if pnum == 3 {
		return
	}
	r.log.Debug("fake edge in K23, splicing detour", "root", root, "next", next)

	n := r.g.VertexCount()
	inK23 := make([]bool, n)
	mark := func(v int) {
		if v >= 0 && v < n {
			inK23[v] = true
		}
	}
	for _, p := range paths {
		for _, e := range *p {
			mark(e.U)
			mark(e.V)
		}
	}

	var splice []graph.Edge
	for _, u2 := range r.g.Neighbors(next) {
		if r.comp[u2] == bi && r.parent[u2] == next && !inK23[u2] {
			splice = append(splice, graph.Edge{U: r.ear[u2].U, V: root})
			for i := r.ear[u2].U; i != next; i = r.parent[i] {
				splice = append(splice, graph.Edge{U: r.parent[i], V: i})
			}
			break
		}
	}
	reverseEdges(splice)

	vp := *paths[pnum]
	repaired := make([]graph.Edge, 0, len(vp)-1+len(splice))
	repaired = append(repaired, vp[:pathInd]...)
	repaired = append(repaired, splice...)
	repaired = append(repaired, vp[pathInd+1:]...)
	*paths[pnum] = repaired
}
