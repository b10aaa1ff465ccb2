package cert

import "github.com/MathioL132/GSP-SP-OP/pkg/graph"

// tracePath verifies that path is a simple path between end1 and end2 in
// g: non-empty, starting at one of the two endpoints, every edge present
// in the graph, consecutive edges sharing a vertex, no vertex repeated,
// ending at the other endpoint.
//
// The seen mask is shared across the paths of one certificate to enforce
// internal vertex-disjointness: on success all interior vertices stay
// marked, while the two endpoints are unmarked again so that other paths
// may share them.
func tracePath(end1, end2 int, path []graph.Edge, g *graph.Graph, seen []bool) error {
	n := g.VertexCount()
	if end1 < 0 || end1 >= n || end2 < 0 || end2 >= n {
		return reject("path endpoint out of range")
	}
	if len(path) == 0 {
		return reject("no edges in path")
	}

	if path[0].U == end2 {
		end1, end2 = end2, end1
	}
	if path[0].U != end1 {
		return reject("start of path does not match either endpoint")
	}
	if path[len(path)-1].V != end2 {
		return reject("end of path does not match second endpoint")
	}

	seen[end1] = true
	prev := end1
	for _, e := range path {
		if !g.Adjacent(e.U, e.V) {
			return reject("edge (%d, %d) does not exist in graph", e.U, e.V)
		}
		if prev != e.U {
			return reject("edge (%d, %d) is not incident on the previous edge", e.U, e.V)
		}
		prev = e.V
		if seen[e.V] {
			return reject("duplicated vertex %d", e.V)
		}
		seen[e.V] = true
	}

	seen[end1] = false
	seen[end2] = false
	return nil
}

// numComponentsAfterRemoval counts the connected components of g with
// vertex v removed, by repeated iterative DFS over the unvisited rest.
func numComponentsAfterRemoval(g *graph.Graph, v int) int {
	n := g.VertexCount()
	count := 0
	seen := make([]bool, n)
	stack := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if seen[i] || i == v {
			continue
		}
		count++
		stack = append(stack[:0], i)
		for len(stack) > 0 {
			w := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if seen[w] {
				continue
			}
			seen[w] = true
			for _, u := range g.Neighbors(w) {
				if !seen[u] && u != v {
					stack = append(stack, u)
				}
			}
		}
	}
	return count
}

// checkCutVertex verifies that removing v disconnects g.
func checkCutVertex(g *graph.Graph, v int) error {
	if numComponentsAfterRemoval(g, v) <= 1 {
		return reject("%d not a cut vertex", v)
	}
	return nil
}

// radixSort sorts v in place with a base-10 LSD radix sort. Vertex ids
// are non-negative, so counting by decimal digit suffices and keeps the
// adjacency comparison linear.
func radixSort(v []int) {
	if len(v) == 0 {
		return
	}
	maxVal := v[0]
	for _, x := range v {
		if x > maxVal {
			maxVal = x
		}
	}
	output := make([]int, len(v))
	var count [10]int
	for exp := 1; maxVal/exp > 0; exp *= 10 {
		for i := range count {
			count[i] = 0
		}
		for _, x := range v {
			count[(x/exp)%10]++
		}
		for i := 1; i < 10; i++ {
			count[i] += count[i-1]
		}
		for i := len(v) - 1; i >= 0; i-- {
			d := (v[i] / exp) % 10
			output[count[d]-1] = v[i]
			count[d]--
		}
		copy(v, output)
	}
}
