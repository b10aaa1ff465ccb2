// Package gen builds random test graphs for the recognizer.
//
// A generated graph is a chain of components - cycles and cliques -
// where consecutive components normally share a single vertex, keeping
// the block-tree a path. Each shared vertex becomes a cut vertex and
// each component a biconnected component, so a chain of cycles is
// series-parallel while any clique of four or more vertices is not.
//
// A number of junctions can instead be three-edge connections: the two
// components stay vertex-disjoint and are joined by three independent
// edges. Such a junction always embeds a K4 subdivision, forcing a
// negative certificate.
//
// Generation is deterministic for a fixed seed.
package gen

import (
	"math/rand"

	"github.com/MathioL132/GSP-SP-OP/pkg/errors"
	"github.com/MathioL132/GSP-SP-OP/pkg/graph"
)

// Params configures one generated graph.
type Params struct {
	Cycles     int // number of cycle components
	CycleLen   int // vertices per cycle, minimum 3
	Cliques    int // number of clique components
	CliqueSize int // vertices per clique, minimum 3
	ThreeEdges int // junctions realized as three-edge connections
	Seed       int64
}

// validate checks the parameter ranges.
func (p Params) validate() error {
	if p.Cycles < 0 || p.Cliques < 0 || p.ThreeEdges < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "component counts must be non-negative")
	}
	if p.Cycles+p.Cliques == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "at least one component is required")
	}
	if p.Cycles > 0 && p.CycleLen < 3 {
		return errors.New(errors.ErrCodeInvalidInput, "cycle length must be at least 3, got %d", p.CycleLen)
	}
	if p.Cliques > 0 && p.CliqueSize < 3 {
		return errors.New(errors.ErrCodeInvalidInput, "clique size must be at least 3, got %d", p.CliqueSize)
	}
	return nil
}

// Build generates the graph described by p.
func Build(p Params) (*graph.Graph, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(p.Seed))

	// Component size list: cycles first, then cliques.
	var sizes []int
	for i := 0; i < p.Cycles; i++ {
		sizes = append(sizes, p.CycleLen)
	}
	for i := 0; i < p.Cliques; i++ {
		sizes = append(sizes, p.CliqueSize)
	}

	// Count vertices up front: the first component owns all its
	// vertices; later components give one up when sharing a vertex with
	// their predecessor, but keep all of them across a three-edge
	// junction.
	n := sizes[0]
	for i := 1; i < len(sizes); i++ {
		if i <= p.ThreeEdges {
			n += sizes[i]
		} else {
			n += sizes[i] - 1
		}
	}

	g := graph.New(n)
	nextID := 0
	var prev []int

	for i, size := range sizes {
		verts := make([]int, 0, size)
		threeEdge := i > 0 && i <= p.ThreeEdges
		if i > 0 && !threeEdge {
			cand := prev
			if i > 1 && i-1 > p.ThreeEdges {
				// prev[0] is already shared with the component before
				// prev; reusing it would put it in three blocks.
				cand = prev[1:]
			}
			verts = append(verts, cand[rng.Intn(len(cand))])
		}
		for len(verts) < size {
			verts = append(verts, nextID)
			nextID++
		}

		isCycle := i < p.Cycles
		if isCycle {
			for j := 0; j < size; j++ {
				g.AddEdge(verts[j], verts[(j+1)%size])
			}
		} else {
			for j := 0; j < size; j++ {
				for k := j + 1; k < size; k++ {
					g.AddEdge(verts[j], verts[k])
				}
			}
		}

		if threeEdge {
			// Component sizes are at least 3, so three distinct
			// attachment points exist on both sides.
			pi := rng.Perm(len(prev))
			ci := rng.Perm(len(verts))
			for j := 0; j < 3; j++ {
				g.AddEdge(prev[pi[j]], verts[ci[j]])
			}
		}

		prev = verts
	}

	return g, nil
}
