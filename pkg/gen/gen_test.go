package gen

import (
	"testing"

	"github.com/MathioL132/GSP-SP-OP/pkg/errors"
)

func TestBuild_SingleCycle(t *testing.T) {
	g, err := Build(Params{Cycles: 1, CycleLen: 5, Seed: 1})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.VertexCount() != 5 || g.EdgeCount() != 5 {
		t.Errorf("got %dv %de, want 5v 5e", g.VertexCount(), g.EdgeCount())
	}
	for v := 0; v < 5; v++ {
		if g.Degree(v) != 2 {
			t.Errorf("Degree(%d) = %d, want 2", v, g.Degree(v))
		}
	}
}

func TestBuild_SingleClique(t *testing.T) {
	g, err := Build(Params{Cliques: 1, CliqueSize: 4, Seed: 1})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.VertexCount() != 4 || g.EdgeCount() != 6 {
		t.Errorf("got %dv %de, want 4v 6e", g.VertexCount(), g.EdgeCount())
	}
}

func TestBuild_ChainSharesVertices(t *testing.T) {
	g, err := Build(Params{Cycles: 3, CycleLen: 4, Seed: 7})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	// Three 4-cycles chained at shared vertices: 4 + 3 + 3 vertices.
	if g.VertexCount() != 10 {
		t.Errorf("VertexCount() = %d, want 10", g.VertexCount())
	}
	if g.EdgeCount() != 12 {
		t.Errorf("EdgeCount() = %d, want 12", g.EdgeCount())
	}
}

func TestBuild_ThreeEdgeJunction(t *testing.T) {
	g, err := Build(Params{Cycles: 2, CycleLen: 4, ThreeEdges: 1, Seed: 3})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	// Two disjoint 4-cycles plus three connecting edges.
	if g.VertexCount() != 8 {
		t.Errorf("VertexCount() = %d, want 8", g.VertexCount())
	}
	if g.EdgeCount() != 11 {
		t.Errorf("EdgeCount() = %d, want 11", g.EdgeCount())
	}
}

func TestBuild_Deterministic(t *testing.T) {
	p := Params{Cycles: 2, CycleLen: 5, Cliques: 2, CliqueSize: 3, Seed: 42}
	g1, err := Build(p)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	g2, err := Build(p)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g1.VertexCount() != g2.VertexCount() || g1.EdgeCount() != g2.EdgeCount() {
		t.Fatal("same seed must produce identically sized graphs")
	}
	for v := 0; v < g1.VertexCount(); v++ {
		n1, n2 := g1.Neighbors(v), g2.Neighbors(v)
		if len(n1) != len(n2) {
			t.Fatalf("vertex %d degree differs between runs", v)
		}
		for i := range n1 {
			if n1[i] != n2[i] {
				t.Fatalf("vertex %d adjacency differs between runs", v)
			}
		}
	}
}

func TestBuild_SimpleGraph(t *testing.T) {
	g, err := Build(Params{Cycles: 3, CycleLen: 6, Cliques: 2, CliqueSize: 4, ThreeEdges: 2, Seed: 99})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for v := 0; v < g.VertexCount(); v++ {
		seen := map[int]bool{}
		for _, u := range g.Neighbors(v) {
			if u == v {
				t.Fatalf("self loop at %d", v)
			}
			if seen[u] {
				t.Fatalf("parallel edge %d-%d", v, u)
			}
			seen[u] = true
		}
	}
}

func TestBuild_InvalidParams(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"no components", Params{}},
		{"negative cycles", Params{Cycles: -1, CycleLen: 3}},
		{"short cycle", Params{Cycles: 1, CycleLen: 2}},
		{"small clique", Params{Cliques: 1, CliqueSize: 2}},
		{"negative three-edges", Params{Cycles: 1, CycleLen: 3, ThreeEdges: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(tt.p); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Build(%+v) error = %v, want INVALID_INPUT", tt.p, err)
			}
		})
	}
}
