package sp_test

import (
	"fmt"

	"github.com/MathioL132/GSP-SP-OP/pkg/graph"
	"github.com/MathioL132/GSP-SP-OP/pkg/sp"
)

func ExampleRecognize() {
	g := graph.New(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	res := sp.Recognize(g, sp.Options{})
	fmt.Println(res.IsSP)
	fmt.Println(res.Authenticate(g) == nil)
	// Output:
	// true
	// true
}

func ExampleRecognize_negative() {
	// K4 is the smallest graph that is not series-parallel.
	g := graph.New(4)
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			g.AddEdge(u, v)
		}
	}

	res := sp.Recognize(g, sp.Options{})
	fmt.Println(res.IsSP)
	fmt.Println(res.Reason.Kind())
	// Output:
	// false
	// k4
}
