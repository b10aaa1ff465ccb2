package sptree

import (
	"strings"
	"testing"
)

func TestLeaf(t *testing.T) {
	tr := Leaf(3, 7)

	if tr.Source() != 3 || tr.Sink() != 7 {
		t.Errorf("Leaf(3,7) terminals = {%d,%d}, want {3,7}", tr.Source(), tr.Sink())
	}
	if tr.Root().Comp != KindEdge {
		t.Errorf("Leaf Comp = %v, want edge", tr.Root().Comp)
	}
	if tr.Root().L != nil || tr.Root().R != nil {
		t.Error("Leaf must have no children")
	}
}

func TestCompose_Series(t *testing.T) {
	tr := Leaf(0, 1)
	tr.Compose(Leaf(1, 2), KindSeries)

	if tr.Source() != 0 || tr.Sink() != 2 {
		t.Errorf("series terminals = {%d,%d}, want {0,2}", tr.Source(), tr.Sink())
	}
	root := tr.Root()
	if root.L.Sink != root.R.Source {
		t.Error("series children must share the middle vertex")
	}
}

func TestCompose_Parallel(t *testing.T) {
	tr := Leaf(0, 2)
	path := Leaf(0, 1)
	path.Compose(Leaf(1, 2), KindSeries)
	tr.Compose(path, KindParallel)

	if tr.Source() != 0 || tr.Sink() != 2 {
		t.Errorf("parallel terminals = {%d,%d}, want {0,2}", tr.Source(), tr.Sink())
	}
	if tr.Size() != 5 {
		t.Errorf("Size() = %d, want 5", tr.Size())
	}
}

func TestCompose_EmptyReceiver(t *testing.T) {
	var tr Tree
	tr.Compose(Leaf(4, 5), KindParallel)

	if tr.Source() != 4 || tr.Sink() != 5 {
		t.Errorf("terminals = {%d,%d}, want {4,5}", tr.Source(), tr.Sink())
	}
	if tr.Root().Comp != KindEdge {
		t.Error("composing into an empty tree must adopt the other tree unchanged")
	}
}

func TestCompose_EmptyArgument(t *testing.T) {
	tr := Leaf(0, 1)
	tr.Compose(Tree{}, KindSeries)

	if tr.Size() != 1 || tr.Root().Comp != KindEdge {
		t.Error("composing with an empty tree must be a no-op")
	}
}

func TestLCompose(t *testing.T) {
	tr := Leaf(1, 2)
	tr.LCompose(Leaf(0, 1), KindSeries)

	if tr.Source() != 0 || tr.Sink() != 2 {
		t.Errorf("l-compose terminals = {%d,%d}, want {0,2}", tr.Source(), tr.Sink())
	}
	if tr.Root().L.Source != 0 || tr.Root().R.Sink != 2 {
		t.Error("LCompose must put the argument on the left")
	}
}

func TestDetach(t *testing.T) {
	tr := Leaf(0, 1)
	moved := tr.Detach()

	if !tr.Empty() {
		t.Error("Detach must leave the source tree empty")
	}
	if moved.Source() != 0 || moved.Sink() != 1 {
		t.Errorf("moved terminals = {%d,%d}, want {0,1}", moved.Source(), moved.Sink())
	}
}

func TestUnderlyingTreePathSource(t *testing.T) {
	// An ear leaf is built as Leaf(sink, src): the deep endpoint sits in
	// the leaf's Sink field. Series-extending the ear keeps that leaf
	// leftmost.
	ear := Leaf(2, 9)
	ear.Compose(Leaf(9, 5), KindSeries)
	ear.Compose(Leaf(5, 4), KindSeries)

	if got := ear.UnderlyingTreePathSource(); got != 9 {
		t.Errorf("UnderlyingTreePathSource() = %d, want 9", got)
	}

	var empty Tree
	if got := empty.UnderlyingTreePathSource(); got != -1 {
		t.Errorf("empty UnderlyingTreePathSource() = %d, want -1", got)
	}
}

func TestString(t *testing.T) {
	tr := Leaf(0, 3)
	if tr.String() != "{0,3}" {
		t.Errorf("String() = %q, want {0,3}", tr.String())
	}
	var empty Tree
	if empty.String() != "(empty tree)" {
		t.Errorf("empty String() = %q", empty.String())
	}
}

func TestWalk_DeepTree(t *testing.T) {
	// A long series chain must be walkable without recursion depth limits.
	tr := Leaf(0, 1)
	for i := 1; i < 5000; i++ {
		tr.Compose(Leaf(i, i+1), KindSeries)
	}
	if tr.Size() != 2*5000-1 {
		t.Errorf("Size() = %d, want %d", tr.Size(), 2*5000-1)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindEdge, "edge"},
		{KindSeries, "series"},
		{KindParallel, "parallel"},
		{KindAntiparallel, "antiparallel"},
		{KindDangling, "dangling"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.k), got, tt.want)
		}
	}
}

func TestToDOT(t *testing.T) {
	tr := Leaf(0, 2)
	path := Leaf(0, 1)
	path.Compose(Leaf(1, 2), KindSeries)
	tr.Compose(path, KindParallel)

	dot := tr.ToDOT()
	for _, want := range []string{"digraph SPTree", "P {0,2}", "S {0,2}", "0-2", "0-1", "1-2"} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}
}
