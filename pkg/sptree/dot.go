package sptree

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the decomposition tree.
//
// The DOT format can be rendered with Graphviz tools (dot, neato, etc.)
// or programmatically with RenderSVG.
//
// Node representation:
//   - edge leaves: "u-v", rounded box shape
//   - series nodes: "S", ellipse shape
//   - parallel nodes: "P", ellipse shape
//   - antiparallel nodes: "A", ellipse shape
//   - dangling nodes: "D", box shape
//
// Internal nodes additionally show their terminal pair as a tooltip-style
// suffix so a rendered tree can be checked against the graph by eye.
func (t *Tree) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph SPTree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none];\n\n")

	if t.root != nil {
		writeDOTNode(&buf, t.root, 0)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeDOTNode(buf *bytes.Buffer, n *Node, id int) int {
	nodeID := fmt.Sprintf("n%d", id)
	next := id + 1

	if n.Comp == KindEdge {
		fmt.Fprintf(buf, "  %s [label=\"%d-%d\", shape=box, style=\"filled,rounded\"];\n", nodeID, n.Source, n.Sink)
		return next
	}

	var label string
	shape := "ellipse"
	switch n.Comp {
	case KindSeries:
		label = "S"
	case KindParallel:
		label = "P"
	case KindAntiparallel:
		label = "A"
	case KindDangling:
		label = "D"
		shape = "box"
	}
	fmt.Fprintf(buf, "  %s [label=\"%s {%d,%d}\", shape=%s];\n", nodeID, label, n.Source, n.Sink, shape)

	for _, c := range []*Node{n.L, n.R} {
		if c == nil {
			continue
		}
		fmt.Fprintf(buf, "  %s -> n%d;\n", nodeID, next)
		next = writeDOTNode(buf, c, next)
	}
	return next
}

// RenderSVG renders the decomposition tree as an SVG image.
//
// RenderSVG generates a DOT representation via ToDOT, then uses Graphviz
// to render it. The returned bytes are a complete SVG document suitable
// for embedding in HTML or saving to a file. Errors are returned if
// Graphviz cannot initialize, the DOT is malformed, or rendering fails;
// all are wrapped with context using fmt.Errorf with %w.
func (t *Tree) RenderSVG(ctx context.Context) ([]byte, error) {
	dot := t.ToDOT()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
