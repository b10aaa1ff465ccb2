// Package pkg provides the core libraries for spcert series-parallel
// recognition.
//
// # Overview
//
// spcert decides in linear time whether an undirected simple graph is
// series-parallel and justifies the verdict with a machine-checkable
// certificate. The pkg directory is organized into five main areas:
//
//  1. [graph] - The undirected simple graph value and its text parser
//  2. [sptree] - The binary SP-decomposition tree and its compositions
//  3. [sp] - Block analysis and the per-block recognition engine
//  4. [cert] - Certificate types and the independent authenticator
//  5. [gen] - Random chained-component test graph generation
//
// # Architecture
//
// The typical data flow through spcert:
//
//	Graph file (n e + endpoint pairs)
//	         ↓
//	    [graph] package (parse, adjacency sequences)
//	         ↓
//	    [sp] package (block tree analysis, per-block SP engine)
//	         ↓
//	    [cert] package (SP-decomposition tree or negative witness)
//	         ↓
//	    authentication against the input graph
//
// # Quick Start
//
//	g, err := graph.ReadFile("graph.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res := sp.Recognize(g, sp.Options{})
//	if err := res.Authenticate(g); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.IsSP, res.Reason.Describe())
package pkg
