// SPDX-License-Identifier: MIT
// Package dd: Graphviz export.
//
// WriteDot draws one circle per reachable node (labelled with its variable),
// a single box for the terminal, and for every node a ranked row of R*R
// point handles carrying the child weights. Even block-columns are red, odd
// ones black; zero-weight children get a handle but no arrow.

package dd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/pkg/errors"
)

const opWriteDot = "WriteDot"

// WriteDot writes d as a Graphviz digraph titled title.
// Nodes are emitted depth-first from the root, children in index order, so
// the output is stable for a given diagram.
//
// Errors:
//   - ErrNilDiagram; write errors of w (wrapped "WriteDot: ...").
func WriteDot(w io.Writer, d *Diagram, title string) error {
	if err := validateNotNil(d); err != nil {
		return ddErrorf(opWriteDot, err)
	}

	s := d.store
	r := s.opts.radix
	rr := r * r
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "digraph {\n")
	fmt.Fprintf(bw, "  labelloc=\"t\";\n")
	fmt.Fprintf(bw, "  label=%q;\n", title)
	fmt.Fprintf(bw, "  splines=line;\n")

	root := d.Root()
	fmt.Fprintf(bw, "  root [shape=point,width=0.001,height=0.001];\n")
	fmt.Fprintf(bw, "  root -> n%d [label=%q];\n", root.Target, formatWeight(root.Weight))
	writeDotNode(bw, s, root.Target)

	added := hashset.New(NoNode)
	declared := hashset.New(root.Target)
	pending := []NodeRef{root.Target}
	for len(pending) > 0 {
		ref := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if added.Contains(ref) {
			continue
		}

		n := s.node(ref)
		edges := make([]Edge, rr)
		for i, child := range n.Children {
			e := s.edge(child)
			edges[i] = e
			if !declared.Contains(e.Target) {
				declared.Add(e.Target)
				writeDotNode(bw, s, e.Target)
			}
			if !added.Contains(e.Target) {
				pending = append(pending, e.Target)
			}
		}

		// ranked row of weight handles, the invisible middle one centres it
		fmt.Fprintf(bw, "  subgraph c%d {\n", ref)
		fmt.Fprintf(bw, "  rank=same;\n")
		fmt.Fprintf(bw, "  edge[style=invisible,dir=none];\n")
		for i, e := range edges {
			if isZero(e.Weight, s.opts.eps) {
				fmt.Fprintf(bw, "  c%d_%d[shape=point,color=%s];\n", ref, i, dotColor(i, r))
			} else {
				fmt.Fprintf(bw, "  c%d_%d[shape=point,width=0.01,height=0.01,color=%s];\n", ref, i, dotColor(i, r))
			}
		}
		fmt.Fprintf(bw, "  c%d_%d[shape=point,width=0,height=0,style=invis];\n", ref, rr)
		row := make([]string, 0, rr+1)
		for i := 0; i <= rr; i++ {
			switch {
			case i == rr/2:
				row = append(row, fmt.Sprintf("c%d_%d", ref, rr))
			case i > rr/2:
				row = append(row, fmt.Sprintf("c%d_%d", ref, i-1))
			default:
				row = append(row, fmt.Sprintf("c%d_%d", ref, i))
			}
		}
		fmt.Fprintf(bw, "  %s;\n", strings.Join(row, " -> "))
		fmt.Fprintf(bw, "  }\n")

		for i, e := range edges {
			c := dotColor(i, r)
			fmt.Fprintf(bw, "  n%d -> c%d_%d [label=%q, arrowhead=none,color=%s,fontcolor=%s];\n",
				ref, ref, i, formatWeight(e.Weight), c, c)
		}
		for i, e := range edges {
			if isZero(e.Weight, s.opts.eps) {
				continue
			}
			fmt.Fprintf(bw, "  c%d_%d -> n%d [constraint=false,color=%s];\n", ref, i, e.Target, dotColor(i, r))
			fmt.Fprintf(bw, "  c%d_%d -> n%d [style=invis];\n", ref, rr, e.Target)
		}

		added.Add(ref)
	}

	fmt.Fprintf(bw, "}\n")

	return errors.Wrap(bw.Flush(), opWriteDot)
}

func writeDotNode(w io.Writer, s *Store, ref NodeRef) {
	if ref == NoNode {
		fmt.Fprintf(w, "  n%d [label=\"1\",shape=box];\n", ref)
		return
	}
	fmt.Fprintf(w, "  n%d [label=\"x%d\",shape=circle];\n", ref, s.node(ref).Variable)
}

// dotColor alternates by block-column.
func dotColor(i, radix int) string {
	if (i%radix)%2 == 0 {
		return "red"
	}

	return "black"
}

// formatWeight renders a weight compactly: "0.7071", "-1", "0.5i",
// "0.5-0.5i".
func formatWeight(w complex128) string {
	re, im := real(w), imag(w)
	switch {
	case im == 0:
		return fmt.Sprintf("%.4g", re)
	case re == 0:
		return fmt.Sprintf("%.4gi", im)
	default:
		return fmt.Sprintf("%.4g%+.4gi", re, im)
	}
}
