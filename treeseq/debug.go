// SPDX-License-Identifier: MIT
//
// File: debug.go
// Role: human-readable state dump, a developer diagnostic exercised by
//       builder_test.go; not part of the data model.
package treeseq

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Fprint writes a human-readable dump of the Builder to w, colourising
// section headers unless color.NoColor is set. fatih/color sets NoColor
// from whether standard output is a terminal; w itself is not inspected.
func (b *Builder) Fprint(w io.Writer) {
	header := color.New(color.Bold)
	header.Fprintln(w, "tree sequence builder")
	fmt.Fprintf(w, "num_sites = %d\n", b.numSites)
	fmt.Fprintf(w, "num_nodes = %d\n", len(b.nodes))
	fmt.Fprintf(w, "num_edges = %d\n", b.leftIndex.Len())
	fmt.Fprintf(w, "num_mutations = %d\n", b.numMutations)

	header.Fprintln(w, "nodes")
	fmt.Fprintln(w, "id\tflags\ttime\tpath")
	for id, n := range b.nodes {
		fmt.Fprintf(w, "%d\t%d\t%g\t", id, n.Flags, n.Time)
		for e := b.path[id]; e != nil; e = e.next {
			fmt.Fprintf(w, "(%d, %d, %d)", e.edge.Left, e.edge.Right, e.edge.Parent)
			if e.next != nil {
				fmt.Fprint(w, "->")
			}
		}
		fmt.Fprintln(w)
	}

	header.Fprintln(w, "mutations")
	fmt.Fprintln(w, "site\t(node, derived_state),...")
	for l := 0; l < b.numSites; l++ {
		muts := b.SiteMutations(l)
		if len(muts) == 0 {
			continue
		}
		fmt.Fprintf(w, "%d\t", l)
		for _, m := range muts {
			fmt.Fprintf(w, "(%d, %d) ", m.Node, m.DerivedState)
		}
		fmt.Fprintln(w)
	}

	header.Fprintln(w, "path index")
	for _, e := range b.pathIndex.items {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", e.edge.Left, e.edge.Right, e.edge.Parent, e.edge.Child)
	}
}
