// SPDX-License-Identifier: MIT
//
// File: dump.go
// Role: Dump — emitting the finished builder state into an external
//       table-collection sink.
package treeseq

import "github.com/arborist-go/tsbuild/sink"

// Dump clears dst, sets its sequence length to NumSites, then emits
// nodes in id order, each node's edges immediately after it, one site
// row per site with ancestral state "0", and per-site mutation rows in
// list order with parent pointers forming each site's chain (the first
// mutation at a site has parent -1).
func (b *Builder) Dump(dst sink.TableCollection) {
	dst.Clear()
	dst.SetSequenceLength(float64(b.numSites))

	for id, n := range b.nodes {
		dst.AddNode(uint32(n.Flags), n.Time)
		for e := b.path[id]; e != nil; e = e.next {
			dst.AddEdge(e.edge.Left, e.edge.Right, e.edge.Parent, e.edge.Child)
		}
	}

	states := [2]string{"0", "1"}
	for l := 0; l < b.numSites; l++ {
		dst.AddSite(float64(l), "0")
		parent := -1
		for i := b.siteMutationHead[l]; i != -1; i = b.mutationNodes[i].next {
			m := b.mutationNodes[i]
			parent = dst.AddMutation(l, m.node, parent, states[m.derivedState])
		}
	}
}
