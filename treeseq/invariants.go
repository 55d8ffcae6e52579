// SPDX-License-Identifier: MIT
//
// File: invariants.go
// Role: an exported consistency walk usable from tests and from
//       AddPath's ExtendedChecks flag, not invoked automatically
//       otherwise.
package treeseq

import "fmt"

// CheckInvariants walks every node's path chain and the three edge
// indexes and verifies: each chain's edges all name their own node as
// child and abut left-to-right with no gaps; the three indexes agree on
// edge count; and every indexed edge is reachable from its child's
// chain. Index membership is checked by linear scan, so it is
// O(num_nodes + num_edges²) and meant for tests, not production hot
// paths.
func (b *Builder) CheckInvariants() error {
	total := 0
	for child, head := range b.path {
		var prev *edgeNode
		for e := head; e != nil; e = e.next {
			total++
			if e.edge.Child != child {
				return fmt.Errorf("treeseq: edge on node %d chain claims child %d", child, e.edge.Child)
			}
			if prev != nil && prev.edge.Right != e.edge.Left {
				return fmt.Errorf("treeseq: node %d chain has a gap between %v and %v", child, prev.edge, e.edge)
			}
			prev = e
		}
	}
	if total != b.leftIndex.Len() || total != b.rightIndex.Len() || total != b.pathIndex.Len() {
		return fmt.Errorf("treeseq: index sizes disagree: chains=%d left=%d right=%d path=%d",
			total, b.leftIndex.Len(), b.rightIndex.Len(), b.pathIndex.Len())
	}
	for child, head := range b.path {
		for e := head; e != nil; e = e.next {
			if !b.leftIndex.contains(e) || !b.rightIndex.contains(e) || !b.pathIndex.contains(e) {
				return fmt.Errorf("treeseq: edge on node %d chain is missing from an index", child)
			}
		}
	}
	return nil
}
