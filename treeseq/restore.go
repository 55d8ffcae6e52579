// SPDX-License-Identifier: MIT
//
// File: restore.go
// Role: reloading a previously built node/edge/mutation table straight
//       into a fresh Builder, bypassing path compression (the edges are
//       assumed already compressed, since they came out of a prior
//       builder run).
package treeseq

import "fmt"

// RestoreNodes appends one node per (time[j], flags[j]) pair, in order.
func (b *Builder) RestoreNodes(time []float64, flags []NodeFlags) error {
	if len(time) != len(flags) {
		return fmt.Errorf("treeseq: time/flags length mismatch: %w", ErrBadInput)
	}
	for j := range time {
		b.AddNode(time[j], flags[j])
	}
	return nil
}

// RestoreEdges rebuilds the path and index state from edges already
// sorted by child (non-decreasing) and, within a child, by left
// (non-decreasing). It ends by calling FreezeIndexes.
func (b *Builder) RestoreEdges(left, right, parent, child []int) error {
	n := len(left)
	if len(right) != n || len(parent) != n || len(child) != n {
		return fmt.Errorf("treeseq: edge array length mismatch: %w", ErrBadInput)
	}
	var prev *edgeNode
	for j := 0; j < n; j++ {
		if j > 0 && child[j-1] > child[j] {
			return fmt.Errorf("treeseq: edges not sorted by child: %w", ErrUnsortedEdges)
		}
		if child[j] < 0 || child[j] >= len(b.nodes) {
			return fmt.Errorf("treeseq: child %d out of range: %w", child[j], ErrBadInput)
		}
		e := b.edges.alloc(left[j], right[j], parent[j], child[j], b.nodes[child[j]].Time)
		if b.path[child[j]] == nil {
			b.path[child[j]] = e
		} else {
			if prev.edge.Right > e.edge.Left {
				return fmt.Errorf("treeseq: edges not sorted by left within child %d: %w", child[j], ErrUnsortedEdges)
			}
			prev.next = e
		}
		b.indexEdge(e)
		prev = e
	}
	b.FreezeIndexes()
	return nil
}

// RestoreMutations appends one mutation per (site[j], node[j],
// derivedState[j]) triple, in order, the same way AddMutations does for
// a single node.
func (b *Builder) RestoreMutations(site, node []int, derivedState []int8) error {
	if len(site) != len(node) || len(site) != len(derivedState) {
		return fmt.Errorf("treeseq: site/node/derivedState length mismatch: %w", ErrBadInput)
	}
	for j := range site {
		if err := b.addMutation(site[j], node[j], derivedState[j]); err != nil {
			return err
		}
	}
	return nil
}
