// SPDX-License-Identifier: MIT
//
// File: compress.go
// Role: path compression — detecting that several consecutive edges of
//       a newly added path already exist (same interval and parent) on
//       some other node's path, and folding that shared ancestry into a
//       single synthesized node both paths then inherit from.
package treeseq

import (
	"fmt"
	"math"
)

// edgeMapEntry pairs a newly added edge (source) with the already-
// indexed edge it matches (dest, on some other node's path).
type edgeMapEntry struct {
	source *edgeNode
	dest   *edgeNode
}

// findMatch looks up an edge with the same (left, right, parent) as
// query anywhere in the path index. When several children own such an
// edge, the one with the highest child id is returned. The path index is
// ordered by (left, right, parent, child), so that match — if any — sits
// just before the position a search key with child math.MaxInt would
// occupy.
func (b *Builder) findMatch(query *edgeNode) *edgeNode {
	fp := fingerprint(query.edge.Left, query.edge.Right, query.edge.Parent)
	if b.pathPrint[fp] == 0 {
		return nil
	}
	search := &edgeNode{edge: Edge{
		Left: query.edge.Left, Right: query.edge.Right, Parent: query.edge.Parent, Child: math.MaxInt,
	}}
	idx := b.pathIndex.searchPos(search)
	at := func(i int) *edgeNode {
		if i < 0 || i >= len(b.pathIndex.items) {
			return nil
		}
		e := b.pathIndex.items[i]
		if e.edge.Left == query.edge.Left && e.edge.Right == query.edge.Right && e.edge.Parent == query.edge.Parent {
			return e
		}
		return nil
	}
	if e := at(idx); e != nil {
		return e
	}
	if e := at(idx - 1); e != nil {
		return e
	}
	if e := at(idx + 1); e != nil {
		return e
	}
	return nil
}

// squashEdges merges adjacent edges of child's own chain that abut and
// share a parent. Used on chains that are not yet indexed (a brand new
// child's path, or a freshly built pc-node's path), so no index upkeep
// is needed.
func (b *Builder) squashEdges(child int) {
	prev := b.path[child]
	if prev == nil {
		return
	}
	for x := prev.next; x != nil; {
		next := x.next
		if prev.edge.Right == x.edge.Left && prev.edge.Parent == x.edge.Parent {
			prev.edge.Right = x.edge.Right
			prev.next = next
			b.edges.release(x)
		} else {
			prev = x
		}
		x = next
	}
}

// squashIndexedEdges is squashEdges for a chain that is already live in
// the three indexes. Any edge pulled out of the chain by the merge must
// first be unindexed; edges left in the chain keep their position but
// may have had their Right endpoint extended, so they are unindexed,
// merged, then reindexed under the same child id. Edges that were
// already unindexed by a caller (see makePCNode) are marked with
// edge.Child == noNode and are skipped on the way out, then reindexed
// at the end alongside any newly merged survivors.
func (b *Builder) squashIndexedEdges(child int) {
	prev := b.path[child]
	if prev == nil {
		return
	}
	for x := prev.next; x != nil; {
		next := x.next
		if prev.edge.Right == x.edge.Left && prev.edge.Parent == x.edge.Parent {
			if prev.edge.Child != noNode {
				b.unindexEdge(prev)
				prev.edge.Child = noNode
			}
			if x.edge.Child != noNode {
				b.unindexEdge(x)
			}
			prev.edge.Right = x.edge.Right
			prev.next = next
			b.edges.release(x)
		} else {
			prev = x
		}
		x = next
	}
	for x := b.path[child]; x != nil; x = x.next {
		if x.edge.Child == noNode {
			x.edge.Child = child
			b.indexEdge(x)
		}
	}
}

// makePCNode synthesizes a path-compression node sitting between mapped's
// source children (the new path's own parents) and the common ancestry
// they already share with an existing node's path, mapped's dest edges.
// All entries in mapped must already share the same dest.edge.Child.
func (b *Builder) makePCNode(mapped []edgeMapEntry) error {
	mappedChild := mapped[0].dest.edge.Child
	mappedChildTime := b.nodes[mappedChild].Time

	minParentTime := b.nodes[0].Time + 1
	for _, m := range mapped {
		if t := b.nodes[m.source.edge.Parent].Time; t < minParentTime {
			minParentTime = t
		}
	}
	minParentTime -= pcAncestorTimeIncrement
	if minParentTime <= mappedChildTime {
		return fmt.Errorf("treeseq: path-compression node would not be older than its children: %w", ErrAssertionFailure)
	}

	pcNode := b.AddNode(minParentTime, NodeIsPCAncestor)

	var head, prev *edgeNode
	for i := range mapped {
		m := &mapped[i]
		e := b.edges.alloc(m.source.edge.Left, m.source.edge.Right, m.source.edge.Parent, pcNode, minParentTime)
		if head == nil {
			head = e
		} else {
			prev.next = e
		}
		prev = e

		m.source.edge.Parent = pcNode
		b.unindexEdge(m.dest)
		m.dest.edge.Parent = pcNode
		m.dest.edge.Child = noNode
	}
	b.path[pcNode] = head
	b.squashEdges(pcNode)
	b.squashIndexedEdges(mappedChild)
	b.indexPath(pcNode)
	return nil
}

// compressPath scans child's freshly built (not yet indexed) chain for
// edges that match existing indexed edges, groups consecutive matches
// against the same other node into contigs, and folds each contig of
// length > 1 into a path-compression node (reusing an existing one if
// the matched node already is one).
func (b *Builder) compressPath(child int) error {
	type span struct{ start, end int }
	var mapped []edgeMapEntry
	var spans []span
	lastRight, lastChild := -1, noNode

	for e := b.path[child]; e != nil; e = e.next {
		m := b.findMatch(e)
		if m == nil {
			continue
		}
		if !(e.edge.Left == lastRight && m.edge.Child == lastChild) {
			spans = append(spans, span{start: len(mapped)})
		}
		mapped = append(mapped, edgeMapEntry{source: e, dest: m})
		lastRight, lastChild = m.edge.Right, m.edge.Child
	}
	for i := range spans {
		if i+1 < len(spans) {
			spans[i].end = spans[i+1].start
		} else {
			spans[i].end = len(mapped)
		}
	}

	for _, s := range spans {
		if s.end-s.start <= 1 {
			continue
		}
		group := mapped[s.start:s.end]
		mappedChild := group[0].dest.edge.Child
		if b.nodes[mappedChild].Flags&NodeIsPCAncestor != 0 {
			for i := range group {
				group[i].source.edge.Parent = mappedChild
			}
		} else if err := b.makePCNode(group); err != nil {
			return err
		}
	}
	b.squashEdges(child)
	return nil
}
