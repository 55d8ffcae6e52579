// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: AddPath — describing one node's ancestry as a chain of parent
//       edges over contiguous genomic intervals.
package treeseq

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// fingerprint hashes the (left, right, parent) triple that identifies an
// edge's spatial+parent identity in the path index, independent of
// which child currently owns it. findMatch consults pathPrint before
// doing the binary search below, turning the common case — no existing
// edge anywhere shares this triple — into an O(1) map lookup instead of
// an O(log n) search that would find nothing.
func fingerprint(left, right, parent int) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(left))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(right))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(parent))
	return xxhash.Sum64(buf[:])
}

func (b *Builder) indexEdge(e *edgeNode) {
	b.leftIndex.insert(e)
	b.rightIndex.insert(e)
	b.pathIndex.insert(e)
	b.pathPrint[fingerprint(e.edge.Left, e.edge.Right, e.edge.Parent)]++
}

func (b *Builder) unindexEdge(e *edgeNode) {
	b.leftIndex.remove(e)
	b.rightIndex.remove(e)
	b.pathIndex.remove(e)
	fp := fingerprint(e.edge.Left, e.edge.Right, e.edge.Parent)
	b.pathPrint[fp]--
	if b.pathPrint[fp] == 0 {
		delete(b.pathPrint, fp)
	}
}

func (b *Builder) indexPath(child int) {
	for e := b.path[child]; e != nil; e = e.next {
		b.indexEdge(e)
	}
}

// AddPath records child's ancestry as num_edges contiguous genomic
// intervals, each inherited from a (possibly different) parent. left,
// right, and parent are parallel arrays supplied in reverse spatial
// order: index 0 is the rightmost interval, the last index the
// leftmost — the same convention used by RestoreEdges' sort order, just
// reversed.
//
// Validation runs as one pass over the raw arrays before anything is
// allocated or indexed, so a bad path leaves the builder completely
// unchanged; only once every edge has checked out does a second pass
// build and index the chain.
func (b *Builder) AddPath(child int, left, right, parent []int, flags Flags) error {
	if child < 0 || child >= len(b.nodes) {
		return fmt.Errorf("treeseq: child %d out of range: %w", child, ErrBadPathParent)
	}
	n := len(left)
	if len(right) != n || len(parent) != n {
		return fmt.Errorf("treeseq: left/right/parent length mismatch: %w", ErrBadInput)
	}
	if n == 0 {
		return fmt.Errorf("treeseq: path must have at least one edge: %w", ErrBadInput)
	}

	childTime := b.nodes[child].Time
	prevRight := -1
	for j := n - 1; j >= 0; j-- {
		p := parent[j]
		if p < 0 || p >= len(b.nodes) {
			return fmt.Errorf("treeseq: parent %d out of range: %w", p, ErrBadPathParent)
		}
		if b.nodes[p].Time <= childTime {
			return fmt.Errorf("treeseq: parent %d (time %g) is not older than child %d (time %g): %w",
				p, b.nodes[p].Time, child, childTime, ErrBadPathTime)
		}
		if left[j] >= right[j] {
			return fmt.Errorf("treeseq: edge %d has empty interval [%d,%d): %w", j, left[j], right[j], ErrBadInput)
		}
		if prevRight != -1 && prevRight != left[j] {
			return fmt.Errorf("treeseq: edge %d does not abut its predecessor: %w", j, ErrNonContiguousEdges)
		}
		prevRight = right[j]
	}

	var head, prev *edgeNode
	for j := n - 1; j >= 0; j-- {
		e := b.edges.alloc(left[j], right[j], parent[j], child, childTime)
		if head == nil {
			head = e
		} else {
			prev.next = e
		}
		prev = e
	}
	b.path[child] = head

	if flags&CompressPath != 0 {
		if err := b.compressPath(child); err != nil {
			return err
		}
	}
	b.indexPath(child)

	if flags&ExtendedChecks != 0 {
		if err := b.CheckInvariants(); err != nil {
			return err
		}
	}
	return nil
}
