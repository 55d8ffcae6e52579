// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: ordered views over the live edge set. No ordered-map/B-tree
//       library appears anywhere in this module's dependency surface, so
//       each index is a sorted []*edgeNode kept in order by insertion
//       and removal via sort.Search — O(log n) to locate a position,
//       O(n) to splice, which is the usual trade a slice makes against a
//       balanced tree in exchange for density and cache locality at the
//       sizes a single tree-sequence build batch reaches.
package treeseq

import "sort"

// edgeNode is one edge plus the ordering key derived from it (its
// child's time at allocation) and its position in its child's path
// chain. Builder.path holds these in a singly linked list per child so
// that path compression can splice the middle of a chain in O(1) once
// located.
type edgeNode struct {
	edge Edge
	time float64
	next *edgeNode
}

// edgeIndex is a sorted slice of *edgeNode ordered by less. Pointer
// identity (not value equality) is what remove() relies on, since two
// edges may legitimately compare equal up to the tie-breaking field.
type edgeIndex struct {
	less  func(a, b *edgeNode) bool
	items []*edgeNode
}

func newEdgeIndex(less func(a, b *edgeNode) bool) *edgeIndex {
	return &edgeIndex{less: less}
}

func (x *edgeIndex) Len() int { return len(x.items) }

// searchPos returns the first index i such that !less(items[i], e), i.e.
// the slice position e should occupy to keep items sorted.
func (x *edgeIndex) searchPos(e *edgeNode) int {
	return sort.Search(len(x.items), func(i int) bool { return !x.less(x.items[i], e) })
}

func (x *edgeIndex) insert(e *edgeNode) {
	i := x.searchPos(e)
	x.items = append(x.items, nil)
	copy(x.items[i+1:], x.items[i:])
	x.items[i] = e
}

// remove deletes e, found first by its sorted position and, if ties on
// the ordering key put it elsewhere in an equal-key run, by a linear
// scan of that run. e must currently be indexed.
func (x *edgeIndex) remove(e *edgeNode) {
	i := x.searchPos(e)
	for _, j := range []int{i, i - 1, i + 1} {
		if j >= 0 && j < len(x.items) && x.items[j] == e {
			x.items = append(x.items[:j], x.items[j+1:]...)
			return
		}
	}
	for j, it := range x.items {
		if it == e {
			x.items = append(x.items[:j], x.items[j+1:]...)
			return
		}
	}
}

// contains reports whether e is present by pointer identity, used only
// by CheckInvariants.
func (x *edgeIndex) contains(e *edgeNode) bool {
	for _, it := range x.items {
		if it == e {
			return true
		}
	}
	return false
}

func lessLeftIncreasingTime(a, b *edgeNode) bool {
	if a.edge.Left != b.edge.Left {
		return a.edge.Left < b.edge.Left
	}
	if a.time != b.time {
		return a.time < b.time
	}
	return a.edge.Child < b.edge.Child
}

func lessRightDecreasingTime(a, b *edgeNode) bool {
	if a.edge.Right != b.edge.Right {
		return a.edge.Right < b.edge.Right
	}
	if a.time != b.time {
		return a.time > b.time
	}
	return a.edge.Child < b.edge.Child
}

func lessPath(a, b *edgeNode) bool {
	if a.edge.Left != b.edge.Left {
		return a.edge.Left < b.edge.Left
	}
	if a.edge.Right != b.edge.Right {
		return a.edge.Right < b.edge.Right
	}
	if a.edge.Parent != b.edge.Parent {
		return a.edge.Parent < b.edge.Parent
	}
	return a.edge.Child < b.edge.Child
}
