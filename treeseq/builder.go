// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Builder type, New constructor, node-table lifecycle.
package treeseq

import "fmt"

// Builder incrementally assembles the node, edge, and mutation tables of
// a tree sequence. Construct with New; there is no other way to obtain
// one.
type Builder struct {
	numSites int

	nodes []Node
	path  []*edgeNode // path[child] is the head of child's edge chain

	leftIndex  *edgeIndex
	rightIndex *edgeIndex
	pathIndex  *edgeIndex
	pathPrint  map[uint64]int // fingerprint(left,right,parent) -> live count

	edges edgePool

	mutationNodes    []mutationNode
	siteMutationHead []int
	siteMutationTail []int
	numMutations     int

	frozenLeft  []Edge
	frozenRight []Edge
}

// New returns an empty Builder sized for numSites sites.
func New(numSites int) (*Builder, error) {
	if numSites <= 0 {
		return nil, fmt.Errorf("treeseq: num_sites must be positive: %w", ErrBadInput)
	}
	b := &Builder{
		numSites:         numSites,
		leftIndex:        newEdgeIndex(lessLeftIncreasingTime),
		rightIndex:       newEdgeIndex(lessRightDecreasingTime),
		pathIndex:        newEdgeIndex(lessPath),
		pathPrint:        make(map[uint64]int),
		siteMutationHead: make([]int, numSites),
		siteMutationTail: make([]int, numSites),
	}
	for l := range b.siteMutationHead {
		b.siteMutationHead[l] = -1
		b.siteMutationTail[l] = -1
	}
	return b, nil
}

// NumSites returns the number of sites the Builder was constructed with.
func (b *Builder) NumSites() int { return b.numSites }

// NumNodes returns the number of nodes added so far.
func (b *Builder) NumNodes() int { return len(b.nodes) }

// NumEdges returns the number of edges currently indexed (live edges,
// after any path compression folded duplicates away).
func (b *Builder) NumEdges() int { return b.leftIndex.Len() }

// NumMutations returns the number of mutations added so far.
func (b *Builder) NumMutations() int { return b.numMutations }

// AddNode appends a node with the given time and flags and returns its
// id. AddNode itself does not require any particular time ordering
// across calls; AddPath separately enforces that every path's parents
// are strictly older than its child.
func (b *Builder) AddNode(time float64, flags NodeFlags) int {
	id := len(b.nodes)
	b.nodes = append(b.nodes, Node{Time: time, Flags: flags})
	b.path = append(b.path, nil)
	return id
}

// NodeTime returns the time of node id.
func (b *Builder) NodeTime(id int) float64 {
	if id < 0 || id >= len(b.nodes) {
		panic("treeseq: node id out of range")
	}
	return b.nodes[id].Time
}

// NodeFlags returns the flags of node id.
func (b *Builder) NodeFlags(id int) NodeFlags {
	if id < 0 || id >= len(b.nodes) {
		panic("treeseq: node id out of range")
	}
	return b.nodes[id].Flags
}

// NodeEdges returns id's current edge chain, left to right, as a plain
// slice.
func (b *Builder) NodeEdges(id int) []Edge {
	if id < 0 || id >= len(b.nodes) {
		panic("treeseq: node id out of range")
	}
	var out []Edge
	for e := b.path[id]; e != nil; e = e.next {
		out = append(out, e.edge)
	}
	return out
}
