// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Mutation value types and the flag bitsets controlling
//       builder behaviour.
package treeseq

// pcAncestorTimeIncrement is the time gap inserted between a synthesized
// path-compression node and the youngest parent it was folded out of. A
// power of two keeps the subtraction exact in float64.
const pcAncestorTimeIncrement = 1.0 / 65536

// noNode marks an edge as transiently unindexed (pulled out of the three
// ordered indexes mid-compression, not yet reindexed) and is never a
// valid node id.
const noNode = -1

// Flags controls optional behaviour of AddPath.
type Flags uint32

const (
	// CompressPath folds shared ancestry discovered while adding this
	// path into synthetic path-compression nodes instead of storing one
	// edge per source ancestor.
	CompressPath Flags = 1 << iota

	// ExtendedChecks runs CheckInvariants after the call, for use in
	// tests and debugging; expensive, never enabled by default.
	ExtendedChecks
)

// NodeFlags annotates a Node's provenance.
type NodeFlags uint32

const (
	// NodeIsSample marks a node as an observed input haplotype rather
	// than an inferred or synthesized ancestor.
	NodeIsSample NodeFlags = 1 << iota

	// NodeIsPCAncestor marks a node synthesized by path compression to
	// represent ancestry shared by two or more children.
	NodeIsPCAncestor
)

// Node is one entry in the builder's node table.
type Node struct {
	Time  float64
	Flags NodeFlags
}

// Edge is a half-open genomic interval [Left, Right) over which Child
// inherits from Parent.
type Edge struct {
	Left, Right   int
	Parent, Child int
}

// Mutation is one derived-allele event: Node acquires DerivedState (0 or
// 1) at Site.
type Mutation struct {
	Site         int
	Node         int
	DerivedState int8
}
