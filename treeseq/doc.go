// SPDX-License-Identifier: MIT

// Package treeseq incrementally builds a tree sequence — a forest of node
// paths (per-child chains of parent edges over contiguous genomic
// intervals) plus site mutations — from haplotype matches supplied one
// ancestor at a time.
//
// A Builder starts empty; callers add nodes with AddNode, then describe
// each node's ancestry with AddPath (optionally folding shared ancestry
// into synthesized path-compression nodes) and AddMutations. Three
// ordered views over the live edge set — left-endpoint, right-endpoint,
// and path order — are kept up to date as edges are added, retargeted,
// and removed by path compression; FreezeIndexes snapshots them into
// plain Edge slices for sequential consumers once a batch of paths has
// settled.
//
// A Builder is not safe for concurrent use: callers serialize access to
// one Builder themselves, the same way ancestor.Store's own construction
// is single-writer.
package treeseq
