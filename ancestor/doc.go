// SPDX-License-Identifier: MIT

// Package ancestor provides an immutable-after-build, read-only store of
// haplotype ancestors as per-site run-length segments.
//
// A Store is built once from four parallel input arrays (site positions,
// ancestor ages, focal sites, segments) via New, and thereafter only
// answers point queries (GetState) and full-ancestor materialisation
// (GetAncestor). There is no mutation API: the construction/query split
// mirrors lvlath/core's read side without the concurrency machinery,
// because the ancestor store's only writer is its own constructor and
// every subsequent caller only reads (no goroutines touch a Store
// concurrently with its construction).
//
// Ancestors are organised into Epochs — maximal contiguous runs of
// ancestors sharing the same age — numbered so that epoch 0 holds the
// oldest ancestors (including the synthetic root, ancestor 0) and the
// last epoch holds the youngest.
//
// Quick example:
//
//	store, err := ancestor.New(ancestor.Input{...})
//	allele := store.GetState(site, id)
//	a := store.GetAncestor(id)
package ancestor
