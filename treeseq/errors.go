// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for package treeseq.
// Policy: only sentinel variables are exported; callers branch with
//       errors.Is. Construction/path/mutation failures wrap one of these
//       with fmt.Errorf("...: %w", ...) for detail.
package treeseq

import "errors"

var (
	// ErrNoMemory indicates an allocation implied by the call would exceed
	// what the builder is willing to service.
	ErrNoMemory = errors.New("treeseq: allocation limit exceeded")

	// ErrBadInput indicates mismatched or malformed argument slices.
	ErrBadInput = errors.New("treeseq: invalid input")

	// ErrBadPathParent indicates a path names a parent node id that does
	// not exist in the builder.
	ErrBadPathParent = errors.New("treeseq: parent node out of range")

	// ErrBadPathTime indicates a path names a parent whose time is not
	// strictly greater than its child's time.
	ErrBadPathTime = errors.New("treeseq: parent is not older than child")

	// ErrNonContiguousEdges indicates a path's edges, read in left-to-
	// right spatial order, leave a gap or overlap between consecutive
	// intervals.
	ErrNonContiguousEdges = errors.New("treeseq: path edges are not contiguous")

	// ErrUnsortedEdges indicates RestoreEdges was given edges out of the
	// child-major, left-minor order it requires.
	ErrUnsortedEdges = errors.New("treeseq: edges are not sorted")

	// ErrBadMutation indicates a mutation call violates the per-site
	// mutation list shape (the first mutation at a site must carry the
	// derived allele, 1).
	ErrBadMutation = errors.New("treeseq: invalid mutation")

	// ErrAssertionFailure indicates an internal invariant the builder
	// relies on did not hold — e.g. a path-compression node ended up no
	// older than the children it was meant to sit above. Surfacing this
	// as an error (rather than panicking) lets callers abort the batch
	// that triggered it.
	ErrAssertionFailure = errors.New("treeseq: internal invariant violated")
)
