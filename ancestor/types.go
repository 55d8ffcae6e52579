// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Site, Segment, Ancestor, Epoch value types and the Input shape
//       New builds a Store from.
package ancestor

import "math"

// MaxAge is the synthetic age assigned to ancestor 0, the root ancestor
// that precedes every real ancestor in time. It is forced onto
// Input.AncestorAge[0] regardless of what the caller supplies there,
// exactly as the original C allocator overwrites ancestors.age[0].
const MaxAge = math.MaxUint32

// Segment is a half-open ancestor-id interval [Start, End) attached to a
// site: every ancestor in the interval carries the derived allele (1) at
// that site. Segments within a Site are stored in ascending End order and
// never overlap.
type Segment struct {
	Start int
	End   int
}

// Site is one physical position plus its derived-allele segments.
type Site struct {
	Position float64
	Segments []Segment
}

// Ancestor describes one inferred haplotype: its age (higher = older),
// how many strictly older ancestors precede it, and the sites where its
// state is fixed to 1 by construction.
type Ancestor struct {
	Age               uint32
	NumOlderAncestors int
	FocalSites        []int
}

// Epoch is a maximal contiguous run of ancestors sharing the same age.
type Epoch struct {
	FirstAncestor int
	NumAncestors  int
}

// MaterializedAncestor is the full per-site state of one ancestor,
// produced by Store.GetAncestor.
type MaterializedAncestor struct {
	// State holds one entry per site: -1 (missing), 0, or 1.
	State      []int8
	StartSite  int
	EndSite    int
	FocalSites []int
}

// Input is the single bulk construction shape New accepts: four groups
// of parallel arrays describing sites, ancestor ages and support ranges,
// focal sites, and segments.
type Input struct {
	// Position holds one strictly increasing coordinate per site.
	Position []float64

	// AncestorAge holds one non-increasing age per ancestor.
	// AncestorAge[0] is ignored and replaced with MaxAge.
	AncestorAge []uint32

	// FocalSiteAncestor/FocalSite are parallel arrays grouped by ancestor:
	// FocalSiteAncestor must start at 1 and increase by exactly one each
	// time it changes (ancestor 0 has no focal sites, and no ancestor id
	// after the first referenced one may be skipped).
	FocalSiteAncestor []int
	FocalSite         []int

	// SegmentSite/SegmentStart/SegmentEnd are parallel arrays grouped by
	// site in ascending site order; within a site, segments are in
	// ascending End order and do not overlap.
	SegmentSite  []int
	SegmentStart []int
	SegmentEnd   []int

	// AncestorStartSite/AncestorEndSite give each ancestor's own
	// contiguous support range [start, end) — outside it, every site
	// reads as missing (-1); inside it, GetState's segment scan applies.
	// Ancestor 0, the synthetic root, must span the whole genome:
	// AncestorStartSite[0] == 0 and AncestorEndSite[0] == len(Position).
	//
	// The segment arrays above only record *which* ancestors carry the
	// derived allele at a site: they say nothing about which ancestors
	// have reached a site at all, so the ancestor's own extent — the
	// contiguous range outside of which state is -1 — is carried
	// explicitly here rather than re-derived from segment membership,
	// which cannot distinguish "not derived" from "not yet alive at this
	// site".
	AncestorStartSite []int
	AncestorEndSite   []int
}
