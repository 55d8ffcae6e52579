// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: Store type and New constructor — validates Input against the
//       data-model invariants of spec.md §3 and derives epochs and
//       num-older-ancestor counts in a single forward pass.
// AI-HINT (file):
//   - New never panics; every invariant violation returns ErrBadInput.
//   - Ancestor 0's age is always forced to MaxAge, regardless of Input.
package ancestor

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Store is an immutable-after-build representation of a set of haplotype
// ancestors as per-site run-length segments. Construct with New; there is
// no exported mutator.
type Store struct {
	numSites     int
	numAncestors int

	sites []Site

	ancestorAge        []uint32
	ancestorStartSite  []int
	ancestorEndSite    []int
	numOlderAncestors  []int
	focalSites         [][]int
	focalSitesBacking  []int
	totalSegments      int
	maxSiteSegments    int

	epochs []Epoch

	stateCache *lru.Cache[stateCacheKey, int8]
}

// stateCacheKey is the lookup key for the GetState memoization cache
// (see cache.go); both fields are plain ints so the key is comparable
// and usable directly as a generic LRU key.
type stateCacheKey struct {
	site     int
	ancestor int
}

// NumSites returns the number of sites the Store was built with.
func (s *Store) NumSites() int { return s.numSites }

// NumAncestors returns the number of ancestors the Store was built with,
// including the synthetic root (ancestor 0).
func (s *Store) NumAncestors() int { return s.numAncestors }

// NumEpochs returns the number of distinct age epochs.
func (s *Store) NumEpochs() int { return len(s.epochs) }

// New builds a Store from a single bulk Input, validating every data
// model invariant and returning ErrBadInput (wrapped with detail) on the
// first violation found. Validation proceeds in field order: sites,
// ancestor ages, ancestor support ranges, focal sites, segments, then epoch/older-
// ancestor derivation.
func New(in Input) (*Store, error) {
	numSites := len(in.Position)
	numAncestors := len(in.AncestorAge)
	if numSites == 0 {
		return nil, fmt.Errorf("ancestor: num_sites must be positive: %w", ErrBadInput)
	}
	if numAncestors < 2 {
		return nil, fmt.Errorf("ancestor: num_ancestors must be at least 2 (root + 1): %w", ErrBadInput)
	}
	for l := 1; l < numSites; l++ {
		if !(in.Position[l] > in.Position[l-1]) {
			return nil, fmt.Errorf("ancestor: site %d position does not strictly increase: %w", l, ErrBadInput)
		}
	}

	s := &Store{
		numSites:     numSites,
		numAncestors: numAncestors,
		sites:        make([]Site, numSites),
	}
	for l := range s.sites {
		s.sites[l].Position = in.Position[l]
	}

	s.ancestorAge = make([]uint32, numAncestors)
	copy(s.ancestorAge, in.AncestorAge)
	s.ancestorAge[0] = MaxAge
	for a := 1; a < numAncestors; a++ {
		if s.ancestorAge[a] > s.ancestorAge[a-1] {
			return nil, fmt.Errorf("ancestor: ancestor %d age increases over its predecessor: %w", a, ErrBadInput)
		}
	}

	if err := s.buildSupport(in); err != nil {
		return nil, err
	}
	if err := s.buildFocalSites(in); err != nil {
		return nil, err
	}
	if err := s.buildSegments(in); err != nil {
		return nil, err
	}
	s.buildEpochs()

	cache, err := lru.New[stateCacheKey, int8](stateCacheSize(numSites, numAncestors))
	if err != nil {
		return nil, fmt.Errorf("ancestor: allocating query cache: %w", ErrNoMemory)
	}
	s.stateCache = cache

	return s, nil
}

// buildSupport validates and copies each ancestor's own contiguous
// support range: the [start, end) window outside of which every site
// reads as missing.
func (s *Store) buildSupport(in Input) error {
	if len(in.AncestorStartSite) != s.numAncestors || len(in.AncestorEndSite) != s.numAncestors {
		return fmt.Errorf("ancestor: support-range arrays must have one entry per ancestor: %w", ErrBadInput)
	}
	if in.AncestorStartSite[0] != 0 || in.AncestorEndSite[0] != s.numSites {
		return fmt.Errorf("ancestor: ancestor 0 must span the whole genome: %w", ErrBadInput)
	}
	s.ancestorStartSite = make([]int, s.numAncestors)
	s.ancestorEndSite = make([]int, s.numAncestors)
	for a := 0; a < s.numAncestors; a++ {
		start, end := in.AncestorStartSite[a], in.AncestorEndSite[a]
		if start < 0 || start >= end || end > s.numSites {
			return fmt.Errorf("ancestor: ancestor %d support range [%d,%d) invalid: %w", a, start, end, ErrBadInput)
		}
		s.ancestorStartSite[a] = start
		s.ancestorEndSite[a] = end
	}
	return nil
}

// buildFocalSites groups Input.FocalSiteAncestor/FocalSite by ancestor.
// The grouping rule mirrors the original C allocator precisely: ancestor
// ids referenced must start at 1 and increase by exactly one each time
// the running ancestor id changes — no ancestor may be skipped, and
// ancestor 0 never owns any focal sites.
func (s *Store) buildFocalSites(in Input) error {
	if len(in.FocalSiteAncestor) != len(in.FocalSite) {
		return fmt.Errorf("ancestor: focal site arrays have mismatched length: %w", ErrBadInput)
	}
	s.focalSites = make([][]int, s.numAncestors)
	s.focalSitesBacking = make([]int, len(in.FocalSite))
	copy(s.focalSitesBacking, in.FocalSite)

	ancestorID := 0
	groupStart := 0
	for k, a := range in.FocalSiteAncestor {
		if a < 1 || a >= s.numAncestors {
			return fmt.Errorf("ancestor: focal site ancestor %d out of range: %w", a, ErrBadInput)
		}
		if ancestorID != a {
			if a != ancestorID+1 {
				return fmt.Errorf("ancestor: focal site ancestors must increase by one, got %d after %d: %w", a, ancestorID, ErrBadInput)
			}
			s.focalSites[ancestorID] = s.focalSitesBacking[groupStart:k]
			ancestorID = a
			groupStart = k
		}
	}
	if len(in.FocalSiteAncestor) > 0 {
		s.focalSites[ancestorID] = s.focalSitesBacking[groupStart:]
	}
	return nil
}

// buildSegments groups Input.SegmentSite/Start/End by site, validating
// per-site ascending End order and non-overlap, and fills s.sites[l].Segments.
func (s *Store) buildSegments(in Input) error {
	if len(in.SegmentSite) != len(in.SegmentStart) || len(in.SegmentSite) != len(in.SegmentEnd) {
		return fmt.Errorf("ancestor: segment arrays have mismatched length: %w", ErrBadInput)
	}
	numSegments := len(in.SegmentSite)
	siteStart, siteEnd := 0, 0
	for l := 0; l < s.numSites; l++ {
		if siteEnd >= numSegments {
			continue
		}
		if in.SegmentSite[siteStart] < l {
			return fmt.Errorf("ancestor: segments are not grouped by ascending site order at site %d: %w", l, ErrBadInput)
		}
		for siteEnd < numSegments && in.SegmentSite[siteEnd] == l {
			siteEnd++
		}
		n := siteEnd - siteStart
		if n == 0 {
			continue
		}
		segs := make([]Segment, n)
		prevEnd := -1
		for j := 0; j < n; j++ {
			start, end := in.SegmentStart[siteStart+j], in.SegmentEnd[siteStart+j]
			if start < 0 || start >= end || end > s.numAncestors {
				return fmt.Errorf("ancestor: site %d segment [%d,%d) out of range: %w", l, start, end, ErrBadInput)
			}
			if start < prevEnd {
				return fmt.Errorf("ancestor: site %d segments overlap or are unsorted: %w", l, ErrBadInput)
			}
			segs[j] = Segment{Start: start, End: end}
			prevEnd = end
		}
		s.sites[l].Segments = segs
		s.totalSegments += n
		if n > s.maxSiteSegments {
			s.maxSiteSegments = n
		}
		siteStart = siteEnd
	}
	if s.totalSegments != numSegments {
		return fmt.Errorf("ancestor: %d segments left ungrouped: %w", numSegments-s.totalSegments, ErrBadInput)
	}
	return nil
}

// buildEpochs scans ancestorAge (non-increasing by construction) for
// maximal contiguous age runs and derives NumOlderAncestors for free:
// an ancestor's older-ancestor count is exactly the id of the first
// ancestor in its own epoch, since ages are non-increasing. Epoch 0
// always holds the oldest ancestors (including the synthetic root,
// ancestor 0); the last epoch holds the youngest. See DESIGN.md for why
// this is the chosen definition rather than an alternative one observed
// in an earlier allocator this package's ancestor was derived from.
func (s *Store) buildEpochs() {
	s.numOlderAncestors = make([]int, s.numAncestors)
	var epochs []Epoch
	for j := 0; j < s.numAncestors; j++ {
		if j == 0 || s.ancestorAge[j] != s.ancestorAge[j-1] {
			epochs = append(epochs, Epoch{FirstAncestor: j, NumAncestors: 0})
		}
		epochs[len(epochs)-1].NumAncestors++
		s.numOlderAncestors[j] = epochs[len(epochs)-1].FirstAncestor
	}
	s.epochs = epochs
}

// stateCacheSize picks a bounded cache capacity proportional to the
// store's size without attempting to cache the whole (site, ancestor)
// product for large inputs.
func stateCacheSize(numSites, numAncestors int) int {
	n := numSites * 4
	if n < 1024 {
		n = 1024
	}
	if n > 1<<20 {
		n = 1 << 20
	}
	_ = numAncestors
	return n
}
