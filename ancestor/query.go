// SPDX-License-Identifier: MIT
//
// File: query.go
// Role: point queries (GetState), full-ancestor materialisation
//       (GetAncestor), and epoch range queries (GetEpochAncestors).
// Concurrency: Store is immutable after New; queries are safe to call
//       from any number of goroutines without additional locking.
// Failure semantics: an out-of-range site or ancestor id is a programmer
//       error and panics rather than returning an error, matching the
//       original allocator's use of assert() in its query path.
package ancestor

// GetState returns the allele (0 or 1) ancestor carries at site, found by
// scanning the site's end-ordered segment list for the first segment
// whose End exceeds ancestor. A binary search is an equivalent, faster
// substitute — segments are End-ordered — but the small per-site segment
// counts typical of real ancestor stores make the difference immaterial,
// so this stays a direct linear scan.
//
// GetState does not itself consult the ancestor's support range: calling
// it for a site outside ancestor's support (see GetAncestor) returns
// whatever the segment list says. New does not check that a site's
// segments only name ancestors whose support covers that site, so this
// can be 1. Callers that need the full -1/0/1 picture should use
// GetAncestor.
func (s *Store) GetState(site, ancestorID int) int8 {
	if site < 0 || site >= s.numSites {
		panic("ancestor: site out of range")
	}
	if ancestorID < 0 || ancestorID >= s.numAncestors {
		panic("ancestor: ancestor id out of range")
	}
	key := stateCacheKey{site: site, ancestor: ancestorID}
	if v, ok := s.stateCache.Get(key); ok {
		return v
	}
	segs := s.sites[site].Segments
	j := 0
	for j < len(segs) && segs[j].End <= ancestorID {
		j++
	}
	var allele int8
	if j < len(segs) && segs[j].Start <= ancestorID && ancestorID < segs[j].End {
		allele = 1
	}
	s.stateCache.Add(key, allele)
	return allele
}

// GetAncestor materializes the full per-site state of ancestorID. Sites
// outside the ancestor's own support range (StartSite, EndSite) read -1
// ("missing"); inside it, GetState supplies 0 or 1.
func (s *Store) GetAncestor(ancestorID int) MaterializedAncestor {
	if ancestorID < 0 || ancestorID >= s.numAncestors {
		panic("ancestor: ancestor id out of range")
	}
	start, end := s.ancestorStartSite[ancestorID], s.ancestorEndSite[ancestorID]
	state := make([]int8, s.numSites)
	for l := 0; l < s.numSites; l++ {
		if l < start || l >= end {
			state[l] = -1
			continue
		}
		state[l] = s.GetState(l, ancestorID)
	}
	return MaterializedAncestor{
		State:      state,
		StartSite:  start,
		EndSite:    end,
		FocalSites: s.focalSites[ancestorID],
	}
}

// GetEpochAncestors returns the contiguous range [first, first+n) of
// ancestor ids belonging to epoch.
func (s *Store) GetEpochAncestors(epoch int) (first, n int) {
	if epoch < 0 || epoch >= len(s.epochs) {
		panic("ancestor: epoch out of range")
	}
	e := s.epochs[epoch]
	return e.FirstAncestor, e.NumAncestors
}

// Epoch returns the Epoch value at index epoch.
func (s *Store) Epoch(epoch int) Epoch {
	if epoch < 0 || epoch >= len(s.epochs) {
		panic("ancestor: epoch out of range")
	}
	return s.epochs[epoch]
}

// AncestorAge returns the age of ancestorID.
func (s *Store) AncestorAge(ancestorID int) uint32 {
	if ancestorID < 0 || ancestorID >= s.numAncestors {
		panic("ancestor: ancestor id out of range")
	}
	return s.ancestorAge[ancestorID]
}

// NumOlderAncestors returns the count of ancestors strictly older than
// ancestorID: the id of the first ancestor sharing its epoch.
func (s *Store) NumOlderAncestors(ancestorID int) int {
	if ancestorID < 0 || ancestorID >= s.numAncestors {
		panic("ancestor: ancestor id out of range")
	}
	return s.numOlderAncestors[ancestorID]
}

// Site returns the Site value (position + segments) at index site.
func (s *Store) Site(site int) Site {
	if site < 0 || site >= s.numSites {
		panic("ancestor: site out of range")
	}
	return s.sites[site]
}
