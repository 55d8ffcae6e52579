// SPDX-License-Identifier: MIT
//
// File: invariants.go
// Role: an exported consistency walk usable from property tests, not
//       invoked automatically by New.
package ancestor

import "fmt"

// CheckInvariants walks the whole Store and verifies its data model
// invariants hold: segment totals and ordering, contiguous ancestor
// support with -1 outside it, and age-uniform epochs. It is
// O(num_sites * num_ancestors) and is meant for tests, not production
// hot paths.
func (s *Store) CheckInvariants() error {
	total := 0
	maxSeg := 0
	for l, site := range s.sites {
		total += len(site.Segments)
		if len(site.Segments) > maxSeg {
			maxSeg = len(site.Segments)
		}
		prevEnd := -1
		for _, seg := range site.Segments {
			if seg.Start < prevEnd {
				return fmt.Errorf("ancestor: site %d segments overlap", l)
			}
			prevEnd = seg.End
		}
	}
	if total != s.totalSegments {
		return fmt.Errorf("ancestor: total segment count mismatch: got %d want %d", total, s.totalSegments)
	}
	if maxSeg != s.maxSiteSegments {
		return fmt.Errorf("ancestor: max site segment count mismatch: got %d want %d", maxSeg, s.maxSiteSegments)
	}
	for a := 0; a < s.numAncestors; a++ {
		m := s.GetAncestor(a)
		if m.EndSite <= m.StartSite {
			return fmt.Errorf("ancestor: ancestor %d has empty support", a)
		}
		for l := 0; l < s.numSites; l++ {
			missing := l < m.StartSite || l >= m.EndSite
			if missing && m.State[l] != -1 {
				return fmt.Errorf("ancestor: ancestor %d site %d outside support but not -1", a, l)
			}
			if !missing && m.State[l] == -1 {
				return fmt.Errorf("ancestor: ancestor %d site %d inside support but -1", a, l)
			}
		}
	}
	for e := 1; e < len(s.epochs); e++ {
		first, n := s.GetEpochAncestors(e)
		if n == 0 {
			return fmt.Errorf("ancestor: epoch %d is empty", e)
		}
		age := s.ancestorAge[first]
		for k := 0; k < n; k++ {
			if s.ancestorAge[first+k] != age {
				return fmt.Errorf("ancestor: epoch %d mixes ages", e)
			}
		}
	}
	return nil
}
