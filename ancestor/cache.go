// SPDX-License-Identifier: MIT
//
// File: cache.go
// Role: bounded LRU memoization of GetState lookups, backing the Store
//       query path.
package ancestor

// CacheLen reports the number of (site, ancestor) pairs currently held
// in the GetState memoization cache. Exposed for tests and diagnostics;
// not part of the data model.
func (s *Store) CacheLen() int {
	return s.stateCache.Len()
}
