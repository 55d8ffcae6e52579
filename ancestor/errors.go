// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for package ancestor.
// Policy:
//   - Only sentinel variables are exported; callers branch with errors.Is.
//   - Construction-time failures wrap one of the two sentinels below with
//     fmt.Errorf("...: %w", ...) for detail; sentinels themselves stay bare.
//   - Query-layer bounds violations are programmer errors and panic
//     rather than returning an error — a Store is
//     immutable after New succeeds, so an out-of-range site/ancestor id
//     can only come from caller misuse, not from data the Store itself
//     could not have validated at construction time.
package ancestor

import "errors"

var (
	// ErrNoMemory indicates a construction input implies an allocation too
	// large to service (e.g. a segment/ancestor count overflowing int).
	ErrNoMemory = errors.New("ancestor: allocation limit exceeded")

	// ErrBadInput indicates a construction input violates one of the data
	// model invariants (site ordering, focal-site grouping, segment
	// grouping/ordering, ancestor age ordering).
	ErrBadInput = errors.New("ancestor: invalid construction input")
)
