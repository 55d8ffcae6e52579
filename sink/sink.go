// SPDX-License-Identifier: MIT

// Package sink defines the write-only table-collection interface a
// finished tree sequence builder dumps into, and provides an in-memory
// reference implementation for tests and small pipelines.
package sink

// TableCollection is a write-only target for a dumped tree sequence: it
// never needs to read back what it has been sent, only append rows in
// the order the caller supplies them.
type TableCollection interface {
	// Clear discards any rows previously written, leaving the sink
	// ready to receive a fresh dump.
	Clear()

	// SetSequenceLength records the coordinate extent of the sequence.
	SetSequenceLength(length float64)

	// AddNode appends a node row and returns its id.
	AddNode(flags uint32, time float64) int

	// AddEdge appends an edge row.
	AddEdge(left, right int, parent, child int)

	// AddSite appends a site row and returns its id. ancestralState is
	// always "0" for the builder this package serves.
	AddSite(position float64, ancestralState string) int

	// AddMutation appends a mutation row and returns its id. parent is
	// the id of the previous mutation at the same site, or -1 if this
	// is the first.
	AddMutation(site, node, parent int, derivedState string) int
}
