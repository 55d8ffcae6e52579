// SPDX-License-Identifier: MIT
//
// File: memory.go
// Role: Memory, an in-memory TableCollection for tests and pipelines
//       that don't need an external store.
package sink

// NodeRow, EdgeRow, SiteRow, and MutationRow mirror the columns a real
// table-collection backend would persist.
type NodeRow struct {
	Flags uint32
	Time  float64
}

type EdgeRow struct {
	Left, Right   int
	Parent, Child int
}

type SiteRow struct {
	Position       float64
	AncestralState string
}

type MutationRow struct {
	Site         int
	Node         int
	Parent       int
	DerivedState string
}

// Memory is a TableCollection backed by plain slices.
type Memory struct {
	SequenceLength float64
	Nodes          []NodeRow
	Edges          []EdgeRow
	Sites          []SiteRow
	Mutations      []MutationRow
}

// NewMemory returns an empty Memory sink.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Clear() {
	m.SequenceLength = 0
	m.Nodes = nil
	m.Edges = nil
	m.Sites = nil
	m.Mutations = nil
}

func (m *Memory) SetSequenceLength(length float64) { m.SequenceLength = length }

func (m *Memory) AddNode(flags uint32, time float64) int {
	m.Nodes = append(m.Nodes, NodeRow{Flags: flags, Time: time})
	return len(m.Nodes) - 1
}

func (m *Memory) AddEdge(left, right int, parent, child int) {
	m.Edges = append(m.Edges, EdgeRow{Left: left, Right: right, Parent: parent, Child: child})
}

func (m *Memory) AddSite(position float64, ancestralState string) int {
	m.Sites = append(m.Sites, SiteRow{Position: position, AncestralState: ancestralState})
	return len(m.Sites) - 1
}

func (m *Memory) AddMutation(site, node, parent int, derivedState string) int {
	m.Mutations = append(m.Mutations, MutationRow{Site: site, Node: node, Parent: parent, DerivedState: derivedState})
	return len(m.Mutations) - 1
}
