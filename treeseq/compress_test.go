// SPDX-License-Identifier: MIT
package treeseq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/tsbuild/treeseq"
)

// TestPathCompressionCreatesSyntheticNode is scenario S4: compressing a
// path whose edges already exist (same interval, same parent) on
// another node's path folds the shared span into a new path-compression
// node, at time strictly between the shared parents and the mapped
// child.
func TestPathCompressionCreatesSyntheticNode(t *testing.T) {
	b, err := treeseq.New(10)
	require.NoError(t, err)

	n0 := b.AddNode(3.0, 0)
	n1 := b.AddNode(2.0, 0)
	n2 := b.AddNode(2.0, 0)
	require.NoError(t, b.AddPath(n1, []int{0}, []int{10}, []int{n0}, 0))
	require.NoError(t, b.AddPath(n2, []int{0}, []int{10}, []int{n0}, 0))

	// Third child: none of its two edges matches an existing edge (same
	// interval and parent), so compression finds no contig of size >= 2
	// and creates no pc-node.
	n3 := b.AddNode(1.0, 0)
	require.NoError(t, b.AddPath(n3, []int{5, 0}, []int{10, 5}, []int{n2, n1}, treeseq.CompressPath))
	nodesBeforePC := b.NumNodes()
	for i := 0; i < nodesBeforePC; i++ {
		require.Zero(t, b.NodeFlags(i)&treeseq.NodeIsPCAncestor)
	}

	// Children 4 and 5 share the exact same path; compressing the
	// second must fold it against the first.
	n4 := b.AddNode(1.0, 0)
	require.NoError(t, b.AddPath(n4, []int{5, 0}, []int{10, 5}, []int{n2, n1}, 0))

	n5 := b.AddNode(1.0, 0)
	before := b.NumNodes()
	require.NoError(t, b.AddPath(n5, []int{5, 0}, []int{10, 5}, []int{n2, n1}, treeseq.CompressPath))

	require.Equal(t, before+1, b.NumNodes(), "exactly one pc-node should be synthesized")
	pcNode := before
	require.NotZero(t, b.NodeFlags(pcNode)&treeseq.NodeIsPCAncestor)
	require.InDelta(t, 2.0-1.0/65536, b.NodeTime(pcNode), 1e-12)

	wantPCPath := []treeseq.Edge{
		{Left: 0, Right: 5, Parent: n1, Child: pcNode},
		{Left: 5, Right: 10, Parent: n2, Child: pcNode},
	}
	require.Equal(t, wantPCPath, b.NodeEdges(pcNode))

	require.Equal(t, []treeseq.Edge{{Left: 0, Right: 10, Parent: pcNode, Child: n4}}, b.NodeEdges(n4))
	require.Equal(t, []treeseq.Edge{{Left: 0, Right: 10, Parent: pcNode, Child: n5}}, b.NodeEdges(n5))

	require.NoError(t, b.CheckInvariants())
}

// TestPathCompressionReusesExistingPCNode exercises the branch where a
// third child matches a span already folded into a pc-node: it should
// retarget onto that pc-node rather than creating a second one.
func TestPathCompressionReusesExistingPCNode(t *testing.T) {
	b, err := treeseq.New(10)
	require.NoError(t, err)

	n0 := b.AddNode(3.0, 0)
	n1 := b.AddNode(2.0, 0)
	n2 := b.AddNode(2.0, 0)
	require.NoError(t, b.AddPath(n1, []int{0}, []int{10}, []int{n0}, 0))
	require.NoError(t, b.AddPath(n2, []int{0}, []int{10}, []int{n0}, 0))

	n4 := b.AddNode(1.0, 0)
	require.NoError(t, b.AddPath(n4, []int{5, 0}, []int{10, 5}, []int{n2, n1}, 0))
	n5 := b.AddNode(1.0, 0)
	require.NoError(t, b.AddPath(n5, []int{5, 0}, []int{10, 5}, []int{n2, n1}, treeseq.CompressPath))
	pcNode := b.NumNodes() - 1

	n6 := b.AddNode(1.0, 0)
	require.NoError(t, b.AddPath(n6, []int{5, 0}, []int{10, 5}, []int{n2, n1}, treeseq.CompressPath))

	require.Equal(t, pcNode, b.NumNodes()-2, "no second pc-node should be created")
	require.Equal(t, []treeseq.Edge{{Left: 0, Right: 10, Parent: pcNode, Child: n6}}, b.NodeEdges(n6))
	require.NoError(t, b.CheckInvariants())
}
