// SPDX-License-Identifier: MIT
package treeseq_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/tsbuild/treeseq"
)

// TestRestoreRoundTrip is testable property 5: dumping a built sequence
// and restoring it into a fresh builder yields identical frozen index
// arrays (restore does not re-run path compression, so edges are fed in
// already-final form).
func TestRestoreRoundTrip(t *testing.T) {
	src, err := treeseq.New(10)
	require.NoError(t, err)
	n0 := src.AddNode(3.0, 0)
	n1 := src.AddNode(2.0, 0)
	n2 := src.AddNode(2.0, 0)
	require.NoError(t, src.AddPath(n1, []int{0}, []int{10}, []int{n0}, 0))
	require.NoError(t, src.AddPath(n2, []int{0}, []int{10}, []int{n0}, 0))
	require.NoError(t, src.AddMutations(n1, []int{0}, []int8{1}))
	src.FreezeIndexes()

	times := make([]float64, src.NumNodes())
	flags := make([]treeseq.NodeFlags, src.NumNodes())
	for i := 0; i < src.NumNodes(); i++ {
		times[i] = src.NodeTime(i)
		flags[i] = src.NodeFlags(i)
	}
	var left, right, parent, child []int
	for c := 0; c < src.NumNodes(); c++ {
		for _, e := range src.NodeEdges(c) {
			left = append(left, e.Left)
			right = append(right, e.Right)
			parent = append(parent, e.Parent)
			child = append(child, e.Child)
		}
	}

	dst, err := treeseq.New(src.NumSites())
	require.NoError(t, err)
	require.NoError(t, dst.RestoreNodes(times, flags))
	require.NoError(t, dst.RestoreEdges(left, right, parent, child))
	require.NoError(t, dst.RestoreMutations([]int{0}, []int{n1}, []int8{1}))

	require.Equal(t, src.FrozenLeft(), dst.FrozenLeft())
	require.Equal(t, src.FrozenRight(), dst.FrozenRight())
	require.Equal(t, src.NumMutations(), dst.NumMutations())
}

func TestRestoreEdges_rejectsUnsortedChild(t *testing.T) {
	b, err := treeseq.New(5)
	require.NoError(t, err)
	b.AddNode(1.0, 0)
	b.AddNode(0.0, 0)
	err = b.RestoreEdges([]int{0}, []int{5}, []int{0}, []int{1})
	require.NoError(t, err)

	b2, err := treeseq.New(5)
	require.NoError(t, err)
	b2.AddNode(2.0, 0)
	b2.AddNode(1.0, 0)
	b2.AddNode(0.0, 0)
	err = b2.RestoreEdges([]int{0, 0}, []int{5, 5}, []int{0, 1}, []int{2, 1})
	require.Error(t, err)
	require.True(t, errors.Is(err, treeseq.ErrUnsortedEdges))
}
