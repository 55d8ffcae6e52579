// SPDX-License-Identifier: MIT
package treeseq_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/tsbuild/treeseq"
)

// TestTrivialTwoNodeBuilder is scenario S1: one edge, one freeze, one dump.
func TestTrivialTwoNodeBuilder(t *testing.T) {
	b, err := treeseq.New(5)
	require.NoError(t, err)

	n0 := b.AddNode(1.0, 0)
	n1 := b.AddNode(0.0, 0)
	require.Equal(t, 0, n0)
	require.Equal(t, 1, n1)

	// AddPath takes edges in reverse spatial order (last edge first); a
	// single-edge path has no ordering to get wrong.
	require.NoError(t, b.AddPath(n1, []int{0}, []int{5}, []int{n0}, 0))

	b.FreezeIndexes()
	want := []treeseq.Edge{{Left: 0, Right: 5, Parent: 0, Child: 1}}
	require.Equal(t, want, b.FrozenLeft())
	require.Equal(t, want, b.FrozenRight())

	require.Equal(t, 2, b.NumNodes())
	require.Equal(t, 1, b.NumEdges())
	require.Equal(t, 5, b.NumSites())
	require.Equal(t, 0, b.NumMutations())
}

func TestFprint(t *testing.T) {
	b, err := treeseq.New(5)
	require.NoError(t, err)
	n0 := b.AddNode(1.0, 0)
	n1 := b.AddNode(0.0, 0)
	require.NoError(t, b.AddPath(n1, []int{0}, []int{5}, []int{n0}, 0))

	var buf bytes.Buffer
	b.Fprint(&buf)
	require.Contains(t, buf.String(), "tree sequence builder")
	require.Contains(t, buf.String(), "num_edges = 1")
}

func TestCheckInvariants(t *testing.T) {
	b, err := treeseq.New(5)
	require.NoError(t, err)
	n0 := b.AddNode(1.0, 0)
	n1 := b.AddNode(0.0, 0)
	require.NoError(t, b.AddPath(n1, []int{0}, []int{5}, []int{n0}, 0))
	require.NoError(t, b.CheckInvariants())
}

func TestNew_rejectsNonPositiveSites(t *testing.T) {
	_, err := treeseq.New(0)
	require.Error(t, err)
	require.True(t, errors.Is(err, treeseq.ErrBadInput))
}
