// SPDX-License-Identifier: MIT
package ancestor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/tsbuild/ancestor"
)

func TestEpochs_S5(t *testing.T) {
	s, err := ancestor.New(s5Input())
	require.NoError(t, err)

	// ages by ancestor id: [MaxAge, 2, 2, 1] -> three contiguous runs.
	require.Equal(t, 3, s.NumEpochs())

	first, n := s.GetEpochAncestors(0)
	require.Equal(t, 0, first)
	require.Equal(t, 1, n) // just the root

	first, n = s.GetEpochAncestors(1)
	require.Equal(t, 1, first)
	require.Equal(t, 2, n) // ancestors 1,2 share age 2

	first, n = s.GetEpochAncestors(2)
	require.Equal(t, 3, first)
	require.Equal(t, 1, n) // ancestor 3, youngest

	require.Equal(t, 1, s.NumOlderAncestors(1))
	require.Equal(t, 1, s.NumOlderAncestors(2))
	require.Equal(t, 3, s.NumOlderAncestors(3))
}

func TestGetState_panicsOnOutOfRangeSite(t *testing.T) {
	s, err := ancestor.New(s5Input())
	require.NoError(t, err)
	require.Panics(t, func() { s.GetState(99, 0) })
}

func TestGetAncestor_panicsOnOutOfRangeAncestor(t *testing.T) {
	s, err := ancestor.New(s5Input())
	require.NoError(t, err)
	require.Panics(t, func() { s.GetAncestor(99) })
}

func TestSite_returnsPositionAndSegments(t *testing.T) {
	s, err := ancestor.New(s5Input())
	require.NoError(t, err)
	site := s.Site(1)
	require.Equal(t, 0.5, site.Position)
	require.Equal(t, []ancestor.Segment{{Start: 2, End: 3}}, site.Segments)
}
