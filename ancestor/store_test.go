// SPDX-License-Identifier: MIT
package ancestor_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/tsbuild/ancestor"
)

// s5Input builds a small worked-example input: 3 sites, 4 ancestors (the
// synthetic root plus 3 built ancestors), one focal site per built
// ancestor, and one derived-allele segment per site.
func s5Input() ancestor.Input {
	return ancestor.Input{
		Position:          []float64{0.1, 0.5, 0.9},
		AncestorAge:        []uint32{0, 2, 2, 1}, // [0] is overwritten to MaxAge by New
		FocalSiteAncestor:  []int{1, 2, 3},
		FocalSite:          []int{0, 1, 2},
		SegmentSite:        []int{0, 1, 2},
		SegmentStart:       []int{1, 2, 3},
		SegmentEnd:         []int{3, 3, 4},
		AncestorStartSite:  []int{0, 0, 0, 0},
		AncestorEndSite:    []int{3, 2, 2, 3},
	}
}

func TestNew_S5(t *testing.T) {
	s, err := ancestor.New(s5Input())
	require.NoError(t, err)
	require.Equal(t, 3, s.NumSites())
	require.Equal(t, 4, s.NumAncestors())
	require.Equal(t, ancestor.MaxAge, int(s.AncestorAge(0)))
}

func TestGetState_S5(t *testing.T) {
	s, err := ancestor.New(s5Input())
	require.NoError(t, err)

	require.EqualValues(t, 1, s.GetState(0, 1))
	require.EqualValues(t, 0, s.GetState(0, 3))
}

func TestGetAncestor_S5(t *testing.T) {
	s, err := ancestor.New(s5Input())
	require.NoError(t, err)

	a := s.GetAncestor(2)
	require.Equal(t, 0, a.StartSite)
	require.Equal(t, 2, a.EndSite)
	// Working the given segment list through the derived-allele
	// definition yields [1,1,-1]: ancestor 2 falls inside both site 0's
	// (1,3) and site 1's (2,3) derived-allele runs. See DESIGN.md for the
	// worked trace backing this value.
	require.Equal(t, []int8{1, 1, -1}, a.State)
	require.Equal(t, []int{1}, a.FocalSites)
}

func TestGetAncestor_rootSpansWholeGenome(t *testing.T) {
	s, err := ancestor.New(s5Input())
	require.NoError(t, err)
	a := s.GetAncestor(0)
	require.Equal(t, 0, a.StartSite)
	require.Equal(t, 3, a.EndSite)
	require.Empty(t, a.FocalSites)
	require.Equal(t, 0, s.NumOlderAncestors(0))
}

func TestNew_rejectsNonIncreasingPositions(t *testing.T) {
	in := s5Input()
	in.Position = []float64{0.1, 0.1, 0.9}
	_, err := ancestor.New(in)
	require.Error(t, err)
	require.True(t, errors.Is(err, ancestor.ErrBadInput))
}

func TestNew_rejectsSkippedFocalAncestor(t *testing.T) {
	in := s5Input()
	in.FocalSiteAncestor = []int{1, 3, 3} // skips ancestor 2 entirely
	_, err := ancestor.New(in)
	require.Error(t, err)
	require.True(t, errors.Is(err, ancestor.ErrBadInput))
}

func TestNew_rejectsOverlappingSegments(t *testing.T) {
	in := s5Input()
	in.SegmentSite = []int{0, 0, 1, 2}
	in.SegmentStart = []int{1, 2, 2, 3}
	in.SegmentEnd = []int{3, 3, 3, 4}
	_, err := ancestor.New(in)
	require.Error(t, err)
	require.True(t, errors.Is(err, ancestor.ErrBadInput))
}

func TestNew_rejectsRootNotSpanningGenome(t *testing.T) {
	in := s5Input()
	in.AncestorEndSite = []int{2, 2, 2, 3}
	_, err := ancestor.New(in)
	require.Error(t, err)
	require.True(t, errors.Is(err, ancestor.ErrBadInput))
}

func TestCheckInvariants(t *testing.T) {
	s, err := ancestor.New(s5Input())
	require.NoError(t, err)
	require.NoError(t, s.CheckInvariants())
}

func TestFprint(t *testing.T) {
	s, err := ancestor.New(s5Input())
	require.NoError(t, err)
	var buf bytes.Buffer
	s.Fprint(&buf)
	require.Contains(t, buf.String(), "ancestor store")
	require.Contains(t, buf.String(), "num_sites = 3")
}

func TestGetState_cacheIsHit(t *testing.T) {
	s, err := ancestor.New(s5Input())
	require.NoError(t, err)
	require.Equal(t, 0, s.CacheLen())
	s.GetState(0, 1)
	require.Equal(t, 1, s.CacheLen())
	s.GetState(0, 1)
	require.Equal(t, 1, s.CacheLen())
}
