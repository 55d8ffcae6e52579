// SPDX-License-Identifier: MIT
//
// File: debug.go
// Role: human-readable state dump, the Go analogue of the C source's
//       ancestor_store_print_state. Not part of the data model; purely
//       a developer diagnostic, exercised by store_test.go.
package ancestor

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Fprint writes a human-readable dump of the Store to w, colourising
// section headers unless color.NoColor is set. fatih/color sets NoColor
// from whether standard output is a terminal; w itself is not inspected.
func (s *Store) Fprint(w io.Writer) {
	header := color.New(color.Bold)
	header.Fprintln(w, "ancestor store")
	fmt.Fprintf(w, "num_sites = %d\n", s.numSites)
	fmt.Fprintf(w, "num_ancestors = %d\n", s.numAncestors)
	fmt.Fprintf(w, "total_segments = %d\n", s.totalSegments)
	fmt.Fprintf(w, "max_site_segments = %d\n", s.maxSiteSegments)

	header.Fprintln(w, "sites")
	for l, site := range s.sites {
		fmt.Fprintf(w, "%d\t%.6f\t[%d]:: ", l, site.Position, len(site.Segments))
		for _, seg := range site.Segments {
			fmt.Fprintf(w, "(%d, %d)", seg.Start, seg.End)
		}
		fmt.Fprintln(w)
	}

	header.Fprintln(w, "ancestors")
	fmt.Fprintln(w, "id\tage\tnum_older\tfocal_sites")
	for a := 0; a < s.numAncestors; a++ {
		fmt.Fprintf(w, "%d\t%d\t%d\t%v\n", a, s.ancestorAge[a], s.numOlderAncestors[a], s.focalSites[a])
	}

	header.Fprintln(w, "epochs")
	fmt.Fprintln(w, "id\tfirst_ancestor\tnum_ancestors")
	for i, e := range s.epochs {
		fmt.Fprintf(w, "%d\t%d\t%d\n", i, e.FirstAncestor, e.NumAncestors)
	}
}
