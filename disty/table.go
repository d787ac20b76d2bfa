// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/disty/disty/summary"
	"github.com/disty/disty/units"
)

type row struct {
	label, value string
}

// fprintTable writes the summary statistics of s in two columns:
// moments on the left and percentiles on the right.
func fprintTable(w io.Writer, s *summary.Summary, f units.Format) error {
	left := []row{
		{"n", units.Count(s.N())},
		{"sum", f.Format(s.Sum())},
		{"mean", f.Format(s.Mean())},
	}
	if g := s.GeoMean(); !math.IsNaN(g) {
		left = append(left, row{"gmean", f.Format(g)})
	}
	left = append(left,
		row{"std dev", f.Format(s.StdDev())},
		row{"variance", f.Format(s.Variance())},
	)

	var right []row
	for _, p := range summary.Percentiles {
		right = append(right, row{p.Label, f.Format(s.Quantile(p.Q))})
	}

	for i := 0; i < len(left) || i < len(right); i++ {
		var err error
		if i < len(left) {
			_, err = fmt.Fprintf(w, "%8s  %-20s", left[i].label, left[i].value)
		} else {
			_, err = fmt.Fprintf(w, "%30s", "")
		}
		if err != nil {
			return err
		}
		if i < len(right) {
			_, err = fmt.Fprintf(w, "%8s  %s\n", right[i].label, right[i].value)
		} else {
			_, err = fmt.Fprintf(w, "\n")
		}
		if err != nil {
			return err
		}
	}
	return nil
}
