// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// A Series is the set of runs of one benchmark name.
type Series struct {
	Name    string
	Runs    int
	Metrics []string
}

// Group collects bs into one Series per benchmark name, in order of
// first appearance. Each Series lists the metrics reported by any of
// its runs.
func Group(bs []*Benchmark) []*Series {
	var out []*Series
	byName := make(map[string]*Series)
	seen := make(map[string]map[string]bool)
	for _, b := range bs {
		s := byName[b.Name]
		if s == nil {
			s = &Series{Name: b.Name}
			byName[b.Name] = s
			seen[b.Name] = make(map[string]bool)
			out = append(out, s)
		}
		s.Runs++
		for m := range b.Metrics {
			if !seen[b.Name][m] {
				seen[b.Name][m] = true
				s.Metrics = append(s.Metrics, m)
			}
		}
	}
	for _, s := range out {
		sort.Sort(metricSorter(s.Metrics))
	}
	return out
}

// Fprint writes a listing of the benchmark names in bs to w, with
// the number of runs of each and the metrics available for -bench.
func Fprint(w io.Writer, bs []*Benchmark) error {
	series := Group(bs)

	nameWidth := len("name")
	for _, s := range series {
		if len(s.Name) > nameWidth {
			nameWidth = len(s.Name)
		}
	}

	if _, err := fmt.Fprintf(w, "%-*s  %5s  %s\n", nameWidth, "name", "runs", "metrics"); err != nil {
		return err
	}
	for _, s := range series {
		_, err := fmt.Fprintf(w, "%-*s  %5d  %s\n", nameWidth, s.Name, s.Runs, strings.Join(s.Metrics, " "))
		if err != nil {
			return err
		}
	}
	return nil
}

var fixedKeys = map[string]int{
	"ns/op":     -3,
	"B/op":      -2,
	"allocs/op": -1,
}

// metricSorter orders the standard metrics first, then the rest
// alphabetically.
type metricSorter []string

func (s metricSorter) Len() int {
	return len(s)
}

func (s metricSorter) Less(i, j int) bool {
	if fixedKeys[s[i]] != fixedKeys[s[j]] {
		return fixedKeys[s[i]] < fixedKeys[s[j]]
	}
	return s[i] < s[j]
}

func (s metricSorter) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
