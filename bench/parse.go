// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench extracts samples from Go benchmark results files.
//
// Each result line of a benchmark file is one run of one benchmark.
// Running a benchmark with -count=N produces N lines for the same
// name, and the values of a metric across those lines form a sample.
//
// The file format is specified at:
// https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md
package bench

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/disty/disty/units"
)

// A Benchmark is a single benchmark result line.
type Benchmark struct {
	// Name is the full name of the benchmark, including any
	// sub-benchmark path, without the "Benchmark" prefix and
	// without the trailing GOMAXPROCS suffix.
	Name string

	// Procs is the GOMAXPROCS suffix of the name, or 1 if there
	// is none.
	Procs int

	// Iterations is the number of times the benchmark body ran.
	Iterations int

	// Config holds the configuration lines in effect for this
	// result, overridden by any key:value elements of the
	// benchmark name.
	Config map[string]string

	// Metrics maps each metric unit, such as "ns/op", to its
	// value.
	Metrics map[string]float64
}

var configRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// Parse reads a Go benchmark results file from r and returns its
// result lines in order. Lines that are neither configuration nor
// well-formed results are ignored. Parse returns an error only if
// reading r fails.
func Parse(r io.Reader) ([]*Benchmark, error) {
	var bs []*Benchmark
	config := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if m := configRe.FindStringSubmatch(line); m != nil {
			config[m[1]] = m[2]
			continue
		}
		if strings.HasPrefix(line, "Benchmark") {
			if b := parseBenchmark(line, config); b != nil {
				bs = append(bs, b)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return bs, nil
}

func parseBenchmark(line string, config map[string]string) *Benchmark {
	f := strings.Fields(line)
	if len(f) < 4 {
		return nil
	}
	if f[0] != "Benchmark" {
		next, _ := utf8.DecodeRuneInString(f[0][len("Benchmark"):])
		if !unicode.IsUpper(next) {
			return nil
		}
	}

	n, err := strconv.Atoi(f[1])
	if err != nil || n <= 0 {
		return nil
	}

	b := &Benchmark{
		Procs:      1,
		Iterations: n,
		Config:     make(map[string]string, len(config)),
		Metrics:    make(map[string]float64),
	}
	for k, v := range config {
		b.Config[k] = v
	}

	name := strings.TrimPrefix(f[0], "Benchmark")
	if i := strings.LastIndex(name, "-"); i >= 0 {
		if procs, err := strconv.Atoi(name[i+1:]); err == nil && procs > 0 {
			name, b.Procs = name[:i], procs
		}
	}
	b.Name = name
	if parts := strings.Split(name, "/"); len(parts) > 1 {
		for _, part := range parts[1:] {
			if k, v, ok := strings.Cut(part, ":"); ok {
				b.Config[k] = v
			}
		}
	}

	for i := 2; i+2 <= len(f); i += 2 {
		val, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			continue
		}
		b.Metrics[f[i+1]] = val
	}
	if len(b.Metrics) == 0 {
		return nil
	}
	return b
}

// Values returns the value of metric from every benchmark in bs
// whose name matches nameRe, in file order. If nameRe is nil, every
// benchmark matches.
func Values(bs []*Benchmark, metric string, nameRe *regexp.Regexp) []float64 {
	var xs []float64
	for _, b := range bs {
		if nameRe != nil && !nameRe.MatchString(b.Name) {
			continue
		}
		if v, ok := b.Metrics[metric]; ok {
			xs = append(xs, v)
		}
	}
	return xs
}

// MetricUnit returns the unit of a metric's values, or units.None if
// the metric is not a time or size per operation.
func MetricUnit(metric string) units.Unit {
	switch metric {
	case "ns/op":
		return units.Nanosecond
	case "sec/op":
		return units.Second
	case "B/op", "B":
		return units.Byte
	}
	return units.None
}
