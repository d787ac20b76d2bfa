// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"bytes"
	"errors"
	"reflect"
	"regexp"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/disty/disty/units"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		input string
		want  []*Benchmark
	}{
		// Test basic line.
		{`
BenchmarkX	1	2 ns/op 3 MB/s`,
			[]*Benchmark{
				{"X", 1, 1, map[string]string{}, map[string]float64{"ns/op": 2, "MB/s": 3}},
			},
		},

		// Test short name.
		{`
Benchmark	1	2 ns/op`,
			[]*Benchmark{
				{"", 1, 1, map[string]string{}, map[string]float64{"ns/op": 2}},
			},
		},

		// Test bad names.
		{`
Benchmarkx	1	2 ns/op
benchmarkx	1	2 ns/op
benchmarkX	1	2 ns/op`,
			nil,
		},

		// Test short lines and bad iteration counts.
		{`
BenchmarkX
BenchmarkX	1
BenchmarkX	1	2
BenchmarkX	0	2 ns/op
BenchmarkX	x	2 ns/op`,
			nil,
		},

		// Test -N.
		{`
BenchmarkX-4	1	2 ns/op`,
			[]*Benchmark{
				{"X", 4, 1, map[string]string{}, map[string]float64{"ns/op": 2}},
			},
		},

		// Test sub-benchmark names and name config.
		{`
BenchmarkX/a:20/b:abc-8	1	2 ns/op
BenchmarkY/size=10	2	4 ns/op`,
			[]*Benchmark{
				{"X/a:20/b:abc", 8, 1, map[string]string{
					"a": "20",
					"b": "abc",
				}, map[string]float64{"ns/op": 2}},
				{"Y/size=10", 1, 2, map[string]string{}, map[string]float64{"ns/op": 4}},
			},
		},

		// Test block config.
		{`
commit: 123456
date: Jan 1
colon:colon: 42
blank:
#not-config: x
spa ce: x
funny` + "\u2000" + `space: x
Not-config: x
BenchmarkX	1	2 ns/op`,
			[]*Benchmark{
				{"X", 1, 1, map[string]string{
					"commit":      "123456",
					"date":        "Jan 1",
					"colon:colon": "42",
					"blank":       "",
				}, map[string]float64{"ns/op": 2}},
			},
		},

		// Test benchmark config overriding block config.
		{`
commit: 123456
commit: abcdef
BenchmarkX/commit:fedcba	1	2 ns/op
BenchmarkX	1	3 ns/op`,
			[]*Benchmark{
				{"X/commit:fedcba", 1, 1, map[string]string{"commit": "fedcba"}, map[string]float64{"ns/op": 2}},
				{"X", 1, 1, map[string]string{"commit": "abcdef"}, map[string]float64{"ns/op": 3}},
			},
		},

		// Test malformed values.
		{`
BenchmarkX	10	x ns/op	16 B/op
BenchmarkY	10	x ns/op`,
			[]*Benchmark{
				{"X", 1, 10, map[string]string{}, map[string]float64{"B/op": 16}},
			},
		},
	} {
		bs, err := Parse(strings.NewReader(test.input))
		if err != nil {
			t.Error("unexpected Parse error", err)
			continue
		}
		if !reflect.DeepEqual(bs, test.want) {
			t.Log("want:")
			for _, b := range test.want {
				t.Logf("%#v", b)
			}
			t.Log("got:")
			for _, b := range bs {
				t.Logf("%#v", b)
			}
			t.Fail()
		}
	}
}

func TestParseError(t *testing.T) {
	errRead := errors.New("read failed")
	_, err := Parse(iotest.ErrReader(errRead))
	if !errors.Is(err, errRead) {
		t.Errorf("Parse error = %v, want %v", err, errRead)
	}
}

const sampleFile = `goos: linux
goarch: amd64
BenchmarkDecode-8   	 1000	      1200 ns/op	     512 B/op	       4 allocs/op
BenchmarkDecode-8   	 1000	      1300 ns/op	     512 B/op	       4 allocs/op
BenchmarkEncode-8   	 2000	       800 ns/op	     256 B/op	       2 allocs/op
BenchmarkDecode-8   	 1000	      1250 ns/op	     520 B/op	       4 allocs/op
PASS
ok  	example.com/codec	3.012s
`

func TestValues(t *testing.T) {
	bs, err := Parse(strings.NewReader(sampleFile))
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		metric string
		re     string
		want   []float64
	}{
		{"ns/op", "", []float64{1200, 1300, 800, 1250}},
		{"ns/op", "Decode", []float64{1200, 1300, 1250}},
		{"B/op", "^Enc", []float64{256}},
		{"MB/s", "", nil},
		{"ns/op", "Missing", nil},
	} {
		var re *regexp.Regexp
		if test.re != "" {
			re = regexp.MustCompile(test.re)
		}
		if got := Values(bs, test.metric, re); !reflect.DeepEqual(got, test.want) {
			t.Errorf("Values(%q, %q) = %v, want %v", test.metric, test.re, got, test.want)
		}
	}
}

func TestMetricUnit(t *testing.T) {
	for metric, want := range map[string]units.Unit{
		"ns/op":     units.Nanosecond,
		"sec/op":    units.Second,
		"B/op":      units.Byte,
		"allocs/op": units.None,
		"MB/s":      units.None,
	} {
		if got := MetricUnit(metric); got != want {
			t.Errorf("MetricUnit(%q) = %v, want %v", metric, got, want)
		}
	}
}

func TestFprint(t *testing.T) {
	bs, err := Parse(strings.NewReader(sampleFile + "BenchmarkEncode/long-name-8\t10\t5 ns/op\t9 custom/op\n"))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Fprint(&buf, bs); err != nil {
		t.Fatal(err)
	}
	want := `name               runs  metrics
Decode                3  ns/op B/op allocs/op
Encode                1  ns/op B/op allocs/op
Encode/long-name      1  ns/op custom/op
`
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
