// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse reads newline-separated numeric samples.
//
// Each line holds one sample, either a decimal floating-point literal
// or a hexadecimal integer with a "0x" prefix. Surrounding ASCII
// whitespace is ignored. Lines that are blank, malformed, not valid
// UTF-8, or that do not produce a finite value are silently skipped.
//
// Large inputs are split into line-aligned partitions that are
// parsed in parallel.
package parse

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/disty/disty/internal/forkjoin"
)

// A Parser parses numeric samples. The zero value is ready to use.
type Parser struct {
	// Scale multiplies every parsed value. This is typically the
	// factor that converts the input unit into a base unit. If
	// Scale is 0, values are not scaled.
	Scale float64

	// Workers is the number of partitions to split the input
	// into. If Workers is <= 0, it uses one partition per
	// available CPU.
	Workers int
}

// Bytes parses data in parallel, multiplying each value by scale.
func Bytes(data []byte, scale float64) []float64 {
	p := Parser{Scale: scale}
	return p.Parse(data)
}

// Parse parses every line of data and returns the values in input
// order. data is only read, and may be a read-only memory mapping.
func (p *Parser) Parse(data []byte) []float64 {
	if len(data) == 0 {
		return nil
	}
	workers := p.Workers
	if workers <= 0 {
		workers = forkjoin.Workers()
	}
	scale := p.scale()

	parts := Partition(data, workers)
	if len(parts) == 1 {
		return Chunk(data, scale, nil)
	}
	results := make([][]float64, len(parts))
	forkjoin.Run(len(parts), len(parts), func(i int) {
		r := parts[i]
		results[i] = Chunk(data[r.Start:r.End], scale, nil)
	})

	total := 0
	for _, res := range results {
		total += len(res)
	}
	out := make([]float64, 0, total)
	for _, res := range results {
		out = append(out, res...)
	}
	return out
}

// Reader reads all of r into memory and parses it.
func (p *Parser) Reader(r io.Reader) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p.Parse(data), nil
}

// File memory-maps the file at path and parses it. The error is
// non-nil only if the file cannot be opened or mapped.
func (p *Parser) File(path string) ([]float64, error) {
	m, err := Map(path)
	if err != nil {
		return nil, err
	}
	defer m.Close()
	return p.Parse(m.Data()), nil
}

func (p *Parser) scale() float64 {
	if p.Scale == 0 {
		return 1
	}
	return p.Scale
}

// Chunk sequentially parses the lines of data, appending the values
// to dst and returning the extended slice. The final line need not be
// terminated by a newline.
func Chunk(data []byte, scale float64, dst []float64) []float64 {
	for len(data) > 0 {
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			data = nil
		}
		if v, ok := Line(line, scale); ok {
			dst = append(dst, v)
		}
	}
	return dst
}

// Line parses a single line and multiplies the result by scale. It
// returns false if the line does not hold a finite value.
func Line(line []byte, scale float64) (float64, bool) {
	line = trimSpace(line)
	if len(line) == 0 || !utf8.Valid(line) {
		return 0, false
	}

	var v float64
	s := string(line)
	if hex, ok := strings.CutPrefix(s, "0x"); ok {
		u, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return 0, false
		}
		v = float64(u)
	} else {
		// ParseFloat also accepts hexadecimal floats such as 0X1p4.
		if strings.ContainsAny(s, "xX") {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		v = f
	}

	v *= scale
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// trimSpace trims ASCII whitespace from both ends of b. Unlike
// bytes.TrimSpace, it leaves non-ASCII space characters alone.
func trimSpace(b []byte) []byte {
	for len(b) > 0 && isSpace(b[0]) {
		b = b[1:]
	}
	for len(b) > 0 && isSpace(b[len(b)-1]) {
		b = b[:len(b)-1]
	}
	return b
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
