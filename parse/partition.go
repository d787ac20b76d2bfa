// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import "bytes"

// A Range is the half-open byte range [Start, End) of one partition.
type Range struct {
	Start, End int
}

// Partition splits data into at most n contiguous, non-overlapping,
// non-empty ranges that together cover all of data. Every range
// except the last ends just after a newline, so no line is split
// between two ranges.
//
// The split points start out evenly spaced and are each moved forward
// to the next line boundary. A split point that would fall at or
// beyond the end of data is dropped, so short inputs yield fewer
// ranges. Partition returns nil if data is empty.
func Partition(data []byte, n int) []Range {
	if len(data) == 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	chunk := (len(data) + n - 1) / n

	bounds := []int{0}
	for i := 1; i < n; i++ {
		pos := i * chunk
		if pos >= len(data) {
			break
		}
		nl := bytes.IndexByte(data[pos:], '\n')
		if nl < 0 {
			// The rest of data is one line.
			break
		}
		bounds = append(bounds, pos+nl+1)
	}
	bounds = append(bounds, len(data))

	ranges := make([]Range, 0, len(bounds)-1)
	for i := 1; i < len(bounds); i++ {
		// Long lines can move several split points to the
		// same newline.
		if bounds[i] > bounds[i-1] {
			ranges = append(ranges, Range{bounds[i-1], bounds[i]})
		}
	}
	return ranges
}
