// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// A Format renders base-unit values as text.
type Format int

const (
	Float Format = iota
	Hex
	Time
	Bytes
)

var formatNames = []string{
	Float: "float",
	Hex:   "hex",
	Time:  "time",
	Bytes: "bytes",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Set implements flag.Value.
func (f *Format) Set(s string) error {
	for i, name := range formatNames {
		if name == s {
			*f = Format(i)
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (valid formats: %s)", s, strings.Join(formatNames, ", "))
}

// Format returns v formatted according to f.
func (f Format) Format(v float64) string {
	switch f {
	case Hex:
		return fmt.Sprintf("0x%x", uint64(v))
	case Time:
		return formatDuration(v)
	case Bytes:
		return formatBytes(v)
	}
	return fmt.Sprintf("%.2f", v)
}

// formatDuration formats ns nanoseconds with two decimals in the
// largest unit up to seconds, then as minutes and hours.
func formatDuration(ns float64) string {
	if ns < 0 {
		return "-" + formatDuration(-ns)
	}
	switch {
	case ns < 1e3:
		return fmt.Sprintf("%.2fns", ns)
	case ns < 1e6:
		return fmt.Sprintf("%.2fµs", ns/1e3)
	case ns < 1e9:
		return fmt.Sprintf("%.2fms", ns/1e6)
	case ns < 60e9:
		return fmt.Sprintf("%.2fs", ns/1e9)
	case ns < 3600e9:
		mins := math.Floor(ns / 60e9)
		secs := (ns - mins*60e9) / 1e9
		return fmt.Sprintf("%dm%.2fs", int64(mins), secs)
	}
	hours := math.Floor(ns / 3600e9)
	mins := math.Floor((ns - hours*3600e9) / 60e9)
	secs := (ns - hours*3600e9 - mins*60e9) / 1e9
	return fmt.Sprintf("%dh%dm%.2fs", int64(hours), int64(mins), secs)
}

var byteUnits = []struct {
	scale float64
	label string
}{
	{1, "B"},
	{humanize.KiByte, "KiB"},
	{humanize.MiByte, "MiB"},
	{humanize.GiByte, "GiB"},
	{humanize.TiByte, "TiB"},
	{humanize.PiByte, "PiB"},
}

// byteUnit returns the largest binary byte unit no larger than |v|.
func byteUnit(v float64) (scale float64, label string) {
	v = math.Abs(v)
	u := byteUnits[0]
	for _, bu := range byteUnits[1:] {
		if v < bu.scale {
			break
		}
		u = bu
	}
	return u.scale, u.label
}

// formatBytes formats a size in bytes using binary (IEC) units.
// Whole bytes have no decimals.
func formatBytes(v float64) string {
	scale, label := byteUnit(v)
	if scale == 1 {
		return fmt.Sprintf("%.0f%s", v, label)
	}
	return fmt.Sprintf("%.2f%s", v/scale, label)
}

// DisplayScale returns the divisor and unit label for showing values
// up to max, such as plot axis labels. It picks the largest unit in
// which max is at least 1, so 500ms is shown as "500ms" rather than
// "0.5s". Float and Hex have no units and return (1, "").
func (f Format) DisplayScale(max float64) (scale float64, label string) {
	switch f {
	case Time:
		switch {
		case max < 1e3:
			return 1, "ns"
		case max < 1e6:
			return 1e3, "µs"
		case max < 1e9:
			return 1e6, "ms"
		}
		return 1e9, "s"
	case Bytes:
		return byteUnit(max)
	}
	return 1, ""
}

// Count formats a sample count with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}
