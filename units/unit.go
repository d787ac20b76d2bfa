// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package units defines the input units and output formats for
// sample values.
//
// Samples are stored in base units: nanoseconds for time and bytes
// for sizes. A Unit converts input values to base units and a Format
// renders base-unit values for display.
package units

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// A Unit is the unit of input values. The zero Unit is None, which
// leaves values unscaled.
type Unit int

const (
	None Unit = iota

	Nanosecond
	Microsecond
	Millisecond
	Second

	Byte
	Kilobyte
	Megabyte
	Gigabyte
	Terabyte
	Petabyte

	Kibibyte
	Mebibyte
	Gibibyte
	Tebibyte
	Pebibyte
)

var unitInfo = []struct {
	name  string
	scale float64
}{
	None: {"", 1},

	Nanosecond:  {"ns", 1},
	Microsecond: {"us", 1e3},
	Millisecond: {"ms", 1e6},
	Second:      {"s", 1e9},

	Byte:     {"B", 1},
	Kilobyte: {"KB", 1e3},
	Megabyte: {"MB", 1e6},
	Gigabyte: {"GB", 1e9},
	Terabyte: {"TB", 1e12},
	Petabyte: {"PB", 1e15},

	Kibibyte: {"KiB", humanize.KiByte},
	Mebibyte: {"MiB", humanize.MiByte},
	Gibibyte: {"GiB", humanize.GiByte},
	Tebibyte: {"TiB", humanize.TiByte},
	Pebibyte: {"PiB", humanize.PiByte},
}

// Scale returns the factor that converts a value in unit u to base
// units.
func (u Unit) Scale() float64 {
	if u < 0 || int(u) >= len(unitInfo) {
		return 1
	}
	return unitInfo[u].scale
}

// IsTime reports whether u is a unit of time.
func (u Unit) IsTime() bool {
	return Nanosecond <= u && u <= Second
}

// DefaultFormat returns the format used to display values of unit u
// when no format is given: durations for time units and sizes for
// byte units.
func (u Unit) DefaultFormat() Format {
	switch {
	case u == None:
		return Float
	case u.IsTime():
		return Time
	}
	return Bytes
}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitInfo) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitInfo[u].name
}

// Set implements flag.Value. Unit names are case-sensitive.
func (u *Unit) Set(s string) error {
	for i, info := range unitInfo {
		if info.name == s && Unit(i) != None {
			*u = Unit(i)
			return nil
		}
	}
	return fmt.Errorf("unknown unit %q (valid units: %s)", s, strings.Join(unitNames(), ", "))
}

func unitNames() []string {
	var names []string
	for _, info := range unitInfo[1:] {
		names = append(names, info.name)
	}
	return names
}
