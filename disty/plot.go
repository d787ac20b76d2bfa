// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/disty/disty/units"
	"github.com/dustin/go-humanize"
)

const (
	// plotHeight is the height of the plot area in dots.
	plotHeight = 10 * 4

	// trailWidth is the number of columns reserved right of the
	// plot for the Y axis and its labels.
	trailWidth = 12

	// minPlotColumns is the narrowest plot drawn, in columns.
	minPlotColumns = 20

	plotXMargin = 1
	plotYMargin = 1
)

// A textPlot renders a function as Unicode Braille dots. Each
// character cell holds a 2x4 grid of dots.
type textPlot struct {
	// width is the width of the plot area in dots.
	width int

	// low and high are the X bounds in base units.
	low, high float64

	// format gives the display unit of X axis labels.
	format units.Format
}

// newTextPlot returns a plot of [low, high] that fits in columns
// characters, including the Y axis labels.
func newTextPlot(columns int, low, high float64, format units.Format) *textPlot {
	cols := columns - trailWidth
	if cols < minPlotColumns {
		cols = minPlotColumns
	}
	return &textPlot{width: 2 * cols, low: low, high: high, format: format}
}

// makeScale creates a linear scale from [x1, x2) to [y1, y2).
func makeScale(x1, x2 float64, y1, y2 int) scale.QQ {
	return scale.QQ{
		Src:  &scale.Linear{Min: x1, Max: x2, Clamp: true},
		Dest: &scale.Linear{Min: float64(y1), Max: float64(y2) - 1e-10},
	}
}

func (p *textPlot) xscale() scale.QQ {
	return makeScale(p.low, p.high, plotXMargin, p.width-plotXMargin)
}

// xs returns the points at which to sample the plotted function: one
// per dot column.
func (p *textPlot) xs() []float64 {
	return vec.Linspace(p.low, p.high, p.width-2*plotXMargin)
}

// Fprint renders ys, the function sampled at p.xs(), followed by
// the X axis.
func (p *textPlot) Fprint(w io.Writer, ys []float64) error {
	if err := p.fprintFn(w, ys); err != nil {
		return err
	}
	return p.fprintAxis(w)
}

func (p *textPlot) fprintFn(w io.Writer, ys []float64) error {
	xscale := p.xscale()
	xs := p.xs()

	yl, yh := stats.Bounds(ys)
	if yl > 0 && yl-(yh-yl)*0.1 <= 0 {
		yl = 0
	}
	yscale := makeScale(yh, yl, plotYMargin, plotHeight-plotYMargin)

	img := make([][]bool, p.width+2)
	for i := range img {
		img[i] = make([]bool, plotHeight)
	}
	for i, x := range xs {
		img[int(xscale.Map(x))][int(yscale.Map(ys[i]))] = true
	}

	// Y axis.
	ypos := p.width
	for y := plotYMargin; y < plotHeight-plotYMargin; y++ {
		img[ypos][y] = true
	}
	img[ypos+1][plotYMargin] = true
	img[ypos+1][len(img[0])-1-plotYMargin] = true

	trail := make([]string, (plotHeight+3)/4)
	trail[0] = fmt.Sprintf(" %.3g", yh)
	trail[len(trail)-1] = fmt.Sprintf(" %.3g", yl)

	return fprintImage(w, img, trail)
}

// fprintAxis renders the X axis with tick labels in the display unit
// of p.format.
func (p *textPlot) fprintAxis(w io.Writer) error {
	img := make([][]bool, p.width)
	for i := range img {
		if i < plotXMargin || i >= p.width-plotXMargin {
			img[i] = make([]bool, 2)
		} else {
			img[i] = []bool{true, false}
		}
	}

	div, unit := p.format.DisplayScale(p.high)
	display := scale.Linear{Min: p.low / div, Max: p.high / div}
	xscale := p.xscale()
	major, _ := display.Ticks(scale.TickOptions{Max: 3})
	labels := make([]string, len(major))
	lpos := make([]int, len(major))
	for i, tick := range major {
		x := int(xscale.Map(tick * div))
		img[x][1] = true
		labels[i] = humanize.Ftoa(tick) + unit
		width := utf8.RuneCountInString(labels[i])
		lpos[i] = min(max(x/2-width/2, 0), (p.width+1)/2-width)
	}
	if err := fprintImage(w, img, []string{""}); err != nil {
		return err
	}
	curpos := 0
	for i, label := range labels {
		gap := lpos[i] - curpos
		if i > 0 {
			gap = max(gap, 1)
		}
		gap = max(gap, 0)
		if _, err := fmt.Fprintf(w, "%*s%s", gap, "", label); err != nil {
			return err
		}
		curpos += gap + utf8.RuneCountInString(label)
	}
	_, err := fmt.Fprintf(w, "\n")
	return err
}

func fprintImage(w io.Writer, img [][]bool, trail []string) error {
	var x, y int
	bit := func(ox, oy int) byte {
		if x+ox < len(img) && y+oy < len(img[x+ox]) && img[x+ox][y+oy] {
			return 1
		}
		return 0
	}

	maxTrail := len(trail[0])
	for _, trail1 := range trail {
		maxTrail = max(maxTrail, len(trail1))
	}
	buf := make([]byte, 3*(len(img)+1)/2+maxTrail+1)
	for y = 0; y < len(img[0]); y += 4 {
		bufpos := 0
		for x = 0; x < len(img); x += 2 {
			// Grab the 2x4 cell of dots and encode it into a
			// byte with the following bit layout:
			//  0 3
			//  1 4
			//  2 5
			//  6 7
			cell := bit(0, 0)<<0 | bit(1, 0)<<3
			cell |= bit(0, 1)<<1 | bit(1, 1)<<4
			cell |= bit(0, 2)<<2 | bit(1, 2)<<5
			cell |= bit(0, 3)<<6 | bit(1, 3)<<7
			r := 0x2800 + rune(cell)
			bufpos += utf8.EncodeRune(buf[bufpos:], r)
		}
		bufpos += copy(buf[bufpos:], trail[y/4])
		buf[bufpos] = '\n'
		if _, err := w.Write(buf[:bufpos+1]); err != nil {
			return err
		}
	}
	return nil
}
