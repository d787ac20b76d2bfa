// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/vec"
	"github.com/disty/disty/kde"
	"github.com/disty/disty/units"
)

const (
	svgSamples = 500
	svgWidth   = 640
	svgHeight  = 400
)

// writeSVG plots the density estimate of est as an SVG image, with X
// values in the display unit of format.
func writeSVG(w io.Writer, est *kde.Estimator, format units.Format, cdf bool, title string) error {
	low, high := est.Bounds()
	xs := vec.Linspace(low, high, svgSamples)
	ys, ylabel := est.PDFs(xs), "density"
	if cdf {
		ys, ylabel = est.CDFs(xs), "cumulative probability"
	}

	div, unit := format.DisplayScale(high)
	dxs := make([]float64, len(xs))
	for i, x := range xs {
		dxs[i] = x / div
	}
	xlabel := "value"
	if unit != "" {
		xlabel += " (" + unit + ")"
	}

	tab := new(table.Builder).Add(xlabel, dxs).Add(ylabel, ys).Done()
	p := gg.NewPlot(tab)
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerLines{X: xlabel, Y: ylabel})
	if title != "" {
		p.Add(gg.Title(title))
	}
	return p.WriteSVG(w, svgWidth, svgHeight)
}
