// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kde implements a Gaussian kernel density estimator over a
// sorted sample.
//
// The estimator keeps only a reference to the sorted data and
// evaluates each query over the samples within a few bandwidths of
// the query point, found by binary search. This makes a query cost
// O(log n + k) rather than O(n), where k is the number of samples
// near the query point.
package kde

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/disty/disty/internal/forkjoin"
)

// A Sample is a sample sorted in ascending order along with its
// population standard deviation and size. *summary.Summary
// implements Sample.
type Sample interface {
	Sorted() []float64
	StdDev() float64
	Weight() float64
}

// cutoff is the half-width of the evaluation window in bandwidths.
// The standard normal puts about 3.2e-5 of its mass beyond 4 on each
// side, so samples further away than this are ignored.
const cutoff = 4

// An Estimator is a kernel density estimate of the distribution
// underlying a sample, using a Gaussian kernel and a bandwidth chosen
// by Silverman's rule of thumb.
//
// An Estimator borrows the sample's sorted slice. The slice must
// outlive the Estimator and must not be modified.
//
// If every sample has the same value, the bandwidth is 0 and the
// estimate is a point mass at that value.
type Estimator struct {
	xs []float64
	h  float64
}

// New returns an Estimator for s. The bandwidth is computed once,
// here, as 1.06 * σ * n^(-1/5).
func New(s Sample) *Estimator {
	e := &Estimator{xs: s.Sorted()}
	if n := len(e.xs); n > 0 && e.xs[0] != e.xs[n-1] {
		if h := stats.BandwidthSilverman(s); h > 0 {
			e.h = h
		}
	}
	return e
}

// Bandwidth returns the kernel bandwidth. It is 0 if the estimate is
// a point mass or the sample is empty.
func (e *Estimator) Bandwidth() float64 {
	return e.h
}

// window returns the range of indexes of samples within cutoff
// bandwidths of x.
func (e *Estimator) window(x float64) (lo, hi int) {
	r := cutoff * e.h
	lo = sort.SearchFloat64s(e.xs, x-r)
	hi = lo + sort.Search(len(e.xs)-lo, func(i int) bool {
		return e.xs[lo+i] > x+r
	})
	return lo, hi
}

// PDF returns the estimated probability density at x.
//
// For a point mass, PDF returns +Inf at the sample value and 0
// elsewhere. For an empty sample, it returns 0.
func (e *Estimator) PDF(x float64) float64 {
	n := len(e.xs)
	if n == 0 {
		return 0
	}
	lo, hi := e.window(x)
	if e.h == 0 {
		if lo < hi {
			return math.Inf(1)
		}
		return 0
	}

	sum := 0.0
	for _, xi := range e.xs[lo:hi] {
		sum += stats.StdNormal.PDF((x - xi) / e.h)
	}
	return sum / (float64(n) * e.h)
}

// CDF returns the estimated cumulative probability at x.
//
// Samples below the evaluation window count fully and samples above
// it not at all. For a point mass, CDF is a step from 0 to 1 at the
// sample value. For an empty sample, it returns 0.
func (e *Estimator) CDF(x float64) float64 {
	n := len(e.xs)
	if n == 0 {
		return 0
	}
	lo, hi := e.window(x)
	if e.h == 0 {
		return float64(hi) / float64(n)
	}

	sum := float64(lo)
	for _, xi := range e.xs[lo:hi] {
		sum += stats.StdNormal.CDF((x - xi) / e.h)
	}
	return sum / float64(n)
}

// PDFs returns the PDF at each point in xs. The points are evaluated
// in parallel; the result is in the same order as xs.
func (e *Estimator) PDFs(xs []float64) []float64 {
	return forkjoin.Map(e.PDF, xs)
}

// CDFs is like PDFs, but for the CDF.
func (e *Estimator) CDFs(xs []float64) []float64 {
	return forkjoin.Map(e.CDF, xs)
}

// Bounds returns a range suitable for plotting the estimate: the
// range of the sample, widened by 10% on each side. If no sample is
// negative, the low bound is clamped to 0. For an empty sample,
// Bounds returns (0, 1).
func (e *Estimator) Bounds() (low, high float64) {
	if len(e.xs) == 0 {
		return 0, 1
	}
	min, max := e.xs[0], e.xs[len(e.xs)-1]
	pad := 0.1 * (max - min)
	low, high = min-pad, max+pad
	if min >= 0 {
		low = math.Max(low, 0)
	}
	return low, high
}
