// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package summary computes descriptive statistics of a sample.
//
// A Summary sorts its sample once when it is created and keeps it
// sorted, so order statistics are cheap and density estimators can
// binary search the data.
//
// Undefined statistics are reported as NaN rather than as errors: the
// moments of an empty sample, the quantiles of an empty sample, and
// the geometric mean of a sample with non-positive values. Callers
// should check with math.IsNaN before formatting.
package summary

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/aclements/go-moremath/stats"
)

// A Summary is an immutable set of statistics over a sorted sample.
type Summary struct {
	xs []float64

	sum      float64
	mean     float64
	geoMean  float64
	variance float64
	stdDev   float64
}

// New returns the Summary of xs. New takes ownership of xs and sorts
// it in place; the caller must not modify xs afterward. xs must not
// contain NaNs.
func New(xs []float64) *Summary {
	sort.Float64s(xs)

	s := &Summary{xs: xs}
	n := float64(len(xs))
	positive := true
	for _, x := range xs {
		s.sum += x
		if x <= 0 {
			positive = false
		}
	}
	s.mean = s.sum / n
	// A constant sample has no spread, whatever the sum rounds to.
	constant := len(xs) > 0 && xs[0] == xs[len(xs)-1]
	if constant {
		s.mean = xs[0]
	}

	switch {
	case positive && constant:
		s.geoMean = xs[0]
	case positive:
		s.geoMean = stats.GeoMean(xs)
	default:
		s.geoMean = math.NaN()
	}

	if !constant {
		var ss float64
		for _, x := range xs {
			d := x - s.mean
			ss += d * d
		}
		s.variance = ss / n
	}
	s.stdDev = math.Sqrt(s.variance)
	return s
}

// N returns the number of samples.
func (s *Summary) N() int {
	return len(s.xs)
}

// Weight returns the number of samples as a float64. Together with
// StdDev, this lets a Summary be passed to go-moremath's bandwidth
// estimators.
func (s *Summary) Weight() float64 {
	return float64(len(s.xs))
}

// Sum returns the sum of the samples.
func (s *Summary) Sum() float64 {
	return s.sum
}

// Mean returns the arithmetic mean of the samples.
func (s *Summary) Mean() float64 {
	return s.mean
}

// GeoMean returns the geometric mean of the samples. It is NaN if any
// sample is <= 0.
func (s *Summary) GeoMean() float64 {
	return s.geoMean
}

// Variance returns the population variance of the samples.
func (s *Summary) Variance() float64 {
	return s.variance
}

// StdDev returns the population standard deviation of the samples.
func (s *Summary) StdDev() float64 {
	return s.stdDev
}

// Sorted returns the samples in ascending order. The returned slice
// is shared with s and must not be modified.
func (s *Summary) Sorted() []float64 {
	return s.xs
}

// Min returns the smallest sample, or NaN if there are none.
func (s *Summary) Min() float64 {
	return s.Quantile(0)
}

// Max returns the largest sample, or NaN if there are none.
func (s *Summary) Max() float64 {
	return s.Quantile(1)
}

// Quantile returns the q'th quantile of the samples, interpolating
// linearly between the two closest ranks. q is clamped to [0, 1], so
// q <= 0 gives the minimum and q >= 1 gives the maximum. Quantile
// returns NaN if there are no samples.
func (s *Summary) Quantile(q float64) float64 {
	n := len(s.xs)
	switch {
	case n == 0:
		return math.NaN()
	case q <= 0:
		return s.xs[0]
	case q >= 1:
		return s.xs[n-1]
	}

	rank := q * float64(n-1)
	lo := int(rank)
	a, b := s.xs[lo], s.xs[min(lo+1, n-1)]
	if a == b {
		return a
	}
	v := a + (b-a)*(rank-float64(lo))
	return math.Max(a, math.Min(v, b))
}

// A Percentile is a quantile with a display label.
type Percentile struct {
	Q     float64
	Label string
}

// Percentiles are the quantiles reported by default: the extremes,
// the quartiles, and the 1%, 5%, 95%, and 99% tails.
var Percentiles = []Percentile{
	{0, "min"},
	{0.01, "1%ile"},
	{0.05, "5%ile"},
	{0.25, "25%ile"},
	{0.50, "median"},
	{0.75, "75%ile"},
	{0.95, "95%ile"},
	{0.99, "99%ile"},
	{1, "max"},
}

func (s *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "N %d  sum %.6g  mean %.6g", s.N(), s.sum, s.mean)
	if !math.IsNaN(s.geoMean) {
		fmt.Fprintf(&b, "  gmean %.6g", s.geoMean)
	}
	fmt.Fprintf(&b, "  std dev %.6g  variance %.6g", s.stdDev, s.variance)
	return b.String()
}
