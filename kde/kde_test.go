// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kde

import (
	"math"
	"math/rand"
	"testing"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/disty/disty/summary"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func newKDE(xs ...float64) *Estimator {
	return New(summary.New(xs))
}

// fullPDF evaluates the estimate without windowing.
func fullPDF(e *Estimator, x float64) float64 {
	sum := 0.0
	for _, xi := range e.xs {
		sum += stats.StdNormal.PDF((x - xi) / e.h)
	}
	return sum / (float64(len(e.xs)) * e.h)
}

func TestBandwidthSilverman(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	n := float64(len(xs))
	mean := 3.0
	variance := 0.0
	for _, x := range xs {
		variance += (x - mean) * (x - mean)
	}
	variance /= n
	want := 1.06 * math.Sqrt(variance) * math.Pow(n, -0.2)

	e := newKDE(xs...)
	if got := e.Bandwidth(); math.Abs(got-want) > 1e-10 {
		t.Errorf("Bandwidth() = %g, want %g", got, want)
	}
}

func TestBorrowsSortedSample(t *testing.T) {
	s := summary.New([]float64{3, 1, 2})
	e := New(s)
	if &e.xs[0] != &s.Sorted()[0] {
		t.Errorf("Estimator copied the sample instead of borrowing it")
	}
}

func TestPDFPositiveAtSamples(t *testing.T) {
	e := newKDE(1, 2, 3)
	for _, x := range []float64{1, 2, 3} {
		if p := e.PDF(x); !(p > 0) {
			t.Errorf("PDF(%g) = %g, want > 0", x, p)
		}
	}
}

func TestPDFShape(t *testing.T) {
	e := newKDE(1.8, 1.9, 2.0, 2.1, 2.2)
	if center, far := e.PDF(2), e.PDF(5); !(center > far) {
		t.Errorf("PDF(2) = %g not above PDF(5) = %g", center, far)
	}
	if p := e.PDF(100); p != 0 {
		t.Errorf("PDF far outside the window = %g, want 0", p)
	}

	bimodal := newKDE(1.0, 1.1, 1.2, 5.0, 5.1, 5.2)
	mid := bimodal.PDF(3)
	for _, peak := range []float64{1.1, 5.1} {
		if p := bimodal.PDF(peak); !(p > mid) {
			t.Errorf("bimodal PDF(%g) = %g not above PDF(3) = %g", peak, p, mid)
		}
	}
}

func TestPDFSymmetric(t *testing.T) {
	e := newKDE(7, 9, 10, 10, 11, 13)
	for _, d := range vec.Linspace(0, 8, 33) {
		if l, r := e.PDF(10-d), e.PDF(10+d); !near(l, r, 1e-12) {
			t.Errorf("PDF(10-%g) = %g, PDF(10+%g) = %g", d, l, d, r)
		}
	}
}

func TestPDFWindowError(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	xs := make([]float64, 2000)
	for i := range xs {
		xs[i] = rng.ExpFloat64() * 10
	}
	e := newKDE(xs...)
	lo, hi := e.Bounds()
	// Each omitted sample contributes less than K(cutoff)/(n h).
	bound := stats.StdNormal.PDF(cutoff) / e.h
	for _, x := range vec.Linspace(lo, hi, 200) {
		if got, want := e.PDF(x), fullPDF(e, x); got > want*(1+1e-12) || want-got > bound {
			t.Errorf("PDF(%g) = %g, exact %g, error bound %g", x, got, want, bound)
		}
	}
}

func TestPDFIntegratesToOne(t *testing.T) {
	e := newKDE(0.5, 1, 1.5, 4, 4.2, 9)
	h := e.Bandwidth()
	xs := vec.Linspace(0.5-6*h, 9+6*h, 4001)
	ys := e.PDFs(xs)
	area := 0.0
	for i := 1; i < len(xs); i++ {
		area += (xs[i] - xs[i-1]) * (ys[i] + ys[i-1]) / 2
	}
	if !near(area, 1, 1e-3) {
		t.Errorf("PDF integrates to %g, want 1", area)
	}
}

func TestPDFsMatchesPDF(t *testing.T) {
	e := newKDE(1, 2, 2, 3, 8, 13, 21)
	xs := vec.Linspace(-5, 30, 257)
	pdfs, cdfs := e.PDFs(xs), e.CDFs(xs)
	for i, x := range xs {
		if pdfs[i] != e.PDF(x) {
			t.Errorf("PDFs()[%d] = %g, PDF(%g) = %g", i, pdfs[i], x, e.PDF(x))
		}
		if cdfs[i] != e.CDF(x) {
			t.Errorf("CDFs()[%d] = %g, CDF(%g) = %g", i, cdfs[i], x, e.CDF(x))
		}
	}
}

func TestCDF(t *testing.T) {
	e := newKDE(4, 4.5, 5, 5.5, 6)
	if c := e.CDF(-100); c != 0 {
		t.Errorf("CDF(-100) = %g, want 0", c)
	}
	if c := e.CDF(100); c != 1 {
		t.Errorf("CDF(100) = %g, want 1", c)
	}
	if c := e.CDF(5); !near(c, 0.5, 1e-12) {
		t.Errorf("CDF(5) = %g, want 0.5", c)
	}
	prev := 0.0
	for _, x := range vec.Linspace(0, 10, 1001) {
		c := e.CDF(x)
		if c < prev || c > 1 {
			t.Fatalf("CDF(%g) = %g after %g", x, c, prev)
		}
		prev = c
	}
}

func TestPointMass(t *testing.T) {
	tenths := make([]float64, 10)
	for i := range tenths {
		tenths[i] = 0.1
	}
	elevens := make([]float64, 10)
	for i := range elevens {
		elevens[i] = 1.1
	}
	for _, xs := range [][]float64{{5, 5, 5, 5}, {42}, tenths, elevens} {
		v := xs[0]
		e := newKDE(xs...)
		if h := e.Bandwidth(); h != 0 {
			t.Errorf("%v: Bandwidth() = %g, want 0", xs, h)
		}
		if p := e.PDF(v); !math.IsInf(p, 1) {
			t.Errorf("%v: PDF(%g) = %g, want +Inf", xs, v, p)
		}
		for _, x := range []float64{v - 1, v + 1e-9, v + 1} {
			if p := e.PDF(x); p != 0 {
				t.Errorf("%v: PDF(%g) = %g, want 0", xs, x, p)
			}
		}
		if c := e.CDF(v - 1); c != 0 {
			t.Errorf("%v: CDF below = %g, want 0", xs, c)
		}
		if c := e.CDF(v); c != 1 {
			t.Errorf("%v: CDF at value = %g, want 1", xs, c)
		}
		if lo, hi := e.Bounds(); lo != v || hi != v {
			t.Errorf("%v: Bounds() = %g, %g, want %g, %g", xs, lo, hi, v, v)
		}
	}
}

func TestEmpty(t *testing.T) {
	e := newKDE()
	if h := e.Bandwidth(); h != 0 {
		t.Errorf("Bandwidth() = %g, want 0", h)
	}
	if p := e.PDF(0); p != 0 {
		t.Errorf("PDF(0) = %g, want 0", p)
	}
	if c := e.CDF(0); c != 0 {
		t.Errorf("CDF(0) = %g, want 0", c)
	}
	if lo, hi := e.Bounds(); lo != 0 || hi != 1 {
		t.Errorf("Bounds() = %g, %g, want 0, 1", lo, hi)
	}
}

func TestBounds(t *testing.T) {
	for _, test := range []struct {
		xs        []float64
		low, high float64
	}{
		{[]float64{1, 2, 3, 4, 5}, 0.6, 5.4},
		// Clamped at 0 for non-negative data.
		{[]float64{1, 2, 30}, 0, 32.9},
		{[]float64{0, 10}, 0, 11},
		// Negative data is not clamped.
		{[]float64{-5, -2, 1}, -5.6, 1.6},
		{[]float64{-10, -5}, -10.5, -4.5},
	} {
		low, high := newKDE(test.xs...).Bounds()
		if !near(low, test.low, 1e-12) || !near(high, test.high, 1e-12) {
			t.Errorf("Bounds(%v) = %g, %g, want %g, %g", test.xs, low, high, test.low, test.high)
		}
		if test.xs[0] < 0 && !(low < test.xs[0]) {
			t.Errorf("Bounds(%v): low %g not below minimum", test.xs, low)
		}
	}
}

func BenchmarkPDF(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	xs := make([]float64, 1<<20)
	for i := range xs {
		xs[i] = rng.NormFloat64()
	}
	e := newKDE(xs...)
	lo, hi := e.Bounds()
	pts := vec.Linspace(lo, hi, 160)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.PDFs(pts)
	}
}
