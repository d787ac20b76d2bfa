// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package forkjoin runs independent tasks on a bounded number of
// goroutines and waits for all of them to finish.
//
// Tasks share no mutable state through this package. Each task is
// expected to write only to memory it owns (for example, its own
// element of a result slice), so the join in Run is the only
// synchronization required.
package forkjoin

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers returns the default number of workers, which is the number
// of Ps available to the Go scheduler.
func Workers() int {
	return runtime.GOMAXPROCS(-1)
}

// Run calls fn(i) for every i in [0, n), running at most workers
// calls at a time. It returns after every call has returned. If
// workers <= 0, Run uses Workers().
func Run(n, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = Workers()
	}
	if n == 1 || workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	// Tasks never fail.
	g.Wait()
}

// Map returns a slice ys where ys[i] = fn(xs[i]). It is the parallel
// counterpart of vec.Map: xs is split into contiguous blocks, one per
// worker, and each block is evaluated independently. fn must be safe
// to call concurrently.
func Map(fn func(float64) float64, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	blocks := Workers()
	if blocks > len(xs) {
		blocks = len(xs)
	}
	Run(blocks, blocks, func(b int) {
		lo, hi := b*len(xs)/blocks, (b+1)*len(xs)/blocks
		for i := lo; i < hi; i++ {
			ys[i] = fn(xs[i])
		}
	})
	return ys
}
