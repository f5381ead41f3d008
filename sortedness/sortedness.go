// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sortedness estimates how close the rows of a dataset already are
// to ascending or descending order, by comparing a sparse sample of row
// pairs.
//
// The estimate is a heuristic. It is cheap (at most a few dozen
// comparisons at each of a bounded number of strides) and is not a
// substitute for checking order with timsort.IsSorted.
package sortedness

import "github.com/alps-lidar/multisort/column"

const (
	maxDepth  = 10 // stride levels sampled
	minChunk  = 16 // smallest stride chunk
	minSample = 32 // below this many samples, take a dense pass
)

// Estimate returns a score in [-1, 1] for the rows of ds in their current
// order: 1 when every sampled pair is ascending or equal, -1 when every
// sampled pair is descending, and about 0 for shuffled rows. Datasets with
// fewer than two rows score 1.
func Estimate(ds *column.Dataset) float64 {
	return EstimateFunc(ds.Len(), ds.Comparator(false))
}

// EstimateFunc is like Estimate for n rows ordered by cmp, which returns
// the sign of row a minus row b.
func EstimateFunc(n int, cmp func(a, b int) int) float64 {
	var c counts
	for depth, chunk := 0, n; depth < maxDepth && chunk >= minChunk; depth, chunk = depth+1, chunk/2 {
		gap := chunk / 3
		for i := gap; i+gap < n; i += chunk {
			c.add(cmp(i, i+gap))
		}
	}
	if c.total() < minSample {
		step := n / (minSample - c.total())
		if step < 1 {
			step = 1
		}
		gap := step / 2
		if gap < 1 {
			gap = 1
		}
		for i := 0; i+gap < n; i += step {
			c.add(cmp(i, i+gap))
		}
	}
	return c.score()
}

type counts struct {
	gt, lt, eq int
}

func (c *counts) add(r int) {
	switch {
	case r > 0:
		c.gt++
	case r < 0:
		c.lt++
	default:
		c.eq++
	}
}

func (c *counts) total() int { return c.gt + c.lt + c.eq }

func (c *counts) score() float64 {
	total := float64(c.total())
	if total == 0 {
		return 1
	}
	if c.gt > c.lt {
		return -2 * (float64(c.gt+c.eq)/total - 0.5)
	}
	return 2 * (float64(c.lt+c.eq)/total - 0.5)
}
