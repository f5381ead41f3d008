// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timsort sorts the rows of a column.Dataset with a stable,
// adaptive merge sort in the style of Tim Peters' listsort.
//
// The sort never moves column data. It orders a permutation index of row
// ids, so that reading any column through the returned index yields the
// rows in ascending lexicographic order. Natural ascending and strictly
// descending runs in the input are found and reused; already sorted input
// is recognized with N-1 comparisons.
//
// References:
//
//	http://svn.python.org/projects/python/trunk/Objects/listsort.txt
//	http://svn.python.org/projects/python/trunk/Objects/listobject.c
package timsort

import (
	"context"

	"github.com/alps-lidar/multisort/column"
	"github.com/alps-lidar/multisort/logging"
	"golang.org/x/exp/slog"
)

const (
	// Runs shorter than this are padded with binary insertion sort, and
	// inputs shorter than this skip the merge machinery entirely.
	minMerge = 8

	// Capacity of the pending-run stack. Run lengths on the stack grow at
	// least as fast as the Fibonacci numbers, so 40 covers any input that
	// fits in memory.
	maxPending = 40

	initialMinGallop = 7
)

// Options configure SortOptions.
type Options struct {
	// Stable breaks ties between otherwise equal rows by row id, making the
	// comparator a total order.
	Stable bool

	// Logger receives a debug summary of each sort and an error record
	// when a sort is abandoned. If nil, logging.Default is used.
	Logger *slog.Logger
}

// Stats describes the work done by one sort.
type Stats struct {
	Rows        int
	Runs        int // runs pushed, after padding short ones
	Merges      int
	Gallops     int // times a merge entered galloping mode
	Comparisons int
	MaxPending  int // deepest pending-run stack
}

// Sort returns the permutation of ds's row ids that orders the rows
// ascending. When stable is set, rows that compare equal on every column
// keep their original relative order.
func Sort(ds *column.Dataset, stable bool) ([]int, error) {
	index, _, err := SortOptions(ds, Options{Stable: stable})
	return index, err
}

// SortOptions is like Sort but takes Options and also reports Stats. On
// error the returned index is nil.
func SortOptions(ds *column.Dataset, opts Options) ([]int, Stats, error) {
	return SortContext(context.Background(), ds, opts)
}

// SortContext is like SortOptions. The context is passed to the logger
// with each record; the sort itself cannot be canceled.
func SortContext(ctx context.Context, ds *column.Dataset, opts Options) ([]int, Stats, error) {
	index := ds.Identity()
	st, err := sortIndex(ctx, index, ds.Comparator(opts.Stable), logging.Or(opts.Logger))
	if err != nil {
		return nil, st, err
	}
	return index, st, nil
}

// SortFunc sorts index in place with cmp, which is called with row ids
// taken from index (not with positions). cmp must be a consistent total
// preorder; the sort is stable with respect to the initial order of index.
// If an *InvariantError is returned the contents of index are unspecified.
func SortFunc(index []int, cmp func(a, b int) int) error {
	_, err := sortIndex(context.Background(), index, cmp, logging.Default())
	return err
}

// IsSorted reports whether reading ds through index yields non-decreasing
// rows.
func IsSorted(ds *column.Dataset, index []int) bool {
	for i := len(index) - 1; i > 0; i-- {
		if ds.Compare(index[i-1], index[i], false) > 0 {
			return false
		}
	}
	return true
}

type sorter struct {
	index []int
	cmp   func(a, b int) int
	tmp   []int

	// Pending runs; run i is index[runBase[i]:runBase[i]+runLen[i]].
	runBase [maxPending]int
	runLen  [maxPending]int
	pending int

	minGallop int
	stats     Stats
}

func newSorter(index []int, cmp func(a, b int) int) *sorter {
	return &sorter{
		index:     index,
		cmp:       cmp,
		minGallop: initialMinGallop,
		stats:     Stats{Rows: len(index)},
	}
}

func (s *sorter) compare(a, b int) int {
	s.stats.Comparisons++
	return s.cmp(a, b)
}

func sortIndex(ctx context.Context, index []int, cmp func(a, b int) int, logger *slog.Logger) (Stats, error) {
	s := newSorter(index, cmp)
	if err := s.run(s.sort); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "timsort: sort abandoned",
			slog.Int("rows", s.stats.Rows),
			slog.Int("comparisons", s.stats.Comparisons),
			slog.String("err", err.Error()))
		return s.stats, err
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "timsort: sorted",
		slog.Int("rows", s.stats.Rows),
		slog.Int("runs", s.stats.Runs),
		slog.Int("merges", s.stats.Merges),
		slog.Int("gallops", s.stats.Gallops),
		slog.Int("comparisons", s.stats.Comparisons),
		slog.Int("max_pending", s.stats.MaxPending))
	return s.stats, nil
}

func (s *sorter) sort() {
	lo, hi := 0, len(s.index)
	remaining := hi
	if remaining < 2 {
		return
	}

	// Small input: one run plus binary insertion, no merging.
	if remaining < minMerge {
		n := s.countRun(lo, hi)
		s.stats.Runs = 1
		s.binaryInsertionSort(lo, hi, lo+n)
		return
	}

	// Find runs left to right, padding short ones to minRun, and merge
	// them as the stack invariants demand.
	s.tmp = make([]int, 0, remaining/2)
	minRun := minRunLength(remaining)
	for remaining > 0 {
		n := s.countRun(lo, hi)
		if n < minRun && lo+n < hi {
			force := min(remaining, minRun)
			s.binaryInsertionSort(lo, lo+force, lo+n)
			n = force
		}
		s.pushRun(lo, n)
		s.stats.Runs++
		lo += n
		remaining -= n
	}
	if lo != hi {
		fail("sort", "scanned %d of %d elements", lo, hi)
	}

	s.mergeForceCollapse()
	if s.pending != 1 || s.runBase[0] != 0 || s.runLen[0] != hi {
		fail("sort", "%d runs left after collapse", s.pending)
	}
}
