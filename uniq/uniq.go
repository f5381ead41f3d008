// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uniq finds the distinct values of a column, or the distinct rows
// of a dataset, as row ids.
//
// Every function returns the row ids of the first occurrence of each
// distinct value, ordered by value. Strings use a three-way radix
// quicksort over the row ids; numbers use a bottom-up merge that drops
// duplicates as it merges; whole rows go through the stable timsort.
package uniq

import (
	"github.com/alps-lidar/multisort/column"
	"github.com/alps-lidar/multisort/timsort"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
	"golang.org/x/xerrors"
)

// Column returns the row ids of the distinct values of c.
func Column(c column.Column) ([]int, error) {
	switch c.Kind() {
	case column.Int:
		return Ints(c.IntValues()), nil
	case column.Float:
		return Floats(c.FloatValues()), nil
	case column.String:
		return Strings(c.StringValues()), nil
	}
	return nil, xerrors.Errorf("uniq of %v column: %w", c.Kind(), column.ErrUnsupportedType)
}

// Ints returns the row ids of the distinct values of data.
func Ints(data []int64) []int { return Ordered(data) }

// Floats returns the row ids of the distinct values of data. All NaNs are
// one value, which sorts first.
func Floats(data []float64) []int {
	return mergeUniq(len(data), func(a, b int) bool {
		return column.LessFloat(data[a], data[b])
	})
}

// Ordered returns the row ids of the distinct values of data.
func Ordered[T constraints.Ordered](data []T) []int {
	return mergeUniq(len(data), func(a, b int) bool { return data[a] < data[b] })
}

// Rows returns the row ids of the distinct rows of ds, comparing every
// column.
func Rows(ds *column.Dataset) ([]int, error) {
	index, err := timsort.Sort(ds, true)
	if err != nil {
		return nil, err
	}
	out := index[:0]
	for p, row := range index {
		// Equal rows are adjacent and in row id order.
		if p == 0 || ds.Compare(index[p-1], row, false) != 0 {
			out = append(out, row)
		}
	}
	return slices.Clip(out), nil
}

func identity(n int) []int {
	list := make([]int, n)
	for i := range list {
		list[i] = i
	}
	return list
}
