// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"golang.org/x/xerrors"
)

// Validation errors returned by New and FromValues.
var (
	ErrLengthMismatch  = xerrors.New("column length mismatch")
	ErrUnsupportedType = xerrors.New("unsupported column type")
	ErrEmpty           = xerrors.New("no columns")
)

// A Dataset is an ordered set of equal-length columns. Column order is key
// precedence.
type Dataset struct {
	cols []Column
	n    int
}

// New builds a Dataset from cols, skipping Absent columns. The row count is
// taken from the first present column; every other column must match it.
func New(cols ...Column) (*Dataset, error) {
	d := &Dataset{n: -1}
	for i, c := range cols {
		switch c.kind {
		case Absent:
			continue
		case Int, Float, String:
		default:
			return nil, xerrors.Errorf("column %d: kind %v: %w", i, c.kind, ErrUnsupportedType)
		}
		if d.n < 0 {
			d.n = c.Len()
		} else if c.Len() != d.n {
			return nil, xerrors.Errorf("column %d has %d rows, want %d: %w", i, c.Len(), d.n, ErrLengthMismatch)
		}
		d.cols = append(d.cols, c)
	}
	if len(d.cols) == 0 {
		return nil, xerrors.Errorf("%d columns given, none present: %w", len(cols), ErrEmpty)
	}
	return d, nil
}

// FromValues converts each value with Of and builds a Dataset from the
// results.
func FromValues(vals ...any) (*Dataset, error) {
	cols := make([]Column, len(vals))
	for i, v := range vals {
		c, err := Of(v)
		if err != nil {
			return nil, xerrors.Errorf("column %d: %w", i, err)
		}
		cols[i] = c
	}
	return New(cols...)
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.n }

// NumColumns returns the number of present columns.
func (d *Dataset) NumColumns() int { return len(d.cols) }

// Column returns the i'th present column.
func (d *Dataset) Column(i int) Column { return d.cols[i] }

// Identity returns a new identity permutation 0, 1, ..., Len()-1.
func (d *Dataset) Identity() []int {
	index := make([]int, d.n)
	for i := range index {
		index[i] = i
	}
	return index
}

// Compare orders rows a and b. It returns a negative number when a sorts
// before b, a positive number when it sorts after, and zero when every
// column is equal. With tieBreak set, equal rows are ordered by row id, so
// Compare only returns zero when a == b.
func (d *Dataset) Compare(a, b int, tieBreak bool) int {
	for _, c := range d.cols {
		if r := c.compare(a, b); r != 0 {
			return r
		}
	}
	if tieBreak {
		return a - b
	}
	return 0
}

// Comparator returns Compare bound to tieBreak.
func (d *Dataset) Comparator(tieBreak bool) func(a, b int) int {
	return func(a, b int) int { return d.Compare(a, b, tieBreak) }
}
