// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/alps-lidar/multisort/column"
	"golang.org/x/xerrors"
)

// A table is a CSV file held as text.
type table struct {
	names []string // column names; "1", "2", ... without a header
	rows  [][]string
}

func readTable(r io.Reader, comma rune, header bool) (*table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	t := &table{}
	if header && len(records) > 0 {
		t.names, records = records[0], records[1:]
	}
	t.rows = records
	if t.names == nil && len(records) > 0 {
		t.names = make([]string, len(records[0]))
		for i := range t.names {
			t.names[i] = strconv.Itoa(i + 1)
		}
	}
	return t, nil
}

// resolveKeys maps key names, or 1-based column numbers, to column
// positions. No keys means every column, left to right.
func (t *table) resolveKeys(keys []string) ([]int, error) {
	if len(keys) == 0 {
		cols := make([]int, len(t.names))
		for i := range cols {
			cols[i] = i
		}
		return cols, nil
	}
	cols := make([]int, len(keys))
outer:
	for i, k := range keys {
		for j, name := range t.names {
			if name == k {
				cols[i] = j
				continue outer
			}
		}
		if n, err := strconv.Atoi(k); err == nil && n >= 1 && n <= len(t.names) {
			cols[i] = n - 1
			continue
		}
		return nil, usageErrorf("no column %q", k)
	}
	return cols, nil
}

// dataset builds the key columns of t. kinds gives each column's type;
// an empty kinds infers them.
func (t *table) dataset(cols []int, kinds []string) (*column.Dataset, error) {
	if len(kinds) > 0 && len(kinds) != len(cols) {
		return nil, usageErrorf("%d types given for %d keys", len(kinds), len(cols))
	}
	cs := make([]column.Column, len(cols))
	for i, j := range cols {
		vals := make([]string, len(t.rows))
		for r, row := range t.rows {
			vals[r] = row[j]
		}
		var k column.Kind
		if len(kinds) > 0 {
			var err error
			if k, err = column.ParseKind(kinds[i]); err != nil {
				return nil, usageErrorf("%v", err)
			}
		} else {
			k = inferKind(vals)
		}
		c, err := parseColumn(k, vals)
		if err != nil {
			return nil, xerrors.Errorf("column %s: %w", t.names[j], err)
		}
		cs[i] = c
	}
	return column.New(cs...)
}

// inferKind returns Int if every value parses as an integer, else Float
// if every value parses as a number, else String.
func inferKind(vals []string) column.Kind {
	k := column.Int
	for _, v := range vals {
		v = strings.TrimSpace(v)
		if k == column.Int {
			if _, err := strconv.ParseInt(v, 10, 64); err == nil {
				continue
			}
			k = column.Float
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return column.String
		}
	}
	return k
}

func parseColumn(k column.Kind, vals []string) (column.Column, error) {
	switch k {
	case column.Int:
		out := make([]int64, len(vals))
		for i, v := range vals {
			x, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return column.Column{}, xerrors.Errorf("row %d: %w", i+1, err)
			}
			out[i] = x
		}
		return column.Ints(out), nil
	case column.Float:
		out := make([]float64, len(vals))
		for i, v := range vals {
			x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return column.Column{}, xerrors.Errorf("row %d: %w", i+1, err)
			}
			out[i] = x
		}
		return column.Floats(out), nil
	}
	return column.Strings(vals), nil
}
