// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package column holds parallel typed columns and the lexicographic
// comparator used to order rows of them.
//
// A Dataset is built from one or more Columns of equal length. Rows are
// addressed by their position in the columns (the row id), and
// Dataset.Compare orders two row ids by consulting the columns in order:
// column 0 decides, column 1 breaks ties in column 0, and so on.
package column

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/xerrors"
)

// A Kind is the element type of a Column.
type Kind uint8

const (
	// Absent marks a missing column. Absent columns are skipped when a
	// Dataset is built.
	Absent Kind = iota
	Int
	Float
	String
)

var kindNames = [...]string{
	Absent: "absent",
	Int:    "int",
	Float:  "float",
	String: "string",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind returns the Kind named by s, as printed by Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if k != int(Absent) && strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}
	return Absent, xerrors.Errorf("kind %q: %w", s, ErrUnsupportedType)
}

// A Column is a read-only sequence of scalars of a single Kind.
// The zero Column is Absent.
type Column struct {
	kind   Kind
	ints   []int64
	floats []float64
	strs   []string
}

// Ints returns an integer column backed by v.
func Ints(v []int64) Column { return Column{kind: Int, ints: v} }

// Floats returns a floating point column backed by v.
func Floats(v []float64) Column { return Column{kind: Float, floats: v} }

// Strings returns a string column backed by v.
func Strings(v []string) Column { return Column{kind: String, strs: v} }

// Of converts v to a Column. It accepts nil (an Absent column), a Column,
// and slices of int64, int, int32, float64, float32 and string. Narrower
// numeric slices are copied into a new backing array.
func Of(v any) (Column, error) {
	switch v := v.(type) {
	case nil:
		return Column{}, nil
	case Column:
		return v, nil
	case []int64:
		return Ints(v), nil
	case []int:
		out := make([]int64, len(v))
		for i, x := range v {
			out[i] = int64(x)
		}
		return Ints(out), nil
	case []int32:
		out := make([]int64, len(v))
		for i, x := range v {
			out[i] = int64(x)
		}
		return Ints(out), nil
	case []float64:
		return Floats(v), nil
	case []float32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return Floats(out), nil
	case []string:
		return Strings(v), nil
	}
	return Column{}, xerrors.Errorf("%T: %w", v, ErrUnsupportedType)
}

// Kind reports the element type of c.
func (c Column) Kind() Kind { return c.kind }

// Len returns the number of rows in c. An Absent column has length 0.
func (c Column) Len() int {
	switch c.kind {
	case Int:
		return len(c.ints)
	case Float:
		return len(c.floats)
	case String:
		return len(c.strs)
	}
	return 0
}

// Value returns row i of c as an int64, float64 or string.
func (c Column) Value(i int) any {
	switch c.kind {
	case Int:
		return c.ints[i]
	case Float:
		return c.floats[i]
	case String:
		return c.strs[i]
	}
	return nil
}

// IntValues returns the backing slice of an Int column, or nil.
func (c Column) IntValues() []int64 { return c.ints }

// FloatValues returns the backing slice of a Float column, or nil.
func (c Column) FloatValues() []float64 { return c.floats }

// StringValues returns the backing slice of a String column, or nil.
func (c Column) StringValues() []string { return c.strs }

// compare returns the sign of c[a] - c[b].
func (c Column) compare(a, b int) int {
	switch c.kind {
	case Int:
		return cmpOrdered(c.ints[a], c.ints[b])
	case Float:
		return cmpFloat(c.floats[a], c.floats[b])
	case String:
		return strings.Compare(c.strs[a], c.strs[b])
	}
	panic("column: compare on " + c.kind.String() + " column")
}

func cmpOrdered[T int64 | float64](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return +1
	}
	return 0
}

// cmpFloat orders NaN before every other value and equal to itself.
func cmpFloat(x, y float64) int {
	xNaN, yNaN := math.IsNaN(x), math.IsNaN(y)
	switch {
	case xNaN && yNaN:
		return 0
	case xNaN:
		return -1
	case yNaN:
		return +1
	}
	return cmpOrdered(x, y)
}

// LessFloat reports whether x sorts before y under the column ordering,
// where NaN precedes every number.
func LessFloat(x, y float64) bool { return cmpFloat(x, y) < 0 }
