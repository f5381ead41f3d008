// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timsort

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alps-lidar/multisort/column"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slog"
)

func mustDataset(t testing.TB, cols ...column.Column) *column.Dataset {
	t.Helper()
	ds, err := column.New(cols...)
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

// checkSorted verifies that index is a permutation of ds's rows that
// orders them, and when stable is set that equal rows keep their order.
func checkSorted(t *testing.T, ds *column.Dataset, index []int, stable bool) {
	t.Helper()
	if len(index) != ds.Len() {
		t.Fatalf("got %d indices for %d rows", len(index), ds.Len())
	}
	seen := make([]bool, len(index))
	for _, r := range index {
		if r < 0 || r >= len(index) || seen[r] {
			t.Fatalf("index is not a permutation: row %d out of range or repeated", r)
		}
		seen[r] = true
	}
	for p := 0; p+1 < len(index); p++ {
		c := ds.Compare(index[p], index[p+1], false)
		if c > 0 {
			t.Fatalf("rows out of order at position %d: %d then %d", p, index[p], index[p+1])
		}
		if c == 0 && stable && index[p] > index[p+1] {
			t.Fatalf("unstable at position %d: row %d before equal row %d", p, index[p], index[p+1])
		}
	}
}

func TestSortExamples(t *testing.T) {
	for _, tc := range []struct {
		name string
		cols []column.Column
		want []int
	}{
		{
			name: "one int column",
			cols: []column.Column{column.Ints([]int64{5, 3, 3, 1, 4})},
			want: []int{3, 1, 2, 4, 0},
		},
		{
			name: "int then float",
			cols: []column.Column{
				column.Ints([]int64{1, 1, 2}),
				column.Floats([]float64{2.0, 1.0, 0.0}),
			},
			want: []int{1, 0, 2},
		},
		{
			name: "strings",
			cols: []column.Column{column.Strings([]string{"banana", "apple", "apple"})},
			want: []int{1, 2, 0},
		},
		{
			name: "absent column ignored",
			cols: []column.Column{{}, column.Floats([]float64{0.5, -1, 0.25})},
			want: []int{1, 2, 0},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Sort(mustDataset(t, tc.cols...), true)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSortBoundary(t *testing.T) {
	for n := 0; n <= 1; n++ {
		calls := 0
		index := make([]int, n)
		err := SortFunc(index, func(a, b int) int {
			calls++
			return a - b
		})
		if err != nil {
			t.Fatal(err)
		}
		if calls != 0 {
			t.Errorf("n=%d: comparator called %d times, want 0", n, calls)
		}

		ds := mustDataset(t, column.Ints(make([]int64, n)))
		got, st, err := SortOptions(ds, Options{Stable: true})
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(ds.Identity(), got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("n=%d: mismatch (-want, +got):\n%s", n, diff)
		}
		if st.Comparisons != 0 {
			t.Errorf("n=%d: %d comparisons, want 0", n, st.Comparisons)
		}
	}
}

type pattern struct {
	name string
	gen  func(r *rand.Rand, n int) []int64
}

var patterns = []pattern{
	{"sorted", func(_ *rand.Rand, n int) []int64 {
		v := make([]int64, n)
		for i := range v {
			v[i] = int64(i)
		}
		return v
	}},
	{"reversed", func(_ *rand.Rand, n int) []int64 {
		v := make([]int64, n)
		for i := range v {
			v[i] = int64(n - i)
		}
		return v
	}},
	{"sawtooth", func(_ *rand.Rand, n int) []int64 {
		v := make([]int64, n)
		for i := range v {
			v[i] = int64(i % 37)
		}
		return v
	}},
	{"organ pipe", func(_ *rand.Rand, n int) []int64 {
		v := make([]int64, n)
		for i := range v {
			if i < n/2 {
				v[i] = int64(i)
			} else {
				v[i] = int64(n - i)
			}
		}
		return v
	}},
	{"random", func(r *rand.Rand, n int) []int64 {
		v := make([]int64, n)
		for i := range v {
			v[i] = r.Int63()
		}
		return v
	}},
	{"few distinct", func(r *rand.Rand, n int) []int64 {
		v := make([]int64, n)
		for i := range v {
			v[i] = int64(r.Intn(4))
		}
		return v
	}},
	{"all equal", func(_ *rand.Rand, n int) []int64 {
		return make([]int64, n)
	}},
	{"sorted runs", func(r *rand.Rand, n int) []int64 {
		v := make([]int64, n)
		x := int64(0)
		for i := range v {
			if r.Intn(50) == 0 {
				x = int64(r.Intn(n + 1))
			}
			v[i] = x
			x++
		}
		return v
	}},
}

func TestSortPatterns(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, p := range patterns {
		for _, n := range []int{2, 3, 7, 8, 9, 31, 64, 65, 100, 1000, 4097} {
			t.Run(fmt.Sprintf("%s/%d", p.name, n), func(t *testing.T) {
				ds := mustDataset(t, column.Ints(p.gen(r, n)))
				index, err := Sort(ds, true)
				if err != nil {
					t.Fatal(err)
				}
				checkSorted(t, ds, index, true)
				if !IsSorted(ds, index) {
					t.Error("IsSorted = false after Sort")
				}
			})
		}
	}
}

func TestSortLarge_Random(t *testing.T) {
	n := 200000
	if testing.Short() {
		n /= 100
	}
	r := rand.New(rand.NewSource(42))
	ints := make([]int64, n)
	floats := make([]float64, n)
	strs := make([]string, n)
	for i := 0; i < n; i++ {
		ints[i] = int64(r.Intn(10))
		floats[i] = float64(r.Intn(10)) / 4
		strs[i] = fmt.Sprintf("s%03d", r.Intn(100))
	}
	ds := mustDataset(t, column.Ints(ints), column.Floats(floats), column.Strings(strs))
	index, st, err := SortOptions(ds, Options{Stable: true})
	if err != nil {
		t.Fatal(err)
	}
	checkSorted(t, ds, index, true)
	if st.Merges == 0 {
		t.Errorf("no merges reported for %d random rows", n)
	}
	if st.MaxPending >= maxPending {
		t.Errorf("pending stack reached %d", st.MaxPending)
	}
}

func TestSortStableWithoutTieBreak(t *testing.T) {
	// Merging never reorders equal rows, so stability holds even when the
	// comparator does not fall back to row ids.
	r := rand.New(rand.NewSource(7))
	keys := make([]string, 5000)
	for i := range keys {
		keys[i] = string(rune('a' + r.Intn(5)))
	}
	ds := mustDataset(t, column.Strings(keys))
	index, err := Sort(ds, false)
	if err != nil {
		t.Fatal(err)
	}
	checkSorted(t, ds, index, true)
}

func TestSortAlreadySorted(t *testing.T) {
	for _, tc := range []struct {
		name string
		gen  func(*rand.Rand, int) []int64
		want func(n int) []int
	}{
		{"ascending", patterns[0].gen, func(n int) []int {
			w := make([]int, n)
			for i := range w {
				w[i] = i
			}
			return w
		}},
		{"strictly descending", patterns[1].gen, func(n int) []int {
			w := make([]int, n)
			for i := range w {
				w[i] = n - 1 - i
			}
			return w
		}},
	} {
		for _, n := range []int{5, 8, 1000} {
			t.Run(fmt.Sprintf("%s/%d", tc.name, n), func(t *testing.T) {
				ds := mustDataset(t, column.Ints(tc.gen(nil, n)))
				index, st, err := SortOptions(ds, Options{Stable: true})
				if err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(tc.want(n), index); diff != "" {
					t.Errorf("mismatch (-want, +got):\n%s", diff)
				}
				want := Stats{Rows: n, Runs: 1, Comparisons: n - 1, MaxPending: st.MaxPending}
				if diff := cmp.Diff(want, st); diff != "" {
					t.Errorf("stats mismatch (-want, +got):\n%s", diff)
				}
			})
		}
	}
}

func TestSortIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	vals := patterns[5].gen(r, 3000)
	ds := mustDataset(t, column.Ints(vals))
	first, err := Sort(ds, true)
	if err != nil {
		t.Fatal(err)
	}
	second := append([]int(nil), first...)
	calls := 0
	err = SortFunc(second, func(a, b int) int {
		calls++
		return ds.Compare(a, b, true)
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("resorting changed the permutation (-want, +got):\n%s", diff)
	}
	if calls != len(first)-1 {
		t.Errorf("resorting made %d comparisons, want %d", calls, len(first)-1)
	}
}

func TestSortFunc(t *testing.T) {
	words := []string{"delta", "alpha", "charlie", "bravo", "alpha", "echo", "foxtrot", "golf", "hotel", "india"}
	// Sort only the even rows, by word length then word.
	index := []int{0, 2, 4, 6, 8}
	err := SortFunc(index, func(a, b int) int {
		if d := len(words[a]) - len(words[b]); d != 0 {
			return d
		}
		return strings.Compare(words[a], words[b])
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{4, 0, 8, 2, 6}, index); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestSortLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ds := mustDataset(t, column.Ints([]int64{3, 2, 1, 0, 9, 8, 7, 6, 5, 4}))
	if _, _, err := SortOptions(ds, Options{Stable: true, Logger: logger}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{`"msg":"timsort: sorted"`, `"rows":10`, `"comparisons":`} {
		if !strings.Contains(got, want) {
			t.Errorf("log output %q does not contain %q", got, want)
		}
	}
}

func TestInvariantError(t *testing.T) {
	s := newSorter([]int{0, 1, 2}, func(a, b int) int { return a - b })
	err := s.run(func() { s.mergeAt(0) })
	if !errors.Is(err, ErrInvariant) {
		t.Fatalf("got %v, want ErrInvariant", err)
	}
	var ie *InvariantError
	if !errors.As(err, &ie) || ie.Op != "mergeAt" {
		t.Errorf("got %#v, want an *InvariantError from mergeAt", err)
	}

	s = newSorter([]int{0, 1, 2}, func(a, b int) int { return a - b })
	s.pushRun(0, 1)
	err = s.run(func() { s.pushRun(2, 1) })
	if !errors.Is(err, ErrInvariant) {
		t.Errorf("pushing a non-adjacent run: got %v, want ErrInvariant", err)
	}
}

func TestSortFuncPanicPropagates(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
	}()
	SortFunc([]int{1, 0}, func(a, b int) int { panic("boom") })
	t.Error("SortFunc returned after comparator panic")
}
