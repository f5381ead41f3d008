// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alps-lidar/multisort/column"
	"github.com/google/go-cmp/cmp"
)

const weather = `city,temp,day
north,12.5,3
south,3,1
north,7.25,2
east,3,4
north,12.5,5
`

func runMsort(t *testing.T, in string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	err = run(context.Background(), strings.NewReader(in), &outBuf, &errBuf, args)
	return outBuf.String(), errBuf.String(), err
}

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{"sort all columns", nil, "3\n2\n0\n4\n1\n"},
		{"sort keys", []string{"-keys", "city,temp"}, "3\n2\n0\n4\n1\n"},
		{"sort by number", []string{"-keys", "2,3"}, "1\n3\n2\n0\n4\n"},
		{"one-based", []string{"-keys", "city", "-base", "1"}, "4\n1\n3\n5\n2\n"},
		{"uniq column", []string{"-mode", "uniq", "-keys", "city"}, "3\n0\n1\n"},
		{"uniq rows", []string{"-mode", "uniq", "-keys", "city,temp"}, "3\n2\n0\n1\n"},
		{"uniq out rows", []string{"-mode", "uniq", "-keys", "city", "-out", "rows"},
			"city,temp,day\neast,3,4\nnorth,12.5,3\nsouth,3,1\n"},
		{"sortedness", []string{"-mode", "sortedness", "-keys", "day"}, "0.5\n"},
		{"temp as string", []string{"-keys", "temp", "-types", "string"}, "0\n4\n1\n3\n2\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, stderr, err := runMsort(t, weather, tc.args...)
			if err != nil {
				t.Fatalf("%v\nstderr:\n%s", err, stderr)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("output mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRunNoHeader(t *testing.T) {
	got, _, err := runMsort(t, "b,2\na,2\nb,1\n", "-header=false", "-keys", "2,1")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("2\n1\n0\n", got); diff != "" {
		t.Errorf("output mismatch (-want, +got):\n%s", diff)
	}
}

func TestRunUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-mode", "shuffle"},
		{"-out", "json"},
		{"-base", "2"},
		{"-comma", ";;"},
		{"-keys", "altitude"},
		{"-keys", "city,temp", "-types", "string"},
		{"-log", "syslog"},
		{"a.csv", "b.csv"},
	} {
		_, _, err := runMsort(t, weather, args...)
		if _, ok := err.(*usageError); !ok {
			t.Errorf("%v: got error %v, want a usage error", args, err)
		}
	}
}

func TestRunBadValue(t *testing.T) {
	_, _, err := runMsort(t, weather, "-keys", "city", "-types", "int")
	if err == nil {
		t.Fatal("int column of city names: no error")
	}
	if _, ok := err.(*usageError); ok {
		t.Errorf("got usage error %v, want a parse error", err)
	}
}

func TestRunEmpty(t *testing.T) {
	_, _, err := runMsort(t, "")
	if err == nil || !strings.Contains(err.Error(), column.ErrEmpty.Error()) {
		t.Errorf("got %v, want %v", err, column.ErrEmpty)
	}
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "msort.yaml")
	conf := `mode: uniq
keys: [city]
base: 1
log:
  backend: json
  level: debug
`
	if err := os.WriteFile(path, []byte(conf), 0o666); err != nil {
		t.Fatal(err)
	}

	got, stderr, err := runMsort(t, weather, "-config", path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("4\n1\n2\n", got); diff != "" {
		t.Errorf("output mismatch (-want, +got):\n%s", diff)
	}
	if !strings.Contains(stderr, `"msg":"msort: done"`) {
		t.Errorf("no JSON debug log on stderr:\n%s", stderr)
	}

	// Flags override the file.
	got, _, err = runMsort(t, weather, "-config", path, "-mode", "sort", "-base", "0")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("3\n0\n2\n4\n1\n", got); diff != "" {
		t.Errorf("output mismatch (-want, +got):\n%s", diff)
	}

	if err := os.WriteFile(path, []byte("colour: red\n"), 0o666); err != nil {
		t.Fatal(err)
	}
	if _, _, err := runMsort(t, weather, "-config", path); err == nil {
		t.Error("unknown config key: no error")
	}
}

func TestRunVerboseLog(t *testing.T) {
	_, stderr, err := runMsort(t, weather, "-v", "-log", "logfmt-free-text-is-not-a-backend")
	if err == nil {
		t.Fatal("unknown backend: no error")
	}
	_, stderr, err = runMsort(t, weather, "-v")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"timsort: sorted", "comparisons=", "msort: done"} {
		if !strings.Contains(stderr, s) {
			t.Errorf("stderr missing %q:\n%s", s, stderr)
		}
	}
}

func TestRunTrace(t *testing.T) {
	got, stderr, err := runMsort(t, weather, "-trace", "-v", "-keys", "city")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("3\n0\n2\n4\n1\n", got); diff != "" {
		t.Errorf("output mismatch (-want, +got):\n%s", diff)
	}
	for _, s := range []string{`"Name": "msort sort"`, `"Name": "timsort: sorted"`, `"rows"`} {
		if !strings.Contains(stderr, s) {
			t.Errorf("trace missing %s:\n%s", s, stderr)
		}
	}
}
