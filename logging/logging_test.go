// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"golang.org/x/exp/slog"
)

func TestDefault(t *testing.T) {
	defer SetDefault(nil)

	if Default().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("initial default logger is enabled")
	}

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	SetDefault(l)
	if Default() != l {
		t.Fatal("Default did not return the logger passed to SetDefault")
	}
	Or(nil).Info("hello", "k", 1)
	if got := buf.String(); !strings.Contains(got, "msg=hello") || !strings.Contains(got, "k=1") {
		t.Errorf("got %q, want a text record with msg=hello k=1", got)
	}

	other := slog.New(Discard)
	if Or(other) != other {
		t.Error("Or(l) did not return l")
	}

	SetDefault(nil)
	if Default().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetDefault(nil) did not restore the discarding logger")
	}
}
