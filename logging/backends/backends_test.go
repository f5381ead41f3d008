// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package backends

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slog"
)

func TestNames(t *testing.T) {
	want := []string{"discard", "gokit", "json", "logr", "logrus", "text", "zap", "zerolog"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(Config{Backend: name, Level: slog.LevelInfo, Writer: &buf})
			if err != nil {
				t.Fatal(err)
			}
			l.Debug("quiet")
			l.Info("sorted", "rows", 12345)
			out := buf.String()
			if strings.Contains(out, "quiet") {
				t.Errorf("debug record written at info level:\n%s", out)
			}
			if name == "discard" {
				if out != "" {
					t.Errorf("discard wrote %q", out)
				}
				return
			}
			for _, s := range []string{"sorted", "rows", "12345"} {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestNewUnknown(t *testing.T) {
	_, err := New(Config{Backend: "syslog"})
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("got %v, want %v", err, ErrUnknownBackend)
	}
}

func TestNewDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Writer: &buf, Trace: true})
	if err != nil {
		t.Fatal(err)
	}
	l.Info("hello")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("got %q, want text output", buf.String())
	}
}

func TestNewSource(t *testing.T) {
	for _, name := range []string{"text", "json", "zap", "zerolog"} {
		for _, addSource := range []bool{false, true} {
			var buf bytes.Buffer
			l, err := New(Config{Backend: name, Level: slog.LevelInfo, AddSource: addSource, Writer: &buf})
			if err != nil {
				t.Fatal(err)
			}
			l.Info("sorted")
			if got := strings.Contains(buf.String(), "backends_test.go"); got != addSource {
				t.Errorf("%s with AddSource=%t: source written = %t:\n%s", name, addSource, got, buf.String())
			}
		}
	}
}
