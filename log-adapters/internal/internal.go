// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package internal holds the attribute handling shared by the slog
// handlers that write to other logging libraries.
//
// None of those libraries has a notion of attribute groups, so groups are
// flattened into dotted keys: slog.Group("run", "len", 3) becomes the
// single field run.len=3.
package internal

import (
	"context"
	"runtime"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/slog"
)

// A Field is one flattened attribute with a resolved value.
type Field struct {
	Key   string
	Value slog.Value
}

// Flatten appends the fields of attrs to fs, qualifying each key with
// prefix.
func Flatten(fs []Field, prefix string, attrs ...slog.Attr) []Field {
	for _, a := range attrs {
		if a.Equal(slog.Attr{}) {
			continue
		}
		v := a.Value.Resolve()
		if v.Kind() == slog.KindGroup {
			// A group with an empty key is inlined.
			fs = Flatten(fs, Join(prefix, a.Key), v.Group()...)
			continue
		}
		fs = append(fs, Field{Key: Join(prefix, a.Key), Value: v})
	}
	return fs
}

// Join qualifies key with the group prefix.
func Join(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == "":
		return prefix
	}
	return prefix + "." + key
}

// State is the part of a handler set by WithAttrs and WithGroup.
// The zero State has no attributes and no group.
type State struct {
	fields []Field
	prefix string
}

// WithAttrs returns s with attrs added under the current group.
func (s State) WithAttrs(attrs []slog.Attr) State {
	fs := make([]Field, len(s.fields), len(s.fields)+len(attrs))
	copy(fs, s.fields)
	s.fields = Flatten(fs, s.prefix, attrs...)
	return s
}

// WithGroup returns s with later attributes qualified by name.
func (s State) WithGroup(name string) State {
	s.prefix = Join(s.prefix, name)
	return s
}

// Fields returns the fields of s followed by the attributes of r.
func (s State) Fields(r slog.Record) []Field {
	fs := make([]Field, len(s.fields), len(s.fields)+r.NumAttrs())
	copy(fs, s.fields)
	r.Attrs(func(a slog.Attr) bool {
		fs = Flatten(fs, s.prefix, a)
		return true
	})
	return fs
}

// A Severity is a slog level rounded down to one of the four levels every
// logging library has.
type Severity int

const (
	Debug Severity = iota
	Info
	Warn
	Error
)

// SeverityOf rounds l down to a Severity. Levels below Info are Debug.
func SeverityOf(l slog.Level) Severity {
	switch {
	case l >= slog.LevelError:
		return Error
	case l >= slog.LevelWarn:
		return Warn
	case l >= slog.LevelInfo:
		return Info
	}
	return Debug
}

// Source returns the function, file and line of a record's program
// counter. ok is false when pc is zero.
func Source(pc uintptr) (f runtime.Frame, ok bool) {
	if pc == 0 {
		return runtime.Frame{}, false
	}
	f, _ = runtime.CallersFrames([]uintptr{pc}).Next()
	return f, true
}

// An Entry is a record captured by a Recorder.
type Entry struct {
	Level   slog.Level
	Message string
	Fields  map[string]any
}

// Recorder is a slog.Handler that keeps every record it handles, for
// tests.
type Recorder struct {
	mu      *sync.Mutex
	entries *[]Entry
	state   State
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{mu: new(sync.Mutex), entries: new([]Entry)}
}

func (r *Recorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *Recorder) Handle(_ context.Context, rec slog.Record) error {
	e := Entry{Level: rec.Level, Message: rec.Message, Fields: map[string]any{}}
	for _, f := range r.state.Fields(rec) {
		e.Fields[f.Key] = f.Value.Any()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.entries = append(*r.entries, e)
	return nil
}

func (r *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	r2 := *r
	r2.state = r.state.WithAttrs(attrs)
	return &r2
}

func (r *Recorder) WithGroup(name string) slog.Handler {
	r2 := *r
	r2.state = r.state.WithGroup(name)
	return &r2
}

// Entries returns the records handled so far by r and every handler
// derived from it.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), *r.entries...)
}

// CmpOptions compare Entries. Error-valued fields match under errors.Is.
var CmpOptions = []cmp.Option{
	cmpopts.EquateErrors(),
	cmpopts.EquateEmpty(),
}
