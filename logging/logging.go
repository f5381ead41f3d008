// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging holds the default logger used by the sorting packages
// when a caller does not supply one.
//
// The default discards everything. Programs that want diagnostics call
// SetDefault, usually with a logger built by the backends subpackage.
package logging

import (
	"context"
	"sync"

	"golang.org/x/exp/slog"
)

var (
	mu  sync.Mutex
	def = slog.New(Discard)
)

// SetDefault sets the logger returned by Default. A nil logger restores the
// discarding default.
func SetDefault(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = slog.New(Discard)
	}
	def = l
}

// Default returns the logger set by SetDefault.
func Default() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return def
}

// Or returns l if it is non-nil and Default otherwise.
func Or(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return Default()
}

// Discard is a handler that is never enabled.
var Discard slog.Handler = discardHandler{}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
