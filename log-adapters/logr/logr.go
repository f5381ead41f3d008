// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elogr provides a slog.Handler that writes to a logr.Logger.
//
// Records at Info and above go to the logger at verbosity 0, except that
// records at Error and above go to Logger.Error, with the first error
// valued attribute as its error argument. Each step of 4 below Info
// adds one verbosity level, so Debug records are logged at V(1).
package elogr

import (
	"context"

	"github.com/alps-lidar/multisort/log-adapters/internal"
	"github.com/go-logr/logr"
	"golang.org/x/exp/slog"
)

type handler struct {
	logger logr.Logger
	state  internal.State
}

var _ slog.Handler = (*handler)(nil)

// NewHandler returns a handler that writes records to l.
func NewHandler(l logr.Logger) slog.Handler {
	return &handler{logger: l}
}

func (h *handler) Enabled(_ context.Context, l slog.Level) bool {
	if l >= slog.LevelError {
		return true
	}
	return h.logger.V(verbosity(l)).Enabled()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	fs := h.state.Fields(r)
	kvs := make([]interface{}, 0, 2*len(fs))
	var err error
	for _, f := range fs {
		if e, ok := f.Value.Any().(error); ok && err == nil {
			err = e
			continue
		}
		kvs = append(kvs, f.Key, f.Value.Any())
	}
	if r.Level >= slog.LevelError {
		h.logger.Error(err, r.Message, kvs...)
		return nil
	}
	h.logger.V(verbosity(r.Level)).Info(r.Message, kvs...)
	return nil
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.state = h.state.WithAttrs(attrs)
	return &h2
}

// WithGroup qualifies later keys with name. It does not change the logr
// name; use logr.Logger.WithName for that.
func (h *handler) WithGroup(name string) slog.Handler {
	h2 := *h
	h2.state = h.state.WithGroup(name)
	return &h2
}

func verbosity(l slog.Level) int {
	if l >= slog.LevelInfo {
		return 0
	}
	return int(slog.LevelInfo-l+3) / 4
}
