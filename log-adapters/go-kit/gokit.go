// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package egokit provides a slog.Handler that writes to a go-kit
// log.Logger.
//
// Each record becomes one Log call with the keys "time", "level" and
// "msg" first, followed by the record's attributes. The level value is a
// go-kit level.Value, so level.NewFilter works on the result.
package egokit

import (
	"context"

	"github.com/alps-lidar/multisort/log-adapters/internal"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"golang.org/x/exp/slog"
)

type handler struct {
	logger log.Logger
	min    slog.Leveler
	state  internal.State
}

var _ slog.Handler = (*handler)(nil)

// NewHandler returns a handler that writes records at or above min to l.
// A nil min means slog.LevelInfo.
func NewHandler(l log.Logger, min slog.Leveler) slog.Handler {
	if min == nil {
		min = slog.LevelInfo
	}
	return &handler{logger: l, min: min}
}

func (h *handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.min.Level()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	fs := h.state.Fields(r)
	keyvals := make([]interface{}, 0, 6+2*len(fs))
	if !r.Time.IsZero() {
		keyvals = append(keyvals, "time", r.Time)
	}
	keyvals = append(keyvals, level.Key(), levelValue(r.Level), "msg", r.Message)
	for _, f := range fs {
		keyvals = append(keyvals, f.Key, f.Value.Any())
	}
	return h.logger.Log(keyvals...)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.state = h.state.WithAttrs(attrs)
	return &h2
}

func (h *handler) WithGroup(name string) slog.Handler {
	h2 := *h
	h2.state = h.state.WithGroup(name)
	return &h2
}

func levelValue(l slog.Level) level.Value {
	switch internal.SeverityOf(l) {
	case internal.Error:
		return level.ErrorValue()
	case internal.Warn:
		return level.WarnValue()
	case internal.Info:
		return level.InfoValue()
	}
	return level.DebugValue()
}
