// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elogrus provides a slog.Handler that writes to a logrus.Logger.
//
// Records keep their context, so logrus hooks that read Entry.Context
// see the context passed to the slog call.
package elogrus

import (
	"context"

	"github.com/alps-lidar/multisort/log-adapters/internal"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slog"
)

type handler struct {
	logger *logrus.Logger
	state  internal.State
}

var _ slog.Handler = (*handler)(nil)

// NewHandler returns a handler that writes records to l.
func NewHandler(l *logrus.Logger) slog.Handler {
	return &handler{logger: l}
}

func (h *handler) Enabled(_ context.Context, l slog.Level) bool {
	return h.logger.IsLevelEnabled(logrusLevel(l))
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	fs := h.state.Fields(r)
	data := make(logrus.Fields, len(fs))
	for _, f := range fs {
		data[f.Key] = f.Value.Any()
	}
	// A zero time makes logrus stamp the entry itself.
	logrus.NewEntry(h.logger).
		WithContext(ctx).
		WithTime(r.Time).
		WithFields(data).
		Log(logrusLevel(r.Level), r.Message)
	return nil
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

func logrusLevel(l slog.Level) logrus.Level {
	switch internal.SeverityOf(l) {
	case internal.Error:
		return logrus.ErrorLevel
	case internal.Warn:
		return logrus.WarnLevel
	case internal.Info:
		return logrus.InfoLevel
	}
	return logrus.DebugLevel
}
