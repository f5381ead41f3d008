// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ezerolog provides a slog.Handler that writes to a zerolog.Logger.
package ezerolog

import (
	"context"

	"github.com/alps-lidar/multisort/log-adapters/internal"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slog"
)

type handler struct {
	logger zerolog.Logger
	opts   Options
	state  internal.State
}

// Options configure a handler. The zero Options are the defaults.
type Options struct {
	// AddSource writes the record's file and line under
	// zerolog.CallerFieldName.
	AddSource bool
}

var _ slog.Handler = (*handler)(nil)

// NewHandler returns a handler that writes records to l. The record time
// is written under zerolog.TimestampFieldName, so l should not also add
// a timestamp. A nil opts means the zero Options.
func NewHandler(l zerolog.Logger, opts *Options) slog.Handler {
	h := &handler{logger: l}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

func (h *handler) Enabled(_ context.Context, l slog.Level) bool {
	zl := zerologLevel(l)
	return zl >= h.logger.GetLevel() && zl >= zerolog.GlobalLevel()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	e := h.logger.WithLevel(zerologLevel(r.Level))
	if e == nil {
		return nil
	}
	if !r.Time.IsZero() {
		e = e.Time(zerolog.TimestampFieldName, r.Time)
	}
	if f, ok := internal.Source(r.PC); ok && h.opts.AddSource {
		e = e.Str(zerolog.CallerFieldName, zerolog.CallerMarshalFunc(f.File, f.Line))
	}
	for _, f := range h.state.Fields(r) {
		e = addField(e, f)
	}
	e.Msg(r.Message)
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

func zerologLevel(l slog.Level) zerolog.Level {
	switch internal.SeverityOf(l) {
	case internal.Error:
		return zerolog.ErrorLevel
	case internal.Warn:
		return zerolog.WarnLevel
	case internal.Info:
		return zerolog.InfoLevel
	}
	return zerolog.DebugLevel
}

func addField(e *zerolog.Event, f internal.Field) *zerolog.Event {
	v := f.Value
	switch v.Kind() {
	case slog.KindString:
		return e.Str(f.Key, v.String())
	case slog.KindInt64:
		return e.Int64(f.Key, v.Int64())
	case slog.KindUint64:
		return e.Uint64(f.Key, v.Uint64())
	case slog.KindFloat64:
		return e.Float64(f.Key, v.Float64())
	case slog.KindBool:
		return e.Bool(f.Key, v.Bool())
	case slog.KindDuration:
		return e.Dur(f.Key, v.Duration())
	case slog.KindTime:
		return e.Time(f.Key, v.Time())
	}
	if err, ok := v.Any().(error); ok {
		return e.AnErr(f.Key, err)
	}
	return e.Interface(f.Key, v.Any())
}
