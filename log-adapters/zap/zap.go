// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ezap provides a slog.Handler that writes to a zapcore.Core.
package ezap

import (
	"context"

	"github.com/alps-lidar/multisort/log-adapters/internal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slog"
)

type handler struct {
	core  zapcore.Core
	opts  Options
	state internal.State
}

// Options configure a handler. The zero Options are the defaults.
type Options struct {
	// AddSource sets the entry's caller from the record's program counter.
	AddSource bool
}

var _ slog.Handler = (*handler)(nil)

// NewHandler returns a handler that writes records to core. Level
// filtering is left to core. A nil opts means the zero Options.
func NewHandler(core zapcore.Core, opts *Options) slog.Handler {
	h := &handler{core: core}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

func (h *handler) Enabled(_ context.Context, l slog.Level) bool {
	return h.core.Enabled(zapLevel(l))
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	ent := zapcore.Entry{
		Level:   zapLevel(r.Level),
		Time:    r.Time,
		Message: r.Message,
	}
	if f, ok := internal.Source(r.PC); ok && h.opts.AddSource {
		ent.Caller = zapcore.NewEntryCaller(f.PC, f.File, f.Line, true)
	}
	ce := h.core.Check(ent, nil)
	if ce == nil {
		return nil
	}
	fs := h.state.Fields(r)
	zfs := make([]zapcore.Field, len(fs))
	for i, f := range fs {
		zfs[i] = zapField(f)
	}
	ce.Write(zfs...)
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

func zapLevel(l slog.Level) zapcore.Level {
	switch internal.SeverityOf(l) {
	case internal.Error:
		return zapcore.ErrorLevel
	case internal.Warn:
		return zapcore.WarnLevel
	case internal.Info:
		return zapcore.InfoLevel
	}
	return zapcore.DebugLevel
}

func zapField(f internal.Field) zapcore.Field {
	v := f.Value
	switch v.Kind() {
	case slog.KindString:
		return zap.String(f.Key, v.String())
	case slog.KindInt64:
		return zap.Int64(f.Key, v.Int64())
	case slog.KindUint64:
		return zap.Uint64(f.Key, v.Uint64())
	case slog.KindFloat64:
		return zap.Float64(f.Key, v.Float64())
	case slog.KindBool:
		return zap.Bool(f.Key, v.Bool())
	case slog.KindDuration:
		return zap.Duration(f.Key, v.Duration())
	case slog.KindTime:
		return zap.Time(f.Key, v.Time())
	}
	if err, ok := v.Any().(error); ok {
		return zap.NamedError(f.Key, err)
	}
	return zap.Any(f.Key, v.Any())
}
