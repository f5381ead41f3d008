// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eotel provides a slog.Handler that records log records as
// events on the OpenTelemetry span carried by the record's context.
package eotel

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/alps-lidar/multisort/log-adapters/internal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/slog"
)

// LevelKey is the event attribute holding the record's level.
const LevelKey = attribute.Key("level")

type handler struct {
	next  slog.Handler
	state internal.State
}

var _ slog.Handler = (*handler)(nil)

// NewHandler returns a handler that adds each record to the recording
// span in its context, if there is one, and then passes it to next.
// next may be nil. A record at slog.LevelError or above also sets the
// span status to codes.Error.
func NewHandler(next slog.Handler) slog.Handler {
	return &handler{next: next}
}

func (h *handler) Enabled(ctx context.Context, l slog.Level) bool {
	if trace.SpanFromContext(ctx).IsRecording() {
		return true
	}
	return h.next != nil && h.next.Enabled(ctx, l)
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		fs := h.state.Fields(r)
		attrs := make([]attribute.KeyValue, 0, 1+len(fs))
		attrs = append(attrs, LevelKey.String(r.Level.String()))
		for _, f := range fs {
			attrs = append(attrs, keyValue(f))
		}
		opts := []trace.EventOption{trace.WithAttributes(attrs...)}
		if !r.Time.IsZero() {
			opts = append(opts, trace.WithTimestamp(r.Time))
		}
		span.AddEvent(r.Message, opts...)
		if r.Level >= slog.LevelError {
			span.SetStatus(codes.Error, r.Message)
		}
	}
	if h.next != nil && h.next.Enabled(ctx, r.Level) {
		return h.next.Handle(ctx, r)
	}
	return nil
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.state = h.state.WithAttrs(attrs)
	if h.next != nil {
		h2.next = h.next.WithAttrs(attrs)
	}
	return &h2
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.state = h.state.WithGroup(name)
	if h.next != nil {
		h2.next = h.next.WithGroup(name)
	}
	return &h2
}

func keyValue(f internal.Field) attribute.KeyValue {
	k := attribute.Key(f.Key)
	v := f.Value
	switch v.Kind() {
	case slog.KindString:
		return k.String(v.String())
	case slog.KindInt64:
		return k.Int64(v.Int64())
	case slog.KindUint64:
		if u := v.Uint64(); u <= math.MaxInt64 {
			return k.Int64(int64(u))
		}
		return k.String(v.String())
	case slog.KindFloat64:
		return k.Float64(v.Float64())
	case slog.KindBool:
		return k.Bool(v.Bool())
	case slog.KindDuration:
		return k.String(v.Duration().String())
	case slog.KindTime:
		return k.String(v.Time().Format(time.RFC3339Nano))
	}
	return k.String(fmt.Sprint(v.Any()))
}
