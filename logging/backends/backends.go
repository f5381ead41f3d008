// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package backends builds loggers that write through one of the supported
// logging libraries.
//
// Usage:
//
//	l, err := backends.New(backends.Config{Backend: "zap", Level: slog.LevelDebug})
//	if err != nil { ... }
//	logging.SetDefault(l)
package backends

import (
	"context"
	"fmt"
	"io"
	"os"

	egokit "github.com/alps-lidar/multisort/log-adapters/go-kit"
	elogr "github.com/alps-lidar/multisort/log-adapters/logr"
	elogrus "github.com/alps-lidar/multisort/log-adapters/logrus"
	eotel "github.com/alps-lidar/multisort/log-adapters/otel"
	ezap "github.com/alps-lidar/multisort/log-adapters/zap"
	ezerolog "github.com/alps-lidar/multisort/log-adapters/zerolog"
	"github.com/alps-lidar/multisort/logging"
	kitlog "github.com/go-kit/kit/log"
	"github.com/go-logr/logr/funcr"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"
)

// ErrUnknownBackend is returned by New for a backend name it does not
// know.
var ErrUnknownBackend = xerrors.New("unknown logging backend")

// Config selects and configures a backend.
type Config struct {
	// Backend is one of the names returned by Names. Empty means "text".
	Backend string `yaml:"backend"`

	// Level is the minimum level logged.
	Level slog.Level `yaml:"level"`

	// AddSource adds the caller's file and line, for backends that
	// support it.
	AddSource bool `yaml:"source"`

	// Trace also records every log record as an event on the
	// OpenTelemetry span in the record's context.
	Trace bool `yaml:"trace"`

	// Writer receives the output. Nil means os.Stderr.
	Writer io.Writer `yaml:"-"`
}

var factories = map[string]func(w io.Writer, c Config) slog.Handler{
	"text": func(w io.Writer, c Config) slog.Handler {
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level, AddSource: c.AddSource})
	},
	"json": func(w io.Writer, c Config) slog.Handler {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: c.Level, AddSource: c.AddSource})
	},
	"zap": func(w io.Writer, c Config) slog.Handler {
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		return ezap.NewHandler(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel), &ezap.Options{AddSource: c.AddSource})
	},
	"zerolog": func(w io.Writer, c Config) slog.Handler {
		return ezerolog.NewHandler(zerolog.New(w), &ezerolog.Options{AddSource: c.AddSource})
	},
	"logrus": func(w io.Writer, c Config) slog.Handler {
		l := logrus.New()
		l.SetOutput(w)
		l.SetFormatter(&logrus.JSONFormatter{})
		l.SetLevel(logrus.TraceLevel)
		l.SetReportCaller(c.AddSource)
		return elogrus.NewHandler(l)
	},
	"logr": func(w io.Writer, c Config) slog.Handler {
		l := funcr.New(func(prefix, args string) {
			if prefix != "" {
				fmt.Fprintf(w, "%s: %s\n", prefix, args)
				return
			}
			fmt.Fprintln(w, args)
		}, funcr.Options{LogCaller: callerOption(c.AddSource), LogTimestamp: true, Verbosity: 9})
		return elogr.NewHandler(l)
	},
	"gokit": func(w io.Writer, c Config) slog.Handler {
		return egokit.NewHandler(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w)), c.Level)
	},
	"discard": func(io.Writer, Config) slog.Handler {
		return logging.Discard
	},
}

func callerOption(addSource bool) funcr.MessageClass {
	if addSource {
		return funcr.All
	}
	return funcr.None
}

// Names returns the backend names New accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New returns a logger for c.
func New(c Config) (*slog.Logger, error) {
	name := c.Backend
	if name == "" {
		name = "text"
	}
	f, ok := factories[name]
	if !ok {
		return nil, xerrors.Errorf("%q: %w", c.Backend, ErrUnknownBackend)
	}
	w := c.Writer
	if w == nil {
		w = os.Stderr
	}
	var h slog.Handler = &leveled{min: c.Level, next: f(w, c)}
	if c.Trace {
		h = eotel.NewHandler(h)
	}
	return slog.New(h), nil
}

// leveled drops records below min before they reach next.
type leveled struct {
	min  slog.Level
	next slog.Handler
}

func (h *leveled) Enabled(ctx context.Context, l slog.Level) bool {
	return l >= h.min && h.next.Enabled(ctx, l)
}

func (h *leveled) Handle(ctx context.Context, r slog.Record) error {
	return h.next.Handle(ctx, r)
}

func (h *leveled) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &leveled{min: h.min, next: h.next.WithAttrs(attrs)}
}

func (h *leveled) WithGroup(name string) slog.Handler {
	return &leveled{min: h.min, next: h.next.WithGroup(name)}
}
