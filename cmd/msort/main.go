// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// msort orders, deduplicates, or measures the order of the rows of a CSV
// table by one or more key columns.
//
// Usage:
//
//	msort [flags] [file.csv]
//
// The table is read from the named file, or from standard input. By
// default the first line is a header, every column is a key, and each
// key's type (int, float or string) is inferred from its values.
//
// In sort mode msort prints the permutation that orders the rows, one row
// id per line. In uniq mode it prints the row id of the first occurrence
// of each distinct key, in key order. With -out rows the rows themselves
// are printed instead. In sortedness mode it prints an estimate between
// -1 (descending) and 1 (ascending).
//
// Flags given on the command line override settings read with -config,
// a YAML file with the keys mode, keys, types, header, comma, unstable,
// out, base, trace and log (backend, level, source).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alps-lidar/multisort/logging"
	"github.com/alps-lidar/multisort/logging/backends"
	"github.com/alps-lidar/multisort/sortedness"
	"github.com/alps-lidar/multisort/timsort"
	"github.com/alps-lidar/multisort/uniq"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"
)

const helpText = `usage: msort [flags] [file.csv]

Flags:`

func main() {
	log.SetFlags(0)
	log.SetPrefix("msort: ")
	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if _, ok := err.(*usageError); ok {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type usageError struct {
	err error
}

func usageErrorf(format string, args ...interface{}) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func (e *usageError) Error() string {
	return fmt.Sprintf("%v\nFor more information, run msort -h", e.err)
}

// run is the whole of msort. It's called by tests, so it reads and writes
// the given streams and returns an error instead of exiting.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet("msort", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, helpText)
		fs.PrintDefaults()
	}
	var (
		configPath = fs.String("config", "", "read settings from this YAML `file`")
		mode       = fs.String("mode", "sort", "sort, uniq or sortedness")
		keys       = fs.String("keys", "", "comma-separated key column names or numbers (default all columns)")
		types      = fs.String("types", "", "comma-separated key types: int, float or string (default inferred)")
		header     = fs.Bool("header", true, "first line is a header")
		comma      = fs.String("comma", ",", "field separator")
		unstable   = fs.Bool("unstable", false, "skip the row id tie-break between equal rows")
		out        = fs.String("out", "index", "index or rows")
		base       = fs.Int("base", 0, "number rows from 0 or 1")
		traceRun   = fs.Bool("trace", false, "write an OpenTelemetry trace of the run to stderr")
		logName    = fs.String("log", "text", "logging backend: "+strings.Join(backends.Names(), ", "))
		verbose    = fs.Bool("v", false, "log at debug level")
	)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return &usageError{err: err}
	}
	if fs.NArg() > 1 {
		return usageErrorf("at most one input file")
	}

	cfg := defaultConfig()
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *mode
		case "keys":
			cfg.Keys = splitList(*keys)
		case "types":
			cfg.Types = splitList(*types)
		case "header":
			cfg.Header = *header
		case "comma":
			cfg.Comma = *comma
		case "unstable":
			cfg.Unstable = *unstable
		case "out":
			cfg.Out = *out
		case "base":
			cfg.Base = *base
		case "trace":
			cfg.Trace = *traceRun
		case "log":
			cfg.Log.Backend = *logName
		case "v":
			if *verbose {
				cfg.Log.Level = slog.LevelDebug
			}
		}
	})
	if err := cfg.validate(); err != nil {
		return err
	}

	cfg.Log.Writer = stderr
	cfg.Log.Trace = cfg.Trace
	logger, err := backends.New(cfg.Log)
	if err != nil {
		return &usageError{err: err}
	}
	logging.SetDefault(logger)
	defer logging.SetDefault(nil)

	if cfg.Trace {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(stderr), stdouttrace.WithPrettyPrint())
		if err != nil {
			return err
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
		defer tp.Shutdown(ctx)
		var span trace.Span
		ctx, span = tp.Tracer("msort").Start(ctx, "msort "+cfg.Mode)
		defer span.End()
	}

	in := stdin
	if fs.NArg() == 1 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	return process(ctx, logger, &cfg, in, stdout)
}

func process(ctx context.Context, logger *slog.Logger, cfg *config, in io.Reader, stdout io.Writer) error {
	comma, _ := utf8.DecodeRuneInString(cfg.Comma)
	t, err := readTable(in, comma, cfg.Header)
	if err != nil {
		return err
	}
	cols, err := t.resolveKeys(cfg.Keys)
	if err != nil {
		return err
	}
	ds, err := t.dataset(cols, cfg.Types)
	if err != nil {
		return err
	}
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("rows", ds.Len()),
		attribute.Int("keys", ds.NumColumns()))

	var index []int
	switch cfg.Mode {
	case "sortedness":
		score := sortedness.Estimate(ds)
		logger.LogAttrs(ctx, slog.LevelInfo, "msort: sortedness", slog.Float64("score", score))
		_, err := fmt.Fprintf(stdout, "%g\n", score)
		return err
	case "sort":
		index, _, err = timsort.SortContext(ctx, ds, timsort.Options{Stable: !cfg.Unstable, Logger: logger})
	case "uniq":
		if ds.NumColumns() == 1 {
			index, err = uniq.Column(ds.Column(0))
		} else {
			index, err = uniq.Rows(ds)
		}
	}
	if err != nil {
		return xerrors.Errorf("%s: %w", cfg.Mode, err)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "msort: done",
		slog.String("mode", cfg.Mode),
		slog.Int("rows", ds.Len()),
		slog.Int("out", len(index)))

	if cfg.Out == "rows" {
		return writeRows(stdout, t, index, comma, cfg.Header)
	}
	return writeIndex(stdout, index, cfg.Base)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
