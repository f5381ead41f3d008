// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"

	"github.com/alps-lidar/multisort/logging/backends"
	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// config holds every setting of one msort run. Defaults come from
// defaultConfig, then the -config file, then explicitly set flags.
type config struct {
	Mode     string          `yaml:"mode"`
	Keys     []string        `yaml:"keys"`
	Types    []string        `yaml:"types"`
	Header   bool            `yaml:"header"`
	Comma    string          `yaml:"comma"`
	Unstable bool            `yaml:"unstable"`
	Out      string          `yaml:"out"`
	Base     int             `yaml:"base"`
	Trace    bool            `yaml:"trace"`
	Log      backends.Config `yaml:"log"`
}

func defaultConfig() config {
	return config{
		Mode:   "sort",
		Header: true,
		Comma:  ",",
		Out:    "index",
		Log:    backends.Config{Level: slog.LevelWarn},
	}
}

// loadConfig decodes the YAML file at path over c. Unknown keys are an
// error.
func loadConfig(path string, c *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return xerrors.Errorf("%s: %w", path, err)
	}
	return nil
}

func (c *config) validate() error {
	switch c.Mode {
	case "sort", "uniq", "sortedness":
	default:
		return usageErrorf("unknown -mode %q", c.Mode)
	}
	switch c.Out {
	case "index", "rows":
	default:
		return usageErrorf("unknown -out %q", c.Out)
	}
	if c.Base != 0 && c.Base != 1 {
		return usageErrorf("-base must be 0 or 1, not %d", c.Base)
	}
	if len([]rune(c.Comma)) != 1 {
		return usageErrorf("-comma must be a single character, not %q", c.Comma)
	}
	if len(c.Types) > 0 && len(c.Keys) > 0 && len(c.Types) != len(c.Keys) {
		return usageErrorf("%d types given for %d keys", len(c.Types), len(c.Keys))
	}
	return nil
}
