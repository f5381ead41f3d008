// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"
)

// writeIndex writes one row id per line, offset by base.
func writeIndex(w io.Writer, index []int, base int) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, row := range index {
		buf = strconv.AppendInt(buf[:0], int64(row+base), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeRows writes the rows of t in index order, after the header if t
// had one.
func writeRows(w io.Writer, t *table, index []int, comma rune, header bool) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if header {
		if err := cw.Write(t.names); err != nil {
			return err
		}
	}
	for _, row := range index {
		if err := cw.Write(t.rows[row]); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
