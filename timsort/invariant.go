// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timsort

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ErrInvariant matches every *InvariantError.
var ErrInvariant = xerrors.New("timsort: internal invariant violated")

// An InvariantError reports a broken merge invariant. It means the
// comparator is not a consistent total order (or there is a bug in the
// engine); the sort is abandoned and no permutation is returned.
type InvariantError struct {
	Op     string // engine step that noticed the violation
	Detail string
}

func (e *InvariantError) Error() string {
	return "timsort: " + e.Op + ": " + e.Detail
}

// Is reports whether target is ErrInvariant.
func (e *InvariantError) Is(target error) bool { return target == ErrInvariant }

// fail aborts the sort in progress. The panic is recovered by sorter.run.
func fail(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)})
}

// run calls f and converts an *InvariantError panic into an error. Other
// panics propagate unchanged.
func (s *sorter) run(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*InvariantError)
			if !ok {
				panic(r)
			}
			err = ie
		}
	}()
	f()
	return nil
}
