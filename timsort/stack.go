// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timsort

// pushRun pushes the run a[base:base+n] onto the pending stack and merges
// until the stack invariants hold again.
func (s *sorter) pushRun(base, n int) {
	if s.pending >= maxPending {
		fail("pushRun", "pending stack full with %d runs", s.pending)
	}
	if s.pending > 0 {
		top := s.pending - 1
		if s.runBase[top]+s.runLen[top] != base {
			fail("pushRun", "run at %d does not follow run [%d,+%d)", base, s.runBase[top], s.runLen[top])
		}
	}
	s.runBase[s.pending] = base
	s.runLen[s.pending] = n
	s.pending++
	if s.pending > s.stats.MaxPending {
		s.stats.MaxPending = s.pending
	}

	// Always leave room for one more.
	if s.pending == maxPending {
		s.mergeAt(s.collapseIndex())
	}
	s.mergeCollapse()
}

// collapseIndex returns the stack position to merge at when the invariants
// do not force a choice: the second run from the top, unless the third run
// from the top is shorter than the top run.
func (s *sorter) collapseIndex() int {
	i := s.pending - 2
	if i > 0 && s.runLen[i-1] < s.runLen[i+1] {
		i--
	}
	return i
}

// mergeCollapse merges adjacent pending runs until, for the three runs
// A, B, C nearest the top of the stack,
//
//	len(A) > len(B) + len(C)
//	len(B) > len(C)
func (s *sorter) mergeCollapse() {
	for s.pending > 1 {
		i := s.pending - 2
		switch {
		case i > 0 && s.runLen[i-1] <= s.runLen[i]+s.runLen[i+1]:
			if s.runLen[i-1] < s.runLen[i+1] {
				i--
			}
			s.mergeAt(i)
		case s.runLen[i] <= s.runLen[i+1]:
			s.mergeAt(i)
		default:
			return
		}
	}
}

// mergeForceCollapse merges all pending runs into one. It is called once,
// after the whole input has been pushed.
func (s *sorter) mergeForceCollapse() {
	for s.pending > 1 {
		s.mergeAt(s.collapseIndex())
	}
}
