// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timsort

// mergeAt merges the pending runs at stack positions i and i+1. Run i must
// be the second or third run from the top of the stack.
func (s *sorter) mergeAt(i int) {
	if s.pending < 2 || i < 0 || (i != s.pending-2 && i != s.pending-3) {
		fail("mergeAt", "cannot merge at %d with %d pending runs", i, s.pending)
	}
	a := s.index
	base1, len1 := s.runBase[i], s.runLen[i]
	base2, len2 := s.runBase[i+1], s.runLen[i+1]
	if len1 <= 0 || len2 <= 0 || base1+len1 != base2 {
		fail("mergeAt", "runs [%d,+%d) and [%d,+%d) are not adjacent", base1, len1, base2, len2)
	}

	// Record the combined run. If i is the third run from the top, slide
	// the top run down; it is not part of this merge.
	s.runLen[i] = len1 + len2
	if i == s.pending-3 {
		s.runBase[i+1] = s.runBase[i+2]
		s.runLen[i+1] = s.runLen[i+2]
	}
	s.pending--
	s.stats.Merges++

	// Elements of run 1 that precede the first element of run 2 are
	// already in place.
	k := s.gallopRight(a[base2], a, base1, len1, 0)
	base1 += k
	len1 -= k
	if len1 == 0 {
		return
	}

	// Elements of run 2 that follow the last element of run 1 are already
	// in place too.
	len2 = s.gallopLeft(a[base1+len1-1], a, base2, len2, len2-1)
	if len2 == 0 {
		return
	}

	if len1 <= len2 {
		s.mergeLo(base1, len1, base2, len2)
	} else {
		s.mergeHi(base1, len1, base2, len2)
	}
}

// scratch returns a scratch slice of length n.
func (s *sorter) scratch(n int) []int {
	if cap(s.tmp) < n {
		s.tmp = make([]int, n)
	}
	return s.tmp[:n]
}

// mergeLo merges the adjacent runs a[base1:base1+len1] and
// a[base2:base2+len2] in place, stably. The first element of run 1 must be
// greater than the first element of run 2, and the last element of run 1
// must be greater than every element of run 2. It should be called only
// when len1 <= len2, since run 1 is copied to scratch.
func (s *sorter) mergeLo(base1, len1, base2, len2 int) {
	a := s.index
	tmp := s.scratch(len1)
	copy(tmp, a[base1:base1+len1])

	cursor1 := 0     // into tmp
	cursor2 := base2 // into a
	dest := base1    // into a

	a[dest] = a[cursor2]
	dest++
	cursor2++
	len2--
	if len2 == 0 {
		copy(a[dest:], tmp[cursor1:cursor1+len1])
		return
	}
	if len1 == 1 {
		copy(a[dest:], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1]
		return
	}

	minGallop := s.minGallop
outer:
	for {
		count1 := 0 // consecutive wins by run 1
		count2 := 0 // consecutive wins by run 2

		// One pair at a time until one run starts winning consistently.
		for {
			if s.compare(a[cursor2], tmp[cursor1]) < 0 {
				a[dest] = a[cursor2]
				dest++
				cursor2++
				count2++
				count1 = 0
				len2--
				if len2 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor1]
				dest++
				cursor1++
				count1++
				count2 = 0
				len1--
				if len1 == 1 {
					break outer
				}
			}
			if count1 >= minGallop || count2 >= minGallop {
				break
			}
		}

		// Gallop while it keeps paying off.
		s.stats.Gallops++
		for {
			count1 = s.gallopRight(a[cursor2], tmp, cursor1, len1, 0)
			if count1 != 0 {
				copy(a[dest:], tmp[cursor1:cursor1+count1])
				dest += count1
				cursor1 += count1
				len1 -= count1
				if len1 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor2]
			dest++
			cursor2++
			len2--
			if len2 == 0 {
				break outer
			}

			count2 = s.gallopLeft(tmp[cursor1], a, cursor2, len2, 0)
			if count2 != 0 {
				copy(a[dest:], a[cursor2:cursor2+count2])
				dest += count2
				cursor2 += count2
				len2 -= count2
				if len2 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor1]
			dest++
			cursor1++
			len1--
			if len1 == 1 {
				break outer
			}

			minGallop--
			if count1 < initialMinGallop && count2 < initialMinGallop {
				break
			}
		}
		if minGallop < 0 {
			minGallop = 0
		}
		minGallop += 2 // penalty for leaving gallop mode
	}
	if minGallop < 1 {
		minGallop = 1
	}
	s.minGallop = minGallop

	switch {
	case len1 == 1:
		copy(a[dest:], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1] // last element of run 1 goes at the end
	case len1 == 0:
		fail("mergeLo", "comparison method violates its general contract")
	default:
		copy(a[dest:], tmp[cursor1:cursor1+len1])
	}
}

// mergeHi is like mergeLo, except that it should be called only when
// len1 >= len2; run 2 is copied to scratch and the merge proceeds from the
// high end.
func (s *sorter) mergeHi(base1, len1, base2, len2 int) {
	a := s.index
	tmp := s.scratch(len2)
	copy(tmp, a[base2:base2+len2])

	cursor1 := base1 + len1 - 1 // into a
	cursor2 := len2 - 1         // into tmp
	dest := base2 + len2 - 1    // into a

	a[dest] = a[cursor1]
	dest--
	cursor1--
	len1--
	if len1 == 0 {
		copy(a[dest-(len2-1):], tmp[:len2])
		return
	}
	if len2 == 1 {
		dest -= len1
		cursor1 -= len1
		copy(a[dest+1:], a[cursor1+1:cursor1+1+len1])
		a[dest] = tmp[cursor2]
		return
	}

	minGallop := s.minGallop
outer:
	for {
		count1 := 0
		count2 := 0

		for {
			if s.compare(tmp[cursor2], a[cursor1]) < 0 {
				a[dest] = a[cursor1]
				dest--
				cursor1--
				count1++
				count2 = 0
				len1--
				if len1 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor2]
				dest--
				cursor2--
				count2++
				count1 = 0
				len2--
				if len2 == 1 {
					break outer
				}
			}
			if count1 >= minGallop || count2 >= minGallop {
				break
			}
		}

		s.stats.Gallops++
		for {
			count1 = len1 - s.gallopRight(tmp[cursor2], a, base1, len1, len1-1)
			if count1 != 0 {
				dest -= count1
				cursor1 -= count1
				len1 -= count1
				copy(a[dest+1:], a[cursor1+1:cursor1+1+count1])
				if len1 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor2]
			dest--
			cursor2--
			len2--
			if len2 == 1 {
				break outer
			}

			count2 = len2 - s.gallopLeft(a[cursor1], tmp, 0, len2, len2-1)
			if count2 != 0 {
				dest -= count2
				cursor2 -= count2
				len2 -= count2
				copy(a[dest+1:], tmp[cursor2+1:cursor2+1+count2])
				if len2 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor1]
			dest--
			cursor1--
			len1--
			if len1 == 0 {
				break outer
			}

			minGallop--
			if count1 < initialMinGallop && count2 < initialMinGallop {
				break
			}
		}
		if minGallop < 0 {
			minGallop = 0
		}
		minGallop += 2
	}
	if minGallop < 1 {
		minGallop = 1
	}
	s.minGallop = minGallop

	switch {
	case len2 == 1:
		dest -= len1
		cursor1 -= len1
		copy(a[dest+1:], a[cursor1+1:cursor1+1+len1])
		a[dest] = tmp[cursor2] // first element of run 2 goes at the front
	case len2 == 0:
		fail("mergeHi", "comparison method violates its general contract")
	default:
		copy(a[dest-(len2-1):], tmp[:len2])
	}
}
