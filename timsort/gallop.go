// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timsort

// gallopRight locates the position at which to insert key into the sorted
// range a[base:base+n]. If the range holds elements equal to key, the
// position after the rightmost one is returned.
//
// hint, with 0 <= hint < n, is where the search starts; the closer it is to
// the answer, the fewer comparisons are made.
//
// The result k satisfies 0 <= k <= n and a[base+k-1] <= key < a[base+k],
// pretending a[base-1] is minus infinity and a[base+n] is infinity.
//
// The search first looks at offsets 1, 3, 7, 15, ... from hint until the
// key is bracketed, then binary searches the bracket.
func (s *sorter) gallopRight(key int, a []int, base, n, hint int) int {
	if n <= 0 || hint < 0 || hint >= n {
		fail("gallopRight", "bad range: n=%d hint=%d", n, hint)
	}
	lastOfs, ofs := 0, 1
	if s.compare(key, a[base+hint]) < 0 {
		// Gallop left until a[base+hint-ofs] <= key < a[base+hint-lastOfs].
		maxOfs := hint + 1
		for ofs < maxOfs && s.compare(key, a[base+hint-ofs]) < 0 {
			lastOfs = ofs
			ofs = ofs<<1 + 1
			if ofs <= 0 { // overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	} else {
		// Gallop right until a[base+hint+lastOfs] <= key < a[base+hint+ofs].
		maxOfs := n - hint
		for ofs < maxOfs && s.compare(key, a[base+hint+ofs]) >= 0 {
			lastOfs = ofs
			ofs = ofs<<1 + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	}
	if !(-1 <= lastOfs && lastOfs < ofs && ofs <= n) {
		fail("gallopRight", "inconsistent bracket [%d, %d] for n=%d", lastOfs, ofs, n)
	}

	// Now a[base+lastOfs] <= key < a[base+ofs], so key belongs somewhere to
	// the right of lastOfs but no farther right than ofs.
	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)>>1
		if s.compare(key, a[base+m]) < 0 {
			ofs = m
		} else {
			lastOfs = m + 1
		}
	}
	return ofs
}

// gallopLeft is like gallopRight, except that if the range holds elements
// equal to key it returns the position of the leftmost one.
//
// The result k satisfies a[base+k-1] < key <= a[base+k].
func (s *sorter) gallopLeft(key int, a []int, base, n, hint int) int {
	if n <= 0 || hint < 0 || hint >= n {
		fail("gallopLeft", "bad range: n=%d hint=%d", n, hint)
	}
	lastOfs, ofs := 0, 1
	if s.compare(key, a[base+hint]) > 0 {
		// Gallop right until a[base+hint+lastOfs] < key <= a[base+hint+ofs].
		maxOfs := n - hint
		for ofs < maxOfs && s.compare(key, a[base+hint+ofs]) > 0 {
			lastOfs = ofs
			ofs = ofs<<1 + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	} else {
		// Gallop left until a[base+hint-ofs] < key <= a[base+hint-lastOfs].
		maxOfs := hint + 1
		for ofs < maxOfs && s.compare(key, a[base+hint-ofs]) <= 0 {
			lastOfs = ofs
			ofs = ofs<<1 + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	}
	if !(-1 <= lastOfs && lastOfs < ofs && ofs <= n) {
		fail("gallopLeft", "inconsistent bracket [%d, %d] for n=%d", lastOfs, ofs, n)
	}

	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)>>1
		if s.compare(key, a[base+m]) > 0 {
			lastOfs = m + 1
		} else {
			ofs = m
		}
	}
	return ofs
}
