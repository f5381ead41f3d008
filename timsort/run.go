// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timsort

// minRunLength returns the minimum acceptable run length for n elements.
// Shorter natural runs are extended with binaryInsertionSort.
//
// If n < minMerge, n is returned. If n is a power of two, minMerge/2 is
// returned. Otherwise the result k satisfies minMerge/2 <= k <= minMerge
// and n/k is close to, but strictly less than, a power of two.
func minRunLength(n int) int {
	r := 0 // becomes 1 if any 1 bits are shifted off
	for n >= minMerge {
		r |= n & 1
		n >>= 1
	}
	return n + r
}

func reverseRange(a []int, lo, hi int) {
	hi--
	for lo < hi {
		a[lo], a[hi] = a[hi], a[lo]
		lo++
		hi--
	}
}

// countRun returns the length of the run starting at a[lo], looking no
// further than a[hi-1], and reverses the run if it is descending.
//
// A run is either the longest non-decreasing sequence
//
//	a[lo] <= a[lo+1] <= a[lo+2] <= ...
//
// or the longest strictly descending sequence
//
//	a[lo] > a[lo+1] > a[lo+2] > ...
//
// Descending runs must be strict so that reversing one never reorders
// equal elements.
func (s *sorter) countRun(lo, hi int) int {
	a := s.index
	runHi := lo + 1
	if runHi == hi {
		return 1
	}
	if s.compare(a[runHi], a[lo]) < 0 {
		runHi++
		for runHi < hi && s.compare(a[runHi], a[runHi-1]) < 0 {
			runHi++
		}
		reverseRange(a, lo, runHi)
	} else {
		runHi++
		for runHi < hi && s.compare(a[runHi], a[runHi-1]) >= 0 {
			runHi++
		}
	}
	return runHi - lo
}

// binaryInsertionSort sorts a[lo:hi], given that a[lo:start] is already
// sorted. Each new element goes after every element that does not compare
// greater than it, which keeps equal elements in order.
func (s *sorter) binaryInsertionSort(lo, hi, start int) {
	a := s.index
	if start == lo {
		start++
	}
	for ; start < hi; start++ {
		pivot := a[start]

		// Invariant: a[lo:left] <= pivot < a[right:start].
		left, right := lo, start
		for left < right {
			mid := int(uint(left+right) >> 1)
			if s.compare(pivot, a[mid]) < 0 {
				right = mid
			} else {
				left = mid + 1
			}
		}
		if left < start {
			copy(a[left+1:start+1], a[left:start])
			a[left] = pivot
		}
	}
}
