// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniq

// mergeUniq sorts row ids 0..n-1 by less with a bottom-up merge sort,
// dropping every row that is equal to the last one kept.
func mergeUniq(n int, less func(a, b int) bool) []int {
	if n == 0 {
		return []int{}
	}
	src := identity(n)
	dst := make([]int, n)
	lens := make([]int, n)
	for i := range lens {
		lens[i] = 1
	}
	for size := 1; size < n; size *= 2 {
		for i1 := 0; i1 < n; i1 += 2 * size {
			i2 := i1 + size
			if i2 >= n {
				copy(dst[i1:], src[i1:i1+lens[i1]])
				continue
			}
			lens[i1] = mergeRuns(less, src[i1:i1+lens[i1]], src[i2:i2+lens[i2]], dst[i1:])
		}
		src, dst = dst, src
	}
	return src[:lens[0]:lens[0]]
}

// mergeRuns merges the sorted, duplicate-free runs a and b into dst and
// returns the number of rows written. On ties the row from a wins.
func mergeRuns(less func(a, b int) bool, a, b, dst []int) int {
	i, j, k := 0, 0, 0
	if less(b[0], a[0]) {
		dst[0] = b[0]
		j++
	} else {
		dst[0] = a[0]
		i++
	}
	k++
	for i < len(a) && j < len(b) {
		if less(b[j], a[i]) {
			if less(dst[k-1], b[j]) {
				dst[k] = b[j]
				k++
			}
			j++
		} else {
			if less(dst[k-1], a[i]) {
				dst[k] = a[i]
				k++
			}
			i++
		}
	}
	for ; i < len(a); i++ {
		if less(dst[k-1], a[i]) {
			dst[k] = a[i]
			k++
		}
	}
	for ; j < len(b); j++ {
		if less(dst[k-1], b[j]) {
			dst[k] = b[j]
			k++
		}
	}
	return k
}
