// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniq

import "strings"

// Ranges this short are finished with insertion.
const insertionCutoff = 10

// Strings returns the row ids of the distinct values of data.
//
// The search is a three-way radix quicksort over row ids (Bentley and
// Sedgewick, "Fast Algorithms for Sorting and Searching Strings"). Each
// group of equal strings collapses to its smallest row id once the group
// is isolated.
func Strings(data []string) []int {
	u := radixUniq{data: data, list: identity(len(data))}
	if len(data) > 0 {
		u.quick(0, len(data), 0)
	}
	return u.list[:u.out:u.out]
}

type radixUniq struct {
	data []string
	list []int

	// Distinct row ids found so far are list[:out]. out never passes the
	// start of the range being processed.
	out int
}

// ch returns the byte at depth of the string at position i, offset by one
// so that 0 means the string has ended.
func (u *radixUniq) ch(i, depth int) int {
	s := u.data[u.list[i]]
	if depth < len(s) {
		return int(s[depth]) + 1
	}
	return 0
}

func (u *radixUniq) swap(i, j int) { u.list[i], u.list[j] = u.list[j], u.list[i] }

func (u *radixUniq) vecswap(i, j, n int) {
	for ; n > 0; n, i, j = n-1, i+1, j+1 {
		u.swap(i, j)
	}
}

// med3 returns whichever of positions a, b, c holds the median byte.
func (u *radixUniq) med3(a, b, c, depth int) int {
	va, vb := u.ch(a, depth), u.ch(b, depth)
	if va == vb {
		return a
	}
	vc := u.ch(c, depth)
	if va == vc || vb == vc {
		return c
	}
	if va < vb {
		if vb < vc {
			return b
		}
		if va < vc {
			return c
		}
		return a
	}
	if vb > vc {
		return b
	}
	if va < vc {
		return a
	}
	return c
}

// pivot picks a pivot position in [lo, hi), which holds more than
// insertionCutoff rows. Ranges over 50 use Tukey's ninther.
func (u *radixUniq) pivot(lo, hi, depth int) int {
	a, c := lo, hi-1
	b := (a + c) / 2
	if n := hi - lo; n > 50 {
		d := n / 8
		a = u.med3(a, a+d, a+2*d, depth)
		b = u.med3(b-d, b, b+d, depth)
		c = u.med3(c-2*d, c-d, c, depth)
	}
	return u.med3(a, b, c, depth)
}

// quick finds the distinct strings in list[lo:hi], all of which share
// their first depth bytes, and appends them to list[:out].
func (u *radixUniq) quick(lo, hi, depth int) {
	if hi-lo <= insertionCutoff {
		u.insertion(lo, hi)
		return
	}

	var pv, le int
	for {
		u.swap(lo, u.pivot(lo, hi, depth))
		pv = u.ch(lo, depth)
		le = lo + 1
		for le < hi && u.ch(le, depth) == pv {
			le++
		}
		if le < hi {
			break
		}
		if pv == 0 {
			u.keepFirst(lo, hi)
			return
		}
		depth++
	}

	// Partition into EQUAL | LESS | GREATER | EQUAL, then swap the equal
	// ends into the middle.
	lt, gt, ge := le, hi-1, hi-1
	for {
		for ; lt <= gt && u.ch(lt, depth) <= pv; lt++ {
			if u.ch(lt, depth) == pv {
				u.swap(le, lt)
				le++
			}
		}
		for ; lt <= gt && u.ch(gt, depth) >= pv; gt-- {
			if u.ch(gt, depth) == pv {
				u.swap(gt, ge)
				ge--
			}
		}
		if lt > gt {
			break
		}
		u.swap(lt, gt)
		lt++
		gt--
	}
	r := min(le-lo, lt-le)
	u.vecswap(lo, lt-r, r)
	r = min(ge-gt, hi-1-ge)
	u.vecswap(lt, hi-r, r)

	eqLo := lo + (lt - le)
	eqHi := hi - (ge - gt)
	if lo < eqLo {
		u.quick(lo, eqLo, depth)
	}
	if pv == 0 {
		u.keepFirst(eqLo, eqHi)
	} else {
		u.quick(eqLo, eqHi, depth+1)
	}
	if eqHi < hi {
		u.quick(eqHi, hi, depth)
	}
}

// keepFirst appends the smallest row id of list[lo:hi], a range of equal
// strings.
func (u *radixUniq) keepFirst(lo, hi int) {
	u.list[u.out] = u.list[lo]
	for i := lo + 1; i < hi; i++ {
		if u.list[i] < u.list[u.out] {
			u.swap(i, u.out)
		}
	}
	u.out++
}

// insertion appends the distinct strings of list[lo:hi] to list[:out] in
// order, keeping the smallest row id of each.
func (u *radixUniq) insertion(lo, hi int) {
	k := u.out
	u.list[k] = u.list[lo]
next:
	for i := lo + 1; i < hi; i++ {
		j := k
		for ; j >= u.out; j-- {
			c := strings.Compare(u.data[u.list[i]], u.data[u.list[j]])
			if c > 0 {
				break
			}
			if c == 0 {
				if u.list[i] < u.list[j] {
					u.swap(i, j)
				}
				continue next
			}
		}
		k++
		j++
		u.list[k] = u.list[i]
		for h := k; h > j; h-- {
			u.swap(h, h-1)
		}
	}
	u.out = k + 1
}
