// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timsort_test

import (
	"fmt"

	"github.com/alps-lidar/multisort/column"
	"github.com/alps-lidar/multisort/timsort"
)

func ExampleSort() {
	ds, err := column.FromValues(
		[]string{"north", "south", "north", "east"},
		[]float64{12.5, 3.0, 7.25, 3.0},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	index, err := timsort.Sort(ds, true)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, row := range index {
		fmt.Println(ds.Column(0).Value(row), ds.Column(1).Value(row))
	}
	// Output:
	// east 3
	// north 7.25
	// north 12.5
	// south 3
}

func ExampleSortFunc() {
	ages := []int{41, 17, 41, 29}
	index := []int{0, 1, 2, 3}
	err := timsort.SortFunc(index, func(a, b int) int { return ages[b] - ages[a] })
	fmt.Println(index, err)
	// Output:
	// [0 2 3 1] <nil>
}
