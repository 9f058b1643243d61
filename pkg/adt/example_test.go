// Copyright 2026 The ivtree Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package adt_test

import (
	"fmt"

	"github.com/ivtree/ivtree/pkg/adt"
)

func ExampleIntervalTree_FindIntersections() {
	ivt := adt.NewIntervalTree[adt.Int64Comparable, string]()
	for i, p := range [][2]int64{{6, 8}, {1, 4}, {2, 3}, {5, 12}, {1, 1}, {3, 5}, {5, 7}} {
		ivl, err := adt.NewInt64Interval(p[0], p[1])
		if err != nil {
			panic(err)
		}
		ivt.Insert(ivl, fmt.Sprintf("val%d", i))
	}

	q, _ := adt.NewInt64Interval(2, 3)
	for it := ivt.FindIntersections(q); it.Next(); {
		fmt.Println(it.Interval(), it.Value())
	}
	fmt.Println(ivt.CountIntersections(q))
	// Output:
	// [1, 4] val1
	// [2, 3] val2
	// [3, 5] val5
	// 3
}

func ExampleNewInterval() {
	_, err := adt.NewInt64Interval(5, 1)
	fmt.Println(err)
	// Output:
	// adt: low endpoint is greater than high endpoint: [5, 1]
}
