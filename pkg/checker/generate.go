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

package checker

import (
	"math/rand"

	"github.com/ivtree/ivtree/pkg/adt"
)

// RandomIntervals returns n intervals with lows drawn from [0, maxPoint] and
// lengths from [0, maxLength].
func RandomIntervals(r *rand.Rand, n int, maxPoint, maxLength int64) []adt.Interval[adt.Int64Comparable] {
	ivs := make([]adt.Interval[adt.Int64Comparable], n)
	for i := range ivs {
		low := r.Int63n(maxPoint + 1)
		ivl, err := adt.NewInt64Interval(low, low+r.Int63n(maxLength+1))
		if err != nil {
			// low <= high by construction
			panic(err)
		}
		ivs[i] = ivl
	}
	return ivs
}

// BandedIntervals returns n intervals where the i-th low endpoint falls in
// [i*band, (i+1)*band], so the set is spread evenly over the point space.
func BandedIntervals(r *rand.Rand, n int, band, maxLength int64) []adt.Interval[adt.Int64Comparable] {
	ivs := make([]adt.Interval[adt.Int64Comparable], n)
	for i := range ivs {
		low := int64(i)*band + r.Int63n(band+1)
		ivl, err := adt.NewInt64Interval(low, low+r.Int63n(maxLength+1))
		if err != nil {
			panic(err)
		}
		ivs[i] = ivl
	}
	return ivs
}
