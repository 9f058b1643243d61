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

import "github.com/ivtree/ivtree/pkg/adt"

type bruteForceChecker[P adt.Comparable[P]] struct {
	ivs []adt.Interval[P]
}

// NewBruteForceChecker returns a Checker that scans every interval on each query.
func NewBruteForceChecker[P adt.Comparable[P]]() Checker[P] {
	return &bruteForceChecker[P]{}
}

func (bc *bruteForceChecker[P]) Name() string { return "brute-force" }

func (bc *bruteForceChecker[P]) Load(ivs []adt.Interval[P]) {
	bc.ivs = append(bc.ivs[:0], ivs...)
}

func (bc *bruteForceChecker[P]) Has(q adt.Interval[P]) bool {
	for _, ivl := range bc.ivs {
		if ivl.Intersects(q) {
			return true
		}
	}
	return false
}

func (bc *bruteForceChecker[P]) Count(q adt.Interval[P]) int {
	n := 0
	for _, ivl := range bc.ivs {
		if ivl.Intersects(q) {
			n++
		}
	}
	return n
}
