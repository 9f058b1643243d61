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

type treeChecker[P adt.Comparable[P]] struct {
	ivt *adt.IntervalTree[P, struct{}]
}

// NewTreeChecker returns a Checker backed by an interval tree.
func NewTreeChecker[P adt.Comparable[P]]() Checker[P] {
	return &treeChecker[P]{ivt: adt.NewIntervalTree[P, struct{}]()}
}

func (tc *treeChecker[P]) Name() string { return "interval-tree" }

func (tc *treeChecker[P]) Load(ivs []adt.Interval[P]) {
	tc.ivt = adt.NewIntervalTree[P, struct{}]()
	for _, ivl := range ivs {
		tc.ivt.Insert(ivl, struct{}{})
	}
}

func (tc *treeChecker[P]) Has(q adt.Interval[P]) bool { return tc.ivt.HasIntersection(q) }

func (tc *treeChecker[P]) Count(q adt.Interval[P]) int { return tc.ivt.CountIntersections(q) }
