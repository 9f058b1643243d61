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
	"github.com/google/btree"

	"github.com/ivtree/ivtree/pkg/adt"
)

const btreeDegree = 32

// btreeItem is ordered by interval, then by insertion sequence so that equal
// intervals are kept apart.
type btreeItem[P adt.Comparable[P]] struct {
	ivl adt.Interval[P]
	seq int
}

func lessItem[P adt.Comparable[P]](a, b btreeItem[P]) bool {
	if a.ivl.Less(b.ivl) {
		return true
	}
	if b.ivl.Less(a.ivl) {
		return false
	}
	return a.seq < b.seq
}

type btreeChecker[P adt.Comparable[P]] struct {
	bt *btree.BTreeG[btreeItem[P]]
}

// NewBTreeChecker returns a Checker backed by a B-tree sorted by low
// endpoint. A query walks the intervals starting at or below its high end.
func NewBTreeChecker[P adt.Comparable[P]]() Checker[P] {
	return &btreeChecker[P]{bt: btree.NewG[btreeItem[P]](btreeDegree, lessItem[P])}
}

func (bc *btreeChecker[P]) Name() string { return "btree" }

func (bc *btreeChecker[P]) Load(ivs []adt.Interval[P]) {
	bc.bt.Clear(false)
	for i, ivl := range ivs {
		bc.bt.ReplaceOrInsert(btreeItem[P]{ivl: ivl, seq: i})
	}
}

// ascend calls f on every interval intersecting q until f returns false.
func (bc *btreeChecker[P]) ascend(q adt.Interval[P], f func(adt.Interval[P]) bool) {
	bc.bt.Ascend(func(it btreeItem[P]) bool {
		if q.High().Compare(it.ivl.Low()) < 0 {
			return false
		}
		if it.ivl.High().Compare(q.Low()) >= 0 {
			return f(it.ivl)
		}
		return true
	})
}

func (bc *btreeChecker[P]) Has(q adt.Interval[P]) bool {
	found := false
	bc.ascend(q, func(adt.Interval[P]) bool {
		found = true
		return false
	})
	return found
}

func (bc *btreeChecker[P]) Count(q adt.Interval[P]) int {
	n := 0
	bc.ascend(q, func(adt.Interval[P]) bool {
		n++
		return true
	})
	return n
}
