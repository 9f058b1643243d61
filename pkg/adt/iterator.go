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

package adt

// Iterator walks the pairs of a tree intersecting a query interval in
// ascending interval order. Subtrees that cannot hold an intersecting
// interval are never entered.
//
//	it := tree.FindIntersections(q)
//	for it.Next() {
//		use(it.Interval(), it.Value())
//	}
type Iterator[P Comparable[P], V any] struct {
	ivt   *IntervalTree[P, V]
	q     Interval[P]
	stack []nodeID
	cur   nodeID
}

// Reset rewinds the iterator to before the first intersecting pair.
func (it *Iterator[P, V]) Reset() {
	it.stack = it.stack[:0]
	it.cur = sentinel
	it.pushLeft(it.ivt.root)
}

// pushLeft stacks x and its left spine, stopping at the first node whose
// left subtree cannot intersect the query.
func (it *Iterator[P, V]) pushLeft(x nodeID) {
	t := it.ivt.nodes
	for x != sentinel {
		it.stack = append(it.stack, x)
		if t[x].notIntersectLeftSubtree(t, it.q) {
			return
		}
		x = t[x].left
	}
}

// Next advances to the next intersecting pair and reports whether there is one.
func (it *Iterator[P, V]) Next() bool {
	t := it.ivt.nodes
	for len(it.stack) > 0 {
		x := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		// x and everything after it start above the query
		if it.q.high.Compare(t[x].iv.Ivl.low) < 0 {
			it.stack = it.stack[:0]
			break
		}
		if !t[x].notIntersectRightSubtree(t, it.q) {
			it.pushLeft(t[x].right)
		}
		if t[x].intersects(it.q) {
			it.cur = x
			return true
		}
	}
	it.cur = sentinel
	return false
}

// Interval returns the interval of the current pair.
func (it *Iterator[P, V]) Interval() Interval[P] { return it.ivt.nodes[it.cur].iv.Ivl }

// Value returns the value of the current pair.
func (it *Iterator[P, V]) Value() V { return it.ivt.nodes[it.cur].iv.Val }

func (it *Iterator[P, V]) IntervalValue() IntervalValue[P, V] { return it.ivt.nodes[it.cur].iv }
