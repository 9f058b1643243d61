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

import "fmt"

type rbcolor int8

const (
	black rbcolor = iota
	red
)

func (c rbcolor) String() string {
	switch c {
	case black:
		return "black"
	case red:
		return "red"
	default:
		panic(fmt.Errorf("unknown color %d", c))
	}
}

// nodeID addresses a node in the tree's arena.
type nodeID uint32

// sentinel is the arena slot shared by all nil leaves and the root's parent.
const sentinel nodeID = 0

type intervalNode[P Comparable[P], V any] struct {
	// iv is the interval-value pair entry.
	iv IntervalValue[P, V]
	// max is the bounding interval of all intervals in the subtree rooted
	// here. max.high is the largest endpoint of all descendants; max.low the
	// smallest low endpoint.
	max Interval[P]
	// left and right are sorted by key interval
	left, right nodeID
	// parent is the direct ancestor of the node
	parent nodeID
	c      rbcolor
	// gen is bumped whenever the slot's payload stops belonging to the
	// handles given out for it.
	gen uint32
}

// updateMax recomputes max from the node's own interval and the caches of
// its immediate children. It does not touch ancestors.
func (x *intervalNode[P, V]) updateMax(nodes []intervalNode[P, V]) {
	max := x.iv.Ivl
	if x.left != sentinel {
		max = max.Merge(nodes[x.left].max)
	}
	if x.right != sentinel {
		max = max.Merge(nodes[x.right].max)
	}
	x.max = max
}

// notIntersectLeftSubtree reports whether no interval in the left subtree
// can intersect q.
func (x *intervalNode[P, V]) notIntersectLeftSubtree(nodes []intervalNode[P, V], q Interval[P]) bool {
	if x.left == sentinel {
		return true
	}
	return nodes[x.left].max.high.Compare(q.low) < 0
}

// notIntersectRightSubtree reports whether no interval in the right subtree
// can intersect q. The right subtree's smallest low endpoint comes from its
// bounding interval, which is never above the right child's own low.
func (x *intervalNode[P, V]) notIntersectRightSubtree(nodes []intervalNode[P, V], q Interval[P]) bool {
	if x.right == sentinel {
		return true
	}
	return q.high.Compare(nodes[x.right].max.low) < 0
}

func (x *intervalNode[P, V]) less(ivl Interval[P]) bool {
	return x.iv.Ivl.Less(ivl)
}

func (x *intervalNode[P, V]) intersects(q Interval[P]) bool {
	return x.iv.Ivl.Intersects(q)
}

func (x *intervalNode[P, V]) height(nodes []intervalNode[P, V]) int {
	ld, rd := 0, 0
	if x.left != sentinel {
		ld = nodes[x.left].height(nodes)
	}
	if x.right != sentinel {
		rd = nodes[x.right].height(nodes)
	}
	if ld < rd {
		return rd + 1
	}
	return ld + 1
}
