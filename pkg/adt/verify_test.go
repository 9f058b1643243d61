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

import (
	"fmt"
	"testing"
)

// verify checks the red-black and augmentation invariants of the whole tree.
func (ivt *IntervalTree[P, V]) verify() error {
	t := ivt.nodes
	if t[sentinel].c != black {
		return fmt.Errorf("sentinel is %v", t[sentinel].c)
	}
	if ivt.root == sentinel {
		if ivt.count != 0 {
			return fmt.Errorf("empty tree with count %d", ivt.count)
		}
		return nil
	}
	if t[ivt.root].c != black {
		return fmt.Errorf("root %v is red", t[ivt.root].iv.Ivl)
	}
	if t[ivt.root].parent != sentinel {
		return fmt.Errorf("root %v has a parent", t[ivt.root].iv.Ivl)
	}
	n, _, err := ivt.verifyNode(ivt.root)
	if err != nil {
		return err
	}
	if n != ivt.count {
		return fmt.Errorf("counted %d nodes, tree says %d", n, ivt.count)
	}

	var prev *Interval[P]
	for ivl := range ivt.All() {
		if prev != nil && ivl.Less(*prev) {
			return fmt.Errorf("%v visited after %v", ivl, *prev)
		}
		cur := ivl
		prev = &cur
	}
	return nil
}

// verifyNode returns the size and black height of the subtree rooted at x.
func (ivt *IntervalTree[P, V]) verifyNode(x nodeID) (size, bh int, err error) {
	if x == sentinel {
		return 0, 1, nil
	}
	t := ivt.nodes
	n := &t[x]
	for _, c := range []nodeID{n.left, n.right} {
		if c == sentinel {
			continue
		}
		if t[c].parent != x {
			return 0, 0, fmt.Errorf("%v: child %v has the wrong parent", n.iv.Ivl, t[c].iv.Ivl)
		}
		if n.c == red && t[c].c == red {
			return 0, 0, fmt.Errorf("%v: red node with red child %v", n.iv.Ivl, t[c].iv.Ivl)
		}
	}
	if n.left != sentinel && n.iv.Ivl.Less(t[n.left].iv.Ivl) {
		return 0, 0, fmt.Errorf("%v: left child %v is greater", n.iv.Ivl, t[n.left].iv.Ivl)
	}
	if n.right != sentinel && t[n.right].iv.Ivl.Less(n.iv.Ivl) {
		return 0, 0, fmt.Errorf("%v: right child %v is less", n.iv.Ivl, t[n.right].iv.Ivl)
	}

	ls, lbh, err := ivt.verifyNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rs, rbh, err := ivt.verifyNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, fmt.Errorf("%v: black heights differ, %d vs %d", n.iv.Ivl, lbh, rbh)
	}

	want := n.iv.Ivl
	if n.left != sentinel {
		want = want.Merge(t[n.left].max)
	}
	if n.right != sentinel {
		want = want.Merge(t[n.right].max)
	}
	if !n.max.Equal(want) {
		return 0, 0, fmt.Errorf("%v: max is %v, expected %v", n.iv.Ivl, n.max, want)
	}

	if n.c == black {
		lbh++
	}
	return ls + rs + 1, lbh, nil
}

func mustVerify[P Comparable[P], V any](t *testing.T, ivt *IntervalTree[P, V]) {
	t.Helper()
	if err := ivt.verify(); err != nil {
		t.Fatal(err)
	}
}

type visitedInterval[P Comparable[P]] struct {
	root  Interval[P]
	left  Interval[P]
	right Interval[P]
	color rbcolor
	depth int
}

func (vi visitedInterval[P]) String() string {
	return fmt.Sprintf("{root: %v, left: %v, right: %v, color: %v, depth: %d}", vi.root, vi.left, vi.right, vi.color, vi.depth)
}

// visitLevel traverses tree in level order.
// used for testing
func (ivt *IntervalTree[P, V]) visitLevel() []visitedInterval[P] {
	if ivt.root == sentinel {
		return nil
	}
	t := ivt.nodes

	var zero Interval[P]
	ivlOf := func(x nodeID) Interval[P] {
		if x == sentinel {
			return zero
		}
		return t[x].iv.Ivl
	}

	var res []visitedInterval[P]
	type pair struct {
		node  nodeID
		depth int
	}
	queue := []pair{{ivt.root, 0}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]

		x := &t[f.node]
		res = append(res, visitedInterval[P]{
			root:  x.iv.Ivl,
			left:  ivlOf(x.left),
			right: ivlOf(x.right),
			color: x.c,
			depth: f.depth,
		})
		if x.left != sentinel {
			queue = append(queue, pair{x.left, f.depth + 1})
		}
		if x.right != sentinel {
			queue = append(queue, pair{x.right, f.depth + 1})
		}
	}
	return res
}
