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
	"iter"
	"math"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// IntervalTree represents a (mostly) textbook implementation of the
// "Introduction to Algorithms" (Cormen et al, 3rd ed.) chapter 13 red-black tree
// and chapter 14.3 interval tree, holding a multiset of interval-value pairs.
//
// Nodes live in an arena addressed by index; slot 0 is the sentinel.
// An IntervalTree is not safe for concurrent use, and an Iterator must not be
// advanced while the tree it came from is being modified.
type IntervalTree[P Comparable[P], V any] struct {
	nodes []intervalNode[P, V]
	// free holds reclaimed arena slots.
	free  []nodeID
	root  nodeID
	count int

	valueEqual func(a, b V) bool
}

// Option configures an IntervalTree.
type Option[V any] func(*treeOptions[V])

type treeOptions[V any] struct {
	valueEqual func(a, b V) bool
}

// WithValueEqual sets the function used to match values in Delete, Exists
// and Find. By default values are compared deeply with go-cmp.
func WithValueEqual[V any](eq func(a, b V) bool) Option[V] {
	return func(o *treeOptions[V]) { o.valueEqual = eq }
}

func deepEqual[V any](a, b V) bool {
	return cmp.Equal(a, b, cmp.Exporter(func(reflect.Type) bool { return true }))
}

// NewIntervalTree returns a new interval tree.
func NewIntervalTree[P Comparable[P], V any](opts ...Option[V]) *IntervalTree[P, V] {
	o := treeOptions[V]{valueEqual: deepEqual[V]}
	for _, opt := range opts {
		opt(&o)
	}
	return &IntervalTree[P, V]{
		// dummy object that simplifies boundary conditions
		// use the sentinel to treat a nil child of a node x as an ordinary node whose parent is x
		// use one shared sentinel to represent all nil leaves and the root's parent
		nodes:      []intervalNode[P, V]{{c: black}},
		root:       sentinel,
		valueEqual: o.valueEqual,
	}
}

// NodeHandle refers to the pair added by Insert. It stays valid until the
// pair is deleted, or until the deletion of its in-order predecessor moves
// the pair into another node.
type NodeHandle struct {
	id  nodeID
	gen uint32
}

// Lookup returns the pair held by the node h refers to.
func (ivt *IntervalTree[P, V]) Lookup(h NodeHandle) (IntervalValue[P, V], bool) {
	if h.id == sentinel || int(h.id) >= len(ivt.nodes) || ivt.nodes[h.id].gen != h.gen {
		return IntervalValue[P, V]{}, false
	}
	return ivt.nodes[h.id].iv, true
}

func (ivt *IntervalTree[P, V]) createIntervalNode(ivl Interval[P], val V) nodeID {
	x := intervalNode[P, V]{
		iv:     IntervalValue[P, V]{Ivl: ivl, Val: val},
		max:    ivl,
		c:      red,
		left:   sentinel,
		right:  sentinel,
		parent: sentinel,
	}
	if n := len(ivt.free); n > 0 {
		id := ivt.free[n-1]
		ivt.free = ivt.free[:n-1]
		x.gen = ivt.nodes[id].gen
		ivt.nodes[id] = x
		return id
	}
	ivt.nodes = append(ivt.nodes, x)
	return nodeID(len(ivt.nodes) - 1)
}

// releaseNode clears a spliced out node and returns its slot to the free list.
func (ivt *IntervalTree[P, V]) releaseNode(x nodeID) {
	ivt.nodes[x] = intervalNode[P, V]{gen: ivt.nodes[x].gen + 1}
	ivt.free = append(ivt.free, x)
}

// Insert adds a node with the given interval into the tree. Equal intervals
// are kept side by side; the new one is placed after the existing ones.
//
// "Introduction to Algorithms" (Cormen et al, 3rd ed.), chapter 13.3, p315
//
//	 0. RB-INSERT(T, z)
//	 1.
//	 2. y = T.nil
//	 3. x = T.root
//	 4.
//	 5. while x ≠ T.nil
//	 6. 	y = x
//	 7. 	if z.key < x.key
//	 8. 		x = x.left
//	 9. 	else
//	10. 		x = x.right
//	11.
//	12. z.p = y
//	13.
//	14. if y == T.nil
//	15. 	T.root = z
//	16. else if z.key < y.key
//	17. 	y.left = z
//	18. else
//	19. 	y.right = z
//	20.
//	21. z.left = T.nil
//	22. z.right = T.nil
//	23. z.color = RED
//	24.
//	25. RB-INSERT-FIXUP(T, z)
func (ivt *IntervalTree[P, V]) Insert(ivl Interval[P], val V) NodeHandle {
	z := ivt.createIntervalNode(ivl, val)
	t := ivt.nodes

	// line 2-3
	y := sentinel
	x := ivt.root

	// line 5-10
	for x != sentinel {
		y = x
		if t[z].less(t[x].iv.Ivl) {
			x = t[x].left
		} else {
			x = t[x].right
		}
	}

	// line 12
	t[z].parent = y

	// line 14-19
	if y == sentinel {
		ivt.root = z
	} else if t[z].less(t[y].iv.Ivl) {
		t[y].left = z
	} else {
		t[y].right = z
	}

	// line 25
	ivt.insertFixup(z)
	ivt.updateMaxToRoot(z)
	ivt.count++
	return NodeHandle{id: z, gen: t[z].gen}
}

// "Introduction to Algorithms" (Cormen et al, 3rd ed.), chapter 13.3, p316
//
//	 0. RB-INSERT-FIXUP(T, z)
//	 1.
//	 2. while z.p.color == RED
//	 3. 	if z.p == z.p.p.left
//	 4. 		y = z.p.p.right
//	 5. 		if y.color == RED
//	 6. 			z.p.color = BLACK
//	 7. 			y.color = BLACK
//	 8. 			z.p.p.color = RED
//	 9. 			z = z.p.p
//	10. 		else if z == z.p.right
//	11. 				z = z.p
//	12. 				LEFT-ROTATE(T, z)
//	13. 			z.p.color = BLACK
//	14. 			z.p.p.color = RED
//	15. 			RIGHT-ROTATE(T, z.p.p)
//	16. 	else
//	17. 		y = z.p.p.left
//	18. 		if y.color == RED
//	19. 			z.p.color = BLACK
//	20. 			y.color = BLACK
//	21. 			z.p.p.color = RED
//	22. 			z = z.p.p
//	23. 		else if z == z.p.left
//	24. 				z = z.p
//	25. 				RIGHT-ROTATE(T, z)
//	26. 			z.p.color = BLACK
//	27. 			z.p.p.color = RED
//	28. 			LEFT-ROTATE(T, z.p.p)
//	29.
//	30. T.root.color = BLACK
func (ivt *IntervalTree[P, V]) insertFixup(z nodeID) {
	t := ivt.nodes
	for t[t[z].parent].c == red {
		if t[z].parent == t[t[t[z].parent].parent].left { // line 3-15
			y := t[t[t[z].parent].parent].right
			if t[y].c == red {
				t[y].c = black
				t[t[z].parent].c = black
				t[t[t[z].parent].parent].c = red
				z = t[t[z].parent].parent
			} else {
				if z == t[t[z].parent].right {
					z = t[z].parent
					ivt.rotateLeft(z)
				}
				t[t[z].parent].c = black
				t[t[t[z].parent].parent].c = red
				ivt.rotateRight(t[t[z].parent].parent)
			}
		} else { // line 16-28
			// same as then with left/right exchanged
			y := t[t[t[z].parent].parent].left
			if t[y].c == red {
				t[y].c = black
				t[t[z].parent].c = black
				t[t[t[z].parent].parent].c = red
				z = t[t[z].parent].parent
			} else {
				if z == t[t[z].parent].left {
					z = t[z].parent
					ivt.rotateRight(z)
				}
				t[t[z].parent].c = black
				t[t[t[z].parent].parent].c = red
				ivt.rotateLeft(t[t[z].parent].parent)
			}
		}
	}

	// line 30
	t[ivt.root].c = black
}

// updateMaxToRoot refreshes the cached bounding interval of x and all of its
// ancestors, bottom up.
func (ivt *IntervalTree[P, V]) updateMaxToRoot(x nodeID) {
	t := ivt.nodes
	for x != sentinel {
		t[x].updateMax(t)
		x = t[x].parent
	}
}

func (ivt *IntervalTree[P, V]) treeMin(x nodeID) nodeID {
	t := ivt.nodes
	for t[x].left != sentinel {
		x = t[x].left
	}
	return x
}

// Delete removes a node whose interval equals ivl and whose value equals
// val, returning true if a node is in fact removed. A zero val matches any
// value stored under ivl, and a stored zero value matches any val.
func (ivt *IntervalTree[P, V]) Delete(ivl Interval[P], val V) bool {
	z := ivt.find(ivt.root, ivl, val)
	if z == sentinel {
		return false
	}
	ivt.deleteNode(z)
	return true
}

// deleteNode splices z out of the tree. A node with two children is first
// reduced to its in-order successor y: y's pair is copied into z and y is
// spliced out instead.
//
//	 0. RB-DELETE(T, z)
//	 1.
//	 2. if z.left == T.nil or z.right == T.nil
//	 3. 	y = z
//	 4. else
//	 5. 	y = TREE-MINIMUM(z.right)
//	 6. if y.left ≠ T.nil
//	 7. 	x = y.left
//	 8. else
//	 9. 	x = y.right
//	10. x.p = y.p
//	11. if y.p == T.nil
//	12. 	T.root = x
//	13. else if y == y.p.left
//	14. 	y.p.left = x
//	15. else
//	16. 	y.p.right = x
//	17. if y ≠ z
//	18. 	z.key = y.key
//	19. if y.color == BLACK
//	20. 	RB-DELETE-FIXUP(T, x)
func (ivt *IntervalTree[P, V]) deleteNode(z nodeID) {
	t := ivt.nodes

	// line 2-5
	y := z
	if t[z].left != sentinel && t[z].right != sentinel {
		y = ivt.treeMin(t[z].right)
	}

	// line 6-9
	x := t[y].left
	if x == sentinel {
		x = t[y].right
	}

	// line 10-16; x may be the sentinel, whose parent is set so the fix-up
	// can find its way up
	t[x].parent = t[y].parent
	if t[y].parent == sentinel {
		ivt.root = x
	} else if y == t[t[y].parent].left {
		t[t[y].parent].left = x
	} else {
		t[t[y].parent].right = x
	}

	// line 17-18
	if y != z {
		t[z].iv = t[y].iv
		t[z].gen++
	}

	// z, when it survives, is an ancestor of y's old parent
	ivt.updateMaxToRoot(t[x].parent)

	// line 19-20
	if t[y].c == black {
		ivt.deleteFixup(x)
	}

	t[sentinel].parent = sentinel
	ivt.releaseNode(y)
	ivt.count--
}

// "Introduction to Algorithms" (Cormen et al, 3rd ed.), chapter 13.4, p326
//
//	 0. RB-DELETE-FIXUP(T, z)
//	 1.
//	 2. while x ≠ T.root and x.color == BLACK
//	 3. 	if x == x.p.left
//	 4. 		w = x.p.right
//	 5. 		if w.color == RED
//	 6. 			w.color = BLACK
//	 7. 			x.p.color = RED
//	 8. 			LEFT-ROTATE(T, x, p)
//	 9. 		if w.left.color == BLACK and w.right.color == BLACK
//	10. 			w.color = RED
//	11. 			x = x.p
//	12. 		else if w.right.color == BLACK
//	13. 				w.left.color = BLACK
//	14. 				w.color = RED
//	15. 				RIGHT-ROTATE(T, w)
//	16. 				w = w.p.right
//	17. 			w.color = x.p.color
//	18. 			x.p.color = BLACK
//	19. 			LEFT-ROTATE(T, w.p)
//	20. 			x = T.root
//	21. 	else
//	22. 		w = x.p.left
//	23. 		if w.color == RED
//	24. 			w.color = BLACK
//	25. 			x.p.color = RED
//	26. 			RIGHT-ROTATE(T, x, p)
//	27. 		if w.right.color == BLACK and w.left.color == BLACK
//	28. 			w.color = RED
//	29. 			x = x.p
//	30. 		else if w.left.color == BLACK
//	31. 				w.right.color = BLACK
//	32. 				w.color = RED
//	33. 				LEFT-ROTATE(T, w)
//	34. 				w = w.p.left
//	35. 			w.color = x.p.color
//	36. 			x.p.color = BLACK
//	37. 			RIGHT-ROTATE(T, w.p)
//	38. 			x = T.root
//	39.
//	40. x.color = BLACK
func (ivt *IntervalTree[P, V]) deleteFixup(x nodeID) {
	t := ivt.nodes
	for x != ivt.root && t[x].c == black {
		xp := t[x].parent
		if x == t[xp].left { // line 3-20
			w := t[xp].right
			if t[w].c == red {
				t[w].c = black
				t[xp].c = red
				ivt.rotateLeft(xp)
				w = t[xp].right
			}
			if t[t[w].left].c == black && t[t[w].right].c == black {
				t[w].c = red
				x = xp
			} else {
				if t[t[w].right].c == black {
					t[t[w].left].c = black
					t[w].c = red
					ivt.rotateRight(w)
					w = t[xp].right
				}
				t[w].c = t[xp].c
				t[xp].c = black
				t[t[w].right].c = black
				ivt.rotateLeft(xp)
				x = ivt.root
			}
		} else { // line 22-38
			// same as above but with left and right exchanged
			w := t[xp].left
			if t[w].c == red {
				t[w].c = black
				t[xp].c = red
				ivt.rotateRight(xp)
				w = t[xp].left
			}
			if t[t[w].left].c == black && t[t[w].right].c == black {
				t[w].c = red
				x = xp
			} else {
				if t[t[w].left].c == black {
					t[t[w].right].c = black
					t[w].c = red
					ivt.rotateLeft(w)
					w = t[xp].left
				}
				t[w].c = t[xp].c
				t[xp].c = black
				t[t[w].left].c = black
				ivt.rotateRight(xp)
				x = ivt.root
			}
		}
	}
	t[x].c = black
}

// rotateLeft moves x so it is left of its right child
//
// "Introduction to Algorithms" (Cormen et al, 3rd ed.), chapter 13.2, p313
//
//	 0. LEFT-ROTATE(T, x)
//	 1.
//	 2. y = x.right
//	 3. x.right = y.left
//	 4.
//	 5. if y.left ≠ T.nil
//	 6. 	y.left.p = x
//	 7.
//	 8. y.p = x.p
//	 9.
//	10. if x.p == T.nil
//	11. 	T.root = y
//	12. else if x == x.p.left
//	13. 	x.p.left = y
//	14. else
//	15. 	x.p.right = y
//	16.
//	17. y.left = x
//	18. x.p = y
func (ivt *IntervalTree[P, V]) rotateLeft(x nodeID) {
	t := ivt.nodes

	// line 2-3
	y := t[x].right
	t[x].right = t[y].left

	// line 5-6
	if t[y].left != sentinel {
		t[t[y].left].parent = x
	}

	// line 8, 10-15
	t[y].parent = t[x].parent
	if t[x].parent == sentinel {
		ivt.root = y
	} else if x == t[t[x].parent].left {
		t[t[x].parent].left = y
	} else {
		t[t[x].parent].right = y
	}

	// line 17-18
	t[y].left = x
	t[x].parent = y

	// x now hangs below y; ancestors keep their caches
	t[x].updateMax(t)
	t[y].updateMax(t)
}

// rotateRight moves x so it is right of its left child
//
//	 0. RIGHT-ROTATE(T, x)
//	 1.
//	 2. y = x.left
//	 3. x.left = y.right
//	 4.
//	 5. if y.right ≠ T.nil
//	 6. 	y.right.p = x
//	 7.
//	 8. y.p = x.p
//	 9.
//	10. if x.p == T.nil
//	11. 	T.root = y
//	12. else if x == x.p.right
//	13. 	x.p.right = y
//	14. else
//	15. 	x.p.left = y
//	16.
//	17. y.right = x
//	18. x.p = y
func (ivt *IntervalTree[P, V]) rotateRight(x nodeID) {
	t := ivt.nodes

	// line 2-3
	y := t[x].left
	t[x].left = t[y].right

	// line 5-6
	if t[y].right != sentinel {
		t[t[y].right].parent = x
	}

	// line 8, 10-15
	t[y].parent = t[x].parent
	if t[x].parent == sentinel {
		ivt.root = y
	} else if x == t[t[x].parent].right {
		t[t[x].parent].right = y
	} else {
		t[t[x].parent].left = y
	}

	// line 17-18
	t[y].right = x
	t[x].parent = y

	t[x].updateMax(t)
	t[y].updateMax(t)
}

// equal reports whether x holds ivl and val. Values are only compared when
// both sides carry a non-zero value.
func (ivt *IntervalTree[P, V]) equal(x *intervalNode[P, V], ivl Interval[P], val V) bool {
	if !x.iv.Ivl.Equal(ivl) {
		return false
	}
	if isZero(val) || isZero(x.iv.Val) {
		return true
	}
	return ivt.valueEqual(x.iv.Val, val)
}

func isZero[V any](v V) bool {
	return reflect.ValueOf(&v).Elem().IsZero()
}

// find returns the first node in the subtree rooted at x holding ivl and val,
// or the sentinel.
func (ivt *IntervalTree[P, V]) find(x nodeID, ivl Interval[P], val V) nodeID {
	t := ivt.nodes
	for x != sentinel {
		if ivt.equal(&t[x], ivl, val) {
			return x
		}
		if ivl.Less(t[x].iv.Ivl) {
			x = t[x].left
			continue
		}
		if ivl.Equal(t[x].iv.Ivl) {
			// rotations can leave equal keys on both sides
			if f := ivt.find(t[x].left, ivl, val); f != sentinel {
				return f
			}
		}
		x = t[x].right
	}
	return sentinel
}

// Exists reports whether the tree holds ivl with value val.
func (ivt *IntervalTree[P, V]) Exists(ivl Interval[P], val V) bool {
	return ivt.find(ivt.root, ivl, val) != sentinel
}

// Find gets the IntervalValue for the node matching the given interval and value.
func (ivt *IntervalTree[P, V]) Find(ivl Interval[P], val V) (IntervalValue[P, V], bool) {
	x := ivt.find(ivt.root, ivl, val)
	if x == sentinel {
		return IntervalValue[P, V]{}, false
	}
	return ivt.nodes[x].iv, true
}

// Len gives the number of elements in the tree
func (ivt *IntervalTree[P, V]) Len() int { return ivt.count }

func (ivt *IntervalTree[P, V]) IsEmpty() bool { return ivt.root == sentinel }

// Height is the number of levels in the tree; one node has height 1.
func (ivt *IntervalTree[P, V]) Height() int {
	if ivt.root == sentinel {
		return 0
	}
	return ivt.nodes[ivt.root].height(ivt.nodes)
}

// MaxHeight is the expected maximum tree height given the number of nodes
func (ivt *IntervalTree[P, V]) MaxHeight() int {
	return int((2 * math.Log2(float64(ivt.Len()+1))) + 0.5)
}

// FindIntersections returns an iterator over every pair whose interval
// intersects q, in ascending interval order.
func (ivt *IntervalTree[P, V]) FindIntersections(q Interval[P]) *Iterator[P, V] {
	it := &Iterator[P, V]{ivt: ivt, q: q}
	it.Reset()
	return it
}

// Intersections is FindIntersections as a range-over-func sequence.
func (ivt *IntervalTree[P, V]) Intersections(q Interval[P]) iter.Seq2[Interval[P], V] {
	return func(yield func(Interval[P], V) bool) {
		it := ivt.FindIntersections(q)
		for it.Next() {
			if !yield(it.Interval(), it.Value()) {
				return
			}
		}
	}
}

// HasIntersection returns true if there is some tree node intersecting the
// given interval.
func (ivt *IntervalTree[P, V]) HasIntersection(q Interval[P]) bool {
	return ivt.FindIntersections(q).Next()
}

// CountIntersections returns the number of pairs intersecting q.
func (ivt *IntervalTree[P, V]) CountIntersections(q Interval[P]) int {
	n := 0
	for it := ivt.FindIntersections(q); it.Next(); {
		n++
	}
	return n
}

// IntervalVisitor is used on tree searches; return false to stop searching.
type IntervalVisitor[P Comparable[P], V any] func(n *IntervalValue[P, V]) bool

// Visit calls a visitor function on every tree node intersecting the given interval.
// It will visit each interval in ascending order.
func (ivt *IntervalTree[P, V]) Visit(q Interval[P], ivv IntervalVisitor[P, V]) {
	for it := ivt.FindIntersections(q); it.Next(); {
		iv := it.IntervalValue()
		if !ivv(&iv) {
			return
		}
	}
}

// Stab returns a slice with all elements in the tree intersecting the interval.
func (ivt *IntervalTree[P, V]) Stab(q Interval[P]) (ivs []IntervalValue[P, V]) {
	if ivt.count == 0 {
		return nil
	}
	for it := ivt.FindIntersections(q); it.Next(); {
		ivs = append(ivs, it.IntervalValue())
	}
	return ivs
}

// Contains returns true if the interval tree's keys cover the entire given
// interval without a gap. Intervals that touch at an endpoint are contiguous.
func (ivt *IntervalTree[P, V]) Contains(q Interval[P]) bool {
	var minLow, maxHigh P
	seen := false
	for it := ivt.FindIntersections(q); it.Next(); {
		ivl := it.Interval()
		if !seen {
			minLow, maxHigh, seen = ivl.low, ivl.high, true
			continue
		}
		if maxHigh.Compare(ivl.low) < 0 {
			return false
		}
		if ivl.high.Compare(maxHigh) > 0 {
			maxHigh = ivl.high
		}
	}
	return seen && minLow.Compare(q.low) <= 0 && maxHigh.Compare(q.high) >= 0
}

// Union merges into the receiver every pair of inIvt intersecting ivl.
// inIvt may be the receiver itself.
func (ivt *IntervalTree[P, V]) Union(inIvt *IntervalTree[P, V], ivl Interval[P]) {
	for _, iv := range inIvt.Stab(ivl) {
		ivt.Insert(iv.Ivl, iv.Val)
	}
}

// All returns every pair in ascending interval order.
func (ivt *IntervalTree[P, V]) All() iter.Seq2[Interval[P], V] {
	return func(yield func(Interval[P], V) bool) {
		t := ivt.nodes
		var stack []nodeID
		x := ivt.root
		for x != sentinel || len(stack) > 0 {
			for x != sentinel {
				stack = append(stack, x)
				x = t[x].left
			}
			x = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(t[x].iv.Ivl, t[x].iv.Val) {
				return
			}
			x = t[x].right
		}
	}
}

// Keys returns all intervals in ascending order.
func (ivt *IntervalTree[P, V]) Keys() []Interval[P] {
	keys := make([]Interval[P], 0, ivt.count)
	for ivl := range ivt.All() {
		keys = append(keys, ivl)
	}
	return keys
}

// Values returns all values ordered by their intervals.
func (ivt *IntervalTree[P, V]) Values() []V {
	vals := make([]V, 0, ivt.count)
	for _, v := range ivt.All() {
		vals = append(vals, v)
	}
	return vals
}
