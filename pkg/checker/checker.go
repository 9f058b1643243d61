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

// Package checker answers interval intersection queries with interchangeable
// strategies, so they can be compared against each other.
package checker

import (
	"fmt"
	"strings"

	"github.com/ivtree/ivtree/pkg/adt"
)

// Checker answers intersection queries over a loaded set of intervals.
type Checker[P adt.Comparable[P]] interface {
	Name() string
	// Load replaces the checked set with ivs.
	Load(ivs []adt.Interval[P])
	// Has reports whether some loaded interval intersects q.
	Has(q adt.Interval[P]) bool
	// Count returns how many loaded intervals intersect q.
	Count(q adt.Interval[P]) int
}

// CheckIntersections loads xs into c and tells, for every query in ys,
// whether it intersects any of xs.
func CheckIntersections[P adt.Comparable[P]](c Checker[P], xs, ys []adt.Interval[P]) []bool {
	c.Load(xs)
	res := make([]bool, len(ys))
	for i, q := range ys {
		res[i] = c.Has(q)
	}
	return res
}

// Bits renders check results as a bit string such as "01100".
func Bits(checks []bool) string {
	var sb strings.Builder
	sb.Grow(len(checks))
	for _, c := range checks {
		if c {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Compare runs every checker over the same data and returns an error naming
// the first query on which two checkers disagree, in presence or in count.
func Compare[P adt.Comparable[P]](cs []Checker[P], xs, ys []adt.Interval[P]) error {
	if len(cs) < 2 {
		return nil
	}
	for _, c := range cs {
		c.Load(xs)
	}
	ref := cs[0]
	for _, q := range ys {
		wantHas, wantCount := ref.Has(q), ref.Count(q)
		for _, c := range cs[1:] {
			if has := c.Has(q); has != wantHas {
				return fmt.Errorf("query %v: %s has=%v, %s has=%v", q, ref.Name(), wantHas, c.Name(), has)
			}
			if n := c.Count(q); n != wantCount {
				return fmt.Errorf("query %v: %s count=%d, %s count=%d", q, ref.Name(), wantCount, c.Name(), n)
			}
		}
	}
	return nil
}

// All returns one checker of every kind.
func All[P adt.Comparable[P]]() []Checker[P] {
	return []Checker[P]{
		NewTreeChecker[P](),
		NewBruteForceChecker[P](),
		NewBTreeChecker[P](),
	}
}
