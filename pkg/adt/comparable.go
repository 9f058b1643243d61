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
	"math"
	"time"

	"golang.org/x/exp/constraints"
)

// Comparable is an interface for trichotomic comparisons between points of
// the same type. The comparison must be a total order.
type Comparable[P any] interface {
	// Compare gives the result of a 3-way comparison
	// a.Compare(b) = 1 => a > b
	// a.Compare(b) = 0 => a == b
	// a.Compare(b) = -1 => a < b
	Compare(p P) int
}

// orderedPoint is implemented by point types that have values outside of
// their total order, such as NaN.
type orderedPoint interface {
	ordered() bool
}

func validPoint[P any](p P) bool {
	if op, ok := any(p).(orderedPoint); ok {
		return op.ordered()
	}
	return true
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

type Int64Comparable int64

func (v Int64Comparable) Compare(c Int64Comparable) int { return compareOrdered(v, c) }

// Float64Comparable orders float64 points. NaN is rejected when building an
// interval.
type Float64Comparable float64

func (v Float64Comparable) Compare(c Float64Comparable) int { return compareOrdered(v, c) }

func (v Float64Comparable) ordered() bool { return !math.IsNaN(float64(v)) }

// TimeComparable orders points in time by instant; the location is ignored.
type TimeComparable struct {
	time.Time
}

func (t TimeComparable) Compare(c TimeComparable) int { return t.Time.Compare(c.Time) }

type StringComparable string

func (s StringComparable) Compare(c StringComparable) int { return compareOrdered(s, c) }
