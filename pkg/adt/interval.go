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
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidRange is returned when an interval's low endpoint is greater
	// than its high endpoint, or when an endpoint has no place in the point
	// order.
	ErrInvalidRange = errors.New("adt: low endpoint is greater than high endpoint")
	// ErrIntervalArity is returned by IntervalFromSlice when it is not given
	// exactly two points.
	ErrIntervalArity = errors.New("adt: an interval needs exactly two endpoints")
)

// Interval is a closed interval [low, high] with low <= high.
// The zero value is only meaningful for point types whose zero value is a
// valid point; use NewInterval to build intervals.
type Interval[P Comparable[P]] struct {
	low  P
	high P
}

// NewInterval returns the interval [low, high], or an error wrapping
// ErrInvalidRange if low > high.
func NewInterval[P Comparable[P]](low, high P) (Interval[P], error) {
	if !validPoint(low) || !validPoint(high) {
		return Interval[P]{}, fmt.Errorf("%w: [%v, %v] has an unordered endpoint", ErrInvalidRange, low, high)
	}
	if low.Compare(high) > 0 {
		return Interval[P]{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, low, high)
	}
	return Interval[P]{low: low, high: high}, nil
}

// IntervalFromSlice builds an interval from a two element slice {low, high}.
func IntervalFromSlice[P Comparable[P]](pts []P) (Interval[P], error) {
	if len(pts) != 2 {
		return Interval[P]{}, fmt.Errorf("%w: got %d", ErrIntervalArity, len(pts))
	}
	return NewInterval(pts[0], pts[1])
}

func (ivl Interval[P]) Low() P  { return ivl.low }
func (ivl Interval[P]) High() P { return ivl.high }

// Less orders intervals by low endpoint, then by high endpoint.
func (ivl Interval[P]) Less(o Interval[P]) bool {
	c := ivl.low.Compare(o.low)
	return c < 0 || (c == 0 && ivl.high.Compare(o.high) < 0)
}

func (ivl Interval[P]) Equal(o Interval[P]) bool {
	return ivl.low.Compare(o.low) == 0 && ivl.high.Compare(o.high) == 0
}

// Intersects reports whether the two closed intervals share at least one
// point. Intervals that only touch at an endpoint intersect.
func (ivl Interval[P]) Intersects(o Interval[P]) bool {
	return !(ivl.high.Compare(o.low) < 0 || o.high.Compare(ivl.low) < 0)
}

// Merge returns the smallest interval covering both intervals.
func (ivl Interval[P]) Merge(o Interval[P]) Interval[P] {
	m := ivl
	if o.low.Compare(m.low) < 0 {
		m.low = o.low
	}
	if o.high.Compare(m.high) > 0 {
		m.high = o.high
	}
	return m
}

func (ivl Interval[P]) String() string {
	return fmt.Sprintf("[%v, %v]", ivl.low, ivl.high)
}

// IntervalValue represents a range tree node that contains a range and a value.
type IntervalValue[P Comparable[P], V any] struct {
	Ivl Interval[P]
	Val V
}

func NewInt64Interval(a, b int64) (Interval[Int64Comparable], error) {
	return NewInterval(Int64Comparable(a), Int64Comparable(b))
}

// NewInt64Point returns the single point interval [a, a].
func NewInt64Point(a int64) Interval[Int64Comparable] {
	return Interval[Int64Comparable]{low: Int64Comparable(a), high: Int64Comparable(a)}
}

func NewFloat64Interval(a, b float64) (Interval[Float64Comparable], error) {
	return NewInterval(Float64Comparable(a), Float64Comparable(b))
}

func NewTimeInterval(a, b time.Time) (Interval[TimeComparable], error) {
	return NewInterval(TimeComparable{a}, TimeComparable{b})
}

func NewStringInterval(begin, end string) (Interval[StringComparable], error) {
	return NewInterval(StringComparable(begin), StringComparable(end))
}
