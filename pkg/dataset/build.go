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

package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ivtree/ivtree/pkg/adt"
)

// ErrBadPoint is returned when an endpoint cannot be read as a point of the
// dataset's kind.
var ErrBadPoint = errors.New("dataset: malformed endpoint")

// Parser turns the text form of an endpoint into a point.
type Parser[P adt.Comparable[P]] func(s string) (P, error)

func ParseInt(s string) (adt.Int64Comparable, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrBadPoint, s, err)
	}
	return adt.Int64Comparable(v), nil
}

func ParseFloat(s string) (adt.Float64Comparable, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrBadPoint, s, err)
	}
	return adt.Float64Comparable(v), nil
}

// ParseTime reads an RFC 3339 timestamp, with or without fractional seconds.
func ParseTime(s string) (adt.TimeComparable, error) {
	v, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return adt.TimeComparable{}, fmt.Errorf("%w %q: %v", ErrBadPoint, s, err)
	}
	return adt.TimeComparable{Time: v}, nil
}

// ParseString uses the text as is.
func ParseString(s string) (adt.StringComparable, error) {
	return adt.StringComparable(s), nil
}

// ParseInterval builds an interval from two endpoints in text form.
func ParseInterval[P adt.Comparable[P]](parse Parser[P], low, high string) (adt.Interval[P], error) {
	lo, err := parse(low)
	if err != nil {
		return adt.Interval[P]{}, err
	}
	hi, err := parse(high)
	if err != nil {
		return adt.Interval[P]{}, err
	}
	return adt.NewInterval(lo, hi)
}

// Intervals parses the endpoints of every record.
func Intervals[P adt.Comparable[P]](ds *Dataset, parse Parser[P]) ([]adt.Interval[P], error) {
	ivs := make([]adt.Interval[P], 0, len(ds.Records))
	for i, rec := range ds.Records {
		ivl, err := ParseInterval(parse, rec.Low, rec.High)
		if err != nil {
			return nil, ds.recordError(i, err)
		}
		ivs = append(ivs, ivl)
	}
	return ivs, nil
}

// Build inserts every record of ds into a new tree. Errors name the 1-based
// record number and wrap ErrBadPoint or adt.ErrInvalidRange.
func Build[P adt.Comparable[P]](lg *zap.Logger, ds *Dataset, parse Parser[P]) (*adt.IntervalTree[P, string], error) {
	if lg == nil {
		lg = zap.NewNop()
	}
	start := time.Now()
	ivs, err := Intervals(ds, parse)
	if err != nil {
		return nil, err
	}
	ivt := adt.NewIntervalTree[P, string]()
	for i, ivl := range ivs {
		ivt.Insert(ivl, ds.Records[i].Value)
	}
	lg.Debug(
		"built interval tree",
		zap.String("path", ds.Path),
		zap.Int("size", ivt.Len()),
		zap.Int("height", ivt.Height()),
		zap.Duration("took", time.Since(start)),
	)
	return ivt, nil
}

func (ds *Dataset) recordError(i int, err error) error {
	if ds.Path != "" {
		return fmt.Errorf("%s: record %d: %w", ds.Path, i+1, err)
	}
	return fmt.Errorf("record %d: %w", i+1, err)
}
