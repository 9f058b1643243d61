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

package command

import (
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ivtree/ivtree/pkg/adt"
	"github.com/ivtree/ivtree/pkg/dataset"
)

type pair struct {
	Low   string `json:"low"`
	High  string `json:"high"`
	Value string `json:"value"`
}

type treeStats struct {
	File      string `json:"file"`
	Kind      string `json:"kind"`
	Size      int    `json:"size"`
	Height    int    `json:"height"`
	MaxHeight int    `json:"max_height"`
	Empty     bool   `json:"empty"`
}

// treeView hides the point type of a loaded tree from the commands, which
// only deal in text endpoints.
type treeView interface {
	query(low, high string) ([]pair, error)
	count(low, high string) (int, error)
	has(low, high string) (bool, error)
	keys() []pair
	stats() treeStats
}

type typedTree[P adt.Comparable[P]] struct {
	ivt    *adt.IntervalTree[P, string]
	parse  dataset.Parser[P]
	format func(P) string

	file string
	kind dataset.Kind
}

func newTypedTree[P adt.Comparable[P]](lg *zap.Logger, ds *dataset.Dataset, kind dataset.Kind, parse dataset.Parser[P], format func(P) string) (treeView, error) {
	ivt, err := dataset.Build(lg, ds, parse)
	if err != nil {
		return nil, err
	}
	return &typedTree[P]{ivt: ivt, parse: parse, format: format, file: ds.Path, kind: kind}, nil
}

// loadTree loads the dataset at path and builds a tree over it. A non-empty
// kind overrides the kind recorded in the file.
func loadTree(lg *zap.Logger, path, kind string) (treeView, error) {
	ds, err := dataset.Load(lg, path)
	if err != nil {
		return nil, err
	}
	k := ds.Kind
	if kind != "" {
		if k, err = dataset.ParseKind(kind); err != nil {
			return nil, err
		}
	}
	return buildTree(lg, ds, k)
}

func buildTree(lg *zap.Logger, ds *dataset.Dataset, kind dataset.Kind) (treeView, error) {
	switch kind {
	case dataset.KindFloat:
		return newTypedTree(lg, ds, kind, dataset.ParseFloat, func(p adt.Float64Comparable) string {
			return strconv.FormatFloat(float64(p), 'g', -1, 64)
		})
	case dataset.KindTime:
		return newTypedTree(lg, ds, kind, dataset.ParseTime, func(p adt.TimeComparable) string {
			return p.Format(time.RFC3339Nano)
		})
	case dataset.KindString:
		return newTypedTree(lg, ds, kind, dataset.ParseString, func(p adt.StringComparable) string {
			return string(p)
		})
	default:
		return newTypedTree(lg, ds, dataset.KindInt, dataset.ParseInt, func(p adt.Int64Comparable) string {
			return strconv.FormatInt(int64(p), 10)
		})
	}
}

func (tt *typedTree[P]) pair(ivl adt.Interval[P], val string) pair {
	return pair{Low: tt.format(ivl.Low()), High: tt.format(ivl.High()), Value: val}
}

func (tt *typedTree[P]) query(low, high string) ([]pair, error) {
	q, err := dataset.ParseInterval(tt.parse, low, high)
	if err != nil {
		return nil, err
	}
	ps := []pair{}
	for ivl, val := range tt.ivt.Intersections(q) {
		ps = append(ps, tt.pair(ivl, val))
	}
	return ps, nil
}

func (tt *typedTree[P]) count(low, high string) (int, error) {
	q, err := dataset.ParseInterval(tt.parse, low, high)
	if err != nil {
		return 0, err
	}
	return tt.ivt.CountIntersections(q), nil
}

func (tt *typedTree[P]) has(low, high string) (bool, error) {
	q, err := dataset.ParseInterval(tt.parse, low, high)
	if err != nil {
		return false, err
	}
	return tt.ivt.HasIntersection(q), nil
}

func (tt *typedTree[P]) keys() []pair {
	ps := make([]pair, 0, tt.ivt.Len())
	for ivl, val := range tt.ivt.All() {
		ps = append(ps, tt.pair(ivl, val))
	}
	return ps
}

func (tt *typedTree[P]) stats() treeStats {
	return treeStats{
		File:      tt.file,
		Kind:      string(tt.kind),
		Size:      tt.ivt.Len(),
		Height:    tt.ivt.Height(),
		MaxHeight: tt.ivt.MaxHeight(),
		Empty:     tt.ivt.IsEmpty(),
	}
}
