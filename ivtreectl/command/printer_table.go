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
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/ivtree/ivtree/pkg/report"
)

type tablePrinter struct{ simplePrinter }

func (tp *tablePrinter) Pairs(ps []pair) {
	table := tablewriter.NewWriter(tp.w)
	table.SetHeader([]string{"low", "high", "value"})
	for _, p := range ps {
		table.Append([]string{p.Low, p.High, p.Value})
	}
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.Render()
}

func (tp *tablePrinter) Stats(s treeStats) {
	table := tablewriter.NewWriter(tp.w)
	table.SetHeader([]string{"file", "kind", "size", "height", "max height", "empty"})
	table.Append([]string{
		s.File,
		s.Kind,
		humanize.Comma(int64(s.Size)),
		strconv.Itoa(s.Height),
		strconv.Itoa(s.MaxHeight),
		strconv.FormatBool(s.Empty),
	})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.Render()
}

func (tp *tablePrinter) Bench(rs []report.Stats) {
	table := tablewriter.NewWriter(tp.w)
	table.SetHeader([]string{"checker", "queries", "hits", "total", "average", "slowest", "qps"})
	for _, r := range rs {
		table.Append([]string{
			r.Name,
			humanize.Comma(int64(r.Queries)),
			humanize.Comma(int64(r.Hits)),
			r.Total.String(),
			fmt.Sprintf("%.6f secs", r.Average),
			fmt.Sprintf("%.6f secs", r.Slowest),
			humanize.CommafWithDigits(r.QPS, 2),
		})
	}
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.Render()
}
