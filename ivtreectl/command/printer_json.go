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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ivtree/ivtree/pkg/report"
)

type jsonPrinter struct {
	w io.Writer
}

func (p *jsonPrinter) Pairs(ps []pair) { p.printJSON(ps) }
func (p *jsonPrinter) Stats(s treeStats) { p.printJSON(s) }
func (p *jsonPrinter) Bench(rs []report.Stats) { p.printJSON(rs) }
func (p *jsonPrinter) Version(v versionInfo) { p.printJSON(v) }

func (p *jsonPrinter) Count(n int) {
	p.printJSON(struct {
		Count int `json:"count"`
	}{n})
}

func (p *jsonPrinter) Has(ok bool) {
	p.printJSON(struct {
		Intersects bool `json:"intersects"`
	}{ok})
}

func (p *jsonPrinter) printJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return
	}
	fmt.Fprintln(p.w, string(b))
}
