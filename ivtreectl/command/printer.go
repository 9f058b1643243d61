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
	"io"

	"github.com/dustin/go-humanize"

	"github.com/ivtree/ivtree/pkg/report"
)

type printer interface {
	Pairs(ps []pair)
	Count(n int)
	Has(ok bool)
	Stats(s treeStats)
	Bench(rs []report.Stats)
	Version(v versionInfo)
}

func NewPrinter(printerType string, w io.Writer) printer {
	switch printerType {
	case "simple":
		return &simplePrinter{w: w}
	case "json":
		return &jsonPrinter{w: w}
	case "table":
		return &tablePrinter{simplePrinter{w: w}}
	}
	return nil
}

type simplePrinter struct {
	w io.Writer
}

func (s *simplePrinter) Pairs(ps []pair) {
	for _, p := range ps {
		fmt.Fprintf(s.w, "[%s, %s] %s\n", p.Low, p.High, p.Value)
	}
}

func (s *simplePrinter) Count(n int) { fmt.Fprintln(s.w, n) }

func (s *simplePrinter) Has(ok bool) { fmt.Fprintln(s.w, ok) }

func (s *simplePrinter) Stats(st treeStats) {
	fmt.Fprintf(s.w, "file: %s\n", st.File)
	fmt.Fprintf(s.w, "kind: %s\n", st.Kind)
	fmt.Fprintf(s.w, "size: %s\n", humanize.Comma(int64(st.Size)))
	fmt.Fprintf(s.w, "height: %d\n", st.Height)
	fmt.Fprintf(s.w, "max height: %d\n", st.MaxHeight)
	fmt.Fprintf(s.w, "empty: %v\n", st.Empty)
}

func (s *simplePrinter) Bench(rs []report.Stats) {
	for _, r := range rs {
		r.Print(s.w)
	}
}

func (s *simplePrinter) Version(v versionInfo) {
	fmt.Fprintf(s.w, "ivtree Version: %s\n", v.Version)
	fmt.Fprintf(s.w, "Git SHA: %s\n", v.GitSHA)
	fmt.Fprintf(s.w, "Go Version: %s\n", v.GoVersion)
	fmt.Fprintf(s.w, "Go OS/Arch: %s\n", v.GoOSArch)
}
