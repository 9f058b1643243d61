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

// Package report summarizes query latencies of a benchmark run.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jonboulle/clockwork"
)

const (
	barChar = "∎"
	// histogram bucket count
	buckets = 10
)

var pctls = []int{10, 25, 50, 75, 90, 95, 99}

// Report collects the duration of every query issued against one checker.
type Report struct {
	name  string
	clock clockwork.Clock
	start time.Time
	total time.Duration
	lats  []float64
	hits  int
}

// Stats is the summary of a finished Report. Latencies are in seconds.
type Stats struct {
	Name      string
	Queries   int
	Hits      int
	Total     time.Duration
	Fastest   float64
	Slowest   float64
	Average   float64
	QPS       float64
	Latencies []Percentile
	Histogram []Bucket
}

type Percentile struct {
	Pctl    int
	Seconds float64
}

type Bucket struct {
	Mark  float64
	Count int
}

func New(name string) *Report {
	return NewWithClock(name, clockwork.NewRealClock())
}

// NewWithClock is like New but measures the run's total time on clock.
func NewWithClock(name string, clock clockwork.Clock) *Report {
	return &Report{name: name, clock: clock}
}

// Start marks the beginning of the measured run.
func (r *Report) Start() { r.start = r.clock.Now() }

// Add records one query; hit tells whether it found an intersection.
func (r *Report) Add(d time.Duration, hit bool) {
	r.lats = append(r.lats, d.Seconds())
	if hit {
		r.hits++
	}
}

// Finish marks the end of the measured run.
func (r *Report) Finish() { r.total = r.clock.Since(r.start) }

// Stats computes the summary; the report may keep collecting afterwards.
func (r *Report) Stats() Stats {
	s := Stats{Name: r.name, Queries: len(r.lats), Hits: r.hits, Total: r.total}
	if len(r.lats) == 0 {
		return s
	}
	lats := append([]float64(nil), r.lats...)
	sort.Float64s(lats)

	var sum float64
	for _, l := range lats {
		sum += l
	}
	s.Fastest = lats[0]
	s.Slowest = lats[len(lats)-1]
	s.Average = sum / float64(len(lats))
	if r.total > 0 {
		s.QPS = float64(len(lats)) / r.total.Seconds()
	}
	s.Latencies = percentiles(lats)
	s.Histogram = histogram(lats, s.Fastest, s.Slowest)
	return s
}

func percentiles(lats []float64) []Percentile {
	data := make([]Percentile, 0, len(pctls))
	j := 0
	for i := 0; i < len(lats) && j < len(pctls); i++ {
		current := i * 100 / len(lats)
		if current >= pctls[j] {
			data = append(data, Percentile{Pctl: pctls[j], Seconds: lats[i]})
			j++
		}
	}
	return data
}

func histogram(lats []float64, fastest, slowest float64) []Bucket {
	hist := make([]Bucket, buckets+1)
	bs := (slowest - fastest) / float64(buckets)
	for i := 0; i < buckets; i++ {
		hist[i].Mark = fastest + bs*float64(i)
	}
	hist[buckets].Mark = slowest
	var bi int
	for i := 0; i < len(lats); {
		if lats[i] <= hist[bi].Mark {
			i++
			hist[bi].Count++
		} else if bi < len(hist)-1 {
			bi++
		} else {
			// float rounding left lats[i] above the last mark
			hist[bi].Count++
			i++
		}
	}
	return hist
}

// Print writes the summary in the layout of the etcd benchmark tool.
func (s Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "\nSummary (%s):\n", s.Name)
	fmt.Fprintf(w, "  Queries:\t%s (%s hits)\n", humanize.Comma(int64(s.Queries)), humanize.Comma(int64(s.Hits)))
	if s.Queries == 0 {
		return
	}
	fmt.Fprintf(w, "  Total:\t%4.4f secs.\n", s.Total.Seconds())
	fmt.Fprintf(w, "  Slowest:\t%4.4f secs.\n", s.Slowest)
	fmt.Fprintf(w, "  Fastest:\t%4.4f secs.\n", s.Fastest)
	fmt.Fprintf(w, "  Average:\t%4.4f secs.\n", s.Average)
	fmt.Fprintf(w, "  Queries/sec:\t%s\n", humanize.CommafWithDigits(s.QPS, 4))
	s.printHistogram(w)
	s.printLatencies(w)
}

func (s Stats) printLatencies(w io.Writer) {
	fmt.Fprintf(w, "\nLatency distribution:\n")
	for _, p := range s.Latencies {
		if p.Seconds > 0 {
			fmt.Fprintf(w, "  %v%% in %4.4f secs.\n", p.Pctl, p.Seconds)
		}
	}
}

func (s Stats) printHistogram(w io.Writer) {
	max := 0
	for _, b := range s.Histogram {
		if b.Count > max {
			max = b.Count
		}
	}
	fmt.Fprintf(w, "\nResponse time histogram:\n")
	for _, b := range s.Histogram {
		// Normalize bar lengths.
		var barLen int
		if max > 0 {
			barLen = b.Count * 40 / max
		}
		fmt.Fprintf(w, "  %4.6f [%v]\t|%v\n", b.Mark, b.Count, strings.Repeat(barChar, barLen))
	}
}
