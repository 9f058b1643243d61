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
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/ivtree/ivtree/pkg/adt"
	"github.com/ivtree/ivtree/pkg/checker"
	"github.com/ivtree/ivtree/pkg/cobrautl"
	"github.com/ivtree/ivtree/pkg/logutil"
	"github.com/ivtree/ivtree/pkg/report"
)

// compareSample bounds the queries whose counts are cross-checked after the
// timed runs.
const compareSample = 1000

type benchConfig struct {
	intervals int
	queries   int
	maxPoint  int64
	maxLength int64
	seed      int64
	progress  bool
}

var benchCfg benchConfig

// NewBenchCommand returns the cobra command for "bench".
func NewBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Times intersection queries on random intervals against every checker",
		Long: `Generates random integer intervals, loads them into the interval tree,
a b-tree scan and a brute-force list, then times the same intersection queries
against each. The checkers must agree on every answer.`,
		Run: benchCommandFunc,
	}
	cmd.Flags().IntVar(&benchCfg.intervals, "intervals", 10000, "number of stored intervals")
	cmd.Flags().IntVar(&benchCfg.queries, "queries", 10000, "number of query intervals")
	cmd.Flags().Int64Var(&benchCfg.maxPoint, "max-point", 1000000, "largest low endpoint")
	cmd.Flags().Int64Var(&benchCfg.maxLength, "max-length", 1000, "largest interval length")
	cmd.Flags().Int64Var(&benchCfg.seed, "seed", 0, "random seed, 0 picks one from the clock")
	cmd.Flags().BoolVar(&benchCfg.progress, "progress", true, "show a progress bar on stderr")
	return cmd
}

func benchCommandFunc(cmd *cobra.Command, args []string) {
	if len(args) != 0 {
		cobrautl.ExitWithError(cobrautl.ExitBadArgs, errors.New("bench command takes no arguments"))
	}
	if err := benchCfg.validate(); err != nil {
		cobrautl.ExitWithError(cobrautl.ExitBadArgs, err)
	}
	lg := mustLoggerFromCmd(cmd)
	rs, err := runBench(lg, benchCfg, cmd.ErrOrStderr())
	if err != nil {
		cobrautl.ExitWithError(cobrautl.ExitError, err)
	}
	display.Bench(rs)
}

func (cfg benchConfig) validate() error {
	switch {
	case cfg.intervals < 0:
		return fmt.Errorf("--intervals must not be negative, got %d", cfg.intervals)
	case cfg.queries < 0:
		return fmt.Errorf("--queries must not be negative, got %d", cfg.queries)
	case cfg.maxPoint < 0:
		return fmt.Errorf("--max-point must not be negative, got %d", cfg.maxPoint)
	case cfg.maxLength < 0:
		return fmt.Errorf("--max-length must not be negative, got %d", cfg.maxLength)
	}
	return nil
}

// runBench times every checker on the same generated workload. It fails
// when two checkers answer any query differently.
func runBench(lg *zap.Logger, cfg benchConfig, progress io.Writer) ([]report.Stats, error) {
	lg = logutil.OrNop(lg)
	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	xs := checker.RandomIntervals(r, cfg.intervals, cfg.maxPoint, cfg.maxLength)
	ys := checker.RandomIntervals(r, cfg.queries, cfg.maxPoint, cfg.maxLength)
	lg.Info(
		"generated benchmark workload",
		zap.Int64("seed", seed),
		zap.Int("intervals", len(xs)),
		zap.Int("queries", len(ys)),
	)

	cs := checker.All[adt.Int64Comparable]()
	var (
		rs      []report.Stats
		refBits string
	)
	for i, c := range cs {
		start := time.Now()
		c.Load(xs)
		lg.Info("loaded checker", zap.String("checker", c.Name()), zap.Duration("took", time.Since(start)))

		bar := pb.New(len(ys))
		bar.Output = progress
		bar.NotPrint = !cfg.progress
		bar.Prefix(c.Name() + " ")
		bar.Format("Bom !")
		bar.Start()

		checks := make([]bool, len(ys))
		rep := report.New(c.Name())
		rep.Start()
		for j, q := range ys {
			qs := time.Now()
			checks[j] = c.Has(q)
			rep.Add(time.Since(qs), checks[j])
			bar.Increment()
		}
		rep.Finish()
		bar.Finish()

		bits := checker.Bits(checks)
		if i == 0 {
			refBits = bits
		} else if bits != refBits {
			return nil, fmt.Errorf("checker %s disagrees with %s (seed %d)", c.Name(), cs[0].Name(), seed)
		}
		rs = append(rs, rep.Stats())
	}

	sample := ys
	if len(sample) > compareSample {
		sample = sample[:compareSample]
	}
	if err := checker.Compare(cs, xs, sample); err != nil {
		return nil, fmt.Errorf("%w (seed %d)", err, seed)
	}
	return rs, nil
}
