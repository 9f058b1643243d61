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
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// lockedBuffer is written by the progress bar's refresh goroutine.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunBench(t *testing.T) {
	cfg := benchConfig{intervals: 500, queries: 300, maxPoint: 2000, maxLength: 40, seed: 11}
	rs, err := runBench(zaptest.NewLogger(t), cfg, &bytes.Buffer{})
	require.NoError(t, err)
	require.Len(t, rs, 3)
	for _, r := range rs {
		assert.Equal(t, 300, r.Queries)
		assert.Equal(t, rs[0].Hits, r.Hits, r.Name)
		assert.LessOrEqual(t, r.Fastest, r.Slowest, r.Name)
	}

	again, err := runBench(zaptest.NewLogger(t), cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, rs[0].Hits, again[0].Hits)
}

func TestRunBenchProgress(t *testing.T) {
	var progress lockedBuffer
	cfg := benchConfig{intervals: 10, queries: 10, maxPoint: 100, maxLength: 5, seed: 1, progress: true}
	_, err := runBench(nil, cfg, &progress)
	require.NoError(t, err)
	assert.Contains(t, progress.String(), "interval-tree")
}

func TestRunBenchEmpty(t *testing.T) {
	rs, err := runBench(zaptest.NewLogger(t), benchConfig{seed: 5}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Len(t, rs, 3)
	for _, r := range rs {
		assert.Zero(t, r.Queries)
		assert.Zero(t, r.Hits)
	}
}

func TestBenchConfigValidate(t *testing.T) {
	assert.NoError(t, benchConfig{}.validate())
	for _, cfg := range []benchConfig{
		{intervals: -1},
		{queries: -1},
		{maxPoint: -1},
		{maxLength: -1},
	} {
		assert.Error(t, cfg.validate(), "%+v", cfg)
	}
}
