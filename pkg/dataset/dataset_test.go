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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoadCSV(t *testing.T) {
	p := writeFile(t, "ivs.csv", "low,high,value\n6,8,val0\n1, 4,val1\n# comment\n2,3\n")
	ds, err := Load(zaptest.NewLogger(t), p)
	require.NoError(t, err)
	assert.Equal(t, p, ds.Path)
	assert.Equal(t, KindInt, ds.Kind)
	assert.Equal(t, []Record{
		{Low: "6", High: "8", Value: "val0"},
		{Low: "1", High: "4", Value: "val1"},
		{Low: "2", High: "3"},
	}, ds.Records)
}

func TestReadCSVNoHeader(t *testing.T) {
	recs, err := ReadCSV(strings.NewReader("1,2,a\n3,4,b\n"))
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	_, err = ReadCSV(strings.NewReader("1,2,a\n3\n"))
	require.ErrorIs(t, err, ErrBadRecord)

	_, err = ReadCSV(strings.NewReader("1,2,a,b\n"))
	require.ErrorIs(t, err, ErrBadRecord)
}

func TestLoadJSON(t *testing.T) {
	p := writeFile(t, "ivs.json", `{"kind": "float", "intervals": [
		{"low": 1.5, "high": 2.25, "value": "a"},
		{"low": "3", "high": 4, "value": 5}
	]}`)
	ds, err := Load(nil, p)
	require.NoError(t, err)
	assert.Equal(t, KindFloat, ds.Kind)
	assert.Equal(t, []Record{
		{Low: "1.5", High: "2.25", Value: "a"},
		{Low: "3", High: "4", Value: "5"},
	}, ds.Records)
}

func TestLoadYAML(t *testing.T) {
	p := writeFile(t, "ivs.yaml", `kind: time
intervals:
- low: "2020-01-01T00:00:00Z"
  high: "2020-01-05T00:00:00Z"
  value: first
- {low: "2020-01-03T00:00:00Z", high: "2020-01-04T12:00:00+02:00"}
`)
	ds, err := Load(zaptest.NewLogger(t), p)
	require.NoError(t, err)
	assert.Equal(t, KindTime, ds.Kind)
	require.Len(t, ds.Records, 2)
	assert.Equal(t, "first", ds.Records[0].Value)
	assert.Equal(t, "2020-01-04T12:00:00+02:00", ds.Records[1].High)

	ivt, err := Build(nil, ds, ParseTime)
	require.NoError(t, err)
	assert.Equal(t, 2, ivt.Len())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(nil, writeFile(t, "ivs.txt", "1,2"))
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(nil, filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(nil, writeFile(t, "ivs.yml", "kind: complex\nintervals: []\n"))
	require.ErrorIs(t, err, ErrUnknownKind)

	_, err = Load(nil, writeFile(t, "ivs.yml", "intervals:\n- {low: 1}\n"))
	require.ErrorIs(t, err, ErrBadRecord)
	assert.Contains(t, err.Error(), "record 1")

	_, err = Load(nil, writeFile(t, "ivs.json", `{"intervals": [{"low": [1], "high": 2}]}`))
	require.ErrorIs(t, err, ErrBadRecord)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		s     string
		wkind Kind
		werr  bool
	}{
		{"", KindInt, false},
		{"int", KindInt, false},
		{"Float", KindFloat, false},
		{"time", KindTime, false},
		{"string", KindString, false},
		{"decimal", "", true},
	}
	for i, tt := range tests {
		k, err := ParseKind(tt.s)
		assert.Equal(t, tt.wkind, k, "#%d", i)
		assert.Equal(t, tt.werr, err != nil, "#%d: %v", i, err)
	}
}
