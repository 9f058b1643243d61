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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ivtree/ivtree/pkg/adt"
	"github.com/ivtree/ivtree/pkg/dataset"
)

const sampleCSV = `low,high,value
6,8,val0
1,4,val1
2,3,val2
5,12,val3
1,1,val4
3,5,val5
5,7,val6
`

func writeDataset(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoadTreeQuery(t *testing.T) {
	tv, err := loadTree(zaptest.NewLogger(t), writeDataset(t, "ivs.csv", sampleCSV), "")
	require.NoError(t, err)

	ps, err := tv.query("2", "3")
	require.NoError(t, err)
	assert.Equal(t, []pair{
		{Low: "1", High: "4", Value: "val1"},
		{Low: "2", High: "3", Value: "val2"},
		{Low: "3", High: "5", Value: "val5"},
	}, ps)

	n, err := tv.count("5", "5")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	ok, err := tv.has("13", "20")
	require.NoError(t, err)
	assert.False(t, ok)

	ps, err = tv.query("13", "20")
	require.NoError(t, err)
	assert.Empty(t, ps)
	assert.NotNil(t, ps)
}

func TestLoadTreeBadQuery(t *testing.T) {
	tv, err := loadTree(nil, writeDataset(t, "ivs.csv", sampleCSV), "")
	require.NoError(t, err)

	_, err = tv.query("x", "3")
	require.ErrorIs(t, err, dataset.ErrBadPoint)
	_, err = tv.count("4", "2")
	require.ErrorIs(t, err, adt.ErrInvalidRange)
	_, err = tv.has("1", "")
	require.ErrorIs(t, err, dataset.ErrBadPoint)
}

func TestLoadTreeKeysAndStats(t *testing.T) {
	p := writeDataset(t, "ivs.csv", sampleCSV)
	tv, err := loadTree(nil, p, "")
	require.NoError(t, err)

	var got []string
	for _, k := range tv.keys() {
		got = append(got, k.Value)
	}
	assert.Equal(t, []string{"val4", "val1", "val2", "val5", "val6", "val3", "val0"}, got)

	st := tv.stats()
	assert.Equal(t, p, st.File)
	assert.Equal(t, "int", st.Kind)
	assert.Equal(t, 7, st.Size)
	assert.False(t, st.Empty)
	assert.Positive(t, st.Height)
	assert.LessOrEqual(t, st.Height, st.MaxHeight)
}

func TestLoadTreeKindOverride(t *testing.T) {
	p := writeDataset(t, "ivs.csv", "1.5,2.5,a\n2.5,4,b\n")

	_, err := loadTree(nil, p, "")
	require.ErrorIs(t, err, dataset.ErrBadPoint)

	tv, err := loadTree(nil, p, "float")
	require.NoError(t, err)
	ps, err := tv.query("2.5", "2.5")
	require.NoError(t, err)
	assert.Equal(t, []pair{
		{Low: "1.5", High: "2.5", Value: "a"},
		{Low: "2.5", High: "4", Value: "b"},
	}, ps)

	_, err = loadTree(nil, p, "complex")
	require.ErrorIs(t, err, dataset.ErrUnknownKind)
}

func TestLoadTreeTime(t *testing.T) {
	p := writeDataset(t, "days.json", `{"kind": "time", "intervals": [
		{"low": "2020-01-01T00:00:00Z", "high": "2020-01-03T00:00:00Z", "value": "first"},
		{"low": "2020-01-05T00:00:00Z", "high": "2020-01-06T12:30:00.5Z", "value": "second"}
	]}`)
	tv, err := loadTree(nil, p, "")
	require.NoError(t, err)
	assert.Equal(t, "time", tv.stats().Kind)

	ps, err := tv.query("2020-01-02T00:00:00+02:00", "2020-01-05T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, []pair{
		{Low: "2020-01-01T00:00:00Z", High: "2020-01-03T00:00:00Z", Value: "first"},
		{Low: "2020-01-05T00:00:00Z", High: "2020-01-06T12:30:00.5Z", Value: "second"},
	}, ps)
}

func TestLoadTreeString(t *testing.T) {
	p := writeDataset(t, "names.yaml", "kind: string\nintervals:\n- {low: apple, high: cherry, value: a-c}\n- {low: melon, high: peach, value: m-p}\n")
	tv, err := loadTree(nil, p, "")
	require.NoError(t, err)

	ok, err := tv.has("banana", "banana")
	require.NoError(t, err)
	assert.True(t, ok)
	n, err := tv.count("date", "lemon")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLoadTreeMissingFile(t *testing.T) {
	_, err := loadTree(nil, filepath.Join(t.TempDir(), "nope.csv"), "")
	require.ErrorIs(t, err, os.ErrNotExist)
}
