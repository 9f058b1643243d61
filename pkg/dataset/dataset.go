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

// Package dataset loads interval-value records from CSV, JSON and YAML files
// and builds interval trees from them.
package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"sigs.k8s.io/yaml"
)

var (
	ErrUnknownFormat = errors.New("dataset: unknown file format")
	ErrUnknownKind   = errors.New("dataset: unknown point kind")
	ErrBadRecord     = errors.New("dataset: malformed record")
)

// Kind names the point type of a dataset's endpoints.
type Kind string

const (
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindTime   Kind = "time"
	KindString Kind = "string"

	DefaultKind = KindInt
)

// Kinds lists the supported point kinds, default first.
var Kinds = []string{string(KindInt), string(KindFloat), string(KindTime), string(KindString)}

// ParseKind validates a kind name. The empty string selects DefaultKind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return DefaultKind, nil
	case KindInt, KindFloat, KindTime, KindString:
		return k, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
	}
}

// Record is one row of a dataset, with endpoints still in text form.
type Record struct {
	Low   string
	High  string
	Value string
}

// Dataset is a loaded file.
type Dataset struct {
	// Path is the file the records came from, if any.
	Path    string
	Kind    Kind
	Records []Record
}

// Load reads the dataset at path. The format follows the file extension:
// ".csv", ".json", ".yaml" or ".yml".
func Load(lg *zap.Logger, path string) (*Dataset, error) {
	if lg == nil {
		lg = zap.NewNop()
	}
	start := time.Now()

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	var ds *Dataset
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		var recs []Record
		if recs, err = ReadCSV(bytes.NewReader(b)); err == nil {
			ds = &Dataset{Kind: DefaultKind, Records: recs}
		}
	case ".json", ".yaml", ".yml":
		ds, err = ParseDocument(b)
	default:
		return nil, fmt.Errorf("%w %q (%s)", ErrUnknownFormat, ext, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ds.Path = path

	lg.Info(
		"loaded dataset",
		zap.String("path", path),
		zap.String("kind", string(ds.Kind)),
		zap.Int("records", len(ds.Records)),
		zap.Duration("took", time.Since(start)),
	)
	return ds, nil
}

var csvHeader = []string{"low", "high", "value"}

func isHeader(row []string) bool {
	for i, f := range row {
		if i >= len(csvHeader) || !strings.EqualFold(strings.TrimSpace(f), csvHeader[i]) {
			return false
		}
	}
	return len(row) >= 2
}

// ReadCSV reads "low,high[,value]" rows. A leading "low,high,value" header
// row is skipped.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var recs []Record
	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		if line == 1 && isHeader(row) {
			continue
		}
		if len(row) < 2 || len(row) > 3 {
			return nil, fmt.Errorf("%w: record %d has %d fields, expected low,high[,value]", ErrBadRecord, len(recs)+1, len(row))
		}
		rec := Record{Low: strings.TrimSpace(row[0]), High: strings.TrimSpace(row[1])}
		if len(row) == 3 {
			rec.Value = row[2]
		}
		recs = append(recs, rec)
	}
}

// text accepts a JSON string or number and keeps its textual form.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected a string or a number, got %s", b)
	}
	*t = text(n.String())
	return nil
}

type document struct {
	Kind      string `json:"kind,omitempty"`
	Intervals []struct {
		Low   *text `json:"low"`
		High  *text `json:"high"`
		Value text  `json:"value,omitempty"`
	} `json:"intervals"`
}

// ParseDocument parses a JSON or YAML document of the form
//
//	kind: int
//	intervals:
//	- {low: 1, high: 4, value: a}
func ParseDocument(b []byte) (*Dataset, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	kind, err := ParseKind(doc.Kind)
	if err != nil {
		return nil, err
	}
	ds := &Dataset{Kind: kind, Records: make([]Record, 0, len(doc.Intervals))}
	for i, iv := range doc.Intervals {
		if iv.Low == nil || iv.High == nil {
			return nil, fmt.Errorf("%w: record %d needs both low and high", ErrBadRecord, i+1)
		}
		ds.Records = append(ds.Records, Record{Low: string(*iv.Low), High: string(*iv.High), Value: string(iv.Value)})
	}
	return ds, nil
}
