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

package logutil

import (
	"bytes"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type commonLogFields struct {
	Level     string `json:"level"`
	Timestamp string `json:"ts"`
	Message   string `json:"msg"`
}

const (
	fractionSecondsPrecision = 6 // MicroSeconds
)

func TestEncodeTimePrecisionToMicroSeconds(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	zc := zapcore.NewCore(
		zapcore.NewJSONEncoder(DefaultZapLoggerConfig.EncoderConfig),
		zapcore.AddSync(buf),
		zap.NewAtomicLevelAt(zap.InfoLevel),
	)

	lg := zap.New(zc)
	lg.Info("loaded dataset")
	fields := commonLogFields{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fields))
	assert.Equal(t, "info", fields.Level)
	assert.Equal(t, "loaded dataset", fields.Message)

	// 2024-06-06T23:37:21.948385Z or 2024-06-06T16:16:44.176778-0700
	re := regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.(\d+)(Z|[+-]\d{4})`)
	matches := re.FindStringSubmatch(fields.Timestamp)
	require.Len(t, matches, 3)
	require.Lenf(t, matches[1], fractionSecondsPrecision, "unexpected timestamp %s", fields.Timestamp)
}

func TestCreateZapLogger(t *testing.T) {
	lg, err := CreateZapLogger("debug", "console")
	require.NoError(t, err)
	assert.True(t, lg.Core().Enabled(zapcore.DebugLevel))

	lg, err = CreateDefaultZapLogger(zapcore.WarnLevel)
	require.NoError(t, err)
	assert.False(t, lg.Core().Enabled(zapcore.InfoLevel))

	_, err = CreateZapLogger("info", "xml")
	require.Error(t, err)
	_, err = CreateZapLogger("loud", "json")
	require.Error(t, err)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
	lg := zap.NewExample()
	assert.Same(t, lg, OrNop(lg))
}
