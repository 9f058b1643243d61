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
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLogFormat(t *testing.T) {
	tests := []struct {
		given       string
		want        string
		errExpected bool
	}{
		{"json", JSONLogFormat, false},
		{"console", ConsoleLogFormat, false},
		{"", JSONLogFormat, false},
		{"konsole", "", true},
	}

	for i, tt := range tests {
		got, err := ConvertToZapFormat(tt.given)
		assert.Equal(t, tt.want, got, "#%d", i)
		if tt.errExpected {
			assert.Error(t, err, "#%d", i)
		} else {
			assert.NoError(t, err, "#%d", i)
		}
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		given       string
		want        zapcore.Level
		errExpected bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"", zapcore.InfoLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for i, tt := range tests {
		got, err := ConvertToZapLevel(tt.given)
		assert.Equal(t, tt.want, got, "#%d", i)
		if tt.errExpected {
			assert.Error(t, err, "#%d", i)
		} else {
			assert.NoError(t, err, "#%d", i)
		}
	}
}
