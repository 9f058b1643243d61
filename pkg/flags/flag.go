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

// Package flags implements command-line flag parsing.
package flags

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// SetPflagsFromEnv sets every flag of fs that was not given on the command
// line from its environment variable. Variable names take the flag name in
// upper case, prefixed with prefix and an underscore, with dashes replaced by
// underscores: "log-level" => "IVTREE_LOG_LEVEL".
func SetPflagsFromEnv(lg *zap.Logger, prefix string, fs *pflag.FlagSet) error {
	var err error
	alreadySet := make(map[string]bool)
	usedEnvKey := make(map[string]bool)
	fs.VisitAll(func(f *pflag.Flag) {
		key := FlagToEnv(prefix, f.Name)
		if f.Changed {
			alreadySet[key] = true
			return
		}
		val := os.Getenv(key)
		if val == "" {
			return
		}
		usedEnvKey[key] = true
		if serr := fs.Set(f.Name, val); serr != nil {
			err = fmt.Errorf("invalid value %q for %s: %w", val, key, serr)
			return
		}
		if lg != nil {
			lg.Debug(
				"recognized and used environment variable",
				zap.String("variable-name", key),
				zap.String("variable-value", val),
			)
		}
	})
	verifyEnv(lg, prefix, usedEnvKey, alreadySet)
	return err
}

// FlagToEnv converts flag string to upper-case environment variable key string.
func FlagToEnv(prefix, name string) string {
	return prefix + "_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func verifyEnv(lg *zap.Logger, prefix string, usedEnvKey, alreadySet map[string]bool) {
	if lg == nil {
		return
	}
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) != 2 || !strings.HasPrefix(kv[0], prefix+"_") {
			continue
		}
		switch {
		case usedEnvKey[kv[0]]:
		case alreadySet[kv[0]]:
			lg.Warn(
				"environment variable is shadowed by corresponding command-line flag",
				zap.String("environment-variable", kv[0]),
			)
		default:
			lg.Warn("unrecognized environment variable", zap.String("environment-variable", env))
		}
	}
}
