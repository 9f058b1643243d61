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
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ivtree/ivtree/pkg/cobrautl"
	"github.com/ivtree/ivtree/pkg/dataset"
	"github.com/ivtree/ivtree/pkg/flags"
	"github.com/ivtree/ivtree/pkg/logutil"
)

// EnvPrefix prefixes the environment variables that may stand in for flags.
const EnvPrefix = "IVTREE"

// GlobalFlags are flags that defined globally
// and are inherited to all sub-commands.
type GlobalFlags struct {
	File         string
	Kind         *flags.SelectiveStringValue
	OutputFormat *flags.SelectiveStringValue

	LogLevel  string
	LogFormat string
}

var display printer = &simplePrinter{}

var globalFlags GlobalFlags

func RegisterGlobalFlags(cmd *cobra.Command) {
	globalFlags = GlobalFlags{
		Kind:         flags.NewSelectiveStringValue(dataset.Kinds...),
		OutputFormat: flags.NewSelectiveStringValue("simple", "json", "table"),
	}
	cmd.PersistentFlags().StringVarP(&globalFlags.File, "file", "f", "", "dataset file (.csv, .json, .yaml)")
	cmd.PersistentFlags().Var(globalFlags.Kind, "kind", fmt.Sprintf("point kind of the dataset, overrides the file's own (%s)", joinValids(globalFlags.Kind)))
	cmd.PersistentFlags().VarP(globalFlags.OutputFormat, "write-out", "w", fmt.Sprintf("set the output format (%s)", joinValids(globalFlags.OutputFormat)))
	cmd.PersistentFlags().StringVar(&globalFlags.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&globalFlags.LogFormat, "log-format", logutil.DefaultLogFormat, "log format (json, console)")
}

func joinValids(ss *flags.SelectiveStringValue) string {
	return strings.Join(ss.Valids(), ", ")
}

// mustLoggerFromCmd applies environment overrides to the command's flags,
// then builds the logger and the output printer they select.
func mustLoggerFromCmd(cmd *cobra.Command) *zap.Logger {
	envLg, err := logutil.CreateDefaultZapLogger(zap.WarnLevel)
	if err != nil {
		cobrautl.ExitWithError(cobrautl.ExitError, err)
	}
	if err = flags.SetPflagsFromEnv(envLg, EnvPrefix, cmd.Flags()); err != nil {
		cobrautl.ExitWithError(cobrautl.ExitBadArgs, err)
	}

	lg, err := logutil.CreateZapLogger(globalFlags.LogLevel, globalFlags.LogFormat)
	if err != nil {
		cobrautl.ExitWithError(cobrautl.ExitBadFeature, err)
	}
	initDisplayFromCmd(cmd)
	return lg
}

func initDisplayFromCmd(cmd *cobra.Command) {
	if display = NewPrinter(globalFlags.OutputFormat.String(), cmd.OutOrStdout()); display == nil {
		cobrautl.ExitWithError(cobrautl.ExitBadFeature, errors.New("unsupported output format"))
	}
}

// kindFromCmd returns the --kind value when it was given, or "" to keep the
// dataset's own kind.
func kindFromCmd(cmd *cobra.Command) string {
	if cmd.Flags().Changed("kind") {
		return globalFlags.Kind.String()
	}
	return ""
}

func mustTreeFromCmd(cmd *cobra.Command) treeView {
	lg := mustLoggerFromCmd(cmd)
	if globalFlags.File == "" {
		cobrautl.ExitWithError(cobrautl.ExitBadArgs, errors.New("no dataset given, use --file"))
	}
	tv, err := loadTree(lg, globalFlags.File, kindFromCmd(cmd))
	if err != nil {
		cobrautl.ExitWithError(cobrautl.ExitInvalidInput, err)
	}
	return tv
}
