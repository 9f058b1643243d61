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
// Package ivtreectl contains the main entry point for the ivtree command line tool.
package ivtreectl

import (
	"github.com/spf13/cobra"

	"github.com/ivtree/ivtree/ivtreectl/command"
	"github.com/ivtree/ivtree/pkg/cobrautl"
)

const (
	cliName        = "ivtree"
	cliDescription = "Query closed intervals loaded from a dataset file."
)

var rootCmd = &cobra.Command{
	Use:        cliName,
	Short:      cliDescription,
	SuggestFor: []string{"ivtree"},
}

func init() {
	command.RegisterGlobalFlags(rootCmd)

	rootCmd.AddCommand(
		command.NewQueryCommand(),
		command.NewCountCommand(),
		command.NewHasCommand(),
		command.NewKeysCommand(),
		command.NewStatsCommand(),
		command.NewBenchCommand(),
		command.NewVersionCommand(),
	)
}

func Start() error {
	// Make help just show the usage
	rootCmd.SetHelpTemplate(`{{.UsageString}}`)
	return rootCmd.Execute()
}

func MustStart() {
	if err := Start(); err != nil {
		cobrautl.ExitWithError(cobrautl.ExitError, err)
	}
}

func init() {
	cobra.EnablePrefixMatching = true
}
