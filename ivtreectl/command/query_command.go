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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivtree/ivtree/pkg/cobrautl"
)

// NewQueryCommand returns the cobra command for "query".
func NewQueryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "query <low> [high]",
		Short: "Lists the stored intervals that intersect [low, high]",
		Long:  "Lists the stored intervals that intersect [low, high] in ascending order. A single endpoint queries a point.",
		Run:   queryCommandFunc,
	}
}

// NewCountCommand returns the cobra command for "count".
func NewCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count <low> [high]",
		Short: "Counts the stored intervals that intersect [low, high]",
		Run:   countCommandFunc,
	}
}

// NewHasCommand returns the cobra command for "has".
func NewHasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "has <low> [high]",
		Short: "Reports whether any stored interval intersects [low, high]",
		Run:   hasCommandFunc,
	}
}

func queryCommandFunc(cmd *cobra.Command, args []string) {
	low, high := mustEndpointsFromArgs(cmd.Name(), args)
	tv := mustTreeFromCmd(cmd)
	ps, err := tv.query(low, high)
	if err != nil {
		cobrautl.ExitWithError(cobrautl.ExitBadArgs, err)
	}
	display.Pairs(ps)
}

func countCommandFunc(cmd *cobra.Command, args []string) {
	low, high := mustEndpointsFromArgs(cmd.Name(), args)
	tv := mustTreeFromCmd(cmd)
	n, err := tv.count(low, high)
	if err != nil {
		cobrautl.ExitWithError(cobrautl.ExitBadArgs, err)
	}
	display.Count(n)
}

func hasCommandFunc(cmd *cobra.Command, args []string) {
	low, high := mustEndpointsFromArgs(cmd.Name(), args)
	tv := mustTreeFromCmd(cmd)
	ok, err := tv.has(low, high)
	if err != nil {
		cobrautl.ExitWithError(cobrautl.ExitBadArgs, err)
	}
	display.Has(ok)
}

func mustEndpointsFromArgs(name string, args []string) (low, high string) {
	low, high, err := endpointsFromArgs(args)
	if err != nil {
		cobrautl.ExitWithError(cobrautl.ExitBadArgs, fmt.Errorf("%s: %w", name, err))
	}
	return low, high
}

// endpointsFromArgs reads a query interval from one or two arguments; a
// single argument is a point.
func endpointsFromArgs(args []string) (low, high string, err error) {
	switch len(args) {
	case 1:
		return args[0], args[0], nil
	case 2:
		return args[0], args[1], nil
	}
	return "", "", fmt.Errorf("expected one or two endpoints, got %d", len(args))
}
