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

	"github.com/spf13/cobra"

	"github.com/ivtree/ivtree/pkg/cobrautl"
)

// NewKeysCommand returns the cobra command for "keys".
func NewKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Lists every stored interval in ascending order",
		Run:   keysCommandFunc,
	}
}

func keysCommandFunc(cmd *cobra.Command, args []string) {
	if len(args) != 0 {
		cobrautl.ExitWithError(cobrautl.ExitBadArgs, errors.New("keys command takes no arguments"))
	}
	display.Pairs(mustTreeFromCmd(cmd).keys())
}
