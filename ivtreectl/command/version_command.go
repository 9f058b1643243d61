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
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ivtree/ivtree/version"
)

type versionInfo struct {
	Version   string `json:"version"`
	GitSHA    string `json:"git_sha"`
	GoVersion string `json:"go_version"`
	GoOSArch  string `json:"go_os_arch"`
}

func currentVersion() versionInfo {
	return versionInfo{
		Version:   version.Version,
		GitSHA:    version.GitSHA,
		GoVersion: runtime.Version(),
		GoOSArch:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// NewVersionCommand prints out the version of ivtree.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version of ivtree",
		Run:   versionCommandFunc,
	}
}

func versionCommandFunc(cmd *cobra.Command, args []string) {
	mustLoggerFromCmd(cmd)
	display.Version(currentVersion())
}
