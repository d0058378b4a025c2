// Copyright 2025 go-thermal Authors
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

package app

import (
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-thermal/internal/cpuinfo"
)

func newCPUInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Show detected CPU features and the selected response kernel",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cpuinfo.Report(cmd.OutOrStdout())
		},
	}
}
