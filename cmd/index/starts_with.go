// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package index

import (
	"os"

	"github.com/spf13/cobra"
)

// NewStartsWithCommand represents the "starts-with" command.
func NewStartsWithCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "starts-with PREFIX",
		Short:   "Lists all routes registered under the given prefix",
		Example: "pathindex starts-with -c config.yaml /api/v",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runStartsWith(cmd, args[0]); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}
		},
	}
}

func runStartsWith(cmd *cobra.Command, prefix string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}

	routes, err := app.repo.StartsWith(prefix)
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), routes)
}
