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

	"github.com/dadrus/pathindex/internal/router"
)

// NewLookupCommand represents the "lookup" command.
func NewLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup PATH...",
		Short: "Looks up the routes matching the given paths",
		Long: "Looks up the routes matching the given paths and prints one JSON document per path.\n" +
			"A path without a matching route results in null.",
		Example: "pathindex lookup -c config.yaml /users/42 /files/a/b",
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runLookup(cmd, args); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}
		},
	}
}

func runLookup(cmd *cobra.Command, paths []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}

	for _, path := range paths {
		var route *router.Route

		if route, err = app.repo.Lookup(path); err != nil {
			return err
		}

		if err = writeJSON(cmd.OutOrStdout(), route); err != nil {
			return err
		}
	}

	return nil
}
