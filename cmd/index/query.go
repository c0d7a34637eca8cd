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
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/dadrus/pathindex/cmd/flags"
	"github.com/dadrus/pathindex/internal/pathindex"
	"github.com/dadrus/pathindex/internal/router"
	"github.com/dadrus/pathindex/internal/watcher"
	"github.com/dadrus/pathindex/internal/x/errorchain"
)

const watchFlag = "watch"

// NewQueryCommand represents the "query" command.
func NewQueryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Answers queries read from stdin",
		Long: "Reads one query per line from stdin and writes one JSON document per query to stdout.\n" +
			"Supported queries are:\n" +
			"  lookup <path>     the route matching the path or null\n" +
			"  prefix <prefix>   all routes registered under the prefix\n" +
			"  insert <record>   registers the route given as JSON object\n" +
			"  remove <path>     removes the route registered under the path",
		Example: "echo 'lookup /users/42' | pathindex query -c config.yaml",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := runQuery(cmd, cmd.InOrStdin()); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}
		},
	}

	cmd.Flags().Bool(watchFlag, false, "Reloads the routes if the configuration or a route file changes")

	return cmd
}

func runQuery(cmd *cobra.Command, in io.Reader) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}

	if watch, _ := cmd.Flags().GetBool(watchFlag); watch {
		stop, err := watchFiles(cmd, app)
		if err != nil {
			return err
		}

		defer stop()
	}

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		if err = answer(app, out, line); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func watchFiles(cmd *cobra.Command, app *application) (func(), error) {
	w, err := watcher.New(app.logger)
	if err != nil {
		return nil, err
	}

	files := app.conf.RouteFiles
	if configPath, _ := cmd.Flags().GetString(flags.Config); len(configPath) != 0 {
		files = append([]string{configPath}, files...)
	}

	for _, file := range files {
		if err = w.Add(file, app.repo); err != nil {
			_ = w.Stop(context.Background())

			return nil, err
		}
	}

	w.Start(cmd.Context())

	return func() {
		if err := w.Stop(context.Background()); err != nil {
			app.logger.Warn().Err(err).Msg("Failed to stop file watcher")
		}
	}, nil
}

// answer writes the answer to a single query. Errors caused by the query are written
// as answer, only failures writing the answer are returned.
func answer(app *application, out io.Writer, line string) error {
	op, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	var (
		result any
		err    error
	)

	switch op {
	case "lookup":
		result, err = app.repo.Lookup(arg)
	case "prefix":
		result, err = app.repo.StartsWith(arg)
	case "remove":
		var removed bool

		removed, err = app.repo.Remove(arg)
		result = removeResponse{Removed: removed}
	case "insert":
		err = insert(app, arg)
		result = insertResponse{Inserted: err == nil}
	default:
		err = errorchain.NewWithMessagef(pathindex.ErrArgument, "unsupported query %q", op)
	}

	if err != nil {
		app.logger.Debug().Err(err).Str("_query", line).Msg("Query failed")

		return writeError(out, err)
	}

	return writeJSON(out, result)
}

func insert(app *application, arg string) error {
	var record map[string]any

	if err := json.Unmarshal([]byte(arg), &record); err != nil {
		return errorchain.NewWithMessage(router.ErrInvalidInput,
			"route must be a JSON object").CausedBy(err)
	}

	route, err := router.RouteFromMap(record)
	if err != nil {
		return err
	}

	return app.repo.Insert(route)
}
