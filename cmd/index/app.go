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
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dadrus/pathindex/cmd/flags"
	"github.com/dadrus/pathindex/internal/config"
	"github.com/dadrus/pathindex/internal/logging"
	"github.com/dadrus/pathindex/internal/repository"
)

type application struct {
	conf   *config.Configuration
	repo   *repository.Repository
	logger zerolog.Logger
}

func newApp(cmd *cobra.Command) (*application, error) {
	load := flags.ConfigLoader(cmd)

	conf, err := load()
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(conf.Log)

	repo, err := repository.New(load, logger)
	if err != nil {
		return nil, err
	}

	return &application{conf: conf, repo: repo, logger: logger}, nil
}
