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

package flags

import (
	"github.com/spf13/cobra"

	"github.com/dadrus/pathindex/internal/config"
	"github.com/dadrus/pathindex/internal/config/parser"
	"github.com/dadrus/pathindex/internal/repository"
)

// ConfigLoader returns a loader for the configuration referenced by the global flags
// of the given command.
func ConfigLoader(cmd *cobra.Command) repository.ConfigLoader {
	envPrefix, _ := cmd.Flags().GetString(EnvironmentConfigPrefix)
	configPath, _ := cmd.Flags().GetString(Config)

	var opts []parser.Option

	if cmd.Flags().Changed(Strict) {
		strict, _ := cmd.Flags().GetBool(Strict)
		opts = append(opts, parser.WithOverride("strict", strict))
	}

	return func() (*config.Configuration, error) {
		return config.NewConfiguration(
			config.EnvVarPrefix(envPrefix),
			config.ConfigurationPath(configPath),
			opts...,
		)
	}
}
