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

package config

import (
	"github.com/rs/zerolog"

	"github.com/dadrus/pathindex/internal/config/parser"
	"github.com/dadrus/pathindex/internal/pathindex"
	"github.com/dadrus/pathindex/internal/validation"
	"github.com/dadrus/pathindex/internal/x/errorchain"
)

type (
	EnvVarPrefix      string
	ConfigurationPath string
)

type Configuration struct {
	Strict     bool             `koanf:"strict"`
	Routes     []map[string]any `koanf:"routes"      validate:"dive,route_record"`
	RouteFiles []string         `koanf:"route_files" validate:"dive,required"`
	Log        LoggingConfig    `koanf:"log"`
}

func defaultConfig() Configuration {
	return Configuration{
		Log: LoggingConfig{
			Level:  zerolog.ErrorLevel,
			Format: LogTextFormat,
		},
	}
}

// NewConfiguration loads the configuration from the given file (if any) and the environment
// variables starting with the given prefix. Additional options, like overrides, are passed
// to the underlying loader.
func NewConfiguration(
	envPrefix EnvVarPrefix,
	configFile ConfigurationPath,
	opts ...parser.Option,
) (*Configuration, error) {
	validator, err := validation.NewValidator()
	if err != nil {
		return nil, errorchain.NewWithMessage(pathindex.ErrInternal,
			"failed to create validator").CausedBy(err)
	}

	result := defaultConfig()

	options := append([]parser.Option{
		parser.WithConfigFile(string(configFile)),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithConfigValidator(ValidateConfigSchemaFile),
	}, opts...)

	if err = parser.New(options...).Load(&result); err != nil {
		return nil, err
	}

	if err = validator.ValidateStruct(result); err != nil {
		return nil, errorchain.NewWithMessage(pathindex.ErrConfiguration,
			"invalid configuration").CausedBy(err)
	}

	return &result, nil
}
