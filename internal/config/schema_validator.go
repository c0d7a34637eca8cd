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
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/knadh/koanf/maps"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/pathindex/internal/pathindex"
	"github.com/dadrus/pathindex/internal/x/errorchain"
	"github.com/dadrus/pathindex/schema"
)

func ValidateConfigSchemaFile(configPath string) error {
	file, err := os.Open(configPath)
	if err != nil {
		return errorchain.NewWithMessagef(pathindex.ErrConfiguration,
			"failed to open %s", configPath).CausedBy(err)
	}

	defer file.Close()

	return ValidateConfigSchema(file)
}

func ValidateConfigSchema(src io.Reader) error {
	var conf map[string]any

	if err := yaml.NewDecoder(src).Decode(&conf); err != nil {
		// an empty file is a valid configuration
		if errors.Is(err, io.EOF) {
			return nil
		}

		return errorchain.NewWithMessage(pathindex.ErrConfiguration,
			"failed to parse config").CausedBy(err)
	}

	compiledSchema, err := compileSchema("config.schema.json", schema.ConfigSchema)
	if err != nil {
		return errorchain.NewWithMessage(pathindex.ErrInternal,
			"failed to compile JSON schema").CausedBy(err)
	}

	maps.IntfaceKeysToStrings(conf)

	if err = compiledSchema.Validate(conf); err != nil {
		return errorchain.New(pathindex.ErrConfiguration).CausedBy(err)
	}

	return nil
}

func compileSchema(url string, schemaContent []byte) (*jsonschema.Schema, error) {
	configSchema, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaContent))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(url, configSchema); err != nil {
		return nil, err
	}

	return compiler.Compile(url)
}
