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

package parser

import (
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/v2"

	"github.com/dadrus/pathindex/internal/pathindex"
	"github.com/dadrus/pathindex/internal/x/errorchain"
)

type ConfigLoader interface {
	Load(config any) error
}

func New(opts ...Option) ConfigLoader {
	loader := &configLoader{}

	for _, opt := range opts {
		opt(&loader.o)
	}

	return loader
}

type configLoader struct {
	o opts
}

// Load fills the given struct. The values already present in it serve as defaults,
// which are overridden by the values from the config file, these by the values
// from the environment and finally by explicitly set overrides.
func (c *configLoader) Load(config any) error {
	if len(c.o.configFile) != 0 {
		if _, err := os.Stat(c.o.configFile); err != nil {
			return errorchain.NewWithMessagef(pathindex.ErrConfiguration,
				"config file %s not accessible", c.o.configFile).CausedBy(err)
		}

		if c.o.validate != nil {
			if err := c.o.validate(c.o.configFile); err != nil {
				return err
			}
		}
	}

	parser, err := koanfFromStruct(config)
	if err != nil {
		return err
	}

	if len(c.o.configFile) != 0 {
		konf, err := koanfFromYaml(c.o.configFile)
		if err != nil {
			return err
		}

		if err = parser.Merge(konf); err != nil {
			return errorchain.NewWithMessage(pathindex.ErrConfiguration,
				"failed to merge config file").CausedBy(err)
		}
	}

	if len(c.o.envPrefix) != 0 {
		konf, err := koanfFromEnv(c.o.envPrefix)
		if err != nil {
			return err
		}

		if err = parser.Merge(konf); err != nil {
			return errorchain.NewWithMessage(pathindex.ErrConfiguration,
				"failed to merge environment variables").CausedBy(err)
		}
	}

	if len(c.o.overrides) != 0 {
		konf, err := koanfFromOverrides(c.o.overrides)
		if err != nil {
			return err
		}

		if err = parser.Merge(konf); err != nil {
			return errorchain.NewWithMessage(pathindex.ErrConfiguration,
				"failed to merge configuration overrides").CausedBy(err)
		}
	}

	if err := parser.UnmarshalWithConf("", config, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(c.o.decodeHooks...),
			Metadata:         nil,
			Result:           config,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return errorchain.NewWithMessage(pathindex.ErrConfiguration,
			"failed to decode configuration").CausedBy(err)
	}

	return nil
}
