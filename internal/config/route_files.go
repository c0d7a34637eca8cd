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
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/dadrus/pathindex/internal/encoding"
	"github.com/dadrus/pathindex/internal/pathindex"
	"github.com/dadrus/pathindex/internal/validation"
	"github.com/dadrus/pathindex/internal/x/errorchain"
)

type routeFile struct {
	Routes []map[string]any `koanf:"routes" validate:"dive,route_record"`
}

// routePathDecodeHookFunc expands a route given as plain string to a record holding
// just that path.
func routePathDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(map[string]any{}) {
		return data, nil
	}

	return map[string]any{"path": data}, nil
}

// LoadRouteFile reads the routes from the given file. The file is expected to be a YAML
// or a JSON document with a "routes" list. An entry of that list is either a route record
// or just the path of the route. References to environment variables are substituted
// before the content is parsed.
func LoadRouteFile(path string) ([]map[string]any, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errorchain.NewWithMessagef(pathindex.ErrConfiguration,
			"failed to read route file %s", path).CausedBy(err)
	}

	defer file.Close()

	validator, err := validation.NewValidator()
	if err != nil {
		return nil, errorchain.NewWithMessage(pathindex.ErrInternal,
			"failed to create validator").CausedBy(err)
	}

	contentType := encoding.ContentTypeYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		contentType = encoding.ContentTypeJSON
	}

	decoder := encoding.NewDecoder(
		encoding.WithSourceContentType(contentType),
		encoding.WithEnvVarsSubstitution(true),
		encoding.WithErrorOnUnused(true),
		encoding.WithTagName("koanf"),
		encoding.WithDecodeHooks(routePathDecodeHookFunc),
		encoding.WithValidator(validator),
	)

	var rf routeFile

	if err = decoder.Decode(&rf, file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, errorchain.NewWithMessagef(pathindex.ErrConfiguration,
			"invalid route file %s", path).CausedBy(err)
	}

	return rf.Routes, nil
}

// AllRoutes returns the inline routes followed by the routes from all configured route
// files in the order these are listed.
func (c *Configuration) AllRoutes() ([]map[string]any, error) {
	routes := make([]map[string]any, 0, len(c.Routes))
	routes = append(routes, c.Routes...)

	for _, path := range c.RouteFiles {
		fileRoutes, err := LoadRouteFile(path)
		if err != nil {
			return nil, err
		}

		routes = append(routes, fileRoutes...)
	}

	return routes, nil
}
