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

package router

import (
	"maps"

	"github.com/goccy/go-json"

	"github.com/dadrus/pathindex/internal/x/errorchain"
)

const (
	pathField   = "path"
	paramsField = "params"
)

// Route is the record stored in the index. Path is kept verbatim as inserted, Data
// holds all other fields of the record. Params is only set on lookup results and
// holds the values bound to placeholder segments.
type Route struct {
	Path   string
	Data   map[string]any
	Params map[string]string
}

// RouteFromMap converts an open record, like one read from a configuration file, into
// a Route. The record must have a string "path" field.
func RouteFromMap(record map[string]any) (Route, error) {
	raw, present := record[pathField]
	if !present || raw == nil {
		return Route{}, errorchain.NewWithMessage(ErrMissingPath, `"path" must be provided`)
	}

	path, ok := raw.(string)
	if !ok {
		return Route{}, errorchain.NewWithMessagef(ErrInvalidInput,
			`"path" must be that of a string, got %T`, raw)
	}

	if len(path) == 0 {
		return Route{}, errorchain.NewWithMessage(ErrMissingPath, `"path" must be provided`)
	}

	var data map[string]any

	if len(record) > 1 {
		data = maps.Clone(record)
		delete(data, pathField)
	}

	return Route{Path: path, Data: data}, nil
}

// MarshalJSON renders the route as one flat object: the data fields, "path" and,
// if bound, "params".
func (r Route) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Data)+2) // nolint: mnd

	maps.Copy(out, r.Data)
	out[pathField] = r.Path

	if len(r.Params) != 0 {
		out[paramsField] = r.Params
	}

	return json.Marshal(out)
}

func (r Route) clone() Route {
	return Route{
		Path:   r.Path,
		Data:   maps.Clone(r.Data),
		Params: maps.Clone(r.Params),
	}
}
