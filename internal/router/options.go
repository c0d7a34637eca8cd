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

import "github.com/rs/zerolog"

type routeSource func() (Route, error)

type opts struct {
	strict bool
	logger zerolog.Logger
	routes []routeSource
}

type Option func(*opts)

// WithStrictPaths disables the removal of a trailing slash from the paths.
func WithStrictPaths(strict bool) Option {
	return func(o *opts) {
		o.strict = strict
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *opts) {
		o.logger = logger
	}
}

// WithRoutes registers the given routes when the router is created.
func WithRoutes(routes ...Route) Option {
	return func(o *opts) {
		for _, route := range routes {
			o.routes = append(o.routes, func() (Route, error) { return route, nil })
		}
	}
}

// WithRouteRecords registers the given open records, see RouteFromMap, when the router
// is created.
func WithRouteRecords(records ...map[string]any) Option {
	return func(o *opts) {
		for _, record := range records {
			o.routes = append(o.routes, func() (Route, error) { return RouteFromMap(record) })
		}
	}
}
