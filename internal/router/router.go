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
	"github.com/rs/zerolog"

	"github.com/dadrus/pathindex/internal/pathindex"
	"github.com/dadrus/pathindex/internal/x/errorchain"
	"github.com/dadrus/pathindex/internal/x/radixtree"
)

// Router maps slash delimited paths to registered routes. Segments starting with ':'
// are placeholders binding the matched value to a parameter, a "**" segment catches
// all remaining segments. Literal segments take precedence over placeholders and
// placeholders over wildcards.
//
// A Router does not synchronize access. Insert and Remove must not be called
// concurrently with any other method. Lookup and StartsWith can be used concurrently.
type Router struct {
	tree   *radixtree.Tree[Route]
	strict bool
	logger zerolog.Logger
}

func New(options ...Option) (*Router, error) {
	conf := opts{logger: zerolog.Nop()}

	for _, opt := range options {
		opt(&conf)
	}

	router := &Router{
		tree:   radixtree.New[Route](),
		strict: conf.strict,
		logger: conf.logger,
	}

	for idx, source := range conf.routes {
		route, err := source()
		if err == nil {
			err = router.Insert(route)
		}

		if err != nil {
			return nil, errorchain.NewWithMessagef(pathindex.ErrConfiguration,
				"failed to register route #%d", idx).CausedBy(err)
		}
	}

	return router, nil
}

// Insert registers the route under its path. A route registered under the same path
// before is replaced.
func (r *Router) Insert(route Route) error {
	if len(route.Path) == 0 {
		return errorchain.NewWithMessage(ErrMissingPath, `"path" must be provided`)
	}

	path, err := r.normalize(route.Path)
	if err != nil {
		return err
	}

	stored := route.clone()
	stored.Params = nil

	r.tree.Add(path, stored)

	r.logger.Debug().Str("_path", route.Path).Msg("Route registered")

	return nil
}

// Lookup returns the route matching the given path, or nil if there is none. Values of
// placeholder segments are available in the Params of the returned route.
func (r *Router) Lookup(path string) (*Route, error) {
	normalized, err := r.normalize(path)
	if err != nil {
		return nil, err
	}

	entry, found := r.tree.Lookup(normalized)
	if !found {
		return nil, nil // nolint: nilnil
	}

	route := entry.Value.clone()
	route.Params = entry.Parameters

	return &route, nil
}

// Remove deletes the route registered under the given pattern, e.g. "users/:id" and
// not "users/42". It reports whether there was such a route.
func (r *Router) Remove(path string) (bool, error) {
	normalized, err := r.normalize(path)
	if err != nil {
		return false, err
	}

	removed := r.tree.Delete(normalized)

	r.logger.Debug().Str("_path", path).Bool("_removed", removed).Msg("Route removal requested")

	return removed, nil
}

// StartsWith returns all routes registered under the given literal prefix.
func (r *Router) StartsWith(prefix string) ([]Route, error) {
	normalized, err := r.normalize(prefix)
	if err != nil {
		return nil, err
	}

	matches := r.tree.StartsWith(normalized)

	routes := make([]Route, len(matches))
	for idx, match := range matches {
		routes[idx] = match.clone()
	}

	return routes, nil
}

// Clone returns a router with an independent copy of the index. Modifications of the
// copy are not visible in the original and vice versa.
func (r *Router) Clone() *Router {
	return &Router{tree: r.tree.Clone(), strict: r.strict, logger: r.logger}
}

// Len returns the number of registered routes.
func (r *Router) Len() int { return r.tree.Len() }

func (r *Router) Strict() bool { return r.strict }

func (r *Router) normalize(path string) (string, error) {
	if len(path) == 0 {
		return "", errorchain.NewWithMessage(ErrInvalidInput, `"path" must be provided`)
	}

	if last := len(path) - 1; !r.strict && last > 0 && path[last] == '/' {
		return path[:last], nil
	}

	return path, nil
}
