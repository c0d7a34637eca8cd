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

package repository

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/dadrus/pathindex/internal/config"
	"github.com/dadrus/pathindex/internal/router"
)

// ConfigLoader provides the current configuration. It is called on creation and on
// every reload.
type ConfigLoader func() (*config.Configuration, error)

// Repository guards a Router against concurrent modifications. Any number of lookups
// can run in parallel. Modifications are applied to a copy of the current router, which
// replaces it afterwards, so lookups are blocked only for the swap.
type Repository struct {
	load   ConfigLoader
	logger zerolog.Logger

	// serializes writers
	writeMut sync.Mutex

	mut sync.RWMutex
	r   *router.Router
}

func New(load ConfigLoader, logger zerolog.Logger) (*Repository, error) {
	repo := &Repository{load: load, logger: logger}

	if err := repo.Reload(); err != nil {
		return nil, err
	}

	return repo, nil
}

// NewRouter creates a Router holding the inline routes of the given configuration
// followed by the routes from its route files.
func NewRouter(conf *config.Configuration, logger zerolog.Logger) (*router.Router, error) {
	records, err := conf.AllRoutes()
	if err != nil {
		return nil, err
	}

	return router.New(
		router.WithStrictPaths(conf.Strict),
		router.WithLogger(logger),
		router.WithRouteRecords(records...),
	)
}

// Reload replaces the current routes by the configured ones. Routes inserted or removed
// after the last (re)load are discarded. On error the current routes stay in place.
// Reloads are serialized with all other writers, so the configuration read last is
// the one in place.
func (r *Repository) Reload() error {
	r.writeMut.Lock()
	defer r.writeMut.Unlock()

	conf, err := r.load()
	if err != nil {
		return err
	}

	rtr, err := NewRouter(conf, r.logger)
	if err != nil {
		return err
	}

	r.swap(rtr)

	r.logger.Info().Int("_routes", rtr.Len()).Msg("Routes loaded")

	return nil
}

// OnChanged implements watcher.ChangeListener.
func (r *Repository) OnChanged(logger zerolog.Logger) {
	if err := r.Reload(); err != nil {
		logger.Warn().Err(err).Msg("Failed to reload routes. Keeping the current ones")
	}
}

func (r *Repository) Insert(route router.Route) error {
	r.writeMut.Lock()
	defer r.writeMut.Unlock()

	tmp := r.r.Clone()
	if err := tmp.Insert(route); err != nil {
		return err
	}

	r.swap(tmp)

	return nil
}

func (r *Repository) Remove(path string) (bool, error) {
	r.writeMut.Lock()
	defer r.writeMut.Unlock()

	tmp := r.r.Clone()

	removed, err := tmp.Remove(path)
	if err != nil || !removed {
		return removed, err
	}

	r.swap(tmp)

	return true, nil
}

func (r *Repository) Lookup(path string) (*router.Route, error) {
	r.mut.RLock()
	defer r.mut.RUnlock()

	return r.r.Lookup(path)
}

func (r *Repository) StartsWith(prefix string) ([]router.Route, error) {
	r.mut.RLock()
	defer r.mut.RUnlock()

	return r.r.StartsWith(prefix)
}

func (r *Repository) Len() int {
	r.mut.RLock()
	defer r.mut.RUnlock()

	return r.r.Len()
}

// swap must be called with writeMut held.
func (r *Repository) swap(rtr *router.Router) {
	r.mut.Lock()
	r.r = rtr
	r.mut.Unlock()
}
