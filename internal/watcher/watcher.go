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

package watcher

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/dadrus/pathindex/internal/pathindex"
	"github.com/dadrus/pathindex/internal/x/errorchain"
)

type ChangeListener interface {
	OnChanged(logger zerolog.Logger)
}

type Watcher interface {
	Add(path string, cl ChangeListener) error
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}

type listenerEntry struct {
	listener     []ChangeListener
	resolvedPath string
}

type watcher struct {
	w *fsnotify.Watcher
	m map[string]*listenerEntry
	l zerolog.Logger

	mut sync.Mutex
}

func New(logger zerolog.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errorchain.NewWithMessage(pathindex.ErrInternal,
			"failed to instantiate file watcher").CausedBy(err)
	}

	return &watcher{w: fsw, m: make(map[string]*listenerEntry), l: logger}, nil
}

func (w *watcher) Add(path string, cl ChangeListener) error {
	w.mut.Lock()
	defer w.mut.Unlock()

	if entry := w.m[path]; entry != nil {
		entry.listener = append(entry.listener, cl)

		return nil
	}

	if err := w.w.Add(path); err != nil {
		return errorchain.NewWithMessagef(pathindex.ErrInternal,
			"listener registration for file %s failed", path).CausedBy(err)
	}

	resolvedPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return errorchain.NewWithMessagef(pathindex.ErrInternal,
			"listener registration for file %s failed", path).CausedBy(err)
	}

	w.m[path] = &listenerEntry{listener: []ChangeListener{cl}, resolvedPath: resolvedPath}

	return nil
}

func (w *watcher) Start(_ context.Context) {
	w.l.Debug().Msg("Starting watching files for changes")

	go w.watch()
}

func (w *watcher) Stop(_ context.Context) error {
	w.l.Debug().Msg("Stopping watching files for changes")

	return w.w.Close()
}

func (w *watcher) watch() {
	for {
		select {
		case evt, ok := <-w.w.Events:
			if !ok {
				w.l.Debug().Msg("File watcher closed")

				return
			}

			var (
				changed bool
				err     error
			)

			// a symlink swap, as done for mounted config maps, is reported as chmod only
			if evt.Has(fsnotify.Chmod) {
				changed, err = w.checkForUpdate(evt.Name)
				if err != nil {
					w.l.Warn().Err(err).Msgf("Handling modification for %s failed", evt.Name)
				}
			}

			if evt.Has(fsnotify.Write) || changed {
				w.fireOnChange(evt.Name)
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				w.l.Debug().Msg("File watcher error channel closed")

				return
			}

			w.l.Warn().Err(err).Msg("File watcher error received")
		}
	}
}

func (w *watcher) checkForUpdate(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			_ = w.w.Remove(path)

			return false, nil
		}

		return false, err
	}

	resolvedPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false, err
	}

	w.mut.Lock()
	defer w.mut.Unlock()

	entry := w.m[path]
	if entry == nil || entry.resolvedPath == resolvedPath {
		return false, nil
	}

	_ = w.w.Remove(path)
	entry.resolvedPath = resolvedPath
	_ = w.w.Add(path)

	return true, nil
}

func (w *watcher) fireOnChange(path string) {
	w.mut.Lock()

	entry := w.m[path]
	if entry == nil {
		w.mut.Unlock()

		return
	}

	listeners := make([]ChangeListener, len(entry.listener))
	copy(listeners, entry.listener)
	w.mut.Unlock()

	for _, listener := range listeners {
		go listener.OnChanged(w.l)
	}
}
