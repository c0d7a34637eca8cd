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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/pathindex/internal/pathindex"
)

func TestLoadRouteFile(t *testing.T) {
	t.Setenv("ROUTEFILETEST_TENANT", "acme")

	for _, tc := range []struct {
		uc      string
		name    string
		content string
		assert  func(t *testing.T, err error, routes []map[string]any)
	}{
		{
			uc:      "yaml file",
			name:    "routes.yaml",
			content: "routes:\n  - path: /${ROUTEFILETEST_TENANT}/:id\n    owner: foo\n  - path: /**\n",
			assert: func(t *testing.T, err error, routes []map[string]any) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, []map[string]any{
					{"path": "/acme/:id", "owner": "foo"},
					{"path": "/**"},
				}, routes)
			},
		},
		{
			uc:      "json file",
			name:    "routes.json",
			content: `{"routes": [{"path": "/foo", "n": 1}]}`,
			assert: func(t *testing.T, err error, routes []map[string]any) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, []map[string]any{{"path": "/foo", "n": 1}}, routes)
			},
		},
		{
			uc:      "routes given by path only",
			name:    "routes.yaml",
			content: "routes:\n  - /users/:id\n  - path: /files/**\n    owner: bar\n",
			assert: func(t *testing.T, err error, routes []map[string]any) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, []map[string]any{
					{"path": "/users/:id"},
					{"path": "/files/**", "owner": "bar"},
				}, routes)
			},
		},
		{
			uc:      "route given by empty path",
			name:    "routes.json",
			content: `{"routes": [""]}`,
			assert: func(t *testing.T, err error, _ []map[string]any) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, pathindex.ErrConfiguration)
				assert.Contains(t, err.Error(), `must have a non-empty string "path"`)
			},
		},
		{
			uc:   "empty file",
			name: "empty.yaml",
			assert: func(t *testing.T, err error, routes []map[string]any) {
				t.Helper()

				require.NoError(t, err)
				assert.Empty(t, routes)
			},
		},
		{
			uc:      "route without path",
			name:    "routes.yaml",
			content: "routes:\n  - owner: foo\n",
			assert: func(t *testing.T, err error, _ []map[string]any) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, pathindex.ErrConfiguration)
				assert.Contains(t, err.Error(), `must have a non-empty string "path"`)
			},
		},
		{
			uc:      "routes is not a list",
			name:    "routes.yaml",
			content: "routes: foo\n",
			assert: func(t *testing.T, err error, _ []map[string]any) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, pathindex.ErrConfiguration)
				assert.Contains(t, err.Error(), "decoding of object failed")
			},
		},
		{
			uc:      "malformed file",
			name:    "routes.yaml",
			content: "routes: [",
			assert: func(t *testing.T, err error, _ []map[string]any) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, pathindex.ErrConfiguration)
				assert.Contains(t, err.Error(), "parsing of object failed")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			fileName := writeConfig(t, tc.name, tc.content)

			// WHEN
			routes, err := LoadRouteFile(fileName)

			// THEN
			tc.assert(t, err, routes)
		})
	}
}

func TestLoadRouteFileMissing(t *testing.T) {
	t.Parallel()

	// WHEN
	_, err := LoadRouteFile(filepath.Join(t.TempDir(), "missing.yaml"))

	// THEN
	require.Error(t, err)
	assert.ErrorIs(t, err, pathindex.ErrConfiguration)
}

func TestConfigurationAllRoutes(t *testing.T) {
	t.Parallel()

	// GIVEN
	first := writeConfig(t, "first.yaml", "routes:\n  - path: /b\n")
	second := writeConfig(t, "second.yaml", "routes:\n  - path: /c\n  - path: /d\n")

	conf := Configuration{
		Routes:     []map[string]any{{"path": "/a"}},
		RouteFiles: []string{first, second},
	}

	// WHEN
	routes, err := conf.AllRoutes()

	// THEN
	require.NoError(t, err)
	require.Len(t, routes, 4)

	for idx, exp := range []string{"/a", "/b", "/c", "/d"} {
		assert.Equal(t, exp, routes[idx]["path"])
	}
}
