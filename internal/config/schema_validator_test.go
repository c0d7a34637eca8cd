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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/pathindex/internal/pathindex"
)

func TestValidateConfigSchema(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		config string
		valid  bool
	}{
		{uc: "empty config", config: "", valid: true},
		{
			uc: "complete config",
			config: `
strict: true
log:
  level: debug
  format: gelf
route_files:
  - /etc/pathindex/routes.yaml
routes:
  - path: /foo/:id
    payload: 1
  - path: /bar/**
`,
			valid: true,
		},
		{uc: "unknown property", config: "foo: bar"},
		{uc: "strict is not a boolean", config: "strict: yes please"},
		{uc: "route without path", config: "routes:\n  - payload: 1"},
		{uc: "route with non string path", config: "routes:\n  - path: 1"},
		{uc: "route with empty path", config: "routes:\n  - path: ''"},
		{uc: "unsupported log format", config: "log:\n  format: json"},
		{uc: "unsupported log level", config: "log:\n  level: verbose"},
		{uc: "not yaml", config: "foo: [bar"},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			err := ValidateConfigSchema(strings.NewReader(tc.config))

			// THEN
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.ErrorIs(t, err, pathindex.ErrConfiguration)
			}
		})
	}
}

func TestValidateConfigSchemaFile(t *testing.T) {
	t.Parallel()

	// GIVEN
	dir := t.TempDir()
	fileName := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte("strict: true"), 0o600))

	// WHEN
	err := ValidateConfigSchemaFile(fileName)
	errMissing := ValidateConfigSchemaFile(filepath.Join(dir, "missing.yaml"))

	// THEN
	require.NoError(t, err)
	require.Error(t, errMissing)
	assert.ErrorIs(t, errMissing, pathindex.ErrConfiguration)
}
