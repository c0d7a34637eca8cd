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

package validate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/pathindex/cmd/flags"
	"github.com/dadrus/pathindex/internal/pathindex"
	"github.com/dadrus/pathindex/internal/x/testsupport"
)

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	testDir := t.TempDir()

	write := func(name, content string) string {
		fileName := filepath.Join(testDir, name)
		require.NoError(t, os.WriteFile(fileName, []byte(content), 0o600))

		return fileName
	}

	routeFile := write("routes.yaml", "routes:\n  - path: /files/**\n")
	validConfig := write("valid.yaml", "routes:\n  - path: /users/:id\nroute_files:\n  - "+routeFile+"\n")
	schemaViolation := write("schema.yaml", "strict: maybe\n")
	missingRouteFile := write("missing.yaml", "route_files:\n  - "+filepath.Join(testDir, "none.yaml")+"\n")

	for _, tc := range []struct {
		uc       string
		confFile string
		expError error
	}{
		{uc: "no config provided", expError: ErrNoConfigFile},
		{uc: "not existing config", confFile: filepath.Join(testDir, "doesnotexist.yaml"), expError: os.ErrNotExist},
		{uc: "schema violation", confFile: schemaViolation, expError: pathindex.ErrConfiguration},
		{uc: "not existing route file", confFile: missingRouteFile, expError: pathindex.ErrConfiguration},
		{uc: "valid config", confFile: validConfig},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			cmd := NewValidateConfigCommand()
			flags.RegisterGlobalFlags(cmd)

			if len(tc.confFile) != 0 {
				require.NoError(t, cmd.ParseFlags([]string{"--" + flags.Config, tc.confFile}))
			}

			// WHEN
			err := validateConfig(cmd)

			// THEN
			if tc.expError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// nolint: paralleltest
func TestRunValidateConfigCommand(t *testing.T) {
	testDir := t.TempDir()
	validConfig := filepath.Join(testDir, "config.yaml")
	require.NoError(t, os.WriteFile(validConfig, []byte("routes:\n  - path: /foo\n"), 0o600))

	for _, tc := range []struct {
		uc       string
		confFile string
		expError string
	}{
		{uc: "invalid config", confFile: filepath.Join(testDir, "doesnotexist.yaml"), expError: "no such file or dir"},
		{uc: "valid config", confFile: validConfig},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			exit, err := testsupport.PatchOSExit(t, func(int) {})
			require.NoError(t, err)

			cmd := NewValidateConfigCommand()
			flags.RegisterGlobalFlags(cmd)

			buf := bytes.NewBuffer([]byte{})
			cmd.SetOut(buf)
			cmd.SetErr(buf)

			require.NoError(t, cmd.ParseFlags([]string{"--" + flags.Config, tc.confFile}))

			// WHEN
			cmd.Run(cmd, []string{})

			// THEN
			log := buf.String()
			if len(tc.expError) != 0 {
				assert.Contains(t, log, tc.expError)
				assert.True(t, exit.Called)
				assert.Equal(t, 1, exit.Code)
			} else {
				assert.Contains(t, log, "Configuration is valid")
				assert.False(t, exit.Called)
			}
		})
	}
}
