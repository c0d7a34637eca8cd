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

package flags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoader(t *testing.T) {
	t.Parallel()

	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("strict: true\nroutes:\n  - path: /foo\n"), 0o600))

	for _, tc := range []struct {
		uc        string
		args      []string
		expStrict bool
	}{
		{uc: "strict from config file", args: []string{"-c", configFile}, expStrict: true},
		{uc: "strict overridden by flag", args: []string{"-c", configFile, "--strict=false"}, expStrict: false},
		{uc: "no config file", args: []string{"--" + EnvironmentConfigPrefix, "FLAGSCONFIGLOADERTEST_"}},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			cmd := &cobra.Command{}
			RegisterGlobalFlags(cmd)
			require.NoError(t, cmd.ParseFlags(tc.args))

			// WHEN
			conf, err := ConfigLoader(cmd)()

			// THEN
			require.NoError(t, err)
			assert.Equal(t, tc.expStrict, conf.Strict)
		})
	}
}
