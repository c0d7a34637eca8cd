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

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logConf struct {
	Format string `koanf:"format" validate:"oneof=text gelf"`
}

type testConf struct {
	Routes []map[string]any `koanf:"routes" validate:"dive,route_record"`
	Log    logConf          `koanf:"log"`
}

func TestValidatorValidateStruct(t *testing.T) {
	t.Parallel()

	validator, err := NewValidator()
	require.NoError(t, err)

	for _, tc := range []struct {
		uc     string
		conf   testConf
		expErr string
	}{
		{
			uc: "valid",
			conf: testConf{
				Routes: []map[string]any{{"path": "/foo"}, {"path": "/bar/:id", "data": 1}},
				Log:    logConf{Format: "text"},
			},
		},
		{
			uc:   "no routes",
			conf: testConf{Log: logConf{Format: "gelf"}},
		},
		{
			uc: "route without path",
			conf: testConf{
				Routes: []map[string]any{{"path": "/foo"}, {"notAPath": "/bar"}},
				Log:    logConf{Format: "text"},
			},
			expErr: `[1] must have a non-empty string "path"`,
		},
		{
			uc: "route with non string path",
			conf: testConf{
				Routes: []map[string]any{{"path": 1}},
				Log:    logConf{Format: "text"},
			},
			expErr: `[0] must have a non-empty string "path"`,
		},
		{
			uc:     "bad log format",
			conf:   testConf{Log: logConf{Format: "xml"}},
			expErr: "'format' must be one of [text gelf]",
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// WHEN
			err := validator.ValidateStruct(tc.conf)

			// THEN
			if len(tc.expErr) == 0 {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expErr)
		})
	}
}
