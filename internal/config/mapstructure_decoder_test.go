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
	"testing"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLogLevel(t *testing.T) {
	t.Parallel()

	type Type struct {
		Level zerolog.Level `mapstructure:"level"`
	}

	for _, tc := range []struct {
		value string
		exp   zerolog.Level
	}{
		{value: "trace", exp: zerolog.TraceLevel},
		{value: "debug", exp: zerolog.DebugLevel},
		{value: "info", exp: zerolog.InfoLevel},
		{value: "WARN", exp: zerolog.WarnLevel},
		{value: "error", exp: zerolog.ErrorLevel},
		{value: "fatal", exp: zerolog.FatalLevel},
		{value: "panic", exp: zerolog.PanicLevel},
		{value: "no", exp: zerolog.Disabled},
		{value: "disabled", exp: zerolog.Disabled},
		{value: "foobar", exp: zerolog.ErrorLevel},
	} {
		t.Run(tc.value, func(t *testing.T) {
			// GIVEN
			var typ Type

			dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				DecodeHook: logLevelDecodeHookFunc,
				Result:     &typ,
			})
			require.NoError(t, err)

			// WHEN
			err = dec.Decode(map[string]any{"level": tc.value})

			// THEN
			require.NoError(t, err)
			assert.Equal(t, tc.exp, typ.Level)
		})
	}
}

func TestDecodeLogFormat(t *testing.T) {
	t.Parallel()

	type Type struct {
		Format LogFormat `mapstructure:"format"`
	}

	for _, tc := range []struct {
		value string
		exp   LogFormat
	}{
		{value: "gelf", exp: LogGelfFormat},
		{value: "GELF", exp: LogGelfFormat},
		{value: "text", exp: LogTextFormat},
		{value: "foo", exp: LogTextFormat},
	} {
		t.Run(tc.value, func(t *testing.T) {
			// GIVEN
			var typ Type

			dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				DecodeHook: logFormatDecodeHookFunc,
				Result:     &typ,
			})
			require.NoError(t, err)

			// WHEN
			err = dec.Decode(map[string]any{"format": tc.value})

			// THEN
			require.NoError(t, err)
			assert.Equal(t, tc.exp, typ.Format)
			assert.Equal(t, tc.exp == LogGelfFormat, typ.Format.String() == "gelf")
		})
	}
}
