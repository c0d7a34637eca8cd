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

package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dadrus/pathindex/internal/config"
)

// NewLogger creates a logger writing to stderr. Stdout is reserved for the answers
// of the commands.
func NewLogger(conf config.LoggingConfig) zerolog.Logger {
	return newLogger(os.Stderr, conf)
}

func newLogger(out io.Writer, conf config.LoggingConfig) zerolog.Logger {
	if conf.Format == config.LogTextFormat {
		return zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = out
			w.TimeFormat = time.RFC3339
		})).Level(conf.Level).With().Timestamp().Logger()
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.TimestampFieldName = "timestamp"
	zerolog.LevelFieldName = "_level_name"
	zerolog.LevelFieldMarshalFunc = func(l zerolog.Level) string {
		return strings.ToUpper(l.String())
	}
	zerolog.MessageFieldName = "short_message"
	zerolog.ErrorFieldName = "_error" // nolint: reassign
	zerolog.CallerFieldName = "_caller"

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return zerolog.New(out).Level(conf.Level).With().
		Str("version", "1.1").
		Str("host", hostname).
		Timestamp().
		Logger().
		Hook(zerolog.HookFunc(func(e *zerolog.Event, level zerolog.Level, _ string) {
			if level != zerolog.NoLevel {
				e.Int8("level", int8(toSyslogLevel(level)))
			}
		}))
}

// syslogLevel is the numeric severity used by the "level" field of GELF messages.
type syslogLevel int8

const (
	emergency syslogLevel = iota
	alert
	critical
	errorLevel
	warning
	notice // nolint: unused
	informational
	debugging
)

func toSyslogLevel(level zerolog.Level) syslogLevel {
	switch level {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return debugging
	case zerolog.InfoLevel:
		return informational
	case zerolog.WarnLevel:
		return warning
	case zerolog.ErrorLevel:
		return errorLevel
	case zerolog.FatalLevel:
		return critical
	case zerolog.PanicLevel:
		return alert
	default:
		return emergency
	}
}
