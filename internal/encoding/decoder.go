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

package encoding

import (
	"bytes"
	"errors"
	"io"

	"github.com/drone/envsubst/v2"
	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/pathindex/internal/pathindex"
	"github.com/dadrus/pathindex/internal/x/errorchain"
	"github.com/dadrus/pathindex/internal/x/stringx"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeYAML = "application/yaml"
)

type Decoder struct {
	decoderOpts
}

func NewDecoder(opts ...DecoderOption) *Decoder {
	decoder := &Decoder{
		decoderOpts: decoderOpts{
			validator:   noopValidator{},
			tagName:     "json",
			contentType: ContentTypeYAML,
		},
	}

	for _, opt := range opts {
		opt(&decoder.decoderOpts)
	}

	return decoder
}

// Decode reads a JSON or YAML document from the reader and decodes it into out. An
// empty document results in io.EOF.
func (d *Decoder) Decode(out any, reader io.Reader) error {
	var rawObject map[string]any

	if d.contentType != ContentTypeJSON && d.contentType != ContentTypeYAML {
		return errorchain.NewWithMessagef(pathindex.ErrInternal,
			"unsupported content type: %s", d.contentType)
	}

	if d.substituteEnvVars {
		raw, err := io.ReadAll(reader)
		if err != nil {
			return errorchain.NewWithMessage(pathindex.ErrInternal,
				"reading object failed").CausedBy(err)
		}

		content, err := envsubst.EvalEnv(stringx.ToString(raw))
		if err != nil {
			return errorchain.NewWithMessage(pathindex.ErrConfiguration,
				"substitution of environment variables failed").CausedBy(err)
		}

		reader = bytes.NewReader(stringx.ToBytes(content))
	}

	// JSON is a subset of YAML
	if err := yaml.NewDecoder(reader).Decode(&rawObject); err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}

		return errorchain.NewWithMessage(pathindex.ErrConfiguration,
			"parsing of object failed").CausedBy(err)
	}

	return d.DecodeMap(out, rawObject)
}

func (d *Decoder) DecodeMap(out any, in map[string]any) error {
	hook := d.decodeHooks
	if hook == nil {
		hook = mapstructure.ComposeDecodeHookFunc()
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: d.errorOnUnused,
		TagName:     d.tagName,
		DecodeHook:  hook,
	})
	if err != nil {
		return errorchain.NewWithMessage(pathindex.ErrInternal,
			"failed creating object decoder").CausedBy(err)
	}

	if err = dec.Decode(in); err != nil {
		return errorchain.NewWithMessage(pathindex.ErrConfiguration,
			"decoding of object failed").CausedBy(err)
	}

	if err = d.validator.ValidateStruct(out); err != nil {
		return errorchain.NewWithMessage(pathindex.ErrConfiguration,
			"object validation failed").CausedBy(err)
	}

	return nil
}
