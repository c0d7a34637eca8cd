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

package index

import (
	"errors"
	"io"

	"github.com/goccy/go-json"

	"github.com/dadrus/pathindex/internal/x/errorchain"
)

type errorResponse struct {
	Error any `json:"error"`
}

type removeResponse struct {
	Removed bool `json:"removed"`
}

type insertResponse struct {
	Inserted bool `json:"inserted"`
}

func writeJSON(out io.Writer, value any) error {
	return json.NewEncoder(out).Encode(value)
}

func writeError(out io.Writer, err error) error {
	var ec *errorchain.ErrorChain
	if errors.As(err, &ec) {
		return writeJSON(out, errorResponse{Error: ec})
	}

	return writeJSON(out, errorResponse{Error: map[string]string{"message": err.Error()}})
}
