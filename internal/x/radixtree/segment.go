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

package radixtree

const (
	placeholderPrefix = ':'
	wildcardSegment   = "**"
)

// segment is the classified form of a single path segment. Each node records the
// segment it was created for, which also tells its kind.
type segment interface {
	text() string
}

type (
	literal     string
	placeholder struct{ name string }
	wildcard    struct{}
)

func (s literal) text() string     { return string(s) }
func (s placeholder) text() string { return string(placeholderPrefix) + s.name }
func (wildcard) text() string      { return wildcardSegment }

func classify(seg string) segment {
	switch {
	case len(seg) != 0 && seg[0] == placeholderPrefix:
		return placeholder{name: seg[1:]}
	case seg == wildcardSegment:
		return wildcard{}
	default:
		return literal(seg)
	}
}
