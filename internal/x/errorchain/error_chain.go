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

package errorchain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
)

type link struct {
	err  error
	msg  string
	next *link
}

type payload struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// ErrorChain is an error composed of a sentinel error (the head), an optional message
// describing the failed operation and the chain of errors which caused it.
type ErrorChain struct { // nolint: errname
	head *link
	tail *link
}

func New(err error) *ErrorChain {
	return (&ErrorChain{}).causedBy(err, "")
}

func NewWithMessage(err error, message string) *ErrorChain {
	return (&ErrorChain{}).causedBy(err, message)
}

func NewWithMessagef(err error, format string, a ...any) *ErrorChain {
	return (&ErrorChain{}).causedBy(err, fmt.Sprintf(format, a...))
}

func (ec *ErrorChain) CausedBy(err error) *ErrorChain {
	if err == nil {
		return ec
	}

	return ec.causedBy(err, "")
}

func (ec *ErrorChain) Error() string {
	parts := make([]string, 0, 2) // nolint: mnd

	for l := ec.head; l != nil; l = l.next {
		if len(l.msg) == 0 {
			parts = append(parts, l.err.Error())
		} else {
			parts = append(parts, l.err.Error()+": "+l.msg)
		}
	}

	return strings.Join(parts, ": ")
}

func (ec *ErrorChain) Unwrap() error {
	if ec.head == nil || ec.head.next == nil {
		return nil
	}

	return &ErrorChain{head: ec.head.next, tail: ec.tail}
}

func (ec *ErrorChain) Is(target error) bool {
	return ec.head != nil && errors.Is(ec.head.err, target)
}

func (ec *ErrorChain) As(target any) bool {
	return ec.head != nil && errors.As(ec.head.err, target)
}

func (ec *ErrorChain) Errors() []error {
	var errs []error

	for l := ec.head; l != nil; l = l.next {
		errs = append(errs, l.err)
	}

	return errs
}

// MarshalJSON renders the head of the chain only. Causes are not exposed.
func (ec *ErrorChain) MarshalJSON() ([]byte, error) {
	return json.Marshal(payload{
		Code:    strcase.ToLowerCamel(ec.head.err.Error()),
		Message: ec.head.msg,
	})
}

func (ec *ErrorChain) causedBy(err error, msg string) *ErrorChain {
	l := &link{err: err, msg: msg}

	if ec.head == nil {
		ec.head = l
		ec.tail = l

		return ec
	}

	ec.tail.next = l
	ec.tail = l

	return ec
}
