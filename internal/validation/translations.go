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
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// RouteRecordTag validates an open route record (map[string]any) to carry a
// non-empty string under the "path" key.
const RouteRecordTag = "route_record"

func registerRouteRecordValidation(validate *validator.Validate, trans ut.Translator) error {
	if err := validate.RegisterValidation(RouteRecordTag, func(fl validator.FieldLevel) bool {
		record, ok := fl.Field().Interface().(map[string]any)
		if !ok {
			return false
		}

		path, ok := record["path"].(string)

		return ok && len(path) != 0
	}); err != nil {
		return err
	}

	return validate.RegisterTranslation(RouteRecordTag, trans,
		func(ut ut.Translator) error {
			return ut.Add(RouteRecordTag, `{0} must have a non-empty string "path"`, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, err := ut.T(RouteRecordTag, fe.Field())
			if err != nil {
				return fe.Error()
			}

			return msg
		},
	)
}
