/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package project

import (
	"strconv"
	"strings"
	"time"

	"github.com/catalystxbrl/xbrl-relational/core/taxonomy"
)

const dateLayout = "2006-01-02"

// coerce parses a fact's raw lexical value per its concept's declared
// primitive type. A false return means the value failed to parse; the
// caller records a type_coercion_skipped counter and emits null.
func coerce(raw string, t taxonomy.PrimitiveType) (any, bool) {
	raw = strings.TrimSpace(raw)
	switch t {
	case taxonomy.PrimitiveMonetary, taxonomy.PrimitiveDecimal, taxonomy.PrimitivePercent:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, false
		}
		return v, true
	case taxonomy.PrimitiveInteger:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, false
		}
		return v, true
	case taxonomy.PrimitiveDate:
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, false
		}
		return d.Format(dateLayout), true
	case taxonomy.PrimitiveBoolean:
		switch strings.ToLower(raw) {
		case "true", "1":
			return "true", true
		case "false", "0":
			return "false", true
		default:
			return nil, false
		}
	case taxonomy.PrimitiveString:
		return raw, true
	default:
		return raw, true
	}
}
