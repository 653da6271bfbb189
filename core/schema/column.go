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

package schema

import "github.com/catalystxbrl/xbrl-relational/core/taxonomy"

// ColumnType is the relational column type a concept or axis resolves to.
// Numeric semantics follow the mapping in SPEC_FULL.md §4.2: monetary and
// decimal concepts are 64-bit float columns (the unit stays metadata, not
// a column); integer concepts are 64-bit signed int columns; dates are
// ISO-8601 text; booleans are the text "true"/"false". The sink is
// expected to be permissive about further normalization.
type ColumnType int

const (
	ColumnUnknown ColumnType = iota
	ColumnText
	ColumnFloat64
	ColumnInt64
)

func (t ColumnType) String() string {
	switch t {
	case ColumnText:
		return "text"
	case ColumnFloat64:
		return "float64"
	case ColumnInt64:
		return "int64"
	default:
		return "unknown"
	}
}

// columnTypeOf maps a concept's declared primitive type to its relational
// column type, per SPEC_FULL.md §4.2's numeric semantics.
func columnTypeOf(p taxonomy.PrimitiveType) ColumnType {
	switch p {
	case taxonomy.PrimitiveMonetary, taxonomy.PrimitiveDecimal, taxonomy.PrimitivePercent:
		return ColumnFloat64
	case taxonomy.PrimitiveInteger:
		return ColumnInt64
	case taxonomy.PrimitiveDate, taxonomy.PrimitiveBoolean, taxonomy.PrimitiveString:
		return ColumnText
	default:
		return ColumnUnknown
	}
}

// ColumnSchema describes one column of a TableSchema: either a data column
// derived from a leaf concept, or a primary-key column (either a fixed
// context field or an axis column).
type ColumnSchema struct {
	Name        string
	Type        ColumnType
	ConceptName string // the axis name for axis columns; empty for fixed context columns
	UnitHint    string
	Label       string
	Description string
}
