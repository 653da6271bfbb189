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

package taxonomy

// PrimitiveType is the primitive data type carried by a Concept.
type PrimitiveType int

const (
	PrimitiveUnknown PrimitiveType = iota
	PrimitiveString
	PrimitiveInteger
	PrimitiveDecimal
	PrimitiveMonetary
	PrimitivePercent
	PrimitiveDate
	PrimitiveBoolean
)

// String returns a human-readable name for the primitive type.
func (t PrimitiveType) String() string {
	switch t {
	case PrimitiveString:
		return "string"
	case PrimitiveInteger:
		return "integer"
	case PrimitiveDecimal:
		return "decimal"
	case PrimitiveMonetary:
		return "monetary"
	case PrimitivePercent:
		return "percent"
	case PrimitiveDate:
		return "date"
	case PrimitiveBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// PeriodType discriminates instant-in-time concepts from duration concepts.
type PeriodType int

const (
	PeriodUnknown PeriodType = iota
	PeriodInstant
	PeriodDuration
)

func (t PeriodType) String() string {
	switch t {
	case PeriodInstant:
		return "instant"
	case PeriodDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// Suffix returns the table-name suffix for this period type.
func (t PeriodType) Suffix() string {
	switch t {
	case PeriodInstant:
		return "instant"
	case PeriodDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// Concept is a single taxonomy-defined data element. Concepts are value
// objects: the same Concept may be reachable from many LinkRole trees.
type Concept struct {
	// Name is the globally unique qualified name, e.g. "ferc:PlantInServiceAmount".
	Name string

	Type       PrimitiveType
	Period     PeriodType
	UnitHint   string
	Label      string
	Description string
}

// ConceptDef is the shape the TaxonomyProvider collaborator hands back for
// a single concept. It is intentionally a plain value: the provider (an
// external taxonomy-loader library) is treated as opaque.
type ConceptDef struct {
	Name        string
	Type        PrimitiveType
	Period      PeriodType
	UnitHint    string
	Label       string
	Description string
}
