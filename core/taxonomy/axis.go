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

// AxisKind distinguishes explicit (enumerated-domain) axes from typed
// (filer-supplied-value) axes.
type AxisKind int

const (
	AxisKindUnknown AxisKind = iota
	AxisExplicit
	AxisTyped
)

// Axis is a named dimension defined in the taxonomy that can augment a
// Context beyond entity + period.
type Axis struct {
	Name string
	Kind AxisKind

	// Domain lists the enumerated member values for an explicit axis.
	// Empty for typed axes.
	Domain []string

	// ValueType is the primitive type filer-supplied values must parse as,
	// for a typed axis. Unused for explicit axes (columns are always string).
	ValueType PrimitiveType
}

// ColumnType returns the relational column type this axis contributes when
// it appears as a primary-key column: explicit axes are always string
// (the member name), typed axes carry their declared primitive type.
func (a Axis) ColumnType() PrimitiveType {
	if a.Kind == AxisTyped {
		return a.ValueType
	}
	return PrimitiveString
}

// AxisDef is the shape the TaxonomyProvider collaborator hands back for a
// single axis definition.
type AxisDef struct {
	Name      string
	Kind      AxisKind
	Domain    []string
	ValueType PrimitiveType
}
