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

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/catalystxbrl/xbrl-relational/core/taxonomy"
)

// Compile walks every LinkRole in model and produces the full Bundle of
// TableSchema values plus the transcribed Datapackage descriptor. The
// traversal is deterministic: depth-first in declared arc order, so
// repeated compilations of the same model always produce byte-identical
// column orderings.
func Compile(model *taxonomy.TaxonomyModel) (*Bundle, error) {
	var tables []*TableSchema
	usedNames := make(map[string]string) // table name -> role URI that claimed it

	for _, role := range model.Roles() {
		leaves := orderedLeaves(role)

		var instant, duration []string
		for _, name := range leaves {
			c, ok := model.Concept(name)
			if !ok {
				return nil, &ConflictError{TableName: role.Stem, Reason: fmt.Sprintf("leaf concept %q not found", name)}
			}
			switch c.Period {
			case taxonomy.PeriodInstant:
				instant = append(instant, name)
			case taxonomy.PeriodDuration:
				duration = append(duration, name)
			default:
				return nil, &ConflictError{TableName: role.Stem, Reason: fmt.Sprintf("leaf concept %q has no period type", name)}
			}
		}

		axisCols := axisColumnsFor(role, model)

		for _, group := range []struct {
			period Period
			leaves []string
		}{
			{PeriodInstant, instant},
			{PeriodDuration, duration},
		} {
			if len(group.leaves) == 0 {
				continue
			}
			tableName := role.Stem + "_" + group.period.Suffix()
			if claimedBy, exists := usedNames[tableName]; exists && claimedBy != role.URI {
				tableName = tableName + "_" + shortHash(role.URI)
			}
			if prior, exists := usedNames[tableName]; exists && prior != role.URI {
				return nil, &ConflictError{TableName: tableName, Reason: "two distinct roles resolve to the same table name after collision handling"}
			}
			usedNames[tableName] = role.URI

			columns := make([]ColumnSchema, 0, len(group.leaves))
			for _, name := range group.leaves {
				c, _ := model.Concept(name)
				columns = append(columns, ColumnSchema{
					Name:        name,
					Type:        columnTypeOf(c.Type),
					ConceptName: name,
					UnitHint:    c.UnitHint,
					Label:       c.Label,
					Description: c.Description,
				})
			}

			tables = append(tables, &TableSchema{
				Name:       tableName,
				RoleURI:    role.URI,
				Period:     group.period,
				PrimaryKey: primaryKeyFor(group.period, axisCols),
				Columns:    columns,
				Axes:       axisNames(axisCols),
			})
		}
	}

	return &Bundle{Tables: tables, Datapackage: transcribe(tables, model)}, nil
}

// orderedLeaves returns role's leaf concepts (nodes with no outgoing arcs)
// in depth-first traversal order. Children are visited in declared arc
// order; no name-based ordering is applied. A concept reached more than
// once (a repeated arc, or a concept shared by two parents) is emitted
// only at its first visit.
func orderedLeaves(role *taxonomy.LinkRole) []string {
	var leaves []string
	visited := make(map[string]bool)

	var visit func(node string)
	visit = func(node string) {
		if visited[node] {
			return
		}
		visited[node] = true
		children := role.Children(node)
		if len(children) == 0 {
			leaves = append(leaves, node)
			return
		}
		for _, child := range children {
			visit(child)
		}
	}
	visit(role.Root)
	return leaves
}

// axisColumnsFor resolves the axis columns in scope for role, as already
// determined by the taxonomy provider (LinkRole.Axes — see DESIGN.md for
// how definition-linkbase axis-in-scope resolution is modeled).
func axisColumnsFor(role *taxonomy.LinkRole, model *taxonomy.TaxonomyModel) []ColumnSchema {
	names := append([]string(nil), role.Axes...)
	sort.Strings(names)

	out := make([]ColumnSchema, 0, len(names))
	for _, name := range names {
		ax, ok := model.Axis(name)
		if !ok {
			continue
		}
		out = append(out, ColumnSchema{
			Name:        axisColumnName(name),
			Type:        columnTypeOf(ax.ColumnType()),
			ConceptName: name,
		})
	}
	return out
}

// axisColumnName normalizes an axis's qualified name into its primary-key
// column name, per SPEC_FULL.md §8.2 (`PlantName` -> `plant_name_axis`):
// a snake_case ASCII stem followed by an `_axis` suffix, not doubled when
// the source name already ends in "Axis".
func axisColumnName(name string) string {
	stem := axisStem(name)
	if strings.HasSuffix(stem, "_axis") {
		return stem
	}
	return stem + "_axis"
}

// axisStem lowercases name into a snake_case ASCII stem, splitting
// camelCase word boundaries (so "PlantName" becomes "plant_name", not
// "plantname") before collapsing any remaining run of non-alphanumeric
// characters (including a taxonomy prefix's separating colon) to a single
// underscore.
func axisStem(name string) string {
	runes := []rune(name)
	var boundaried strings.Builder
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' && i > 0 {
			prev := runes[i-1]
			if (prev >= 'a' && prev <= 'z') || (prev >= '0' && prev <= '9') {
				boundaried.WriteByte('_')
			}
		}
		boundaried.WriteRune(r)
	}

	var b strings.Builder
	prevUnderscore := false
	for _, r := range strings.ToLower(boundaried.String()) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevUnderscore = false
		default:
			if !prevUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				prevUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

func axisNames(cols []ColumnSchema) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.ConceptName)
	}
	return out
}

// primaryKeyFor builds the fixed context columns per SPEC_FULL.md §3,
// followed by the axis columns in scope for the owning role.
func primaryKeyFor(period Period, axisCols []ColumnSchema) []ColumnSchema {
	var pk []ColumnSchema
	pk = append(pk,
		ColumnSchema{Name: "entity_id", Type: ColumnText},
		ColumnSchema{Name: "filing_name", Type: ColumnText},
		ColumnSchema{Name: "publication_time", Type: ColumnText},
	)
	if period == PeriodInstant {
		pk = append(pk, ColumnSchema{Name: "date", Type: ColumnText})
	} else {
		pk = append(pk,
			ColumnSchema{Name: "start_date", Type: ColumnText},
			ColumnSchema{Name: "end_date", Type: ColumnText},
		)
	}
	pk = append(pk, axisCols...)
	return pk
}

func shortHash(uri string) string {
	sum := sha1.Sum([]byte(uri))
	return hex.EncodeToString(sum[:])[:8]
}
