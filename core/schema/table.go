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

// Period discriminates an instant table from a duration table.
type Period int

const (
	PeriodUnknown Period = iota
	PeriodInstant
	PeriodDuration
)

func (p Period) Suffix() string {
	switch p {
	case PeriodInstant:
		return "instant"
	case PeriodDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// TableSchema is one compiled relational table: either the instant or the
// duration half of a LinkRole's leaf concepts, with its primary-key
// columns and data columns fully typed.
type TableSchema struct {
	Name       string
	RoleURI    string
	Period     Period
	PrimaryKey []ColumnSchema
	Columns    []ColumnSchema // data columns, in stable arc-traversal order

	// Axes lists the axis names contributing primary-key columns, in the
	// same order as their corresponding PrimaryKey entries.
	Axes []string
}

// AllColumns returns primary-key columns followed by data columns, the
// order a sink should create and write them in.
func (t *TableSchema) AllColumns() []ColumnSchema {
	out := make([]ColumnSchema, 0, len(t.PrimaryKey)+len(t.Columns))
	out = append(out, t.PrimaryKey...)
	out = append(out, t.Columns...)
	return out
}

// ColumnNames returns the qualified concept name of each data column, the
// set FactProjector matches facts against.
func (t *TableSchema) ColumnNames() map[string]ColumnSchema {
	out := make(map[string]ColumnSchema, len(t.Columns))
	for _, c := range t.Columns {
		out[c.ConceptName] = c
	}
	return out
}

// Bundle is the full set of compiled tables for a taxonomy, plus the
// transcribed Datapackage descriptor.
type Bundle struct {
	Tables      []*TableSchema
	Datapackage *Datapackage
}

// Datapackage is a portable descriptor of the compiled schema: table
// names, field names and types, primary keys, and concept-level metadata.
// Mirrors spec.md §3's Datapackage entity for mechanical transcription by
// the (external) datapackage emitter.
type Datapackage struct {
	Tables []DatapackageTable
}

type DatapackageTable struct {
	Name       string
	PeriodType string
	Fields     []DatapackageField
	PrimaryKey []string
}

type DatapackageField struct {
	Name        string
	Type        string
	ConceptName string
	Unit        string
	Label       string
	Description string
}

// transcribe builds the Datapackage descriptor from the compiled tables.
func transcribe(tables []*TableSchema, model *taxonomy.TaxonomyModel) *Datapackage {
	dp := &Datapackage{Tables: make([]DatapackageTable, 0, len(tables))}
	for _, t := range tables {
		dt := DatapackageTable{
			Name:       t.Name,
			PeriodType: t.Period.Suffix(),
			PrimaryKey: make([]string, 0, len(t.PrimaryKey)),
		}
		for _, pk := range t.PrimaryKey {
			dt.PrimaryKey = append(dt.PrimaryKey, pk.Name)
		}
		for _, c := range t.AllColumns() {
			dt.Fields = append(dt.Fields, DatapackageField{
				Name:        c.Name,
				Type:        c.Type.String(),
				ConceptName: c.ConceptName,
				Unit:        c.UnitHint,
				Label:       c.Label,
				Description: c.Description,
			})
		}
		dp.Tables = append(dp.Tables, dt)
	}
	return dp
}
