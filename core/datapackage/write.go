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

// Package datapackage performs mechanical JSON transcription of a
// compiled schema.Datapackage and of per-table taxonomy metadata. This is
// the "frictionless-style datapackage emitter" external collaborator
// named in spec.md §1: no frictionless-datapackage Go library was found
// anywhere in the retrieved corpus, so encoding/json is used directly to
// transcribe an already-built value — there is no logic here beyond
// shaping the JSON, which is the justified stdlib case for this concern.
package datapackage

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/catalystxbrl/xbrl-relational/core/schema"
)

// Write transcribes dp as indented JSON to w.
func Write(w io.Writer, dp *schema.Datapackage) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dp); err != nil {
		return fmt.Errorf("writing datapackage: %w", err)
	}
	return nil
}

// TableMetadata is one table's entry in the taxonomy-metadata JSON file:
// per-column concept names, labels, descriptions, and units, grouped by
// table name per SPEC_FULL.md §6's optional taxonomy-metadata output.
// Concept references are not included.
type TableMetadata struct {
	Table   string           `json:"table"`
	Columns []ColumnMetadata `json:"columns"`
}

type ColumnMetadata struct {
	Name        string `json:"name"`
	ConceptName string `json:"concept_name,omitempty"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
	Unit        string `json:"unit,omitempty"`
}

// WriteMetadata transcribes a Bundle's per-table concept metadata,
// grouped by table name, as indented JSON to w.
func WriteMetadata(w io.Writer, bundle *schema.Bundle) error {
	out := make([]TableMetadata, 0, len(bundle.Tables))
	for _, t := range bundle.Tables {
		tm := TableMetadata{Table: t.Name}
		for _, c := range t.AllColumns() {
			tm.Columns = append(tm.Columns, ColumnMetadata{
				Name:        c.Name,
				ConceptName: c.ConceptName,
				Label:       c.Label,
				Description: c.Description,
				Unit:        c.UnitHint,
			})
		}
		out = append(out, tm)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("writing taxonomy metadata: %w", err)
	}
	return nil
}
