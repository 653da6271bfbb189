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

package batch

import (
	"sort"
	"strings"

	"github.com/catalystxbrl/xbrl-relational/core/project"
)

// tableAccumulator holds the winning row per primary key for one table,
// across all filings processed so far. It is the runner's per-table
// Combine-shaped merge state: rows from distinct filings are unioned; rows
// that collide on primary key are combined with supersession semantics.
type tableAccumulator struct {
	rows map[string]accumulatedRow
}

type accumulatedRow struct {
	row             project.Row
	publicationTime string
	filingName      string
}

func newTableAccumulator() *tableAccumulator {
	return &tableAccumulator{rows: make(map[string]accumulatedRow)}
}

// Combine merges incoming into the accumulator, keyed by primary key. On a
// collision, the row from the later-published filing wins (higher
// publication_time, with filing_name as deterministic tiebreak); the
// winner's null data columns are backfilled from the loser's non-null
// values, per SPEC_FULL.md §4.5's merge semantics.
func (a *tableAccumulator) Combine(incoming project.Row, filingName, publicationTime string) {
	key := strings.Join(incoming.PrimaryKey, "\x1f")

	existing, ok := a.rows[key]
	if !ok {
		a.rows[key] = accumulatedRow{row: incoming, publicationTime: publicationTime, filingName: filingName}
		return
	}

	winner, loser := existing, accumulatedRow{row: incoming, publicationTime: publicationTime, filingName: filingName}
	if supersedes(loser, winner) {
		winner, loser = loser, winner
	}

	merged := winner.row
	for col, v := range merged.Values {
		if v == nil {
			if lv, ok := loser.row.Values[col]; ok && lv != nil {
				merged.Values[col] = lv
			}
		}
	}
	winner.row = merged
	a.rows[key] = winner
}

// supersedes reports whether candidate supersedes current: a higher
// publication_time wins outright; equal publication_time falls back to
// filing_name as a deterministic tiebreak.
func supersedes(candidate, current accumulatedRow) bool {
	if candidate.publicationTime != current.publicationTime {
		return candidate.publicationTime > current.publicationTime
	}
	return candidate.filingName > current.filingName
}

// Rows returns the accumulated rows in an arbitrary but stable-per-call
// order (sorted by primary key), suitable for handing to a sink.
func (a *tableAccumulator) Rows() []project.Row {
	keys := make([]string, 0, len(a.rows))
	for k := range a.rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]project.Row, 0, len(keys))
	for _, k := range keys {
		out = append(out, a.rows[k].row)
	}
	return out
}
