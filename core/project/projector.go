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
	"sort"
	"time"

	"github.com/catalystxbrl/xbrl-relational/core/instance"
	"github.com/catalystxbrl/xbrl-relational/core/schema"
)

// Project selects the facts in f whose dimensional signature set-equals
// table's required axes exactly, groups them by context id, and emits one
// Row per group. The boundary is strict: a signature with more or fewer
// axes than required does not match, per SPEC_FULL.md §4.4.
func Project(table *schema.TableSchema, facts instance.FactIndex, contexts instance.ContextIndex, filingName, publicationTime string) ([]Row, Counters) {
	requiredAxes := append([]string(nil), table.Axes...)
	sort.Strings(requiredAxes)

	columnSet := table.ColumnNames()
	period := tablePeriod(table)

	// group key -> (group key's facts, by context id, preserving the
	// "group key -> list of row indices" shape the source repository's
	// grouping layer uses, adapted here to fact-slice grouping).
	byContext := make(map[string][]instance.Fact)

	for _, sigFacts := range facts {
		if !axesMatch(sigFacts, contexts, requiredAxes) {
			continue
		}
		for _, fact := range sigFacts {
			if _, ok := columnSet[fact.ConceptName]; !ok {
				continue
			}
			ctx, ok := contexts[fact.ContextID]
			if !ok || ctx.Period.Type != period {
				continue
			}
			byContext[fact.ContextID] = append(byContext[fact.ContextID], fact)
		}
	}

	var rows []Row
	var counters Counters

	contextIDs := make([]string, 0, len(byContext))
	for id := range byContext {
		contextIDs = append(contextIDs, id)
	}
	sort.Strings(contextIDs)

	for _, contextID := range contextIDs {
		groupFacts := byContext[contextID]
		ctx := contexts[contextID]

		row := Row{
			PrimaryKey: primaryKeyValues(table, ctx, filingName, publicationTime),
			Values:     make(map[string]any, len(table.Columns)),
		}

		winner := make(map[string]instance.Fact, len(groupFacts))
		for _, fact := range groupFacts {
			if prior, dup := winner[fact.ConceptName]; dup {
				if fact.DocOrder > prior.DocOrder {
					winner[fact.ConceptName] = fact
				}
				counters.DuplicateFactDropped++
				continue
			}
			winner[fact.ConceptName] = fact
		}

		for _, col := range table.Columns {
			fact, ok := winner[col.ConceptName]
			if !ok {
				row.Values[col.Name] = nil
				continue
			}
			value, ok := coerce(fact.RawValue, fact.ConceptType)
			if !ok {
				counters.TypeCoercionSkipped++
				row.Values[col.Name] = nil
				continue
			}
			row.Values[col.Name] = value
		}

		rows = append(rows, row)
	}

	return rows, counters
}

// axesMatch reports whether the axis set shared by all facts under one
// signature key equals required exactly (set-equality, order-independent).
func axesMatch(facts []instance.Fact, contexts instance.ContextIndex, required []string) bool {
	if len(facts) == 0 {
		return false
	}
	ctx, ok := contexts[facts[0].ContextID]
	if !ok {
		return false
	}
	axes := ctx.Axes()
	if len(axes) != len(required) {
		return false
	}
	for i, a := range axes {
		if a != required[i] {
			return false
		}
	}
	return true
}

func tablePeriod(table *schema.TableSchema) instance.PeriodType {
	if table.Period == schema.PeriodInstant {
		return instance.PeriodInstant
	}
	return instance.PeriodDuration
}

// primaryKeyValues builds a row's primary-key tuple in table.PrimaryKey
// order: fixed context fields first, then axis values drawn from ctx.Dims.
func primaryKeyValues(table *schema.TableSchema, ctx instance.Context, filingName, publicationTime string) []string {
	axisValues := make(map[string]string, len(ctx.Dims))
	for _, d := range ctx.Dims {
		axisValues[d.Axis] = d.Value
	}

	out := make([]string, 0, len(table.PrimaryKey))
	for _, pk := range table.PrimaryKey {
		switch pk.Name {
		case "entity_id":
			out = append(out, ctx.EntityID)
		case "filing_name":
			out = append(out, filingName)
		case "publication_time":
			out = append(out, publicationTime)
		case "date":
			out = append(out, formatDate(ctx.Period.Date))
		case "start_date":
			out = append(out, formatDate(ctx.Period.Start))
		case "end_date":
			out = append(out, formatDate(ctx.Period.End))
		default:
			out = append(out, axisValues[pk.ConceptName])
		}
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
