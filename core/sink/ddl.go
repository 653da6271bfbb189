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

package sink

import (
	"fmt"
	"strings"

	"github.com/catalystxbrl/xbrl-relational/core/schema"
)

// sqlType maps a schema.ColumnType to the SQL type used in CREATE TABLE
// statements. Both SQLite and DuckDB accept this trio; the sink is
// permissive by design (SPEC_FULL.md §4.2's numeric-semantics rationale).
func sqlType(t schema.ColumnType) string {
	switch t {
	case schema.ColumnFloat64:
		return "REAL"
	case schema.ColumnInt64:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

// createTableSQL builds a CREATE TABLE IF NOT EXISTS statement for table,
// with primary-key columns first, then data columns, and a composite
// PRIMARY KEY clause over the primary-key columns.
func createTableSQL(table *schema.TableSchema) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", quoteIdent(table.Name))

	cols := table.AllColumns()
	for i, c := range cols {
		fmt.Fprintf(&b, "  %s %s", quoteIdent(c.Name), sqlType(c.Type))
		if i < len(cols)-1 || len(table.PrimaryKey) > 0 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}

	if len(table.PrimaryKey) > 0 {
		pkNames := make([]string, 0, len(table.PrimaryKey))
		for _, pk := range table.PrimaryKey {
			pkNames = append(pkNames, quoteIdent(pk.Name))
		}
		fmt.Fprintf(&b, "  PRIMARY KEY (%s)\n", strings.Join(pkNames, ", "))
	}

	b.WriteString(")")
	return b.String()
}

// insertSQL builds a parameterized INSERT OR REPLACE statement (the sink
// writes each table's fully merged row set, so last-write-wins at the SQL
// layer is correct: BatchRunner has already resolved supersession).
func insertSQL(table *schema.TableSchema) string {
	cols := table.AllColumns()
	names := make([]string, 0, len(cols))
	placeholders := make([]string, 0, len(cols))
	for _, c := range cols {
		names = append(names, quoteIdent(c.Name))
		placeholders = append(placeholders, "?")
	}
	return fmt.Sprintf("INSERT OR REPLACE INTO %s (%s) VALUES (%s)",
		quoteIdent(table.Name), strings.Join(names, ", "), strings.Join(placeholders, ", "))
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
