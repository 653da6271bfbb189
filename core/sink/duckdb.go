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
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/catalystxbrl/xbrl-relational/core/project"
	"github.com/catalystxbrl/xbrl-relational/core/schema"
)

// DuckDB is a tabular sink backed by the DuckDB database/sql driver, an
// alternative to SQLite for larger analytic workloads over the same
// compiled schema.
type DuckDB struct {
	db *sql.DB
}

// OpenDuckDB opens (creating if absent) a DuckDB database file at path.
func OpenDuckDB(path string) (*DuckDB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb database %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to duckdb database %q: %w", path, err)
	}
	return &DuckDB{db: db}, nil
}

func (d *DuckDB) WriteTable(table *schema.TableSchema, rows []project.Row) error {
	if _, err := d.db.Exec(createTableSQL(table)); err != nil {
		return fmt.Errorf("creating table %q: %w", table.Name, err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction for table %q: %w", table.Name, err)
	}

	stmt, err := tx.Prepare(insertSQL(table))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert for table %q: %w", table.Name, err)
	}
	defer stmt.Close()

	for _, row := range rows {
		args := make([]any, 0, len(table.PrimaryKey)+len(table.Columns))
		for i := range table.PrimaryKey {
			args = append(args, row.PrimaryKey[i])
		}
		for _, c := range table.Columns {
			args = append(args, row.Values[c.Name])
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting row into table %q: %w", table.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing table %q: %w", table.Name, err)
	}
	return nil
}

func (d *DuckDB) Close() error {
	return d.db.Close()
}
