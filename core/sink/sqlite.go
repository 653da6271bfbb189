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

	_ "modernc.org/sqlite"

	"github.com/catalystxbrl/xbrl-relational/core/project"
	"github.com/catalystxbrl/xbrl-relational/core/schema"
)

// SQLite is a tabular sink backed by the pure-Go modernc.org/sqlite
// driver. Each WriteTable call creates the table if absent and writes all
// of that table's rows in a single transaction, matching the "one sink
// transaction per table" contract BatchRunner relies on.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if absent) a SQLite database at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to sqlite database %q: %w", path, err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) WriteTable(table *schema.TableSchema, rows []project.Row) error {
	if _, err := s.db.Exec(createTableSQL(table)); err != nil {
		return fmt.Errorf("creating table %q: %w", table.Name, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction for table %q: %w", table.Name, err)
	}

	stmt, err := tx.Prepare(insertSQL(table))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert for table %q: %w", table.Name, err)
	}
	defer stmt.Close()

	cols := table.AllColumns()
	for _, row := range rows {
		args := make([]any, 0, len(cols))
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

func (s *SQLite) Close() error {
	return s.db.Close()
}
