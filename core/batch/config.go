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

import "time"

// Config is the plain run configuration. Parsing it from flags, an
// environment, or a file is an external collaborator's concern; this
// struct is the boundary BatchRunner consumes.
type Config struct {
	Taxonomy    string // URL or archive path
	ArchivePath string // entry-point path inside a taxonomy archive

	Workers   int // default: one per logical core
	BatchSize int // default: 20

	SQLitePath string
	DuckDBPath string

	MetadataPath    string
	DatapackagePath string

	// Tables, if non-empty, restricts extraction to these full table names
	// (e.g. "balance_sheet_instant"), matched exactly.
	Tables []string

	// FilingTimeout is the per-filing wall-clock timeout; zero means no
	// timeout.
	FilingTimeout time.Duration
}

// DefaultBatchSize is used when Config.BatchSize is unset.
const DefaultBatchSize = 20
