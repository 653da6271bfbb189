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
	"github.com/catalystxbrl/xbrl-relational/core/project"
	"github.com/catalystxbrl/xbrl-relational/core/schema"
)

// Sink is the tabular database collaborator: a single-consumer, thread-
// confined writer that accepts one table's fully merged rows at a time,
// each in its own transaction.
type Sink interface {
	WriteTable(table *schema.TableSchema, rows []project.Row) error
	Close() error
}
