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

// Row is one projected, typed row conforming to a schema.TableSchema:
// primary-key values in schema order, and data-column values keyed by
// column name. A nil entry in Values means the cell is null — either no
// fact in the group carried that concept, or the fact's lexical value
// failed to coerce to the column's type.
type Row struct {
	PrimaryKey []string
	Values     map[string]any
}

// Counters accumulates the non-fatal conditions FactProjector records
// while projecting one table for one filing.
type Counters struct {
	TypeCoercionSkipped  int
	DuplicateFactDropped int
}

func (c *Counters) merge(other Counters) {
	c.TypeCoercionSkipped += other.TypeCoercionSkipped
	c.DuplicateFactDropped += other.DuplicateFactDropped
}
