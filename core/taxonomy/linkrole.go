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

package taxonomy

// Arc is a single parent -> child edge in a LinkRole's concept DAG, in
// taxonomy-declared order.
type Arc struct {
	Parent string
	Child  string
}

// LinkRole is a named grouping in the taxonomy that roots a concept DAG.
// TaxonomyModel.Build checks that Root and every arc endpoint are known
// concepts and that the arcs contain no cycle; it does not check that every
// arc is reachable from Root.
type LinkRole struct {
	URI  string
	Name string
	Stem string // normalized table-name stem, collision-resolved

	Root string
	// children preserves declared arc order per parent, which is what
	// SchemaCompiler's stable depth-first traversal walks.
	children map[string][]string

	// Axes lists the axes the taxonomy provider has resolved as in scope
	// for this role (see DESIGN.md for how the definition-linkbase lookup
	// is modeled as already-resolved provider output).
	Axes []string
}

// Children returns the declared-order list of child concept names for a
// parent concept within this role. Returns nil if parent has no children
// (i.e. parent is a leaf).
func (r *LinkRole) Children(parent string) []string {
	return r.children[parent]
}

// LinkRoleDef is the shape the TaxonomyProvider collaborator hands back
// for a single link role: a URI, a display name, its root concept, its
// arcs (in declared order), and the axes already resolved as in scope.
type LinkRoleDef struct {
	URI  string
	Name string
	Root string
	Arcs []Arc
	Axes []string
}
