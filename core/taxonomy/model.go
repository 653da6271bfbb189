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

import (
	"fmt"
	"sort"
	"strings"
)

// TaxonomyModel is the fully cross-referenced, validated in-memory view of
// a taxonomy: every concept, every link role's DAG, and every axis, with
// all arc endpoints and axis references resolved against the concept and
// axis sets. Build is the only way to obtain one; a *TaxonomyModel is
// always internally consistent once returned.
type TaxonomyModel struct {
	concepts map[string]Concept
	roles    map[string]*LinkRole
	axes     map[string]Axis

	roleOrder []string // declared order, for deterministic iteration
}

// Build loads concepts, link roles, and axes from provider, cross-
// references them, and validates the result. It fails with *IncompleteError
// on any dangling reference (an arc endpoint or axis name that doesn't
// resolve) and with *CyclicError if any link role's DAG contains a cycle.
func Build(provider Provider) (*TaxonomyModel, error) {
	conceptDefs, err := provider.Concepts()
	if err != nil {
		return nil, fmt.Errorf("loading concepts: %w", err)
	}
	roleDefs, err := provider.LinkRoles()
	if err != nil {
		return nil, fmt.Errorf("loading link roles: %w", err)
	}
	axisDefs, err := provider.Axes()
	if err != nil {
		return nil, fmt.Errorf("loading axes: %w", err)
	}

	m := &TaxonomyModel{
		concepts: make(map[string]Concept, len(conceptDefs)),
		roles:    make(map[string]*LinkRole, len(roleDefs)),
		axes:     make(map[string]Axis, len(axisDefs)),
	}

	for _, cd := range conceptDefs {
		m.concepts[cd.Name] = Concept{
			Name:        cd.Name,
			Type:        cd.Type,
			Period:      cd.Period,
			UnitHint:    cd.UnitHint,
			Label:       cd.Label,
			Description: cd.Description,
		}
	}
	for _, ad := range axisDefs {
		m.axes[ad.Name] = Axis{
			Name:      ad.Name,
			Kind:      ad.Kind,
			Domain:    ad.Domain,
			ValueType: ad.ValueType,
		}
	}

	usedStems := make(map[string]int)
	for _, rd := range roleDefs {
		if _, ok := m.concepts[rd.Root]; !ok {
			return nil, &IncompleteError{Kind: "concept", Ref: rd.Root, Role: rd.URI}
		}
		for _, ax := range rd.Axes {
			if _, ok := m.axes[ax]; !ok {
				return nil, &IncompleteError{Kind: "axis", Ref: ax, Role: rd.URI}
			}
		}

		children := make(map[string][]string)
		for _, arc := range rd.Arcs {
			if _, ok := m.concepts[arc.Parent]; !ok {
				return nil, &IncompleteError{Kind: "concept", Ref: arc.Parent, Role: rd.URI}
			}
			if _, ok := m.concepts[arc.Child]; !ok {
				return nil, &IncompleteError{Kind: "concept", Ref: arc.Child, Role: rd.URI}
			}
			children[arc.Parent] = append(children[arc.Parent], arc.Child)
		}

		stem := stemOf(rd.Name)
		usedStems[stem]++
		if n := usedStems[stem]; n > 1 {
			stem = fmt.Sprintf("%s_%d", stem, n)
		}

		role := &LinkRole{
			URI:      rd.URI,
			Name:     rd.Name,
			Stem:     stem,
			Root:     rd.Root,
			children: children,
			Axes:     append([]string(nil), rd.Axes...),
		}
		if err := detectCycle(role); err != nil {
			return nil, err
		}

		m.roles[rd.URI] = role
		m.roleOrder = append(m.roleOrder, rd.URI)
	}

	return m, nil
}

// detectCycle walks a role's DAG depth-first from its root and then from
// every arc parent in name order (so a cycle not reachable from the root is
// found too), failing with a *CyclicError that names the full repeated path
// if a concept is revisited while still on the current path.
func detectCycle(role *LinkRole) error {
	onPath := make(map[string]bool)
	var path []string

	var visit func(node string) error
	visit = func(node string) error {
		if onPath[node] {
			return &CyclicError{Role: role.URI, Path: append(append([]string(nil), path...), node)}
		}
		onPath[node] = true
		path = append(path, node)
		for _, child := range role.children[node] {
			if err := visit(child); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		onPath[node] = false
		return nil
	}

	if err := visit(role.Root); err != nil {
		return err
	}
	parents := make([]string, 0, len(role.children))
	for p := range role.children {
		parents = append(parents, p)
	}
	sort.Strings(parents)
	for _, p := range parents {
		if err := visit(p); err != nil {
			return err
		}
	}
	return nil
}

// stemOf normalizes a link role's display name into a lowercase,
// underscore-separated table-name stem.
func stemOf(name string) string {
	var b strings.Builder
	prevUnderscore := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevUnderscore = false
		default:
			if !prevUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				prevUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

// Concept looks up a concept by qualified name.
func (m *TaxonomyModel) Concept(name string) (Concept, bool) {
	c, ok := m.concepts[name]
	return c, ok
}

// Axis looks up an axis by name.
func (m *TaxonomyModel) Axis(name string) (Axis, bool) {
	a, ok := m.axes[name]
	return a, ok
}

// Role looks up a link role by URI.
func (m *TaxonomyModel) Role(uri string) (*LinkRole, bool) {
	r, ok := m.roles[uri]
	return r, ok
}

// Roles returns all link roles in declared order.
func (m *TaxonomyModel) Roles() []*LinkRole {
	out := make([]*LinkRole, 0, len(m.roleOrder))
	for _, uri := range m.roleOrder {
		out = append(out, m.roles[uri])
	}
	return out
}

// ConceptNames returns every concept's qualified name, sorted, primarily
// used by tests asserting on a fully resolved taxonomy.
func (m *TaxonomyModel) ConceptNames() []string {
	out := make([]string, 0, len(m.concepts))
	for name := range m.concepts {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
