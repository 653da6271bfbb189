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

package instance

import (
	"sort"
	"strings"
	"time"
)

// PeriodType discriminates an instant period from a duration period,
// mirroring taxonomy.PeriodType for the fact's context rather than its
// concept declaration.
type PeriodType int

const (
	PeriodUnknown PeriodType = iota
	PeriodInstant
	PeriodDuration
)

// Period is either an instant (a single date) or a duration (a date
// range with Start <= End).
type Period struct {
	Type  PeriodType
	Date  time.Time // set iff Type == PeriodInstant
	Start time.Time // set iff Type == PeriodDuration
	End   time.Time // set iff Type == PeriodDuration
}

// Dimension is one (axis, value) pair in a context's dimensional
// signature.
type Dimension struct {
	Axis  string
	Value string
}

// Context is a filing-local identifier plus an entity id, a period, and a
// possibly-empty ordered set of dimensions.
type Context struct {
	ID       string
	EntityID string
	Period   Period
	Dims     []Dimension
}

// Signature returns the canonical form of Dims: the lexicographically
// sorted tuple of (axis, value) pairs, joined into a single comparable
// string key. All FactIndex lookups use this canonical form, never the
// context id, per SPEC_FULL.md §4.3's key choice.
func (c Context) Signature() string {
	return signatureOf(c.Dims)
}

// Axes returns the axis names in Dims, sorted, one entry per dimension
// (a repeated axis is not collapsed) — FactProjector compares this
// element-for-element against a table's sorted required axes.
func (c Context) Axes() []string {
	axes := make([]string, 0, len(c.Dims))
	for _, d := range c.Dims {
		axes = append(axes, d.Axis)
	}
	sort.Strings(axes)
	return axes
}

func signatureOf(dims []Dimension) string {
	sorted := append([]Dimension(nil), dims...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Axis != sorted[j].Axis {
			return sorted[i].Axis < sorted[j].Axis
		}
		return sorted[i].Value < sorted[j].Value
	})
	var b strings.Builder
	for i, d := range sorted {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(d.Axis)
		b.WriteByte('=')
		b.WriteString(d.Value)
	}
	return b.String()
}

// ContextIndex maps a filing-local context id to its parsed Context.
type ContextIndex map[string]Context
