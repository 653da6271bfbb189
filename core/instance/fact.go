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

import "github.com/catalystxbrl/xbrl-relational/core/taxonomy"

// Fact is a single reported value: a concept name, the context it refers
// to, and its raw lexical value as it appeared in the instance document.
// DocOrder records the element's position in document order, the basis
// for FactProjector's duplicate-fact tie-break.
type Fact struct {
	ConceptName string
	ContextID   string
	RawValue    string
	ConceptType taxonomy.PrimitiveType
	DocOrder    int
}

// FactIndex maps a context's canonical signature (see Context.Signature)
// to the facts recorded against any context sharing that signature, in
// document order.
type FactIndex map[string][]Fact
