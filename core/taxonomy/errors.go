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

import "fmt"

// IncompleteError reports a dangling cross-reference: an arc endpoint or
// an axis reference that does not resolve to a known concept/axis.
type IncompleteError struct {
	Kind string // "concept", "axis"
	Ref  string
	Role string
}

func (e *IncompleteError) Error() string {
	if e.Role != "" {
		return fmt.Sprintf("taxonomy incomplete: %s %q referenced by role %q does not resolve", e.Kind, e.Ref, e.Role)
	}
	return fmt.Sprintf("taxonomy incomplete: %s %q does not resolve", e.Kind, e.Ref)
}

// CyclicError reports a cycle found in a link role's concept DAG.
type CyclicError struct {
	Role string
	Path []string
}

func (e *CyclicError) Error() string {
	return fmt.Sprintf("taxonomy cyclic: role %q has a cycle: %v", e.Role, e.Path)
}
