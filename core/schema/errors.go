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

package schema

import "fmt"

// ConflictError reports two distinct schemas resolving to the same table
// name after collision handling, or a leaf concept with no period type.
type ConflictError struct {
	TableName string
	Reason    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("schema conflict on table %q: %s", e.TableName, e.Reason)
}
