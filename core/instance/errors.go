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

import "fmt"

// MalformedError reports a context that could not be parsed: a missing
// entity, unparseable period dates, or an unrecognized typed-axis element.
type MalformedError struct {
	ContextID string
	Reason    string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("context %q malformed: %s", e.ContextID, e.Reason)
}
