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

import "fmt"

// TimeoutError reports a filing whose per-filing wall-clock budget
// expired before projection finished.
type TimeoutError struct {
	FilingName string
	Budget     string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("filing %q exceeded timeout %s", e.FilingName, e.Budget)
}

// SinkWriteError wraps a failure writing a batch of rows to the tabular
// sink for one table.
type SinkWriteError struct {
	Table string
	Err   error
}

func (e *SinkWriteError) Error() string {
	return fmt.Sprintf("writing table %q: %v", e.Table, e.Err)
}

func (e *SinkWriteError) Unwrap() error { return e.Err }
