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
	"io"
	"time"
)

// FilingRef is one filing to be processed: a name, a byte source, and a
// declared publication time. Opening the byte source is deferred to the
// worker that picks this reference off the queue, so large corpora never
// require every filing open at once.
type FilingRef struct {
	Name            string
	PublicationTime time.Time
	Open            func() (io.ReadCloser, error)
}
