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
	"sync"

	"github.com/catalystxbrl/xbrl-relational/core/project"
)

// maxSampledIdentifiers bounds how many offending filing/concept
// identifiers Summary retains per counter, so a run over a large corpus
// doesn't accumulate an unbounded diagnostic log in memory.
const maxSampledIdentifiers = 10

// Summary accumulates the non-fatal, run-wide counters SPEC_FULL.md §7
// exposes at run end, plus a small sample of offending identifiers per
// kind for diagnostics.
type Summary struct {
	mu sync.Mutex

	FilingsProcessed int
	FilingsFailed    int
	FilingsTimedOut  int

	TypeCoercionSkipped  int
	DuplicateFactDropped int
	SkippedConcepts      int

	failedFilings   []string
	timedOutFilings []string
}

func newSummary() *Summary { return &Summary{} }

func (s *Summary) recordSuccess(counters project.Counters, skippedConcepts int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FilingsProcessed++
	s.TypeCoercionSkipped += counters.TypeCoercionSkipped
	s.DuplicateFactDropped += counters.DuplicateFactDropped
	s.SkippedConcepts += skippedConcepts
}

func (s *Summary) recordFailure(filingName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FilingsFailed++
	if len(s.failedFilings) < maxSampledIdentifiers {
		s.failedFilings = append(s.failedFilings, filingName)
	}
}

func (s *Summary) recordTimeout(filingName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FilingsTimedOut++
	if len(s.timedOutFilings) < maxSampledIdentifiers {
		s.timedOutFilings = append(s.timedOutFilings, filingName)
	}
}

// FailedFilingSample returns up to the first 10 failed filing identifiers
// encountered, in the order they failed.
func (s *Summary) FailedFilingSample() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.failedFilings...)
}

// TimedOutFilingSample returns up to the first 10 filing identifiers that
// exceeded their per-filing timeout.
func (s *Summary) TimedOutFilingSample() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.timedOutFilings...)
}

// Complete reports whether every filing in the run was processed without
// failure or timeout.
func (s *Summary) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.FilingsFailed == 0 && s.FilingsTimedOut == 0
}
