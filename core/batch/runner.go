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
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/catalystxbrl/xbrl-relational/core/instance"
	"github.com/catalystxbrl/xbrl-relational/core/project"
	"github.com/catalystxbrl/xbrl-relational/core/schema"
	"github.com/catalystxbrl/xbrl-relational/core/taxonomy"
)

// batchResult is what a worker sends back per filing and table: the table
// name and the rows it projected for that table from one filing, tagged
// with the filing's name and publication time so the fan-in goroutine can
// merge them.
type batchResult struct {
	tableName       string
	rows            []project.Row
	filingName      string
	publicationTime string
}

// Runner drives parallel extraction across a filing set: it chunks
// filings into batches, dispatches each batch to a worker, fans in
// per-table row streams, and writes the merged result to the sink. The
// taxonomy model and compiled schema bundle are read-only and shared
// across workers without synchronization, per SPEC_FULL.md §5.
type Runner struct {
	bundle *schema.Bundle
	known  func(name string) (taxonomy.Concept, bool)
	sink   Sink
	logger *zap.Logger
	cfg    Config

	tables map[string]*schema.TableSchema
}

// NewRunner builds a Runner over the given compiled schema bundle. model
// resolves a qualified concept name while each filing is read.
func NewRunner(bundle *schema.Bundle, model *taxonomy.TaxonomyModel, sink Sink, logger *zap.Logger, cfg Config) *Runner {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	tables := make(map[string]*schema.TableSchema, len(bundle.Tables))
	allowed := allowSet(cfg.Tables)
	for _, t := range bundle.Tables {
		if allowed != nil && !allowed[t.Name] {
			continue
		}
		tables[t.Name] = t
	}

	return &Runner{
		bundle: bundle,
		known:  func(name string) (taxonomy.Concept, bool) { return model.Concept(name) },
		sink:   sink,
		logger: logger,
		cfg:    cfg,
		tables: tables,
	}
}

func allowSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// Run processes every filing in refs, writes the merged result to the
// sink per table, and returns the run summary. ctx cancellation stops each
// worker before its next filing, so the rest of its batch is not
// processed; a filing still being read or still sending rows when ctx is
// cancelled is abandoned and recorded as failed. Rows already sent by then
// are still merged and written.
func (r *Runner) Run(ctx context.Context, refs []FilingRef) (*Summary, error) {
	summary := newSummary()
	accumulators := make(map[string]*tableAccumulator, len(r.tables))
	for name := range r.tables {
		accumulators[name] = newTableAccumulator()
	}

	results := make(chan batchResult, r.cfg.Workers*2)
	batches := chunk(refs, r.cfg.BatchSize)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.cfg.Workers)

	fanInDone := make(chan struct{})
	go func() {
		defer close(fanInDone)
		for res := range results {
			acc, ok := accumulators[res.tableName]
			if !ok {
				continue
			}
			for _, row := range res.rows {
				acc.Combine(row, res.filingName, res.publicationTime)
			}
		}
	}()

	for _, b := range batches {
		b := b
		eg.Go(func() error {
			r.runBatch(egCtx, b, results, summary)
			return nil
		})
	}

	runErr := eg.Wait()
	close(results)
	<-fanInDone

	if runErr != nil {
		return summary, fmt.Errorf("run aborted: %w", runErr)
	}

	for name, acc := range accumulators {
		table := r.tables[name]
		if err := r.sink.WriteTable(table, acc.Rows()); err != nil {
			return summary, &SinkWriteError{Table: name, Err: err}
		}
	}

	return summary, nil
}

// runBatch processes one batch of filings sequentially within a single
// worker goroutine. A filing that fails validation or times out is
// logged and skipped; the batch — and the run — continues.
func (r *Runner) runBatch(ctx context.Context, refs []FilingRef, results chan<- batchResult, summary *Summary) {
	for _, ref := range refs {
		if ctx.Err() != nil {
			return
		}
		if err := r.processFiling(ctx, ref, results, summary); err != nil {
			r.logger.Warn("filing failed, skipping",
				zap.String("filing", ref.Name),
				zap.Error(err))
			summary.recordFailure(ref.Name)
		}
	}
}

func (r *Runner) processFiling(ctx context.Context, ref FilingRef, results chan<- batchResult, summary *Summary) error {
	runCtx := ctx
	if r.cfg.FilingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.FilingTimeout)
		defer cancel()
	}

	rc, err := ref.Open()
	if err != nil {
		return fmt.Errorf("opening filing %q: %w", ref.Name, err)
	}
	defer rc.Close()

	type readResult struct {
		filing *instance.Filing
		err    error
	}
	readCh := make(chan readResult, 1)
	go func() {
		filing, err := instance.Read(rc, ref.Name, ref.PublicationTime, r.known)
		readCh <- readResult{filing, err}
	}()

	var filing *instance.Filing
	select {
	case <-ctx.Done():
		if err := runCtx.Err(); err != nil {
			return fmt.Errorf("reading filing %q: %w", ref.Name, err)
		}
		summary.recordTimeout(ref.Name)
		return &TimeoutError{FilingName: ref.Name, Budget: r.cfg.FilingTimeout.String()}
	case res := <-readCh:
		if res.err != nil {
			return fmt.Errorf("reading filing %q: %w", ref.Name, res.err)
		}
		filing = res.filing
	}

	pubTime := ref.PublicationTime.UTC().Format(time.RFC3339)

	var counters project.Counters
	for name, table := range r.tables {
		rows, c := project.Project(table, filing.Facts, filing.Contexts, ref.Name, pubTime)
		counters.TypeCoercionSkipped += c.TypeCoercionSkipped
		counters.DuplicateFactDropped += c.DuplicateFactDropped
		if len(rows) == 0 {
			continue
		}
		select {
		case results <- batchResult{tableName: name, rows: rows, filingName: ref.Name, publicationTime: pubTime}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	summary.recordSuccess(counters, filing.SkippedConcepts)
	return nil
}

func chunk(refs []FilingRef, size int) [][]FilingRef {
	if size <= 0 {
		size = DefaultBatchSize
	}
	var out [][]FilingRef
	for i := 0; i < len(refs); i += size {
		end := i + size
		if end > len(refs) {
			end = len(refs)
		}
		out = append(out, refs[i:end])
	}
	return out
}
