// Package pipeline orchestrates a grab run. It fans search hits out to a
// bounded worker pool, processes each page through fetch, extraction,
// cleaning, and conversion, and folds the outcomes back into search order.
package pipeline

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/docgrab"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Pipeline.Concurrency is unset.
const DefaultConcurrency = 5

// MaxConcurrency caps the number of simultaneously in-flight tasks.
const MaxConcurrency = 30

// Pipeline coordinates search, fetching, extraction, and conversion.
type Pipeline struct {
	Search    docgrab.SearchService
	Fetcher   docgrab.Fetcher
	Extractor docgrab.Extractor
	Cleaner   docgrab.Cleaner
	Converter docgrab.Converter

	// Concurrency bounds the number of in-flight fetch+extract tasks.
	// Values outside [1, MaxConcurrency] are clamped.
	Concurrency int
}

// Outcome is the result of processing a single candidate. Exactly one of
// Article and Err is set.
type Outcome struct {
	Candidate docgrab.SearchResult
	Article   *docgrab.Article
	Err       error
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress. It is invoked
// from the collecting goroutine and must not block.
type ProgressFunc func(event ProgressEvent)

// indexedOutcome pairs an outcome with its candidate's position so the
// collector can reassemble results in input order.
type indexedOutcome struct {
	position int
	outcome  Outcome
}

// Run executes a full grab: one search call, then a bounded fan-out over
// the hits. A search failure is fatal. Per-candidate failures only drop
// that candidate from the result set; the run itself still succeeds.
func (p *Pipeline) Run(ctx context.Context, query string, maxResults int, progress ProgressFunc) (*docgrab.ResultSet, error) {
	candidates, err := p.Search.Search(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}

	outcomes := p.RunAll(ctx, candidates, progress)

	return Aggregate(outcomes), nil
}

// RunAll processes every candidate with at most Concurrency tasks in
// flight and returns one outcome per candidate, in candidate order.
// Completion order is unconstrained; the progress callback observes it,
// the returned slice does not.
func (p *Pipeline) RunAll(ctx context.Context, candidates []docgrab.SearchResult, progress ProgressFunc) []Outcome {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if concurrency > MaxConcurrency {
		concurrency = MaxConcurrency
	}

	total := len(candidates)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	resultCh := make(chan indexedOutcome, total)

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, candidate := range candidates {
			i, candidate := i, candidate
			g.Go(func() error {
				resultCh <- indexedOutcome{
					position: i,
					outcome:  p.process(gctx, candidate),
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect outcomes back into candidate order.
	outcomes := make([]Outcome, total)
	for r := range resultCh {
		completed.Add(1)
		outcomes[r.position] = r.outcome

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			URL:       r.outcome.Candidate.URL,
		}
		if r.outcome.Err != nil {
			event.Type = ProgressFailed
			event.Error = r.outcome.Err
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return outcomes
}

// process runs the fetch+extract stages for a single candidate. Each
// stage is attempted exactly once; the first failure settles the outcome.
func (p *Pipeline) process(ctx context.Context, candidate docgrab.SearchResult) Outcome {
	outcome := Outcome{Candidate: candidate}

	html, err := p.Fetcher.Fetch(ctx, candidate.URL)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	extracted, err := p.Extractor.Extract(html)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	contentHTML := extracted.ContentHTML
	if p.Cleaner != nil {
		contentHTML, err = p.Cleaner.Clean(contentHTML)
		if err != nil {
			outcome.Err = err
			return outcome
		}
	}

	markdown, err := p.Converter.Convert(contentHTML)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	if strings.TrimSpace(markdown) == "" {
		outcome.Err = docgrab.Errorf(docgrab.EEXTRACT, "no content left after cleaning %s", candidate.URL)
		return outcome
	}

	title := extracted.Title
	if title == "" {
		title = candidate.Title
	}

	outcome.Article = &docgrab.Article{
		Title:     title,
		Content:   markdown,
		Reference: candidate.URL,
	}

	return outcome
}

// Aggregate filters outcomes to successful articles, preserving their
// relative order. Failures are dropped silently; counting them is the
// caller's concern.
func Aggregate(outcomes []Outcome) *docgrab.ResultSet {
	articles := make([]*docgrab.Article, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil || o.Article == nil {
			continue
		}
		articles = append(articles, o.Article)
	}
	return &docgrab.ResultSet{Articles: articles}
}
