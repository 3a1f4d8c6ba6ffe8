// Package crawl provides scraping orchestration. It fans pending
// categories out onto a bounded worker pool, walks each category's
// pagination, and fans completion back in.
package crawl

import (
	"context"
	"time"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the worker pool when no size is configured.
const DefaultConcurrency = 10

// Crawler orchestrates one scraping run.
type Crawler struct {
	Fetcher     quotes.Fetcher
	Extractor   quotes.Extractor
	Quotes      quotes.QuoteService
	Categories  quotes.CategoryService
	Budget      *quotes.Budget
	RateLimiter quotes.DomainLimiter

	// Concurrency is the worker pool size. Defaults to DefaultConcurrency.
	Concurrency int

	// CategoryLimit caps how many pending categories one run picks up.
	// Zero means no cap. Independent of the request budget.
	CategoryLimit int

	// CategoryTimeout bounds each category walk, so a hung fetch cannot
	// occupy a worker slot indefinitely. Zero disables the bound.
	CategoryTimeout time.Duration
}

// Result holds the outcome of a crawl run.
type Result struct {
	Categories int
	Pages      int
	Quotes     int
	Failed     int
	Requests   int64
	Elapsed    time.Duration
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types emitted during a run.
const (
	ProgressStarted ProgressType = iota
	ProgressPage
	ProgressCategoryDone
	ProgressCategoryFailed
	ProgressFinished
)

// ProgressEvent reports progress during a crawl run.
type ProgressEvent struct {
	Type      ProgressType
	Category  string
	URL       string
	Request   int64
	Completed int
	Total     int
	Quotes    int
	Error     error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Run reads the pending categories and walks each of them on the worker
// pool. Every picked-up category reaches done status before Run returns;
// failures are contained per category and reported in the result, never
// aborting the batch. Returns ENOTFOUND when no categories are pending.
func (c *Crawler) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	start := time.Now()

	categories, err := c.Categories.FindPendingCategories(ctx, c.CategoryLimit)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, quotes.Errorf(quotes.ENOTFOUND, "no pending categories found")
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: len(categories),
		})
	}

	walker := &Walker{
		Fetcher:     c.Fetcher,
		Extractor:   c.Extractor,
		Quotes:      c.Quotes,
		Categories:  c.Categories,
		Budget:      c.Budget,
		RateLimiter: c.RateLimiter,
	}

	resultCh := make(chan WalkResult, len(categories))

	// Walker errors are contained per category, so the group never
	// carries an error; it only bounds and joins the workers.
	g := &errgroup.Group{}
	g.SetLimit(concurrency)

	go func() {
		for _, category := range categories {
			category := category
			g.Go(func() error {
				wctx, cancel := categoryTimeoutContext(ctx, c.CategoryTimeout)
				defer cancel()
				resultCh <- walker.Walk(wctx, category, progress)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &Result{Categories: len(categories)}
	completed := 0
	for wr := range resultCh {
		completed++
		result.Pages += wr.Pages
		result.Quotes += wr.Quotes

		event := ProgressEvent{
			Type:      ProgressCategoryDone,
			Category:  wr.Category.PageURL,
			Completed: completed,
			Total:     len(categories),
			Quotes:    wr.Quotes,
		}
		if wr.Err != nil {
			result.Failed++
			event.Type = ProgressCategoryFailed
			event.Error = wr.Err
		}
		if progress != nil {
			progress(event)
		}
	}

	result.Requests = c.Budget.Used()
	result.Elapsed = time.Since(start)

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: completed,
			Total:     len(categories),
			Request:   result.Requests,
		})
	}

	return result, nil
}
