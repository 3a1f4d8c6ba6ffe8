package crawl

import (
	"context"
	"fmt"
	"net/url"
	"time"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
)

// Walker drives one category from its first page to exhaustion. Pages are
// fetched strictly in increasing page-number order; whether a further page
// exists is only knowable from the current page's content.
type Walker struct {
	Fetcher     quotes.Fetcher
	Extractor   quotes.Extractor
	Quotes      quotes.QuoteService
	Categories  quotes.CategoryService
	Budget      *quotes.Budget
	RateLimiter quotes.DomainLimiter
}

// WalkResult holds the outcome of walking one category. Err carries the
// diagnostic that stopped the walk early, if any; the category is marked
// done regardless.
type WalkResult struct {
	Category *quotes.Category
	Pages    int
	Quotes   int
	Err      error
}

// storeTimeout bounds the terminal bulk insert and status update.
const storeTimeout = 30 * time.Second

// pageURL constructs the deterministic URL of the nth page of a category.
func pageURL(base string, n int) string {
	return fmt.Sprintf("%s/page/%d/", base, n)
}

// Walk runs the pagination loop for one category: fetch a page, extract
// its quotes, continue while a next link exists and the shared budget
// allows. On termination for any reason the collected quotes are persisted
// in one bulk insert and the category is marked done unconditionally, even
// if zero pages were fetched.
func (w *Walker) Walk(ctx context.Context, category *quotes.Category, progress ProgressFunc) WalkResult {
	result := WalkResult{Category: category}

	domain := ""
	if u, err := url.Parse(category.PageURL); err == nil {
		domain = u.Host
	}

	var collected []*quotes.Quote

	for page := 1; ; page++ {
		if ctx.Err() != nil {
			result.Err = ctx.Err()
			break
		}

		// Budget exhaustion is a terminal, non-error stop.
		if !w.Budget.TryAcquire() {
			break
		}

		target := pageURL(category.PageURL, page)

		if progress != nil {
			progress(ProgressEvent{
				Type:     ProgressPage,
				Category: category.PageURL,
				URL:      target,
				Request:  w.Budget.Used(),
			})
		}

		html, err := w.fetch(ctx, domain, target)
		if err != nil {
			// The reserved fetch never completed; the budget counts
			// completed requests only.
			w.Budget.Release()
			result.Err = err
			break
		}

		extracted, err := w.Extractor.Extract(html, target)
		if err != nil {
			// Blocks extracted before the malformed one still count.
			if extracted != nil {
				collected = append(collected, extracted.Quotes...)
			}
			result.Err = err
			break
		}

		collected = append(collected, extracted.Quotes...)
		result.Pages++

		if !extracted.HasNext {
			break
		}
	}

	result.Quotes = len(collected)

	// Persist whatever was collected, then mark the category done. Both
	// happen on every termination path, including walk-context timeout,
	// so the store step runs detached from the walk's cancellation.
	storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storeTimeout)
	defer cancel()

	if len(collected) > 0 {
		if err := w.Quotes.InsertQuotes(storeCtx, collected); err != nil && result.Err == nil {
			result.Err = err
		}
	}
	if err := w.Categories.MarkCategoryDone(storeCtx, category.ID); err != nil && result.Err == nil {
		result.Err = err
	}

	return result
}

// fetch waits for the per-domain rate limit, then issues the page request.
func (w *Walker) fetch(ctx context.Context, domain, target string) (string, error) {
	if w.RateLimiter != nil && domain != "" {
		if err := w.RateLimiter.Wait(ctx, domain); err != nil {
			return "", err
		}
	}
	return w.Fetcher.Fetch(ctx, target)
}

// categoryTimeoutContext bounds one walker task when a per-category
// timeout is configured.
func categoryTimeoutContext(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
