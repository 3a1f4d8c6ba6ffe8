package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"time"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
	"github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded/crawl"
	"github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded/export"
	quotesgoquery "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded/goquery"
	quoteshttp "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded/http"
	quotesslog "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded/slog"
)

// Run executes the crawl command: walk all pending categories on a worker
// pool, then export what was stored.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	stdin := bufio.NewReader(deps.Stdin)

	// Both values are required; missing flags fall back to prompts.
	if c.RequestLimit <= 0 {
		n, err := promptInt(stdin, deps.Stdout, "Enter the maximum number of requests to send")
		if err != nil {
			return err
		}
		c.RequestLimit = n
	}
	if c.MaxWorkers <= 0 {
		n, err := promptInt(stdin, deps.Stdout, "Enter the number of max workers")
		if err != nil {
			return err
		}
		c.MaxWorkers = n
	}

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))

	fetcher := quotesslog.NewFetcher(quoteshttp.NewFetcher(), logger)
	defer fetcher.Close()

	crawler := &crawl.Crawler{
		Fetcher:         fetcher,
		Extractor:       quotesgoquery.NewExtractor(),
		Quotes:          deps.Quotes,
		Categories:      deps.Categories,
		Budget:          quotes.NewBudget(int64(c.RequestLimit)),
		RateLimiter:     crawl.NewDomainLimiter(c.RPS),
		Concurrency:     c.MaxWorkers,
		CategoryLimit:   c.CategoryLimit,
		CategoryTimeout: time.Duration(c.Timeout) * time.Second,
	}

	result, err := crawler.Run(deps.Ctx, c.printProgress(deps))
	if err != nil {
		if quotes.ErrorCode(err) == quotes.ENOTFOUND {
			fmt.Fprintln(deps.Stdout, "Warning: no pending categories found.")
			return nil
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, "All categories processed.")
	fmt.Fprintf(deps.Stdout, "Total requests sent: %d\n", result.Requests)
	fmt.Fprintf(deps.Stdout, "Total quotes stored: %d\n", result.Quotes)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "Categories with errors: %d\n", result.Failed)
	}
	fmt.Fprintf(deps.Stdout, "Total execution time: %.2f seconds\n", result.Elapsed.Seconds())

	if c.NoExport {
		return nil
	}
	return runExport(deps)
}

// printProgress writes run diagnostics to the console as the crawl
// proceeds. Errors inside a category are reported but never abort the run.
func (c *CrawlCmd) printProgress(deps *Dependencies) crawl.ProgressFunc {
	return func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d pending categories. Processing...\n", event.Total)
		case crawl.ProgressPage:
			fmt.Fprintf(deps.Stdout, "Request #%d: %s\n", event.Request, event.URL)
		case crawl.ProgressCategoryDone:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s: %d quotes\n",
				event.Completed, event.Total, event.Category, event.Quotes)
		case crawl.ProgressCategoryFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s stopped early: %s\n",
				event.Completed, event.Total, event.Category, event.Error)
		}
	}
}

// runExport writes the stored records to the default CSV and XLSX files.
// An empty store is a warning, not an error.
func runExport(deps *Dependencies) error {
	exporter := export.NewExporter(deps.Quotes)

	n, err := exporter.Export(deps.Ctx)
	if err != nil {
		if quotes.ErrorCode(err) == quotes.ENOTFOUND {
			fmt.Fprintln(deps.Stdout, "Warning: no data found to export.")
			return nil
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d quotes to %s and %s\n",
		n, export.DefaultCSVPath, export.DefaultXLSXPath)
	return nil
}
