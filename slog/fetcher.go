// Package slog provides logging decorators for the quotes services.
package slog

import (
	"context"
	"log/slog"
	"time"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
)

// Ensure Fetcher implements quotes.Fetcher.
var _ quotes.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a quotes.Fetcher with per-request logging.
type Fetcher struct {
	next   quotes.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher around next.
func NewFetcher(next quotes.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("page fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	f.logger.Debug("page fetched",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
