package mock

import (
	"context"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
)

var _ quotes.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of quotes.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
