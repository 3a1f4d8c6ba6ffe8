package mock

import (
	"context"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
)

var _ quotes.QuoteService = (*QuoteService)(nil)

// QuoteService is a mock implementation of quotes.QuoteService.
type QuoteService struct {
	InsertQuotesFn  func(ctx context.Context, batch []*quotes.Quote) error
	FindAllQuotesFn func(ctx context.Context) ([]*quotes.QuoteRecord, error)
	CountQuotesFn   func(ctx context.Context) (int64, error)
}

func (s *QuoteService) InsertQuotes(ctx context.Context, batch []*quotes.Quote) error {
	return s.InsertQuotesFn(ctx, batch)
}

func (s *QuoteService) FindAllQuotes(ctx context.Context) ([]*quotes.QuoteRecord, error) {
	return s.FindAllQuotesFn(ctx)
}

func (s *QuoteService) CountQuotes(ctx context.Context) (int64, error) {
	return s.CountQuotesFn(ctx)
}
