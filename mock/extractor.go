package mock

import (
	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
)

var _ quotes.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of quotes.Extractor.
type Extractor struct {
	ExtractFn func(html string, pageURL string) (*quotes.ExtractResult, error)
}

func (e *Extractor) Extract(html string, pageURL string) (*quotes.ExtractResult, error) {
	return e.ExtractFn(html, pageURL)
}
