// Package goquery provides a CSS-selector-based implementation of
// quotes.Extractor for the quotes.toscrape.com markup structure.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
)

// Selectors matching the target site's markup. Each quote block carries a
// text span, an author element, and zero or more tag links; pagination is
// signalled by a "next" navigation link.
const (
	quoteSelector  = "div.quote"
	textSelector   = "span.text"
	authorSelector = "small.author"
	tagSelector    = "div.tags a.tag"
	nextSelector   = "li.next > a"
)

// Ensure Extractor implements quotes.Extractor at compile time.
var _ quotes.Extractor = (*Extractor)(nil)

// Extractor extracts quote records from category page HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the page and returns its quotes plus the continuation
// flag. A quote block missing its text or author element is a hard error;
// extraction stops there, but the well-formed blocks preceding it are
// returned alongside the error so callers can persist them.
func (e *Extractor) Extract(html string, pageURL string) (*quotes.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, quotes.Errorf(quotes.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &quotes.ExtractResult{}

	var extractErr error
	doc.Find(quoteSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := sel.Find(textSelector).First()
		if text.Length() == 0 {
			extractErr = quotes.Errorf(quotes.EINVALID, "quote block missing text span on %s", pageURL)
			return false
		}

		author := sel.Find(authorSelector).First()
		if author.Length() == 0 {
			extractErr = quotes.Errorf(quotes.EINVALID, "quote block missing author on %s", pageURL)
			return false
		}

		var tags []string
		sel.Find(tagSelector).Each(func(_ int, tag *goquery.Selection) {
			tags = append(tags, strings.TrimSpace(tag.Text()))
		})

		result.Quotes = append(result.Quotes, &quotes.Quote{
			Text:          strings.TrimSpace(text.Text()),
			Author:        strings.TrimSpace(author.Text()),
			Tags:          tags,
			SourcePageURL: pageURL,
		})
		return true
	})
	if extractErr != nil {
		return result, extractErr
	}

	result.HasNext = doc.Find(nextSelector).Length() > 0

	return result, nil
}
