package quotes

import (
	"context"
	"strings"
)

// TagSeparator joins a quote's tags into the single stored string.
// Tags are stored denormalized, not as a list field.
const TagSeparator = " | "

// Quote is one quotation extracted from a category page.
type Quote struct {
	Text          string   `json:"text"`
	Author        string   `json:"author"`
	Tags          []string `json:"tags"`
	SourcePageURL string   `json:"sourcePageUrl"`
}

// Validate returns an error if the quote contains invalid fields.
func (q *Quote) Validate() error {
	if q.Text == "" {
		return Errorf(EINVALID, "quote text required")
	}
	if q.Author == "" {
		return Errorf(EINVALID, "quote author required")
	}
	return nil
}

// JoinedTags returns the tags flattened to their stored form.
func (q *Quote) JoinedTags() string {
	return strings.Join(q.Tags, TagSeparator)
}

// Record returns the denormalized projection of the quote as it is stored
// and exported.
func (q *Quote) Record() *QuoteRecord {
	return &QuoteRecord{
		Quote:        q.Text,
		Author:       q.Author,
		Tags:         q.JoinedTags(),
		CategoryLink: q.SourcePageURL,
	}
}

// QuoteRecord is the stored form of a Quote. Records are immutable once
// inserted; there is no update or delete path.
type QuoteRecord struct {
	Quote        string `json:"quote"`
	Author       string `json:"author"`
	Tags         string `json:"tags"`
	CategoryLink string `json:"categoryLink"`
}

// QuoteRecordHeader returns the field names of a QuoteRecord in export
// column order.
func QuoteRecordHeader() []string {
	return []string{"quote", "author", "tags", "category_link"}
}

// QuoteService persists and reads scraped quotes.
type QuoteService interface {
	// InsertQuotes writes the quotes in one unordered bulk insert.
	// The insert is partial-failure tolerant: records rejected as
	// duplicates do not prevent the rest of the batch from committing.
	InsertQuotes(ctx context.Context, quotes []*Quote) error

	// FindAllQuotes retrieves every stored record, excluding the
	// internal identifier field.
	FindAllQuotes(ctx context.Context) ([]*QuoteRecord, error)

	// CountQuotes returns the number of stored records.
	CountQuotes(ctx context.Context) (int64, error)
}
