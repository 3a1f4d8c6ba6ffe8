package mongo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// duplicateKeyCode is the MongoDB server error code for unique key violations.
const duplicateKeyCode = 11000

// Compile-time interface verification.
var _ quotes.QuoteService = (*QuoteService)(nil)

// QuoteService implements quotes.QuoteService using MongoDB.
type QuoteService struct {
	db *DB
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(db *DB) *QuoteService {
	return &QuoteService{db: db}
}

// quoteDoc is the stored shape of a quote record. The _id is a content
// hash, so re-scraping the same page rejects the duplicates individually
// while the rest of the batch commits.
type quoteDoc struct {
	ID           string `bson:"_id"`
	Quote        string `bson:"quote"`
	Author       string `bson:"author"`
	Tags         string `bson:"tags"`
	CategoryLink string `bson:"category_link"`
}

// recordID derives a stable identifier from the quote's content and source
// page.
func recordID(q *quotes.Quote) string {
	h := xxhash.New()
	_, _ = h.WriteString(q.Text)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(q.Author)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(q.SourcePageURL)
	return strconv.FormatUint(h.Sum64(), 16)
}

// InsertQuotes writes the quotes in one unordered bulk insert. Duplicate
// records are dropped silently; any other write error fails the call.
func (s *QuoteService) InsertQuotes(ctx context.Context, batch []*quotes.Quote) error {
	if len(batch) == 0 {
		return nil
	}

	docs := make([]any, 0, len(batch))
	for _, q := range batch {
		if err := q.Validate(); err != nil {
			return err
		}
		rec := q.Record()
		docs = append(docs, quoteDoc{
			ID:           recordID(q),
			Quote:        rec.Quote,
			Author:       rec.Author,
			Tags:         rec.Tags,
			CategoryLink: rec.CategoryLink,
		})
	}

	_, err := s.db.Quotes().InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil && !isDuplicateOnly(err) {
		return fmt.Errorf("insert quotes: %w", err)
	}
	return nil
}

// isDuplicateOnly reports whether every write error in a bulk result is a
// duplicate key rejection. An unordered insert still commits the rest of
// the batch in that case.
func isDuplicateOnly(err error) bool {
	var bwe mongo.BulkWriteException
	if !errors.As(err, &bwe) {
		return false
	}
	if bwe.WriteConcernError != nil {
		return false
	}
	for _, we := range bwe.WriteErrors {
		if we.Code != duplicateKeyCode {
			return false
		}
	}
	return len(bwe.WriteErrors) > 0
}

// FindAllQuotes retrieves every stored record with the internal identifier
// projected out.
func (s *QuoteService) FindAllQuotes(ctx context.Context) ([]*quotes.QuoteRecord, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0})

	cur, err := s.db.Quotes().Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find quotes: %w", err)
	}
	defer cur.Close(ctx)

	var records []*quotes.QuoteRecord
	for cur.Next(ctx) {
		var doc quoteDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode quote: %w", err)
		}
		records = append(records, &quotes.QuoteRecord{
			Quote:        doc.Quote,
			Author:       doc.Author,
			Tags:         doc.Tags,
			CategoryLink: doc.CategoryLink,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}
	return records, nil
}

// CountQuotes returns the number of stored records.
func (s *QuoteService) CountQuotes(ctx context.Context) (int64, error) {
	n, err := s.db.Quotes().CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count quotes: %w", err)
	}
	return n, nil
}
