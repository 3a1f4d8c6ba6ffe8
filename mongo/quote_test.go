package mongo_test

import (
	"context"
	"testing"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
	quotesmongo "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded/mongo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuote(text string) *quotes.Quote {
	return &quotes.Quote{
		Text:          text,
		Author:        "Albert Einstein",
		Tags:          []string{"life", "inspirational"},
		SourcePageURL: "https://quotes.toscrape.com/tag/life/page/1/",
	}
}

func TestQuoteService_InsertQuotes(t *testing.T) {
	t.Parallel()

	t.Run("stores records with joined tags", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := quotesmongo.NewQuoteService(db)
		ctx := context.Background()

		require.NoError(t, s.InsertQuotes(ctx, []*quotes.Quote{testQuote("a"), testQuote("b")}))

		records, err := s.FindAllQuotes(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "life | inspirational", records[0].Tags)
		assert.Equal(t, "https://quotes.toscrape.com/tag/life/page/1/", records[0].CategoryLink)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := quotesmongo.NewQuoteService(db)

		require.NoError(t, s.InsertQuotes(context.Background(), nil))
	})

	t.Run("duplicates are dropped and the rest of the batch commits", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := quotesmongo.NewQuoteService(db)
		ctx := context.Background()

		require.NoError(t, s.InsertQuotes(ctx, []*quotes.Quote{testQuote("a")}))

		// Re-insert "a" together with two new quotes.
		require.NoError(t, s.InsertQuotes(ctx, []*quotes.Quote{testQuote("a"), testQuote("b"), testQuote("c")}))

		n, err := s.CountQuotes(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("rejects invalid quotes before writing", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := quotesmongo.NewQuoteService(db)
		ctx := context.Background()

		err := s.InsertQuotes(ctx, []*quotes.Quote{{Author: "No Text"}})
		require.Error(t, err)
		assert.Equal(t, quotes.EINVALID, quotes.ErrorCode(err))

		n, err := s.CountQuotes(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestQuoteService_FindAllQuotes(t *testing.T) {
	t.Parallel()

	t.Run("returns empty result for empty collection", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := quotesmongo.NewQuoteService(db)

		records, err := s.FindAllQuotes(context.Background())
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
