package crawl_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
	"github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded/crawl"
	"github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://quotes.toscrape.com/tag/life"

// fakeStore collects inserts and status updates behind a mutex so
// concurrent walkers can share it.
type fakeStore struct {
	mu        sync.Mutex
	inserts   [][]*quotes.Quote
	done      []string
	insertErr error
}

func (s *fakeStore) quoteService() *mock.QuoteService {
	return &mock.QuoteService{
		InsertQuotesFn: func(_ context.Context, batch []*quotes.Quote) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.insertErr != nil {
				return s.insertErr
			}
			s.inserts = append(s.inserts, batch)
			return nil
		},
		FindAllQuotesFn: func(context.Context) ([]*quotes.QuoteRecord, error) { return nil, nil },
		CountQuotesFn:   func(context.Context) (int64, error) { return 0, nil },
	}
}

func (s *fakeStore) categoryService() *mock.CategoryService {
	return &mock.CategoryService{
		MarkCategoryDoneFn: func(_ context.Context, id string) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.done = append(s.done, id)
			return nil
		},
	}
}

func (s *fakeStore) stored() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, batch := range s.inserts {
		n += len(batch)
	}
	return n
}

// pagedExtractor simulates a category with the given quote counts per
// page; the last page has no next link.
func pagedExtractor(t *testing.T, perPage []int) *mock.Extractor {
	t.Helper()
	return &mock.Extractor{
		ExtractFn: func(_ string, pageURL string) (*quotes.ExtractResult, error) {
			var page int
			_, err := fmt.Sscanf(pageURL[strings.LastIndex(pageURL, "/page/"):], "/page/%d/", &page)
			require.NoError(t, err)
			require.LessOrEqual(t, page, len(perPage), "fetched past the last page")

			result := &quotes.ExtractResult{HasNext: page < len(perPage)}
			for i := 0; i < perPage[page-1]; i++ {
				result.Quotes = append(result.Quotes, &quotes.Quote{
					Text:          fmt.Sprintf("quote %d on page %d", i+1, page),
					Author:        "Author",
					Tags:          []string{"life"},
					SourcePageURL: pageURL,
				})
			}
			return result, nil
		},
	}
}

func newWalker(store *fakeStore, fetcher *mock.Fetcher, extractor *mock.Extractor, budget *quotes.Budget) *crawl.Walker {
	return &crawl.Walker{
		Fetcher:    fetcher,
		Extractor:  extractor,
		Quotes:     store.quoteService(),
		Categories: store.categoryService(),
		Budget:     budget,
	}
}

func okFetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			return "<html>" + url + "</html>", nil
		},
	}
}

func TestWalker_Walk(t *testing.T) {
	t.Parallel()

	t.Run("walks all pages and stops on the last one", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{}
		budget := quotes.NewBudget(100)
		w := newWalker(store, okFetcher(), pagedExtractor(t, []int{2, 2, 1}), budget)

		result := w.Walk(context.Background(), &quotes.Category{ID: "c1", PageURL: baseURL}, nil)

		require.NoError(t, result.Err)
		assert.Equal(t, 3, result.Pages)
		assert.Equal(t, 5, result.Quotes)
		assert.Equal(t, int64(3), budget.Used(), "exactly one fetch per available page")
		assert.Equal(t, 5, store.stored())
		assert.Len(t, store.inserts, 1, "one bulk insert per category")
		assert.Equal(t, []string{"c1"}, store.done)
	})

	t.Run("constructs page URLs from the category base", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetched = append(fetched, url)
				return "<html></html>", nil
			},
		}

		store := &fakeStore{}
		w := newWalker(store, fetcher, pagedExtractor(t, []int{1, 1}), quotes.NewBudget(10))

		result := w.Walk(context.Background(), &quotes.Category{ID: "c1", PageURL: baseURL}, nil)

		require.NoError(t, result.Err)
		assert.Equal(t, []string{
			baseURL + "/page/1/",
			baseURL + "/page/2/",
		}, fetched)
	})

	t.Run("stops immediately when the budget is exhausted mid-walk", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{}
		budget := quotes.NewBudget(2)
		// Category has 5 pages but the budget only allows 2 fetches.
		w := newWalker(store, okFetcher(), pagedExtractor(t, []int{2, 2, 2, 2, 2}), budget)

		result := w.Walk(context.Background(), &quotes.Category{ID: "c1", PageURL: baseURL}, nil)

		require.NoError(t, result.Err, "budget exhaustion is a non-error stop")
		assert.Equal(t, 2, result.Pages)
		assert.Equal(t, 4, store.stored(), "quotes collected before exhaustion are persisted")
		assert.Equal(t, []string{"c1"}, store.done)
		assert.False(t, budget.TryAcquire())
	})

	t.Run("failed first fetch yields zero records but still marks done", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "", quotes.Errorf(quotes.EUNAVAILABLE, "HTTP 500 for %s", url)
			},
		}

		store := &fakeStore{}
		budget := quotes.NewBudget(10)
		w := newWalker(store, fetcher, pagedExtractor(t, []int{2}), budget)

		result := w.Walk(context.Background(), &quotes.Category{ID: "c1", PageURL: baseURL}, nil)

		require.Error(t, result.Err)
		assert.Equal(t, quotes.EUNAVAILABLE, quotes.ErrorCode(result.Err))
		assert.Zero(t, result.Pages)
		assert.Zero(t, store.stored())
		assert.Equal(t, []string{"c1"}, store.done, "category is marked done even on immediate failure")
		assert.Zero(t, budget.Used(), "a failed fetch does not consume budget")
	})

	t.Run("extraction failure persists what was collected so far", func(t *testing.T) {
		t.Parallel()

		// Page 2 fails on its second quote block; the block before it
		// still comes back with the error and must be persisted along
		// with page 1's quotes.
		extractor := &mock.Extractor{
			ExtractFn: func(_ string, pageURL string) (*quotes.ExtractResult, error) {
				if strings.Contains(pageURL, "/page/1/") {
					return &quotes.ExtractResult{
						Quotes: []*quotes.Quote{
							{Text: "ok", Author: "a", SourcePageURL: pageURL},
						},
						HasNext: true,
					}, nil
				}
				return &quotes.ExtractResult{
					Quotes: []*quotes.Quote{
						{Text: "good before bad", Author: "b", SourcePageURL: pageURL},
					},
				}, quotes.Errorf(quotes.EINVALID, "quote block missing text span on %s", pageURL)
			},
		}

		store := &fakeStore{}
		budget := quotes.NewBudget(10)
		w := newWalker(store, okFetcher(), extractor, budget)

		result := w.Walk(context.Background(), &quotes.Category{ID: "c1", PageURL: baseURL}, nil)

		require.Error(t, result.Err)
		assert.Equal(t, quotes.EINVALID, quotes.ErrorCode(result.Err))
		assert.Equal(t, 1, result.Pages)
		assert.Equal(t, 2, store.stored(), "the failing page's good blocks survive")
		assert.Equal(t, []string{"c1"}, store.done)
		assert.Equal(t, int64(2), budget.Used(), "the fetch preceding the bad extraction completed")
	})

	t.Run("waits on the rate limiter with the category host", func(t *testing.T) {
		t.Parallel()

		var domains []string
		limiter := &mock.DomainLimiter{
			WaitFn: func(_ context.Context, domain string) error {
				domains = append(domains, domain)
				return nil
			},
		}

		store := &fakeStore{}
		w := newWalker(store, okFetcher(), pagedExtractor(t, []int{1}), quotes.NewBudget(10))
		w.RateLimiter = limiter

		result := w.Walk(context.Background(), &quotes.Category{ID: "c1", PageURL: baseURL}, nil)

		require.NoError(t, result.Err)
		assert.Equal(t, []string{"quotes.toscrape.com"}, domains)
	})

	t.Run("canceled context stops the walk and marks done", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		store := &fakeStore{}
		w := newWalker(store, okFetcher(), pagedExtractor(t, []int{1}), quotes.NewBudget(10))

		result := w.Walk(ctx, &quotes.Category{ID: "c1", PageURL: baseURL}, nil)

		require.Error(t, result.Err)
		assert.Zero(t, result.Pages)
		assert.Equal(t, []string{"c1"}, store.done)
	})

	t.Run("insert failure is reported but category is still marked done", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{insertErr: quotes.Errorf(quotes.EINTERNAL, "write failed")}
		w := newWalker(store, okFetcher(), pagedExtractor(t, []int{1}), quotes.NewBudget(10))

		result := w.Walk(context.Background(), &quotes.Category{ID: "c1", PageURL: baseURL}, nil)

		require.Error(t, result.Err)
		assert.Equal(t, []string{"c1"}, store.done)
	})
}
