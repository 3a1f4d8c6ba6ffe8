package quotes

import "context"

// Category status values. A category starts pending and moves to done
// exactly once; the transition is one-way and idempotent.
const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// Category represents one grouping of quotes to scrape, identified by the
// base URL of its first page. Categories are seeded before a crawl run and
// are never deleted by the scraper.
type Category struct {
	ID      string `json:"id"`
	PageURL string `json:"pageUrl"`
	Status  string `json:"status"`
}

// Validate returns an error if the category contains invalid fields.
func (c *Category) Validate() error {
	if c.PageURL == "" {
		return Errorf(EINVALID, "category page URL required")
	}
	if c.Status != "" && c.Status != StatusPending && c.Status != StatusDone {
		return Errorf(EINVALID, "invalid category status %q", c.Status)
	}
	return nil
}

// CategoryService manages the category work queue.
type CategoryService interface {
	// CreateCategory creates a new pending category.
	// Returns ECONFLICT if a category with the same URL already exists.
	CreateCategory(ctx context.Context, category *Category) error

	// FindPendingCategories retrieves up to limit categories whose status
	// is pending. A limit of zero or less means no limit.
	FindPendingCategories(ctx context.Context, limit int) ([]*Category, error)

	// MarkCategoryDone sets the category status to done. Idempotent.
	MarkCategoryDone(ctx context.Context, id string) error

	// CountCategories returns the number of categories with the given
	// status, or all categories if status is empty.
	CountCategories(ctx context.Context, status string) (int64, error)
}
