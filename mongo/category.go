package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time interface verification.
var _ quotes.CategoryService = (*CategoryService)(nil)

// CategoryService implements quotes.CategoryService using MongoDB.
type CategoryService struct {
	db *DB
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(db *DB) *CategoryService {
	return &CategoryService{db: db}
}

// categoryDoc is the stored shape of a category.
type categoryDoc struct {
	ID      string `bson:"_id"`
	PageURL string `bson:"page_url"`
	Status  string `bson:"status"`
}

// CreateCategory creates a new pending category with a generated ID.
func (s *CategoryService) CreateCategory(ctx context.Context, category *quotes.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if category.Status == "" {
		category.Status = quotes.StatusPending
	}

	// A unique index on page_url keeps the work queue free of duplicates.
	if err := s.ensureURLIndex(ctx); err != nil {
		return err
	}

	_, err := s.db.Categories().InsertOne(ctx, categoryDoc{
		ID:      category.ID,
		PageURL: category.PageURL,
		Status:  category.Status,
	})
	if mongo.IsDuplicateKeyError(err) {
		return quotes.Errorf(quotes.ECONFLICT, "category %q already exists", category.PageURL)
	}
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// FindPendingCategories retrieves up to limit pending categories.
func (s *CategoryService) FindPendingCategories(ctx context.Context, limit int) ([]*quotes.Category, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := s.db.Categories().Find(ctx, bson.M{"status": quotes.StatusPending}, opts)
	if err != nil {
		return nil, fmt.Errorf("find pending categories: %w", err)
	}
	defer cur.Close(ctx)

	var categories []*quotes.Category
	for cur.Next(ctx) {
		var doc categoryDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
		categories = append(categories, &quotes.Category{
			ID:      doc.ID,
			PageURL: doc.PageURL,
			Status:  doc.Status,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// MarkCategoryDone sets the category status to done. Reapplying the update
// to an already-done category is a no-op.
func (s *CategoryService) MarkCategoryDone(ctx context.Context, id string) error {
	res, err := s.db.Categories().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": quotes.StatusDone}},
	)
	if err != nil {
		return fmt.Errorf("mark category done: %w", err)
	}
	if res.MatchedCount == 0 {
		return quotes.Errorf(quotes.ENOTFOUND, "category %q not found", id)
	}
	return nil
}

// CountCategories returns the number of categories with the given status,
// or all categories if status is empty.
func (s *CategoryService) CountCategories(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	n, err := s.db.Categories().CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

func (s *CategoryService) ensureURLIndex(ctx context.Context) error {
	_, err := s.db.Categories().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "page_url", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure category URL index: %w", err)
	}
	return nil
}
