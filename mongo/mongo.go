// Package mongo provides MongoDB-based storage implementations for the
// quotes services.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection settings.
const (
	DefaultURI      = "mongodb://localhost:27017"
	DefaultDatabase = "quotes_db"
)

// Collection names.
const (
	categoryCollection = "category_urls"
	quoteCollection    = "quotes_data"
)

// DB represents a MongoDB connection scoped to the quotes database.
type DB struct {
	client *mongo.Client
	uri    string
	name   string
}

// NewDB creates a new DB instance with the given connection URI.
// An empty URI falls back to DefaultURI.
func NewDB(uri string) *DB {
	if uri == "" {
		uri = DefaultURI
	}
	return &DB{uri: uri, name: DefaultDatabase}
}

// WithDatabase overrides the database name. Used by tests to isolate data.
func (db *DB) WithDatabase(name string) *DB {
	db.name = name
	return db
}

// Open connects to the server and verifies the connection with a ping.
// Connectivity failure here is fatal for the run; there is no retry.
func (db *DB) Open(ctx context.Context) error {
	opts := options.Client().
		ApplyURI(db.uri).
		SetRetryWrites(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB at %q: %w", db.uri, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("failed to ping MongoDB at %q: %w", db.uri, err)
	}

	db.client = client
	return nil
}

// Close disconnects from the server.
func (db *DB) Close(ctx context.Context) error {
	if db.client != nil {
		return db.client.Disconnect(ctx)
	}
	return nil
}

// Categories returns the category collection.
func (db *DB) Categories() *mongo.Collection {
	return db.client.Database(db.name).Collection(categoryCollection)
}

// Quotes returns the quote collection.
func (db *DB) Quotes() *mongo.Collection {
	return db.client.Database(db.name).Collection(quoteCollection)
}
