package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	ProductsCollection  = "products"
	CarouselsCollection = "carousels"
	EnquiriesCollection = "enquiries"
)

// DefaultTimeout bounds each database round trip when no other timeout is configured
const DefaultTimeout = 5 * time.Second

// ConnectMongo opens a client for uri and pings the primary to verify the connection
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("unable to create MongoDB client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("unable to reach MongoDB: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the indexes the repositories rely on. The unique
// pageUrl index is what turns a lost slug race into a duplicate key error.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(ProductsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "pageUrl", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "isDeleted", Value: 1}, {Key: "createdAt", Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("unable to create product indexes: %w", err)
	}

	_, err = db.Collection(EnquiriesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("unable to create enquiry indexes: %w", err)
	}

	return nil
}

// findWindow builds find options for a skip/limit pair using the same rules
// as the in-memory repositories. ok is false when the window is empty.
func findWindow(skip, limit int) (opts *options.FindOptions, ok bool) {
	if limit <= 0 {
		return nil, false
	}
	if skip < 0 {
		skip = 0
	}
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit)), true
}
