// Package mongodb implements the feed document store on MongoDB.
// Each feed is one document of the configured collection, items are an embedded array.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-pkgz/lgr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/umputun/feedstore/pkg/domain"
)

// Config defines mongo connection parameters
type Config struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

// Store keeps feeds in a mongo collection
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// New connects to mongo, verifies the connection and makes sure lookup keys are indexed
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URI == "" {
		cfg.URI = "mongodb://localhost:27017"
	}
	if cfg.Database == "" {
		cfg.Database = "feedstore"
	}
	if cfg.Collection == "" {
		cfg.Collection = "feeds"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	opts := options.Client().ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.Timeout).
		SetServerSelectionTimeout(cfg.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := &Store{client: client, coll: client.Database(cfg.Database).Collection(cfg.Collection)}
	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	lgr.Printf("[INFO] mongo feed store ready, collection %s.%s", cfg.Database, cfg.Collection)
	return s, nil
}

// EnsureIndexes creates non-unique indexes for the natural lookup keys, _id is indexed by mongo
func (s *Store) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: string(domain.KeyURL), Value: 1}}},
		{Keys: bson.D{{Key: string(domain.KeyTitle), Value: 1}}},
		{Keys: bson.D{{Key: string(domain.KeyLink), Value: 1}}},
	}
	if _, err := s.coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create feed indexes: %w", err)
	}
	return nil
}

// FindOne returns the first feed whose key equals value, nil if none
func (s *Store) FindOne(ctx context.Context, key domain.Key, value string) (*domain.Feed, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("unsupported feed key %q", key)
	}

	var doc feedDoc
	err := s.coll.FindOne(ctx, bson.D{{Key: string(key), Value: value}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get feed by %s: %w", key, err)
	}
	return doc.toDomain(), nil
}

// FindID returns the id of the first feed whose key equals value without loading the document
func (s *Store) FindID(ctx context.Context, key domain.Key, value string) (string, error) {
	if !key.Valid() {
		return "", fmt.Errorf("unsupported feed key %q", key)
	}

	var res struct {
		ID string `bson:"_id"`
	}
	opts := options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})
	err := s.coll.FindOne(ctx, bson.D{{Key: string(key), Value: value}}, opts).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", fmt.Errorf("get feed id by %s: %w", key, err)
	}
	return res.ID, nil
}

// Insert stores a new feed document, an empty feed.ID gets a fresh object id
func (s *Store) Insert(ctx context.Context, feed *domain.Feed) error {
	doc := fromDomainFeed(*feed)
	if doc.ID == "" {
		doc.ID = primitive.NewObjectID().Hex()
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert feed: %w", err)
	}
	feed.ID = doc.ID
	return nil
}

// Replace overwrites the feed document with the same id and returns the matched count
func (s *Store) Replace(ctx context.Context, feed domain.Feed) (int64, error) {
	res, err := s.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: feed.ID}}, fromDomainFeed(feed))
	if err != nil {
		return 0, fmt.Errorf("replace feed: %w", err)
	}
	return res.MatchedCount, nil
}

// AddItems sends one ordered bulk write with an $addToSet per item. Each update is atomic
// on the document and leaves it untouched when an equal item is already there, so the
// modified count is the number of appended items.
func (s *Store) AddItems(ctx context.Context, id string, items []domain.FeedItem) (domain.UpdateResult, error) {
	if len(items) == 0 {
		return domain.UpdateResult{}, nil
	}

	models := make([]mongo.WriteModel, 0, len(items))
	for _, it := range items {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.D{{Key: "_id", Value: id}}).
			SetUpdate(bson.D{{Key: "$addToSet", Value: bson.D{{Key: "items", Value: fromDomainItem(it)}}}}))
	}

	res, err := s.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("append items: %w", err)
	}

	result := domain.UpdateResult{Modified: res.ModifiedCount}
	if res.MatchedCount > 0 {
		result.Matched = 1
	}
	return result, nil
}

// SliceItems returns up to limit items starting at skip using a $slice projection.
// A negative limit returns everything after skip.
func (s *Store) SliceItems(ctx context.Context, id string, skip, limit int) ([]domain.FeedItem, error) {
	if limit == 0 {
		return []domain.FeedItem{}, nil
	}

	var doc struct {
		Items []itemDoc `bson:"items"`
	}
	opts := options.FindOne().SetProjection(sliceProjection(skip, limit))
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []domain.FeedItem{}, nil
		}
		return nil, fmt.Errorf("get feed items: %w", err)
	}

	items := make([]domain.FeedItem, len(doc.Items))
	for i, it := range doc.Items {
		items[i] = it.toDomain()
	}
	return items, nil
}

// Delete removes the feed with given id and returns the number of deleted documents
func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, fmt.Errorf("delete feed: %w", err)
	}
	return res.DeletedCount, nil
}

// Drop removes the whole collection and recreates the key indexes for later use
func (s *Store) Drop(ctx context.Context) error {
	if err := s.coll.Drop(ctx); err != nil {
		return fmt.Errorf("drop feeds: %w", err)
	}
	return s.EnsureIndexes(ctx)
}

// Ping verifies the connection to the primary
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// sliceProjection makes {items: {$slice: [skip, limit]}}, $slice needs a positive limit
func sliceProjection(skip, limit int) bson.D {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = math.MaxInt32
	}
	return bson.D{
		{Key: "_id", Value: 0},
		{Key: "items", Value: bson.D{{Key: "$slice", Value: bson.A{skip, limit}}}},
	}
}
