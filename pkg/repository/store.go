package repository

import (
	"context"

	"github.com/umputun/feedstore/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the document store driver used by FeedRepository.
// All methods work on a single collection of feed documents.
type Store interface {
	// FindOne returns the first feed with key equal to value, nil if none
	FindOne(ctx context.Context, key domain.Key, value string) (*domain.Feed, error)
	// FindID returns the id of the first feed with key equal to value, empty if none
	FindID(ctx context.Context, key domain.Key, value string) (string, error)
	// Insert adds a new document, filling feed.ID when empty
	Insert(ctx context.Context, feed *domain.Feed) error
	// Replace overwrites the document with the same id, returns matched count
	Replace(ctx context.Context, feed domain.Feed) (int64, error)
	// AddItems appends items not yet present, each append atomic on the document
	AddItems(ctx context.Context, id string, items []domain.FeedItem) (domain.UpdateResult, error)
	// SliceItems reads items [skip, skip+limit) in stored order, negative limit reads to the end
	SliceItems(ctx context.Context, id string, skip, limit int) ([]domain.FeedItem, error)
	// Delete removes the document by id, returns deleted count
	Delete(ctx context.Context, id string) (int64, error)
	// Drop removes every document
	Drop(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
