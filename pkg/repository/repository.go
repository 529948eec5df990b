package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/feedstore/pkg/db"
	"github.com/umputun/feedstore/pkg/mongodb"
)

// store types
const (
	StoreSQLite = "sqlite"
	StoreMongo  = "mongo"
)

// Config represents store configuration
type Config struct {
	Type   string // sqlite or mongo, sqlite by default
	SQLite db.Config
	Mongo  mongodb.Config
}

// Repositories contains repository instances sharing one store connection
type Repositories struct {
	Feed  *FeedRepository
	Store Store
}

// NewRepositories opens the configured store and creates repositories on top of it
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	var store Store
	switch cfg.Type {
	case "", StoreSQLite:
		s, err := db.New(ctx, cfg.SQLite)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		store = s
	case StoreMongo:
		s, err := mongodb.New(ctx, cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("open mongo store: %w", err)
		}
		store = s
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.Type)
	}

	return &Repositories{Feed: NewFeedRepository(store), Store: store}, nil
}

// Close closes the store connection
func (r *Repositories) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.Store.Close(ctx)
}
