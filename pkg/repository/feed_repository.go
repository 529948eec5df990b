package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedstore/pkg/domain"
)

// FeedRepository handles feed documents and their embedded items.
// Absent feeds are reported as nil results or zero counts, never as errors.
// Store failures are returned wrapped and never retried here.
type FeedRepository struct {
	store Store
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(store Store) *FeedRepository {
	return &FeedRepository{store: store}
}

// FindID resolves the id of a feed by its rss url, empty string if there is no such feed
func (r *FeedRepository) FindID(ctx context.Context, rssURL string) (string, error) {
	id, err := r.store.FindID(ctx, domain.KeyURL, domain.NormalizeText(rssURL))
	if err != nil {
		return "", fmt.Errorf("find feed id: %w", err)
	}
	return id, nil
}

// FindByURL returns the feed with given rss url or nil.
// Found feeds come back as saved, nil items stay nil and an empty list stays empty.
func (r *FeedRepository) FindByURL(ctx context.Context, rssURL string) (*domain.Feed, error) {
	return r.findOne(ctx, domain.KeyURL, rssURL)
}

// FindByTitle returns a feed with given title or nil. Titles are not unique,
// which of the matching feeds is returned is up to the store.
func (r *FeedRepository) FindByTitle(ctx context.Context, title string) (*domain.Feed, error) {
	return r.findOne(ctx, domain.KeyTitle, title)
}

// FindByLink returns a feed with given site link or nil
func (r *FeedRepository) FindByLink(ctx context.Context, link string) (*domain.Feed, error) {
	return r.findOne(ctx, domain.KeyLink, link)
}

// FindByID returns the feed with given id or nil
func (r *FeedRepository) FindByID(ctx context.Context, id string) (*domain.Feed, error) {
	return r.findOne(ctx, domain.KeyID, id)
}

func (r *FeedRepository) findOne(ctx context.Context, key domain.Key, value string) (*domain.Feed, error) {
	feed, err := r.store.FindOne(ctx, key, domain.NormalizeText(value))
	if err != nil {
		return nil, fmt.Errorf("find feed by %s: %w", key, err)
	}
	return feed, nil
}

// Save inserts a new feed document and sets feed.ID if it was empty.
// On success feed holds the stored form, with invalid UTF-8 in text fields replaced by U+FFFD.
// It doesn't check for an existing feed with the same rss url, use FindID for that.
func (r *FeedRepository) Save(ctx context.Context, feed *domain.Feed) (domain.WriteResult, error) {
	if feed == nil {
		return domain.WriteResult{}, errors.New("save feed: nil feed")
	}
	stored := feed.Normalized()
	if err := r.store.Insert(ctx, &stored); err != nil {
		return domain.WriteResult{}, fmt.Errorf("save feed: %w", err)
	}
	*feed = stored
	lgr.Printf("[DEBUG] saved feed %s, %s", feed.ID, feed.RSSURL)
	return domain.WriteResult{Acknowledged: true, N: 1}, nil
}

// Update replaces the whole feed document with the same id, items included.
// N is 0 if there is no such feed.
func (r *FeedRepository) Update(ctx context.Context, feed domain.Feed) (domain.WriteResult, error) {
	if feed.ID == "" {
		lgr.Printf("[DEBUG] update skipped, feed %s has no id", feed.RSSURL)
		return domain.WriteResult{Acknowledged: true}, nil
	}
	matched, err := r.store.Replace(ctx, feed.Normalized())
	if err != nil {
		return domain.WriteResult{}, fmt.Errorf("update feed %s: %w", feed.ID, err)
	}
	if matched == 0 {
		lgr.Printf("[DEBUG] update matched nothing, feed %s not found", feed.ID)
	}
	return domain.WriteResult{Acknowledged: true, N: matched}, nil
}

// RemoveByID deletes the feed with given id, removing a missing feed is not an error
func (r *FeedRepository) RemoveByID(ctx context.Context, id string) (domain.WriteResult, error) {
	deleted, err := r.store.Delete(ctx, id)
	if err != nil {
		return domain.WriteResult{}, fmt.Errorf("remove feed %s: %w", id, err)
	}
	return domain.WriteResult{Acknowledged: true, N: deleted}, nil
}

// Drop deletes all feeds. Meant for tests and resets.
func (r *FeedRepository) Drop(ctx context.Context) error {
	if err := r.store.Drop(ctx); err != nil {
		return fmt.Errorf("drop feeds: %w", err)
	}
	lgr.Printf("[INFO] all feeds dropped")
	return nil
}

// InsertItems appends items the feed doesn't have yet, in the given order after the existing ones.
// Items are compared in normalized form, see domain.FeedItem.Normalized.
// Modified is the number of items actually added; zero means nothing new,
// including the case of a missing feed.
func (r *FeedRepository) InsertItems(ctx context.Context, feedID string, items []domain.FeedItem) (domain.UpdateResult, error) {
	uniq := make([]domain.FeedItem, 0, len(items))
	for _, it := range domain.NormalizeItems(items) {
		if !domain.ContainsItem(uniq, it) {
			uniq = append(uniq, it)
		}
	}
	if len(uniq) == 0 {
		return domain.UpdateResult{}, nil
	}

	res, err := r.store.AddItems(ctx, feedID, uniq)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("insert items to feed %s: %w", feedID, err)
	}
	lgr.Printf("[DEBUG] feed %s: %d of %d items added", feedID, res.Modified, len(uniq))
	return res, nil
}

// GetItems returns all items of the feed in stored order
func (r *FeedRepository) GetItems(ctx context.Context, feedID string) ([]domain.FeedItem, error) {
	return r.sliceItems(ctx, feedID, 0, -1)
}

// GetLatestItems returns up to limit items from the front of the stored order.
// Feeds are stored newest first, so these are the most recent ones.
func (r *FeedRepository) GetLatestItems(ctx context.Context, feedID string, limit int) ([]domain.FeedItem, error) {
	if limit <= 0 {
		return []domain.FeedItem{}, nil
	}
	return r.sliceItems(ctx, feedID, 0, limit)
}

// GetItemsPage returns up to limit items starting at position skip.
// A page past the end is empty, the last page may be short.
func (r *FeedRepository) GetItemsPage(ctx context.Context, feedID string, skip, limit int) ([]domain.FeedItem, error) {
	if limit <= 0 {
		return []domain.FeedItem{}, nil
	}
	if skip < 0 {
		skip = 0
	}
	return r.sliceItems(ctx, feedID, skip, limit)
}

func (r *FeedRepository) sliceItems(ctx context.Context, feedID string, skip, limit int) ([]domain.FeedItem, error) {
	items, err := r.store.SliceItems(ctx, feedID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("get items of feed %s: %w", feedID, err)
	}
	if items == nil {
		items = []domain.FeedItem{}
	}
	return items, nil
}

// Ping checks the store is reachable
func (r *FeedRepository) Ping(ctx context.Context) error {
	if err := r.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping store: %w", err)
	}
	return nil
}
