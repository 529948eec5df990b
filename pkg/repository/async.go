package repository

import (
	"context"

	"github.com/umputun/feedstore/pkg/async"
	"github.com/umputun/feedstore/pkg/domain"
)

// AsyncFeedRepository runs FeedRepository operations in background and returns futures.
// Each call issues exactly one repository operation; waiting with a deadline is up to the caller.
type AsyncFeedRepository struct {
	repo *FeedRepository
}

// Async returns the non-blocking view of the repository
func (r *FeedRepository) Async() *AsyncFeedRepository {
	return &AsyncFeedRepository{repo: r}
}

// FindID resolves feed id by rss url in background
func (a *AsyncFeedRepository) FindID(ctx context.Context, rssURL string) *async.Future[string] {
	return async.Go(ctx, func(ctx context.Context) (string, error) { return a.repo.FindID(ctx, rssURL) })
}

// FindByURL finds a feed by rss url in background
func (a *AsyncFeedRepository) FindByURL(ctx context.Context, rssURL string) *async.Future[*domain.Feed] {
	return async.Go(ctx, func(ctx context.Context) (*domain.Feed, error) { return a.repo.FindByURL(ctx, rssURL) })
}

// FindByTitle finds a feed by title in background
func (a *AsyncFeedRepository) FindByTitle(ctx context.Context, title string) *async.Future[*domain.Feed] {
	return async.Go(ctx, func(ctx context.Context) (*domain.Feed, error) { return a.repo.FindByTitle(ctx, title) })
}

// FindByLink finds a feed by site link in background
func (a *AsyncFeedRepository) FindByLink(ctx context.Context, link string) *async.Future[*domain.Feed] {
	return async.Go(ctx, func(ctx context.Context) (*domain.Feed, error) { return a.repo.FindByLink(ctx, link) })
}

// FindByID finds a feed by id in background
func (a *AsyncFeedRepository) FindByID(ctx context.Context, id string) *async.Future[*domain.Feed] {
	return async.Go(ctx, func(ctx context.Context) (*domain.Feed, error) { return a.repo.FindByID(ctx, id) })
}

// Save inserts the feed in background. feed.ID is set before the future completes.
func (a *AsyncFeedRepository) Save(ctx context.Context, feed *domain.Feed) *async.Future[domain.WriteResult] {
	return async.Go(ctx, func(ctx context.Context) (domain.WriteResult, error) { return a.repo.Save(ctx, feed) })
}

// Update replaces the feed in background
func (a *AsyncFeedRepository) Update(ctx context.Context, feed domain.Feed) *async.Future[domain.WriteResult] {
	return async.Go(ctx, func(ctx context.Context) (domain.WriteResult, error) { return a.repo.Update(ctx, feed) })
}

// RemoveByID deletes the feed in background
func (a *AsyncFeedRepository) RemoveByID(ctx context.Context, id string) *async.Future[domain.WriteResult] {
	return async.Go(ctx, func(ctx context.Context) (domain.WriteResult, error) { return a.repo.RemoveByID(ctx, id) })
}

// Drop deletes all feeds in background
func (a *AsyncFeedRepository) Drop(ctx context.Context) *async.Future[struct{}] {
	return async.Go(ctx, func(ctx context.Context) (struct{}, error) { return struct{}{}, a.repo.Drop(ctx) })
}

// InsertItems appends new items in background
func (a *AsyncFeedRepository) InsertItems(ctx context.Context, feedID string, items []domain.FeedItem) *async.Future[domain.UpdateResult] {
	return async.Go(ctx, func(ctx context.Context) (domain.UpdateResult, error) {
		return a.repo.InsertItems(ctx, feedID, items)
	})
}

// GetItems reads all items in background
func (a *AsyncFeedRepository) GetItems(ctx context.Context, feedID string) *async.Future[[]domain.FeedItem] {
	return async.Go(ctx, func(ctx context.Context) ([]domain.FeedItem, error) { return a.repo.GetItems(ctx, feedID) })
}

// GetLatestItems reads up to limit front items in background
func (a *AsyncFeedRepository) GetLatestItems(ctx context.Context, feedID string, limit int) *async.Future[[]domain.FeedItem] {
	return async.Go(ctx, func(ctx context.Context) ([]domain.FeedItem, error) {
		return a.repo.GetLatestItems(ctx, feedID, limit)
	})
}

// GetItemsPage reads a window of items in background
func (a *AsyncFeedRepository) GetItemsPage(ctx context.Context, feedID string, skip, limit int) *async.Future[[]domain.FeedItem] {
	return async.Go(ctx, func(ctx context.Context) ([]domain.FeedItem, error) {
		return a.repo.GetItemsPage(ctx, feedID, skip, limit)
	})
}
