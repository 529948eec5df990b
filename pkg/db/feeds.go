package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"

	"github.com/umputun/feedstore/pkg/domain"
)

// keyColumns maps document keys to their indexed mirror columns
var keyColumns = map[domain.Key]string{
	domain.KeyID:    "id",
	domain.KeyURL:   "rss_url",
	domain.KeyTitle: "title",
	domain.KeyLink:  "link",
}

// FindOne returns the first feed whose key equals value, nil if none
func (db *DB) FindOne(ctx context.Context, key domain.Key, value string) (*domain.Feed, error) {
	col, err := column(key)
	if err != nil {
		return nil, err
	}

	var doc string
	query := fmt.Sprintf("SELECT doc FROM feeds WHERE %s = ? ORDER BY seq LIMIT 1", col)
	if err := db.conn.GetContext(ctx, &doc, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get feed by %s: %w", key, err)
	}
	return decodeFeed(doc)
}

// FindID returns the id of the first feed whose key equals value, empty if none
func (db *DB) FindID(ctx context.Context, key domain.Key, value string) (string, error) {
	col, err := column(key)
	if err != nil {
		return "", err
	}

	var id string
	query := fmt.Sprintf("SELECT id FROM feeds WHERE %s = ? ORDER BY seq LIMIT 1", col)
	if err := db.conn.GetContext(ctx, &id, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get feed id by %s: %w", key, err)
	}
	return id, nil
}

// Insert stores a new feed document. An empty feed.ID is filled with a generated one
// after the insert succeeds.
func (db *DB) Insert(ctx context.Context, feed *domain.Feed) error {
	id := feed.ID
	if id == "" {
		id = uuid.NewString()
	}
	row := *feed
	row.ID = id

	doc, err := encodeFeed(row)
	if err != nil {
		return err
	}

	err = db.retry(ctx, 5, func() error {
		_, err := db.conn.ExecContext(ctx,
			`INSERT INTO feeds (id, rss_url, title, link, doc) VALUES (?, ?, ?, ?, ?)`,
			id, row.RSSURL, row.Title, row.Link, doc)
		return classify(err, "insert feed")
	})
	if err != nil {
		return err
	}

	feed.ID = id
	return nil
}

// Replace overwrites the whole feed document matched by id and returns the matched count
func (db *DB) Replace(ctx context.Context, feed domain.Feed) (int64, error) {
	doc, err := encodeFeed(feed)
	if err != nil {
		return 0, err
	}

	var matched int64
	err = db.retry(ctx, 5, func() error {
		res, err := db.conn.ExecContext(ctx, `
			UPDATE feeds
			SET rss_url = ?, title = ?, link = ?, doc = ?,
			    version = version + 1, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?`,
			feed.RSSURL, feed.Title, feed.Link, doc, feed.ID)
		if err != nil {
			return classify(err, "replace feed")
		}
		if matched, err = res.RowsAffected(); err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}
		return nil
	})
	return matched, err
}

// AddItems appends every item not already present in the feed, keeping input order.
// The read-modify-write is guarded by the version column and retried on conflicts,
// so concurrent appends to the same feed never produce duplicates.
func (db *DB) AddItems(ctx context.Context, id string, items []domain.FeedItem) (domain.UpdateResult, error) {
	var res domain.UpdateResult
	err := db.retry(ctx, 10, func() error {
		res = domain.UpdateResult{}

		var row struct {
			Doc     string `db:"doc"`
			Version int64  `db:"version"`
		}
		if err := db.conn.GetContext(ctx, &row, `SELECT doc, version FROM feeds WHERE id = ?`, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return classify(err, "load feed")
		}
		res.Matched = 1

		feed, err := decodeFeed(row.Doc)
		if err != nil {
			return &criticalError{err: err}
		}

		var added int64
		for _, item := range items {
			if domain.ContainsItem(feed.Items, item) {
				continue
			}
			feed.Items = append(feed.Items, item)
			added++
		}
		if added == 0 {
			return nil
		}

		doc, err := encodeFeed(*feed)
		if err != nil {
			return &criticalError{err: err}
		}

		upd, err := db.conn.ExecContext(ctx, `
			UPDATE feeds SET doc = ?, version = version + 1, updated_at = CURRENT_TIMESTAMP
			WHERE id = ? AND version = ?`, doc, id, row.Version)
		if err != nil {
			return classify(err, "append items")
		}
		n, err := upd.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}
		if n == 0 {
			lgr.Printf("[DEBUG] version %d of feed %s changed, retrying append", row.Version, id)
			return errVersionConflict
		}
		res.Modified = added
		return nil
	})
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return res, nil
}

// SliceItems returns up to limit items of the feed starting at skip, in stored order.
// A negative limit returns everything after skip.
func (db *DB) SliceItems(ctx context.Context, id string, skip, limit int) ([]domain.FeedItem, error) {
	var values []string
	err := db.conn.SelectContext(ctx, &values, `
		SELECT j.value FROM feeds f, json_each(f.doc, '$.items') j
		WHERE f.id = ? AND json_type(f.doc, '$.items') = 'array'
		ORDER BY j.key
		LIMIT ? OFFSET ?`, id, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("get feed items: %w", err)
	}

	items := make([]domain.FeedItem, 0, len(values))
	for _, v := range values {
		var it itemDoc
		if err := json.Unmarshal([]byte(v), &it); err != nil {
			return nil, fmt.Errorf("decode feed item: %w", err)
		}
		items = append(items, it.toDomain())
	}
	return items, nil
}

// Delete removes the feed with given id and returns the number of deleted documents
func (db *DB) Delete(ctx context.Context, id string) (int64, error) {
	var deleted int64
	err := db.retry(ctx, 5, func() error {
		res, err := db.conn.ExecContext(ctx, `DELETE FROM feeds WHERE id = ?`, id)
		if err != nil {
			return classify(err, "delete feed")
		}
		if deleted, err = res.RowsAffected(); err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}
		return nil
	})
	return deleted, err
}

// Drop removes all feeds
func (db *DB) Drop(ctx context.Context) error {
	return db.retry(ctx, 5, func() error {
		_, err := db.conn.ExecContext(ctx, `DELETE FROM feeds`)
		return classify(err, "drop feeds")
	})
}

// retry runs fn with backoff, repeating on lock errors and version conflicts only
func (db *DB) retry(ctx context.Context, repeats int, fn func() error) error {
	retrier := repeater.NewBackoff(repeats, 20*time.Millisecond, repeater.WithMaxDelay(time.Second))
	if err := retrier.Do(ctx, fn, errCritical); err != nil {
		return unwrapCritical(err)
	}
	return nil
}

// classify marks non-lock errors as critical so they are returned without retries
func classify(err error, op string) error {
	if err == nil {
		return nil
	}
	if isLockError(err) {
		return err // retry
	}
	return &criticalError{err: fmt.Errorf("%s: %w", op, err)}
}

func column(key domain.Key) (string, error) {
	col, ok := keyColumns[key]
	if !ok {
		return "", fmt.Errorf("unsupported feed key %q", key)
	}
	return col, nil
}
