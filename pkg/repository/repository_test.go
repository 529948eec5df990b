package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedstore/pkg/db"
	"github.com/umputun/feedstore/pkg/domain"
	"github.com/umputun/feedstore/pkg/mongodb"
)

// testStore describes a store backend the repository tests run against
type testStore struct {
	name string
	open func(t *testing.T) Store
}

// testStores returns sqlite always and mongo when FEEDSTORE_TEST_MONGO_URI is set
func testStores(t *testing.T) []testStore {
	t.Helper()
	res := []testStore{{name: "sqlite", open: openSQLiteStore}}
	if uri := os.Getenv("FEEDSTORE_TEST_MONGO_URI"); uri != "" {
		res = append(res, testStore{name: "mongo", open: func(t *testing.T) Store {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			s, err := mongodb.New(ctx, mongodb.Config{URI: uri, Database: "feedstore_test",
				Collection: "feeds_repo_test", Timeout: 5 * time.Second})
			require.NoError(t, err)
			return s
		}})
	}
	return res
}

func openSQLiteStore(t *testing.T) Store {
	s, err := db.New(context.Background(), db.Config{DSN: "file:" + t.TempDir() + "/repo.db?mode=rwc&_txlock=immediate"})
	require.NoError(t, err)
	return s
}

// setupTestRepo opens the store, clears it and returns a repository with cleanup
// dropping the data and closing the connection
func setupTestRepo(t *testing.T, ts testStore) (repo *FeedRepository, cleanup func()) {
	t.Helper()

	store := ts.open(t)
	repo = NewFeedRepository(store)
	require.NoError(t, repo.Drop(context.Background()))

	cleanup = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = repo.Drop(ctx)
		_ = store.Close(ctx)
	}
	return repo, cleanup
}

// loadFixtureFeed parses a feed file into a domain feed the way an upstream parser would
func loadFixtureFeed(t *testing.T, path string) *domain.Feed {
	t.Helper()

	fh, err := os.Open(path) //nolint:gosec // test fixture
	require.NoError(t, err)
	defer fh.Close()

	parsed, err := gofeed.NewParser().Parse(fh)
	require.NoError(t, err)

	feed := &domain.Feed{
		Title:  parsed.Title,
		RSSURL: parsed.FeedLink,
		Link:   parsed.Link,
	}
	for _, it := range parsed.Items {
		item := domain.FeedItem{
			Title:       it.Title,
			Link:        it.Link,
			Description: it.Description,
			PubDate:     it.Published,
			GUID:        it.GUID,
		}
		if it.Author != nil {
			item.Author = it.Author.Name
		}
		if len(it.Categories) > 0 {
			item.Category = it.Categories[0]
		}
		feed.Items = append(feed.Items, item)
	}
	return feed
}

func TestLoadFixtureFeed(t *testing.T) {
	feed := loadFixtureFeed(t, "testdata/feed.xml")
	require.Equal(t, "Example Engineering Blog", feed.Title)
	require.Equal(t, "https://blog.example.com/rss.xml", feed.RSSURL)
	require.Equal(t, "https://blog.example.com", feed.Link)
	require.Len(t, feed.Items, 3)
	require.Equal(t, "Scaling the ingest pipeline", feed.Items[0].Title)
	require.Equal(t, "infrastructure", feed.Items[0].Category)
	require.Empty(t, feed.Items[2].PubDate)
}

func TestNewRepositories(t *testing.T) {
	t.Run("sqlite by default", func(t *testing.T) {
		repos, err := NewRepositories(context.Background(), Config{
			SQLite: db.Config{DSN: "file:" + t.TempDir() + "/factory.db?mode=rwc"},
		})
		require.NoError(t, err)
		defer repos.Close()

		require.NotNil(t, repos.Feed)
		require.NoError(t, repos.Feed.Ping(context.Background()))
	})

	t.Run("unknown store type", func(t *testing.T) {
		_, err := NewRepositories(context.Background(), Config{Type: "redis"})
		require.EqualError(t, err, `unknown store type "redis"`)
	})

	t.Run("mongo unreachable", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, err := NewRepositories(ctx, Config{Type: StoreMongo, Mongo: mongodb.Config{
			URI: "mongodb://127.0.0.1:1", Timeout: 200 * time.Millisecond}})
		require.Error(t, err)
		require.Contains(t, err.Error(), "open mongo store")
	})
}
