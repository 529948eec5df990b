package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedstore/pkg/domain"
)

func TestEncodeFeed(t *testing.T) {
	tests := []struct {
		name     string
		feed     domain.Feed
		expected string
	}{
		{
			name:     "nil items",
			feed:     domain.Feed{ID: "f1", Title: "Feed", RSSURL: "https://example.com/rss", Link: "https://example.com"},
			expected: `{"_id":"f1","title":"Feed","rssUrl":"https://example.com/rss","link":"https://example.com","items":null}`,
		},
		{
			name:     "empty items",
			feed:     domain.Feed{ID: "f1", Items: []domain.FeedItem{}},
			expected: `{"_id":"f1","title":"","rssUrl":"","link":"","items":[]}`,
		},
		{
			name: "optional item fields omitted",
			feed: domain.Feed{ID: "f2", Items: []domain.FeedItem{{Title: "t", Link: "l", Description: "d"}}},
			expected: `{"_id":"f2","title":"","rssUrl":"","link":"",` +
				`"items":[{"title":"t","link":"l","description":"d"}]}`,
		},
		{
			name: "all item fields",
			feed: domain.Feed{ID: "f3", Items: []domain.FeedItem{{Title: "t", Link: "l", Description: "d",
				PubDate: "Mon, 02 Jan 2006 15:04:05 -0700", Author: "a", GUID: "g", Category: "c"}}},
			expected: `{"_id":"f3","title":"","rssUrl":"","link":"","items":[{"title":"t","link":"l","description":"d",` +
				`"pubDate":"Mon, 02 Jan 2006 15:04:05 -0700","author":"a","guid":"g","category":"c"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := encodeFeed(tt.feed)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, res)
		})
	}
}

func TestDecodeFeed(t *testing.T) {
	t.Run("null items decode to nil", func(t *testing.T) {
		feed, err := decodeFeed(`{"_id":"f1","title":"Feed","rssUrl":"u","link":"l","items":null}`)
		require.NoError(t, err)
		assert.Equal(t, &domain.Feed{ID: "f1", Title: "Feed", RSSURL: "u", Link: "l"}, feed)
	})

	t.Run("empty items stay empty", func(t *testing.T) {
		feed, err := decodeFeed(`{"_id":"f1","items":[]}`)
		require.NoError(t, err)
		require.NotNil(t, feed.Items)
		assert.Empty(t, feed.Items)
	})

	t.Run("items keep order", func(t *testing.T) {
		feed, err := decodeFeed(`{"_id":"f1","items":[{"title":"b","link":"lb","description":"db"},` +
			`{"title":"a","link":"la","description":"da","guid":"g"}]}`)
		require.NoError(t, err)
		require.Len(t, feed.Items, 2)
		assert.Equal(t, "b", feed.Items[0].Title)
		assert.Equal(t, domain.FeedItem{Title: "a", Link: "la", Description: "da", GUID: "g"}, feed.Items[1])
	})

	t.Run("broken document", func(t *testing.T) {
		_, err := decodeFeed(`{"_id":`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode feed")
	})
}
