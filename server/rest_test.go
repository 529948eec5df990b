package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedstore/pkg/domain"
	"github.com/umputun/feedstore/server/mocks"
)

var testFeed = domain.Feed{
	ID:     "f1",
	Title:  "Example Blog",
	RSSURL: "https://blog.example.com/rss.xml",
	Link:   "https://blog.example.com",
	Items: []domain.FeedItem{
		{Title: "first", Link: "https://blog.example.com/1", Description: "d1", GUID: "g1"},
		{Title: "second", Link: "https://blog.example.com/2", Description: "d2"},
	},
}

// serve passes the request through the full router, path values included
func serve(srv *Server, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var res T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res
}

func TestServer_statusHandler(t *testing.T) {
	t.Run("store available", func(t *testing.T) {
		repo := &mocks.RepositoryMock{PingFunc: func(context.Context) error { return nil }}
		srv := New(testConfig(":8080"), repo, "1.2.3", false)

		req := httptest.NewRequest("GET", "/api/v1/status", http.NoBody)
		w := httptest.NewRecorder()
		srv.statusHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		status := decodeBody[map[string]any](t, w)
		assert.Equal(t, "ok", status["status"])
		assert.Equal(t, "1.2.3", status["version"])
		assert.NotEmpty(t, status["time"])
	})

	t.Run("store down", func(t *testing.T) {
		repo := &mocks.RepositoryMock{PingFunc: func(context.Context) error { return errors.New("connection refused") }}
		w := serve(testServer(t, repo), "GET", "/api/v1/status", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "store unavailable", decodeBody[map[string]any](t, w)["status"])
	})
}

func TestServer_feedIDHandler(t *testing.T) {
	repo := &mocks.RepositoryMock{
		FindIDFunc: func(_ context.Context, rssURL string) (string, error) {
			switch rssURL {
			case testFeed.RSSURL:
				return testFeed.ID, nil
			case "https://broken.example.com/rss":
				return "", errors.New("store failure")
			}
			return "", nil
		},
	}
	srv := testServer(t, repo)

	w := serve(srv, "GET", "/api/v1/feed-id?url=https://blog.example.com/rss.xml", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"id": "f1"}, decodeBody[map[string]string](t, w))

	w = serve(srv, "GET", "/api/v1/feed-id?url=https://unknown.example.com/rss", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(srv, "GET", "/api/v1/feed-id?url=https://broken.example.com/rss", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "store failure", decodeBody[map[string]string](t, w)["error"])

	w = serve(srv, "GET", "/api/v1/feed-id", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, repo.FindIDCalls(), 3)
}

func TestServer_findFeedHandler(t *testing.T) {
	found := func(_ context.Context, v string) (*domain.Feed, error) {
		if v == "missing" {
			return nil, nil
		}
		f := testFeed
		return &f, nil
	}
	repo := &mocks.RepositoryMock{FindByURLFunc: found, FindByTitleFunc: found, FindByLinkFunc: found}
	srv := testServer(t, repo)

	tests := []struct {
		name   string
		target string
		code   int
	}{
		{"by url", "/api/v1/feeds?url=https://blog.example.com/rss.xml", http.StatusOK},
		{"by title", "/api/v1/feeds?title=Example+Blog", http.StatusOK},
		{"by link", "/api/v1/feeds?link=https://blog.example.com", http.StatusOK},
		{"not found", "/api/v1/feeds?title=missing", http.StatusNotFound},
		{"no params", "/api/v1/feeds", http.StatusBadRequest},
		{"two params", "/api/v1/feeds?title=a&link=b", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(srv, "GET", tt.target, "")
			require.Equal(t, tt.code, w.Code, w.Body.String())
			if tt.code == http.StatusOK {
				assert.Equal(t, testFeed, decodeBody[domain.Feed](t, w))
			}
		})
	}

	require.Len(t, repo.FindByURLCalls(), 1)
	assert.Equal(t, "https://blog.example.com/rss.xml", repo.FindByURLCalls()[0].RssURL)
	require.Len(t, repo.FindByTitleCalls(), 2)
	assert.Equal(t, "Example Blog", repo.FindByTitleCalls()[0].Title)
	assert.Len(t, repo.FindByLinkCalls(), 1)
}

func TestServer_getFeedHandler(t *testing.T) {
	repo := &mocks.RepositoryMock{
		FindByIDFunc: func(_ context.Context, id string) (*domain.Feed, error) {
			switch id {
			case "f1":
				f := testFeed
				return &f, nil
			case "bad":
				return nil, errors.New("decode failed")
			}
			return nil, nil
		},
	}
	srv := testServer(t, repo)

	w := serve(srv, "GET", "/api/v1/feeds/f1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testFeed, decodeBody[domain.Feed](t, w))

	w = serve(srv, "GET", "/api/v1/feeds/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(srv, "GET", "/api/v1/feeds/bad", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_createFeedHandler(t *testing.T) {
	repo := &mocks.RepositoryMock{
		SaveFunc: func(_ context.Context, feed *domain.Feed) (domain.WriteResult, error) {
			if feed.Title == "fail" {
				return domain.WriteResult{}, errors.New("disk full")
			}
			feed.ID = "new-id"
			return domain.WriteResult{Acknowledged: true, N: 1}, nil
		},
	}
	srv := testServer(t, repo)

	body := `{"title":"Example Blog","rss_url":"https://blog.example.com/rss.xml","link":"https://blog.example.com",
		"items":[{"title":"first","link":"https://blog.example.com/1","description":"d1","guid":"g1"}]}`
	w := serve(srv, "POST", "/api/v1/feeds", body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, map[string]string{"id": "new-id"}, decodeBody[map[string]string](t, w))

	require.Len(t, repo.SaveCalls(), 1)
	saved := repo.SaveCalls()[0].Feed
	assert.Equal(t, "https://blog.example.com/rss.xml", saved.RSSURL)
	assert.Equal(t, []domain.FeedItem{{Title: "first", Link: "https://blog.example.com/1", Description: "d1", GUID: "g1"}},
		saved.Items)

	w = serve(srv, "POST", "/api/v1/feeds", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(srv, "POST", "/api/v1/feeds", `{"title":"fail"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Len(t, repo.SaveCalls(), 2)
}

func TestServer_updateFeedHandler(t *testing.T) {
	repo := &mocks.RepositoryMock{
		UpdateFunc: func(_ context.Context, feed domain.Feed) (domain.WriteResult, error) {
			if feed.ID != "f1" {
				return domain.WriteResult{Acknowledged: true}, nil
			}
			return domain.WriteResult{Acknowledged: true, N: 1}, nil
		},
	}
	srv := testServer(t, repo)

	w := serve(srv, "PUT", "/api/v1/feeds/f1", `{"id":"ignored","title":"Renamed"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, repo.UpdateCalls(), 1)
	assert.Equal(t, domain.Feed{ID: "f1", Title: "Renamed"}, repo.UpdateCalls()[0].Feed, "id comes from the path")

	w = serve(srv, "PUT", "/api/v1/feeds/other", `{"title":"Renamed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(srv, "PUT", "/api/v1/feeds/f1", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, repo.UpdateCalls(), 2)
}

func TestServer_deleteFeedHandler(t *testing.T) {
	repo := &mocks.RepositoryMock{
		RemoveByIDFunc: func(_ context.Context, id string) (domain.WriteResult, error) {
			if id == "f1" {
				return domain.WriteResult{Acknowledged: true, N: 1}, nil
			}
			return domain.WriteResult{Acknowledged: true}, nil
		},
	}
	srv := testServer(t, repo)

	w := serve(srv, "DELETE", "/api/v1/feeds/f1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]int64{"deleted": 1}, decodeBody[map[string]int64](t, w))

	w = serve(srv, "DELETE", "/api/v1/feeds/missing", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]int64{"deleted": 0}, decodeBody[map[string]int64](t, w))
}

func TestServer_insertItemsHandler(t *testing.T) {
	repo := &mocks.RepositoryMock{
		InsertItemsFunc: func(_ context.Context, _ string, items []domain.FeedItem) (domain.UpdateResult, error) {
			return domain.UpdateResult{Matched: 1, Modified: int64(len(items) - 1)}, nil
		},
	}
	srv := testServer(t, repo)

	body := `[{"title":"a","link":"https://e.com/a","description":"x"},{"title":"b","link":"https://e.com/b","description":"y"}]`
	w := serve(srv, "POST", "/api/v1/feeds/f1/items", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.UpdateResult{Matched: 1, Modified: 1}, decodeBody[domain.UpdateResult](t, w))

	require.Len(t, repo.InsertItemsCalls(), 1)
	assert.Equal(t, "f1", repo.InsertItemsCalls()[0].FeedID)
	assert.Len(t, repo.InsertItemsCalls()[0].Items, 2)

	w = serve(srv, "POST", "/api/v1/feeds/f1/items", `{"title":"not an array"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_itemsHandler(t *testing.T) {
	items := testFeed.Items
	repo := &mocks.RepositoryMock{
		GetItemsFunc: func(context.Context, string) ([]domain.FeedItem, error) { return items, nil },
		GetLatestItemsFunc: func(_ context.Context, _ string, limit int) ([]domain.FeedItem, error) {
			return items[:min(limit, len(items))], nil
		},
		GetItemsPageFunc: func(_ context.Context, _ string, skip, limit int) ([]domain.FeedItem, error) {
			if skip >= len(items) {
				return []domain.FeedItem{}, nil
			}
			return items[skip:min(skip+limit, len(items))], nil
		},
	}
	srv := testServer(t, repo)

	tests := []struct {
		name     string
		target   string
		code     int
		expected []domain.FeedItem
	}{
		{"all", "/api/v1/feeds/f1/items", http.StatusOK, items},
		{"latest", "/api/v1/feeds/f1/items?limit=1", http.StatusOK, items[:1]},
		{"page", "/api/v1/feeds/f1/items?skip=1&limit=5", http.StatusOK, items[1:]},
		{"past the end", "/api/v1/feeds/f1/items?skip=5&limit=5", http.StatusOK, []domain.FeedItem{}},
		{"skip without limit", "/api/v1/feeds/f1/items?skip=1", http.StatusBadRequest, nil},
		{"negative limit", "/api/v1/feeds/f1/items?limit=-1", http.StatusBadRequest, nil},
		{"bad skip", "/api/v1/feeds/f1/items?skip=x&limit=1", http.StatusBadRequest, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(srv, "GET", tt.target, "")
			require.Equal(t, tt.code, w.Code, w.Body.String())
			if tt.code == http.StatusOK {
				assert.Equal(t, tt.expected, decodeBody[[]domain.FeedItem](t, w))
			}
		})
	}

	assert.Len(t, repo.GetItemsCalls(), 1)
	assert.Len(t, repo.GetLatestItemsCalls(), 1)
	require.Len(t, repo.GetItemsPageCalls(), 2)
	assert.Equal(t, 1, repo.GetItemsPageCalls()[0].Skip)
	assert.Equal(t, 5, repo.GetItemsPageCalls()[0].Limit)
}

func TestServer_itemsHandlerError(t *testing.T) {
	repo := &mocks.RepositoryMock{
		GetItemsFunc: func(context.Context, string) ([]domain.FeedItem, error) { return nil, errors.New("timeout") },
	}
	w := serve(testServer(t, repo), "GET", "/api/v1/feeds/f1/items", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "timeout", decodeBody[map[string]string](t, w)["error"])
}
