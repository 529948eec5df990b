package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/rest"

	"github.com/umputun/feedstore/pkg/domain"
)

var errNotFound = errors.New("feed not found")

// statusHandler returns server status along with store availability
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := rest.JSON{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	if err := s.repo.Ping(r.Context()); err != nil {
		log.Printf("[WARN] store is not available: %v", err)
		status["status"] = "store unavailable"
		RenderJSON(w, r, http.StatusServiceUnavailable, status)
		return
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// feedIDHandler resolves feed id by rss url, GET /feed-id?url=
func (s *Server) feedIDHandler(w http.ResponseWriter, r *http.Request) {
	rssURL := r.URL.Query().Get("url")
	if rssURL == "" {
		RenderError(w, r, fmt.Errorf("url is required"), http.StatusBadRequest)
		return
	}

	id, err := s.repo.FindID(r.Context(), rssURL)
	if err != nil {
		log.Printf("[ERROR] failed to find feed id for %s: %v", rssURL, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if id == "" {
		RenderError(w, r, errNotFound, http.StatusNotFound)
		return
	}
	RenderJSON(w, r, http.StatusOK, rest.JSON{"id": id})
}

// findFeedHandler looks a feed up by exactly one of url, title or link query params
func (s *Server) findFeedHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var params int
	for _, key := range []string{"url", "title", "link"} {
		if query.Has(key) {
			params++
		}
	}
	if params != 1 {
		RenderError(w, r, fmt.Errorf("exactly one of url, title or link is required"), http.StatusBadRequest)
		return
	}

	var feed *domain.Feed
	var err error
	switch {
	case query.Has("url"):
		feed, err = s.repo.FindByURL(r.Context(), query.Get("url"))
	case query.Has("title"):
		feed, err = s.repo.FindByTitle(r.Context(), query.Get("title"))
	default:
		feed, err = s.repo.FindByLink(r.Context(), query.Get("link"))
	}
	s.renderFeed(w, r, feed, err)
}

// getFeedHandler returns the feed by id, GET /feeds/{id}
func (s *Server) getFeedHandler(w http.ResponseWriter, r *http.Request) {
	feed, err := s.repo.FindByID(r.Context(), r.PathValue("id"))
	s.renderFeed(w, r, feed, err)
}

func (s *Server) renderFeed(w http.ResponseWriter, r *http.Request, feed *domain.Feed, err error) {
	if err != nil {
		log.Printf("[ERROR] failed to find feed: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if feed == nil {
		RenderError(w, r, errNotFound, http.StatusNotFound)
		return
	}
	RenderJSON(w, r, http.StatusOK, feed)
}

// createFeedHandler stores a new feed document, POST /feeds
func (s *Server) createFeedHandler(w http.ResponseWriter, r *http.Request) {
	var feed domain.Feed
	if err := json.NewDecoder(r.Body).Decode(&feed); err != nil {
		RenderError(w, r, fmt.Errorf("invalid feed: %w", err), http.StatusBadRequest)
		return
	}

	if _, err := s.repo.Save(r.Context(), &feed); err != nil {
		log.Printf("[ERROR] failed to save feed %s: %v", feed.RSSURL, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	log.Printf("[INFO] feed %s created for %s", feed.ID, feed.RSSURL)
	RenderJSON(w, r, http.StatusCreated, rest.JSON{"id": feed.ID})
}

// updateFeedHandler replaces the feed document, PUT /feeds/{id}
func (s *Server) updateFeedHandler(w http.ResponseWriter, r *http.Request) {
	var feed domain.Feed
	if err := json.NewDecoder(r.Body).Decode(&feed); err != nil {
		RenderError(w, r, fmt.Errorf("invalid feed: %w", err), http.StatusBadRequest)
		return
	}
	feed.ID = r.PathValue("id")

	res, err := s.repo.Update(r.Context(), feed)
	if err != nil {
		log.Printf("[ERROR] failed to update feed %s: %v", feed.ID, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if res.N == 0 {
		RenderError(w, r, errNotFound, http.StatusNotFound)
		return
	}
	RenderJSON(w, r, http.StatusOK, rest.JSON{"updated": res.N})
}

// deleteFeedHandler removes the feed, DELETE /feeds/{id}. Deleting a missing feed reports zero.
func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	res, err := s.repo.RemoveByID(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to delete feed %s: %v", id, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, rest.JSON{"deleted": res.N})
}

// insertItemsHandler appends new items to the feed, POST /feeds/{id}/items
func (s *Server) insertItemsHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var items []domain.FeedItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		RenderError(w, r, fmt.Errorf("invalid items: %w", err), http.StatusBadRequest)
		return
	}

	res, err := s.repo.InsertItems(r.Context(), id, items)
	if err != nil {
		log.Printf("[ERROR] failed to insert items to feed %s: %v", id, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, res)
}

// itemsHandler returns items of the feed, GET /feeds/{id}/items?skip=&limit=
// Without params all items returned, limit alone gives the latest ones.
func (s *Server) itemsHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	query := r.URL.Query()

	skip, err := intParam(query.Get("skip"), "skip")
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	limit, err := intParam(query.Get("limit"), "limit")
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	var items []domain.FeedItem
	switch {
	case query.Has("skip") && !query.Has("limit"):
		RenderError(w, r, fmt.Errorf("limit is required with skip"), http.StatusBadRequest)
		return
	case query.Has("skip"):
		items, err = s.repo.GetItemsPage(r.Context(), id, skip, limit)
	case query.Has("limit"):
		items, err = s.repo.GetLatestItems(r.Context(), id, limit)
	default:
		items, err = s.repo.GetItems(r.Context(), id)
	}
	if err != nil {
		log.Printf("[ERROR] failed to get items of feed %s: %v", id, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, items)
}

// intParam parses a non-negative integer query value, empty is zero
func intParam(val, name string) (int, error) {
	if val == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", name, val)
	}
	return n, nil
}
