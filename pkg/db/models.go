package db

import (
	"encoding/json"
	"fmt"

	"github.com/umputun/feedstore/pkg/domain"
)

// feedDoc is the stored JSON form of a feed, nil items are kept as null
type feedDoc struct {
	ID     string    `json:"_id"`
	Title  string    `json:"title"`
	RSSURL string    `json:"rssUrl"`
	Link   string    `json:"link"`
	Items  []itemDoc `json:"items"`
}

// itemDoc is the stored JSON form of a feed item, optional fields are omitted when empty
type itemDoc struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	PubDate     string `json:"pubDate,omitempty"`
	Author      string `json:"author,omitempty"`
	GUID        string `json:"guid,omitempty"`
	Category    string `json:"category,omitempty"`
}

func encodeFeed(feed domain.Feed) (string, error) {
	doc := feedDoc{
		ID:     feed.ID,
		Title:  feed.Title,
		RSSURL: feed.RSSURL,
		Link:   feed.Link,
	}
	if feed.Items != nil {
		doc.Items = make([]itemDoc, 0, len(feed.Items))
	}
	for _, it := range feed.Items {
		doc.Items = append(doc.Items, fromDomainItem(it))
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode feed: %w", err)
	}
	return string(data), nil
}

func decodeFeed(data string) (*domain.Feed, error) {
	var doc feedDoc
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	feed := &domain.Feed{
		ID:     doc.ID,
		Title:  doc.Title,
		RSSURL: doc.RSSURL,
		Link:   doc.Link,
	}
	if doc.Items != nil {
		feed.Items = make([]domain.FeedItem, len(doc.Items))
		for i, it := range doc.Items {
			feed.Items[i] = it.toDomain()
		}
	}
	return feed, nil
}

func fromDomainItem(it domain.FeedItem) itemDoc {
	return itemDoc{
		Title:       it.Title,
		Link:        it.Link,
		Description: it.Description,
		PubDate:     it.PubDate,
		Author:      it.Author,
		GUID:        it.GUID,
		Category:    it.Category,
	}
}

func (d itemDoc) toDomain() domain.FeedItem {
	return domain.FeedItem{
		Title:       d.Title,
		Link:        d.Link,
		Description: d.Description,
		PubDate:     d.PubDate,
		Author:      d.Author,
		GUID:        d.GUID,
		Category:    d.Category,
	}
}
