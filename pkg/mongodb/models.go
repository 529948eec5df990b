package mongodb

import "github.com/umputun/feedstore/pkg/domain"

// feedDoc is the stored form of a feed
type feedDoc struct {
	ID      string    `bson:"_id"`
	Title   string    `bson:"title"`
	RSSURL  string    `bson:"rssUrl"`
	Link    string    `bson:"link"`
	Items   []itemDoc `bson:"items"`
	NoItems bool      `bson:"noItems,omitempty"` // saved with nil items, the stored array is empty either way
}

// itemDoc is the stored form of an item. Field order is fixed by the struct, which
// keeps $addToSet document equality stable across writes.
type itemDoc struct {
	Title       string `bson:"title"`
	Link        string `bson:"link"`
	Description string `bson:"description"`
	PubDate     string `bson:"pubDate,omitempty"`
	Author      string `bson:"author,omitempty"`
	GUID        string `bson:"guid,omitempty"`
	Category    string `bson:"category,omitempty"`
}

func fromDomainFeed(feed domain.Feed) feedDoc {
	doc := feedDoc{
		ID:      feed.ID,
		Title:   feed.Title,
		RSSURL:  feed.RSSURL,
		Link:    feed.Link,
		Items:   make([]itemDoc, 0, len(feed.Items)), // never null, $addToSet fails on null
		NoItems: feed.Items == nil,
	}
	for _, it := range feed.Items {
		doc.Items = append(doc.Items, fromDomainItem(it))
	}
	return doc
}

func (d feedDoc) toDomain() *domain.Feed {
	feed := &domain.Feed{
		ID:     d.ID,
		Title:  d.Title,
		RSSURL: d.RSSURL,
		Link:   d.Link,
	}
	if len(d.Items) > 0 || (d.Items != nil && !d.NoItems) {
		feed.Items = make([]domain.FeedItem, len(d.Items))
		for i, it := range d.Items {
			feed.Items[i] = it.toDomain()
		}
	}
	return feed
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
