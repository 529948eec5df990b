package domain

import (
	"strings"
	"unicode/utf8"
)

// FeedItem represents a single entry of a feed. Items are compared by full value,
// empty optional fields are treated as absent.
type FeedItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	PubDate     string `json:"pub_date,omitempty"`
	Author      string `json:"author,omitempty"`
	GUID        string `json:"guid,omitempty"`
	Category    string `json:"category,omitempty"`
}

// Equal reports whether both items match on every field
func (i FeedItem) Equal(other FeedItem) bool {
	return i == other
}

// ContainsItem checks if items already has a value-equal entry
func ContainsItem(items []FeedItem, item FeedItem) bool {
	for _, it := range items {
		if it.Equal(item) {
			return true
		}
	}
	return false
}

// Normalized returns a copy of the item with invalid UTF-8 sequences in every field
// replaced by U+FFFD, the form stores keep and compare.
func (i FeedItem) Normalized() FeedItem {
	return FeedItem{
		Title:       NormalizeText(i.Title),
		Link:        NormalizeText(i.Link),
		Description: NormalizeText(i.Description),
		PubDate:     NormalizeText(i.PubDate),
		Author:      NormalizeText(i.Author),
		GUID:        NormalizeText(i.GUID),
		Category:    NormalizeText(i.Category),
	}
}

// NormalizeItems returns normalized copies of items, keeping nil and empty apart
func NormalizeItems(items []FeedItem) []FeedItem {
	if items == nil {
		return nil
	}
	res := make([]FeedItem, len(items))
	for idx, it := range items {
		res[idx] = it.Normalized()
	}
	return res
}

// NormalizeText replaces invalid UTF-8 sequences in s with U+FFFD
func NormalizeText(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "\uFFFD")
}
