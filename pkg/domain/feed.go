package domain

// Feed represents one subscribed feed document with its embedded items
type Feed struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	RSSURL string     `json:"rss_url"`
	Link   string     `json:"link"`
	Items  []FeedItem `json:"items"`
}

// Normalized returns a copy of the feed with all text fields holding valid UTF-8, see FeedItem.Normalized
func (f Feed) Normalized() Feed {
	return Feed{
		ID:     NormalizeText(f.ID),
		Title:  NormalizeText(f.Title),
		RSSURL: NormalizeText(f.RSSURL),
		Link:   NormalizeText(f.Link),
		Items:  NormalizeItems(f.Items),
	}
}

// WriteResult is the acknowledgement of a document-level write.
// N is the number of documents inserted, matched for replace, or deleted.
type WriteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	N            int64 `json:"n"`
}

// UpdateResult reports a sub-document write. Modified counts items actually appended,
// so a zero value means nothing new was stored.
type UpdateResult struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
}
