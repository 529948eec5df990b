package domain

// Key names a queryable field of a feed document
type Key string

// enum of feed lookup keys, values are the document field names
const (
	KeyID    Key = "_id"
	KeyURL   Key = "rssUrl"
	KeyTitle Key = "title"
	KeyLink  Key = "link"
)

// Valid reports whether k is one of the known lookup keys
func (k Key) Valid() bool {
	switch k {
	case KeyID, KeyURL, KeyTitle, KeyLink:
		return true
	}
	return false
}
