package models

// WordPressPost is a read-only content record fetched from the external
// WordPress GraphQL endpoint. Field names follow the upstream schema.
type WordPressPost struct {
	// ID is the opaque GraphQL global identifier of the post.
	ID string `json:"id"`

	// DatabaseID is the numeric WordPress post identifier.
	DatabaseID int64 `json:"databaseId"`

	// Title is the post headline.
	Title string `json:"title"`

	// Content is the full rendered post body. Empty in list queries.
	Content string `json:"content,omitempty"`

	// Excerpt is the short rendered summary.
	Excerpt string `json:"excerpt,omitempty"`

	// Date is the upstream publication timestamp.
	Date string `json:"date,omitempty"`

	// AuthorName is the display name of the post author.
	AuthorName string `json:"authorName,omitempty"`
}
