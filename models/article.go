package models

// Article is a content entity managed through the articles GraphQL API.
// The authoritative copy lives server-side; the client holds transient
// per-request copies and never caches them between screens.
type Article struct {
	// ID is the server-assigned article identifier.
	ID int64 `json:"id"`

	// Title is the article headline.
	Title string `json:"title"`

	// Content is the article body.
	Content string `json:"content,omitempty"`

	// Author is the optional display name of the article author.
	Author string `json:"author,omitempty"`

	// PublishedDate is the server-formatted publication timestamp.
	PublishedDate string `json:"publishedDate,omitempty"`

	// CreatedAt is the server-formatted creation timestamp.
	CreatedAt string `json:"createdAt,omitempty"`

	// UpdatedAt is the server-formatted last-modification timestamp.
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ArticleDraft carries user-entered article fields for create and update
// mutations. Zero-value fields are omitted from update payloads so the
// server only touches what the user actually edited.
type ArticleDraft struct {
	Title   string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content string `json:"content,omitempty" validate:"omitempty,min=1"`
	Author  string `json:"author,omitempty" validate:"omitempty,max=100"`
}

// SetFields lists the struct field names the draft actually carries, in
// the form partial validation expects.
func (d ArticleDraft) SetFields() []string {
	var fields []string
	if d.Title != "" {
		fields = append(fields, "Title")
	}
	if d.Content != "" {
		fields = append(fields, "Content")
	}
	if d.Author != "" {
		fields = append(fields, "Author")
	}
	return fields
}
