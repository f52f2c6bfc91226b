package model

import "time"

// Post is a blog entry. Content is raw Markdown text; the API stores and
// returns it as-is without interpretation. Slug is derived from Title on the
// server and is never client-supplied.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
