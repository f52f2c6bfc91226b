package model

import "time"

// DefaultProjectImageURL is used when a project is created without an image.
const DefaultProjectImageURL = "https://placehold.co/400x250/2563EB/ffffff?text=Image+Placeholder"

// DefaultProjectLink is the placeholder for missing live/github links.
const DefaultProjectLink = "#"

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Category    string    `json:"category"` // e.g. "Web", "ML/AI", "Mobile", "Design", "Other"
	ImageURL    string    `json:"imageUrl"`
	LiveLink    string    `json:"liveLink"`
	GithubLink  string    `json:"githubLink"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ApplyDefaults fills placeholder values for optional presentation fields.
func (p *Project) ApplyDefaults() {
	if p.ImageURL == "" {
		p.ImageURL = DefaultProjectImageURL
	}
	if p.LiveLink == "" {
		p.LiveLink = DefaultProjectLink
	}
	if p.GithubLink == "" {
		p.GithubLink = DefaultProjectLink
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}
